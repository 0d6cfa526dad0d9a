// Package tool defines the capability contract the agent dispatches to and
// bindings over the search, sentiment and booking subsystems. Each binding
// normalizes its subsystem's failures into a ToolError so the dispatch layer
// can treat all tools uniformly.
package tool

import (
	"context"
	"fmt"
)

// Registered tool names.
const (
	NameRAG       = "rag"
	NameSentiment = "sentiment"
	NameBooking   = "booking"
)

// Error codes used by the bindings in this package.
const (
	CodeUnavailable = "UNAVAILABLE"
	CodeBadInput    = "BAD_INPUT"
	CodeNotFound    = "NOT_FOUND"
	CodeSlotFull    = "SLOT_FULL"
	CodeInternal    = "INTERNAL"
)

// Tool is a capability the agent can invoke during its act phase.
//
// Implementations should be thread-safe and must wrap their failures in a
// ToolError so callers can surface the failing tool and a stable code.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable summary used in help output.
	Description() string

	// Call executes the tool against the raw user utterance (or a
	// structured payload the binding documents) and returns its result.
	Call(ctx context.Context, input string) (any, error)
}

// ToolError represents a failure inside a tool invocation.
type ToolError struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a ToolError with the given details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}
