package agent

import (
	"context"
	"fmt"

	"github.com/dealerdesk/showroom/logging"
	"github.com/dealerdesk/showroom/tool"
)

// ActionResult statuses form a closed set.
const (
	StatusSuccess      = "success"
	StatusRequiresInfo = "requires_info"
	StatusError        = "error"
)

// msgAppointmentInfo is returned when an appointment request needs details
// before the booking subsystem can act.
const msgAppointmentInfo = "I'd be happy to help you book a test drive! Please provide:\n" +
	"• Your preferred date\n• Vehicle ID (from search results)\n• Your contact information"

// msgCapabilities is the dispatcher's answer when no search tool is
// registered for a general query.
const msgCapabilities = "I'm here to help! You can ask me about:\n\n" +
	"🚗 Vehicle search and recommendations\n📅 Booking test drives\n" +
	"💰 Pricing and financing options\n❓ Warranty, trade-in, and services"

// ActionResult is the uniform outcome of the act phase.
type ActionResult struct {
	Status   string `json:"status"`
	Data     any    `json:"data,omitempty"`
	Action   Action `json:"action"`
	ToolUsed string `json:"tool_used"`
	Error    string `json:"error,omitempty"`
}

// Dispatcher routes a planned action to its tool. Tool failures never
// escape; every branch returns a well-formed ActionResult.
type Dispatcher struct {
	tools  map[string]tool.Tool
	logger logging.Logger
}

// NewDispatcher builds a dispatcher over a tool registry keyed by tool name.
func NewDispatcher(tools map[string]tool.Tool, logger logging.Logger) *Dispatcher {
	if tools == nil {
		tools = map[string]tool.Tool{}
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Dispatcher{tools: tools, logger: logger}
}

// Dispatch executes the planned action for one turn.
func (d *Dispatcher) Dispatch(ctx context.Context, rec ReasoningRecord, utterance string) ActionResult {
	action := rec.Action

	switch {
	case action.IsBooking():
		// The booking flow is driven by the caller's UI; the dispatcher
		// acknowledges the intent and leaves slot collection to it.
		d.logger.Debug("dispatch.booking", "action", string(action))
		return ActionResult{
			Status:   StatusSuccess,
			Data:     map[string]string{"message": bookingAck(action)},
			Action:   action,
			ToolUsed: tool.NameBooking,
		}

	case action.IsSearch(), action == ActionProvideInfo:
		if rag, ok := d.tools[tool.NameRAG]; ok {
			return d.callTool(ctx, rag, action, utterance)
		}
		return d.generalQuery(ctx, utterance)

	case action == ActionAnalyzeSentiment:
		if st, ok := d.tools[tool.NameSentiment]; ok {
			return d.callTool(ctx, st, action, utterance)
		}
		return d.generalQuery(ctx, utterance)

	case action == ActionManageAppointment:
		return ActionResult{
			Status:   StatusRequiresInfo,
			Data:     map[string]string{"message": msgAppointmentInfo},
			Action:   action,
			ToolUsed: "appointment_system",
		}

	default:
		return d.generalQuery(ctx, utterance)
	}
}

// callTool invokes a tool and converts any failure into a status=error
// result with the message preserved.
func (d *Dispatcher) callTool(ctx context.Context, t tool.Tool, action Action, utterance string) (result ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch.tool_panic", "tool", t.Name(), "panic", fmt.Sprint(r))
			result = ActionResult{
				Status:   StatusError,
				Error:    fmt.Sprintf("tool %s panicked: %v", t.Name(), r),
				Action:   action,
				ToolUsed: "none",
			}
		}
	}()

	data, err := t.Call(ctx, utterance)
	if err != nil {
		d.logger.Error("dispatch.tool_error", "tool", t.Name(), "error", err.Error())
		return ActionResult{
			Status:   StatusError,
			Error:    err.Error(),
			Action:   action,
			ToolUsed: t.Name(),
		}
	}
	return ActionResult{
		Status:   StatusSuccess,
		Data:     data,
		Action:   action,
		ToolUsed: t.Name(),
	}
}

// generalQuery is the default branch: an opportunistic search when the rag
// tool is registered, otherwise a static capabilities message.
func (d *Dispatcher) generalQuery(ctx context.Context, utterance string) ActionResult {
	if rag, ok := d.tools[tool.NameRAG]; ok {
		if r, isRAG := rag.(*tool.RAG); isRAG {
			data, err := r.General(ctx, utterance)
			if err != nil {
				return ActionResult{
					Status:   StatusError,
					Error:    err.Error(),
					Action:   ActionGeneralQuery,
					ToolUsed: tool.NameRAG,
				}
			}
			return ActionResult{
				Status:   StatusSuccess,
				Data:     data,
				Action:   ActionGeneralQuery,
				ToolUsed: tool.NameRAG,
			}
		}
		return d.callTool(ctx, rag, ActionGeneralQuery, utterance)
	}

	return ActionResult{
		Status:   StatusSuccess,
		Data:     map[string]string{"message": msgCapabilities},
		Action:   ActionGeneralQuery,
		ToolUsed: "default",
	}
}

func bookingAck(action Action) string {
	switch action {
	case ActionTestDriveBooking:
		return "Test drive booking initiated"
	case ActionCheckAvailability:
		return "Availability check initiated"
	case ActionRescheduleBooking:
		return "Reschedule initiated"
	case ActionCancelBooking:
		return "Cancellation initiated"
	}
	return "Booking request initiated"
}
