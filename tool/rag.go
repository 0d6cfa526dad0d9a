package tool

import (
	"context"

	"github.com/dealerdesk/showroom/search"
)

// RAG exposes the search orchestrator as an agent tool. The input is the raw
// customer utterance; the output is a search.Result. Storage outages are
// already folded into the result by the orchestrator, so Call only errors on
// invocation failures such as a cancelled context.
type RAG struct {
	orchestrator *search.Orchestrator
	topK         int
}

// NewRAG binds a search orchestrator. topK < 1 falls back to 5.
func NewRAG(orchestrator *search.Orchestrator, topK int) *RAG {
	if topK < 1 {
		topK = 5
	}
	return &RAG{orchestrator: orchestrator, topK: topK}
}

func (t *RAG) Name() string { return NameRAG }

func (t *RAG) Description() string {
	return "Searches the vehicle inventory and answers dealership FAQ questions."
}

// Call runs a retrieval search for the utterance.
func (t *RAG) Call(ctx context.Context, input string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewToolError(NameRAG, err.Error(), CodeUnavailable)
	}
	return t.orchestrator.Search(ctx, input, t.topK), nil
}

// General runs the conversational entry point, which falls back to a help
// message when the utterance has no search verbs.
func (t *RAG) General(ctx context.Context, input string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewToolError(NameRAG, err.Error(), CodeUnavailable)
	}
	return t.orchestrator.GeneralQuery(ctx, input), nil
}
