// Package agent implements the reason-act-observe-respond-learn loop that
// drives each conversation turn. The loop is synchronous: a turn runs
// start-to-finish, every failure path degrades to a structured response, and
// the caller owns the session state passed into Process.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/dealerdesk/showroom/logging"
	"github.com/dealerdesk/showroom/taxonomy"
	"github.com/dealerdesk/showroom/tool"
)

// Turn is the structured outcome of processing one utterance.
type Turn struct {
	Reasoning    ReasoningRecord `json:"reasoning"`
	ActionResult ActionResult    `json:"action_result"`
	Observation  Observation     `json:"observation"`
	Response     string          `json:"response"`
	Confidence   float64         `json:"confidence"`
	Intent       IntentResult    `json:"intent"`
}

// Options configure an Agent.
type Options struct {
	// Taxonomy drives intent classification. Nil selects the default.
	Taxonomy *taxonomy.Taxonomy
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// Agent wires the reasoning engine and the dispatcher into one turn loop.
// An Agent is stateless and safe for concurrent use; per-conversation state
// lives in the Session each Process call receives.
type Agent struct {
	engine     *Engine
	dispatcher *Dispatcher
	logger     logging.Logger
}

// New builds an agent over a tool registry keyed by tool name.
func New(tools map[string]tool.Tool, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Taxonomy: taxonomy.Default(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Taxonomy == nil {
		opts.Taxonomy = taxonomy.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Agent{
		engine:     NewEngine(opts.Taxonomy),
		dispatcher: NewDispatcher(tools, opts.Logger),
		logger:     opts.Logger,
	}
}

// Process runs one full turn against the given session. It never panics and
// never returns a malformed turn; unexpected failures produce the structured
// error response with confidence zero.
func (a *Agent) Process(ctx context.Context, session *Session, utterance string) (turn Turn) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("agent.turn_panic", "panic", fmt.Sprint(r))
			turn = errorTurn(fmt.Sprintf("internal error: %v", r))
		}
	}()

	rec := a.engine.Reason(utterance, session.Context())
	a.logger.Debug("agent.reason", "action", string(rec.Action), "intent", rec.Intent.Type,
		"confidence", rec.Confidence)

	result := a.dispatcher.Dispatch(ctx, rec, utterance)
	obs := Observe(result)
	response := Respond(result, obs, utterance)
	session.Learn(utterance, rec, obs, response)

	if sl, ok := a.logger.(*logging.ShowroomLogger); ok {
		sl.LogTurn(string(rec.Action), obs.Quality, time.Since(start), obs.ActionSuccessful, nil)
	} else {
		a.logger.Info("agent.turn_completed", "action", string(rec.Action),
			"quality", obs.Quality, "success", obs.ActionSuccessful)
	}

	return Turn{
		Reasoning:    rec,
		ActionResult: result,
		Observation:  obs,
		Response:     response,
		Confidence:   rec.Confidence,
		Intent:       rec.Intent,
	}
}

// errorTurn is the fixed structured response for unexpected failures.
func errorTurn(errMsg string) Turn {
	return Turn{
		Reasoning: ReasoningRecord{
			Thought:    "Error occurred during processing",
			Action:     ActionError,
			Confidence: 0,
			Intent:     IntentResult{Type: "error"},
			Timestamp:  time.Now(),
		},
		ActionResult: ActionResult{
			Status: StatusError,
			Error:  errMsg,
			Action: ActionError,
		},
		Observation: Observation{
			Status:          ObsFailed,
			Quality:         QualityError,
			NeedsRefinement: true,
			Error:           errMsg,
		},
		Response: fmt.Sprintf("⚠️ I encountered an error: %s\n\n"+
			"Please try again or rephrase your request.", errMsg),
		Confidence: 0,
		Intent:     IntentResult{Type: "error"},
	}
}
