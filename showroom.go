// Package showroom provides a high-level façade over the conversational
// sales assistant: the reason-act-observe-respond-learn agent loop, the
// inventory search pipeline, sentiment analysis and test drive booking.
// Most applications interact with this package by:
//  1. Creating a Showroom via New() (optionally overriding the default
//     in-memory collaborators)
//  2. Calling Process() once per user utterance
//  3. Reading Analytics() for session performance snapshots
//
// All defaults are safe for local development and testing; production
// deployments typically supply the SQLite-backed inventory store, an
// LLM-backed sentiment analyzer and a structured logger.
package showroom

import (
	"context"

	"github.com/dealerdesk/showroom/agent"
	"github.com/dealerdesk/showroom/booking"
	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/logging"
	"github.com/dealerdesk/showroom/search"
	"github.com/dealerdesk/showroom/sentiment"
	"github.com/dealerdesk/showroom/session"
	"github.com/dealerdesk/showroom/taxonomy"
	"github.com/dealerdesk/showroom/tool"
)

// Options configures the Showroom instance.
type Options struct {
	// Store supplies vehicle records. Defaults to the in-memory store
	// seeded with the sample inventory.
	Store inventory.Store

	// Analyzer classifies message sentiment. Defaults to the lexicon
	// analyzer; LLM-backed analyzers fall back to the lexicon on failure.
	Analyzer sentiment.Analyzer

	// Scheduler handles test drive bookings. Defaults to the in-memory
	// scheduler with three bookings per slot.
	Scheduler booking.Scheduler

	// Taxonomy drives intent classification and query interpretation.
	// Nil selects the built-in default.
	Taxonomy *taxonomy.Taxonomy

	// Logger defaults to NoOpLogger.
	Logger logging.Logger

	// TopK is the search page size. Defaults to 5.
	TopK int

	// FetchLimit caps candidates pulled from storage per search.
	// Defaults to 100.
	FetchLimit int
}

// Showroom aggregates the agent, its tools and the session store behind a
// single per-turn entry point.
type Showroom struct {
	agent    *agent.Agent
	sessions *session.InMemoryStore
	booking  *tool.Booking
	opts     Options
}

// New creates a Showroom with optional overrides. Any unset collaborator is
// initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Showroom {
	opts := Options{
		Taxonomy:   taxonomy.Default(),
		Logger:     logging.NoOpLogger{},
		TopK:       5,
		FetchLimit: 100,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Store == nil {
		opts.Store = inventory.NewMemoryStore(inventory.SampleInventory())
	}
	if opts.Analyzer == nil {
		opts.Analyzer = sentiment.NewLexicon()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = booking.NewInMemoryScheduler(3)
	}
	if opts.Taxonomy == nil {
		opts.Taxonomy = taxonomy.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	orchestrator := search.New(opts.Store, func(o *search.Options) {
		o.Taxonomy = opts.Taxonomy
		o.Logger = opts.Logger
		o.FetchLimit = opts.FetchLimit
		o.TopK = opts.TopK
	})

	bookingTool := tool.NewBooking(opts.Scheduler)
	tools := map[string]tool.Tool{
		tool.NameRAG:       tool.NewRAG(orchestrator, opts.TopK),
		tool.NameSentiment: tool.NewSentiment(opts.Analyzer, sentiment.NewLexicon()),
		tool.NameBooking:   bookingTool,
	}

	ag := agent.New(tools, func(o *agent.Options) {
		o.Taxonomy = opts.Taxonomy
		o.Logger = opts.Logger
	})

	return &Showroom{
		agent:    ag,
		sessions: session.NewInMemoryStore(),
		booking:  bookingTool,
		opts:     opts,
	}
}

// Process runs one conversation turn for the given session. Sessions are
// created lazily on first use; turns for the same session are serialized.
func (s *Showroom) Process(ctx context.Context, sessionID, utterance string) agent.Turn {
	var turn agent.Turn
	_ = s.sessions.WithSession(sessionID, func(sess *agent.Session) error {
		turn = s.agent.Process(ctx, sess, utterance)
		return nil
	})
	return turn
}

// Analytics returns the read-only performance snapshot for a session.
func (s *Showroom) Analytics(sessionID string) agent.Analytics {
	return s.sessions.Snapshot(sessionID)
}

// Reset clears a session's conversation history, keeping action memory.
func (s *Showroom) Reset(sessionID string) {
	_ = s.sessions.WithSession(sessionID, func(sess *agent.Session) error {
		sess.Reset()
		return nil
	})
}

// Booking exposes the booking tool for callers that render the booking UI
// themselves (the agent's booking-family responses are intentionally empty).
func (s *Showroom) Booking() *tool.Booking {
	return s.booking
}

// Sessions lists the known session identifiers.
func (s *Showroom) Sessions() []string {
	return s.sessions.IDs()
}
