// Package search orchestrates the text-to-filter-to-ranked-list pipeline:
// it interprets the raw query, builds a conjunctive storage filter, fetches
// candidates ordered by price, re-ranks them by relevance and packages the
// outcome into a result envelope. Storage failures degrade to an empty
// result with an explicit "temporarily unavailable" message; the orchestrator
// never fabricates records.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/logging"
	"github.com/dealerdesk/showroom/query"
	"github.com/dealerdesk/showroom/rank"
	"github.com/dealerdesk/showroom/taxonomy"
)

// Result envelope search types.
const (
	TypeDirectQuery = "direct_query"
	TypeFAQ         = "faq"
	TypeError       = "error"
	TypeGeneralHelp = "general_help"
)

// MsgUnavailable is the user-facing message for storage-layer failures.
// Deliberately distinct from the zero-match message so callers (and tests)
// can tell "store down" apart from "nothing matched".
const MsgUnavailable = "Search temporarily unavailable. Please try again in a moment."

// Result is the envelope returned for every search, successful or degraded.
type Result struct {
	Vehicles   []rank.ScoredVehicle `json:"vehicles"`
	Count      int                  `json:"count"`
	Message    string               `json:"message"`
	SearchType string               `json:"search_type"`
	Category   string               `json:"category,omitempty"`
	Intent     query.SearchIntent   `json:"intent"`
}

// Options configures the search Orchestrator.
type Options struct {
	// Taxonomy drives query interpretation and the policy knobs
	// (luxury price floor, SUV brand heuristic). Nil selects the default.
	Taxonomy *taxonomy.Taxonomy
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
	// FetchLimit caps how many candidates are pulled from storage before
	// re-ranking. Defaults to 100.
	FetchLimit int
	// TopK is the default page size after ranking. Defaults to 20.
	TopK int
}

// Orchestrator coordinates interpreter, storage and ranker.
type Orchestrator struct {
	store  inventory.Store
	interp *query.Interpreter
	tax    *taxonomy.Taxonomy
	logger logging.Logger
	faq    []faqEntry

	fetchLimit int
	topK       int
}

// New builds an Orchestrator over the given store.
func New(store inventory.Store, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Taxonomy:   taxonomy.Default(),
		Logger:     logging.NoOpLogger{},
		FetchLimit: 100,
		TopK:       20,
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
	return &Orchestrator{
		store:      store,
		interp:     query.NewInterpreter(opts.Taxonomy),
		tax:        opts.Taxonomy,
		logger:     opts.Logger,
		faq:        buildFAQKnowledge(),
		fetchLimit: opts.FetchLimit,
		topK:       opts.TopK,
	}
}

// Search runs the full pipeline for one raw query. topK <= 0 selects the
// configured default page size.
func (o *Orchestrator) Search(ctx context.Context, rawQuery string, topK int) Result {
	start := time.Now()
	if topK <= 0 {
		topK = o.topK
	}

	if faq := o.checkFAQ(rawQuery); faq != nil {
		o.logger.Debug("search.faq_hit", "category", faq.Category)
		return *faq
	}

	intent := o.interp.Interpret(rawQuery)
	filter := o.BuildFilter(intent)

	candidates, err := o.store.FetchVehicles(ctx, filter, o.fetchLimit)
	if err != nil {
		if errors.Is(err, inventory.ErrUnavailable) {
			o.logger.Warn("search.store_unavailable", "error", err.Error())
			return Result{
				Vehicles:   []rank.ScoredVehicle{},
				Message:    MsgUnavailable,
				SearchType: TypeError,
				Intent:     intent,
			}
		}
		o.logger.Error("search.store_error", "error", err.Error())
		return Result{
			Vehicles:   []rank.ScoredVehicle{},
			Message:    fmt.Sprintf("Search error: %v", err),
			SearchType: TypeError,
			Intent:     intent,
		}
	}

	scored := rank.ScoreAll(candidates, intent, rawQuery)
	if len(scored) > topK {
		scored = scored[:topK]
	}

	result := Result{
		Vehicles:   scored,
		Count:      len(scored),
		SearchType: TypeDirectQuery,
		Intent:     intent,
	}
	if len(scored) == 0 {
		result.Message = fmt.Sprintf(
			"No vehicles found for '%s'. Try broader terms, a different price range, or check spelling.", rawQuery)
	} else {
		result.Message = fmt.Sprintf("Good news! Found %d vehicle(s) for '%s'", len(scored), rawQuery)
	}

	if sl, ok := o.logger.(*logging.ShowroomLogger); ok {
		sl.LogSearch(rawQuery, len(scored), time.Since(start))
	} else {
		o.logger.Info("search.completed", "query", rawQuery, "results", len(scored))
	}
	return result
}

// GeneralQuery answers non-search utterances that still land on the search
// tool: FAQ hits first, then an opportunistic search when the text carries
// search verbs, otherwise a short help message.
func (o *Orchestrator) GeneralQuery(ctx context.Context, rawQuery string) Result {
	if faq := o.checkFAQ(rawQuery); faq != nil {
		return *faq
	}

	lower := strings.ToLower(rawQuery)
	for _, w := range []string{"show", "find", "looking", "want", "search"} {
		if strings.Contains(lower, w) {
			return o.Search(ctx, rawQuery, 5)
		}
	}

	return Result{
		Message: "I can help you search for vehicles!\n" +
			"Try: 'Show me Toyota Camry 2025' or 'luxury SUV under 300k' or 'family car with turbo'",
		SearchType: TypeGeneralHelp,
	}
}

// BuildFilter converts a SearchIntent into the conjunctive storage filter.
// Feature tags OR together inside their single clause; the luxury tag maps
// to the configured price floor instead, and only when the query carried no
// explicit price bound.
func (o *Orchestrator) BuildFilter(intent query.SearchIntent) inventory.Filter {
	p := intent.Parameters
	f := inventory.Filter{
		Brand:       p.Brand,
		Model:       p.Model,
		Year:        p.Year,
		MinPrice:    p.MinBudget,
		MaxPrice:    p.MaxBudget,
		VehicleType: p.VehicleType,
		FeatureTags: intent.Features,
		SUVBrands:   o.tax.SUVBrands,
	}
	if intent.HasFeature("luxury") && !intent.HasPriceBound() {
		floor := o.tax.LuxuryPriceFloor
		f.LuxuryFloor = &floor
	}
	return f
}
