package agent

import (
	"strings"
	"time"

	"github.com/dealerdesk/showroom/taxonomy"
)

// IntentResult is the outcome of keyword-based intent classification.
type IntentResult struct {
	Type       string             `json:"type"`
	Confidence float64            `json:"confidence"`
	AllScores  map[string]float64 `json:"all_scores,omitempty"`
}

// ReasoningRecord is the immutable trace produced by the reason phase. It is
// appended to the conversation history and drives the dispatch table.
type ReasoningRecord struct {
	Thought     string       `json:"thought"`
	Action      Action       `json:"action"`
	Confidence  float64      `json:"confidence"`
	Intent      IntentResult `json:"intent"`
	UserHistory UserContext  `json:"user_history"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Engine performs the reason phase: classify the utterance against the
// intent taxonomy and plan an action. Stateless; history is read through the
// session passed to Reason.
type Engine struct {
	tax *taxonomy.Taxonomy
}

// NewEngine builds a reasoning engine over the given taxonomy.
func NewEngine(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{tax: tax}
}

// ClassifyIntent scores every intent by keyword hits divided by priority and
// picks the best. Ties break by taxonomy order, first intent wins, so the
// result is reproducible. With no hits at all the utterance falls back to
// the general query intent at confidence 0.5.
func (e *Engine) ClassifyIntent(utterance string) IntentResult {
	lower := strings.ToLower(utterance)

	scores := map[string]float64{}
	best := 0.0
	bestIntent := ""
	for _, spec := range e.tax.Intents {
		hits := 0
		for _, kw := range spec.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(spec.Priority)
		scores[spec.Name] = score
		if score > best {
			best = score
			bestIntent = spec.Name
		}
	}

	if bestIntent == "" {
		return IntentResult{Type: taxonomy.IntentGeneralQuery, Confidence: 0.5}
	}
	return IntentResult{
		Type:       bestIntent,
		Confidence: min(best*0.3+0.4, 0.95),
		AllScores:  scores,
	}
}

// Reason runs the full reason phase for one turn.
func (e *Engine) Reason(utterance string, history UserContext) ReasoningRecord {
	intent := e.ClassifyIntent(utterance)
	p := planFor(intent.Type)
	return ReasoningRecord{
		Thought:     p.thought,
		Action:      p.action,
		Confidence:  intent.Confidence,
		Intent:      intent,
		UserHistory: history,
		Timestamp:   time.Now(),
	}
}
