// Package sentiment defines the sentiment analysis tool contract plus a
// dependency-free lexicon analyzer. LLM-backed implementations live in the
// openai and anthropic subpackages; all of them emit the same closed label
// set so the agent can template replies without caring about the backend.
package sentiment

import "context"

// Sentiment labels form a closed set.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Result is the outcome of analyzing one utterance.
type Result struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
	Emoji      string  `json:"emoji"`
	Text       string  `json:"text,omitempty"`
}

// Analyzer classifies the sentiment of a text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

// EmojiFor maps a label to its display emoji.
func EmojiFor(label string) string {
	switch label {
	case LabelPositive:
		return "😊"
	case LabelNegative:
		return "😟"
	default:
		return "😐"
	}
}

// ConfidenceFor buckets a numeric score into a coarse confidence label.
func ConfidenceFor(score float64) string {
	switch {
	case score >= 0.9:
		return "very high"
	case score >= 0.75:
		return "high"
	case score >= 0.6:
		return "medium"
	default:
		return "low"
	}
}
