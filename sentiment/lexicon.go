package sentiment

import (
	"context"
	"strings"
)

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "love", "perfect",
	"wonderful", "fantastic", "awesome", "best", "happy", "pleased",
	"satisfied", "interested", "excited", "eager",
}

var negativeWords = []string{
	"bad", "poor", "terrible", "worst", "hate", "awful",
	"disappointing", "disappointed", "angry", "frustrated", "unhappy",
	"unsatisfied", "problem", "issue", "concern", "expensive",
}

// Lexicon is a keyword-count analyzer. It needs no network access, making it
// the default backend and the fallback when an LLM provider fails.
type Lexicon struct{}

// NewLexicon constructs the keyword analyzer.
func NewLexicon() *Lexicon { return &Lexicon{} }

// Analyze counts positive and negative keyword hits; the larger side wins
// with a score that grows with the margin, capped at 0.95. Never errors.
func (l *Lexicon) Analyze(_ context.Context, text string) (Result, error) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return Result{Label: LabelNeutral, Score: 0.5, Confidence: "low", Emoji: EmojiFor(LabelNeutral), Text: text}, nil
	}

	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	label := LabelNeutral
	score := 0.5
	switch {
	case pos > neg:
		label = LabelPositive
		score = min(0.6+float64(pos)*0.1, 0.95)
	case neg > pos:
		label = LabelNegative
		score = min(0.6+float64(neg)*0.1, 0.95)
	}

	confidence := "low"
	if abs(pos-neg) > 1 {
		confidence = "medium"
	}

	return Result{Label: label, Score: score, Confidence: confidence, Emoji: EmojiFor(label), Text: text}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
