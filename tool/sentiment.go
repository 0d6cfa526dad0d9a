package tool

import (
	"context"

	"github.com/dealerdesk/showroom/sentiment"
)

// Sentiment exposes a sentiment.Analyzer as an agent tool with an optional
// fallback analyzer. When the primary fails (provider outage, parse error)
// the fallback answers instead, so the tool itself only errors when both do.
type Sentiment struct {
	primary  sentiment.Analyzer
	fallback sentiment.Analyzer
}

// NewSentiment binds a primary analyzer and an optional fallback. A nil
// fallback means primary failures surface as tool errors.
func NewSentiment(primary, fallback sentiment.Analyzer) *Sentiment {
	return &Sentiment{primary: primary, fallback: fallback}
}

func (t *Sentiment) Name() string { return NameSentiment }

func (t *Sentiment) Description() string {
	return "Classifies the emotional tone of a customer message."
}

// Call analyzes the input text and returns a sentiment.Result.
func (t *Sentiment) Call(ctx context.Context, input string) (any, error) {
	result, err := t.primary.Analyze(ctx, input)
	if err == nil {
		return result, nil
	}
	if t.fallback != nil {
		if result, ferr := t.fallback.Analyze(ctx, input); ferr == nil {
			return result, nil
		}
	}
	return nil, NewToolError(NameSentiment, err.Error(), CodeUnavailable)
}
