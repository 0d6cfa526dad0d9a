// Package anthropic provides a sentiment.Analyzer backed by the Anthropic
// Messages API, mirroring the openai adapter's "LABEL SCORE" protocol.
package anthropic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dealerdesk/showroom/sentiment"
)

const systemPrompt = "You are a sentiment classifier for a car dealership assistant. " +
	"Classify the customer message and respond with exactly one line in the form " +
	"'LABEL SCORE' where LABEL is POSITIVE, NEGATIVE or NEUTRAL and SCORE is a " +
	"number between 0 and 1 expressing your confidence. No other text."

// Options configure the Anthropic sentiment adapter.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Analyzer wraps the Anthropic Messages API behind sentiment.Analyzer.
type Analyzer struct {
	client *anthropic.Client
	opts   Options
}

// NewAnalyzer creates an analyzer using the official client.
func NewAnalyzer(optFns ...func(o *Options)) *Analyzer {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0,
		MaxTokens:   16,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Analyzer{client: &client, opts: opts}
}

// NewAnalyzerFromClient creates an analyzer from an existing client.
func NewAnalyzerFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Analyzer {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0,
		MaxTokens:   16,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Analyzer{client: client, opts: opts}
}

// Analyze classifies the text. API or parse failures surface as errors so
// the caller can fall back to the lexicon analyzer.
func (a *Analyzer) Analyze(ctx context.Context, text string) (sentiment.Result, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return sentiment.Result{}, fmt.Errorf("anthropic api error: %w", err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.AsText().Text)
		}
	}
	return parseVerdict(content.String(), text)
}

func parseVerdict(content, text string) (sentiment.Result, error) {
	fields := strings.Fields(strings.TrimSpace(content))
	if len(fields) == 0 {
		return sentiment.Result{}, fmt.Errorf("empty sentiment verdict")
	}

	label := strings.ToUpper(strings.Trim(fields[0], ".,"))
	switch label {
	case sentiment.LabelPositive, sentiment.LabelNegative, sentiment.LabelNeutral:
	default:
		return sentiment.Result{}, fmt.Errorf("unrecognized sentiment label %q", fields[0])
	}

	score := 0.5
	if len(fields) > 1 {
		if parsed, err := strconv.ParseFloat(fields[1], 64); err == nil {
			score = min(max(parsed, 0), 1)
		}
	}

	return sentiment.Result{
		Label:      label,
		Score:      score,
		Confidence: sentiment.ConfidenceFor(score),
		Emoji:      sentiment.EmojiFor(label),
		Text:       text,
	}, nil
}
