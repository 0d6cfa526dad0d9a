// Package openai provides a sentiment.Analyzer backed by the OpenAI Chat
// Completions API. The model is prompted to emit a single "LABEL SCORE"
// line which is parsed into the shared result shape.
package openai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openai/openai-go"

	"github.com/dealerdesk/showroom/sentiment"
)

const systemPrompt = "You are a sentiment classifier for a car dealership assistant. " +
	"Classify the customer message and respond with exactly one line in the form " +
	"'LABEL SCORE' where LABEL is POSITIVE, NEGATIVE or NEUTRAL and SCORE is a " +
	"number between 0 and 1 expressing your confidence. No other text."

// Options configure the OpenAI sentiment adapter.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Analyzer wraps the OpenAI Chat Completions API behind sentiment.Analyzer.
type Analyzer struct {
	client *openai.Client
	opts   Options
}

// NewAnalyzer creates an analyzer using the official client (API key taken
// from the environment by the SDK).
func NewAnalyzer(optFns ...func(o *Options)) *Analyzer {
	client := openai.NewClient()
	return NewAnalyzerFromClient(&client, optFns...)
}

// NewAnalyzerFromClient creates an analyzer from an existing client.
func NewAnalyzerFromClient(client *openai.Client, optFns ...func(o *Options)) *Analyzer {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
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
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Temperature:         openai.Float(a.opts.Temperature),
		MaxCompletionTokens: openai.Int(a.opts.MaxTokens),
	})
	if err != nil {
		return sentiment.Result{}, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return sentiment.Result{}, fmt.Errorf("no choices returned")
	}
	return parseVerdict(resp.Choices[0].Message.Content, text)
}

// parseVerdict interprets a "LABEL SCORE" line; a missing score defaults to
// 0.5 rather than failing the whole classification.
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
