package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconPositive(t *testing.T) {
	result, err := NewLexicon().Analyze(context.Background(), "I love this car, it's amazing!")

	require.NoError(t, err)
	assert.Equal(t, LabelPositive, result.Label)
	assert.Greater(t, result.Score, 0.5)
	assert.Equal(t, "😊", result.Emoji)
}

func TestLexiconNegative(t *testing.T) {
	result, err := NewLexicon().Analyze(context.Background(), "terrible service, I am very disappointed")

	require.NoError(t, err)
	assert.Equal(t, LabelNegative, result.Label)
	assert.Greater(t, result.Score, 0.5)
	assert.Equal(t, "😟", result.Emoji)
}

func TestLexiconNeutral(t *testing.T) {
	result, err := NewLexicon().Analyze(context.Background(), "I am looking at cars today")

	require.NoError(t, err)
	assert.Equal(t, LabelNeutral, result.Label)
	assert.InDelta(t, 0.5, result.Score, 0.001)
}

func TestLexiconEmptyInput(t *testing.T) {
	result, err := NewLexicon().Analyze(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, LabelNeutral, result.Label)
	assert.Equal(t, "low", result.Confidence)
}

func TestLexiconScoreCap(t *testing.T) {
	text := "good great excellent amazing love perfect wonderful fantastic awesome best"
	result, err := NewLexicon().Analyze(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, LabelPositive, result.Label)
	assert.InDelta(t, 0.95, result.Score, 0.001)
	assert.Equal(t, "medium", result.Confidence)
}

func TestConfidenceFor(t *testing.T) {
	assert.Equal(t, "very high", ConfidenceFor(0.95))
	assert.Equal(t, "high", ConfidenceFor(0.8))
	assert.Equal(t, "medium", ConfidenceFor(0.65))
	assert.Equal(t, "low", ConfidenceFor(0.3))
}
