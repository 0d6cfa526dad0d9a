package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/rank"
	"github.com/dealerdesk/showroom/search"
	"github.com/dealerdesk/showroom/sentiment"
	"github.com/dealerdesk/showroom/taxonomy"
	"github.com/dealerdesk/showroom/tool"
)

func newTestAgent() *Agent {
	orchestrator := search.New(inventory.NewMemoryStore(inventory.SampleInventory()))
	tools := map[string]tool.Tool{
		tool.NameRAG:       tool.NewRAG(orchestrator, 5),
		tool.NameSentiment: tool.NewSentiment(sentiment.NewLexicon(), nil),
	}
	return New(tools)
}

type failingStore struct{}

func (failingStore) FetchVehicles(context.Context, inventory.Filter, int) ([]inventory.Vehicle, error) {
	return nil, fmt.Errorf("%w: timeout", inventory.ErrUnavailable)
}

// panicTool triggers the dispatcher's panic guard.
type panicTool struct{}

func (panicTool) Name() string        { return tool.NameRAG }
func (panicTool) Description() string { return "boom" }
func (panicTool) Call(context.Context, string) (any, error) {
	panic("kaboom")
}

func TestProcessVehicleSearchScenario(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	turn := ag.Process(context.Background(), sess, "Show me Toyota Camry under 100k")

	assert.Equal(t, taxonomy.IntentVehicleSearch, turn.Intent.Type)
	assert.Equal(t, ActionVehicleSearch, turn.Reasoning.Action)
	assert.Equal(t, StatusSuccess, turn.ActionResult.Status)

	result, ok := turn.ActionResult.Data.(search.Result)
	require.True(t, ok)
	require.NotEmpty(t, result.Vehicles)
	for _, v := range result.Vehicles {
		assert.LessOrEqual(t, v.Price, 100000.0)
	}
	assert.Contains(t, turn.Response, "Toyota")
}

func TestProcessSentimentScenario(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	turn := ag.Process(context.Background(), sess, "I love this car!")

	assert.Equal(t, taxonomy.IntentSentimentExpression, turn.Intent.Type)
	assert.Equal(t, ActionAnalyzeSentiment, turn.Reasoning.Action)
	assert.Contains(t, turn.Response, "wonderful")
	assert.Equal(t, QualityGood, turn.Observation.Quality)
}

func TestProcessRepeatedSearchesBuildMemory(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	for i := 0; i < 5; i++ {
		ag.Process(context.Background(), sess, "Show me Toyota Camry under 100k")
	}

	mem := sess.Memory[ActionVehicleSearch]
	require.NotNil(t, mem)
	assert.Equal(t, 5, mem.Count)
	assert.Equal(t, 5, mem.Successes)
	assert.Zero(t, mem.Failures)
	assert.InDelta(t, 1.0, mem.SuccessRate, 0.0001)
}

func TestProcessStorageOutageDegrades(t *testing.T) {
	orchestrator := search.New(failingStore{})
	ag := New(map[string]tool.Tool{tool.NameRAG: tool.NewRAG(orchestrator, 5)})
	sess := NewSession("s1")

	turn := ag.Process(context.Background(), sess, "show me a toyota suv")

	// Degraded, not failed: the user sees the "try again" message, the
	// observation flags refinement, and no vehicle data is fabricated.
	assert.Equal(t, StatusSuccess, turn.ActionResult.Status)
	assert.Equal(t, search.MsgUnavailable, turn.Response)
	assert.True(t, turn.Observation.NeedsRefinement)
	assert.NotContains(t, turn.Response, "AED")
}

func TestProcessBookingFamilyEmptyResponse(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	turn := ag.Process(context.Background(), sess, "I want to book a test drive")

	assert.Equal(t, ActionTestDriveBooking, turn.Reasoning.Action)
	assert.Empty(t, turn.Response)
	assert.Equal(t, QualityGood, turn.Observation.Quality)
}

func TestProcessToolPanicIsContained(t *testing.T) {
	ag := New(map[string]tool.Tool{tool.NameRAG: panicTool{}})
	sess := NewSession("s1")

	turn := ag.Process(context.Background(), sess, "show me toyota")

	assert.Equal(t, StatusError, turn.ActionResult.Status)
	assert.Equal(t, QualityError, turn.Observation.Quality)
	assert.True(t, turn.Observation.NeedsRefinement)
	assert.Contains(t, turn.Response, "I encountered an issue")
}

func TestIncrementalMeanMatchesBatchMean(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	// Different hit counts produce different confidences for the same
	// action, which is what the running mean has to track.
	queries := []string{
		"find something",
		"show me a luxury suv",
		"find an electric sedan",
		"show me suv",
	}
	for _, q := range queries {
		ag.Process(context.Background(), sess, q)
	}

	mem := sess.Memory[ActionVehicleSearch]
	require.NotNil(t, mem)
	require.Equal(t, len(queries), mem.Count)

	sum := 0.0
	for _, h := range sess.History {
		sum += h.Reasoning.Confidence
	}
	assert.InDelta(t, sum/float64(len(queries)), mem.AvgConfidence, 1e-9)
}

func TestSuccessRateInvariantHolds(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	// Mix of hits and zero-result searches.
	queries := []string{
		"Show me Toyota Camry under 100k",
		"show me a porsche under 2k",
		"find a luxury suv",
		"show me jaguar sedans under 1k",
	}
	for _, q := range queries {
		ag.Process(context.Background(), sess, q)
		for _, mem := range sess.Memory {
			assert.Equal(t, mem.Count, mem.Successes+mem.Failures)
			assert.InDelta(t, float64(mem.Successes)/float64(mem.Count), mem.SuccessRate, 1e-9)
		}
	}
}

func TestFeedbackLogCap(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	for i := 0; i < feedbackCap+20; i++ {
		ag.Process(context.Background(), sess, "show me toyota")
	}

	assert.Len(t, sess.Feedback, feedbackCap)
	assert.Len(t, sess.History, feedbackCap+20)
}

func TestAnalyticsSnapshot(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")

	ag.Process(context.Background(), sess, "Show me Toyota Camry under 100k")
	ag.Process(context.Background(), sess, "I love this car!")

	a := sess.Snapshot()
	assert.Equal(t, 2, a.TotalInteractions)
	assert.InDelta(t, 1.0, a.OverallSuccess, 0.0001)
	assert.InDelta(t, 1.0, a.RecentSuccess, 0.0001)
	assert.Greater(t, a.AvgConfidence, 0.0)
	assert.Contains(t, a.ActionStatistics, ActionVehicleSearch)
	assert.Contains(t, a.ActionStatistics, ActionAnalyzeSentiment)
}

func TestSnapshotEmptySession(t *testing.T) {
	a := NewSession("s1").Snapshot()
	assert.Zero(t, a.TotalInteractions)
	assert.Zero(t, a.OverallSuccess)
}

func TestResetKeepsLongTermMemory(t *testing.T) {
	ag := newTestAgent()
	sess := NewSession("s1")
	ag.Process(context.Background(), sess, "show me toyota")

	sess.Reset()
	assert.Empty(t, sess.History)
	assert.NotEmpty(t, sess.Memory)

	sess.FullReset()
	assert.Empty(t, sess.Memory)
	assert.Empty(t, sess.Feedback)
}

func TestClassifyIntentDeterministicTieBreak(t *testing.T) {
	engine := NewEngine(nil)

	// "show" (vehicle search) and "under" (budget query) both score 0.5;
	// taxonomy order decides, reproducibly.
	for i := 0; i < 10; i++ {
		intent := engine.ClassifyIntent("show me something under 100k")
		assert.Equal(t, taxonomy.IntentVehicleSearch, intent.Type)
	}
}

func TestClassifyIntentConfidenceFormula(t *testing.T) {
	engine := NewEngine(nil)

	// Single priority-1 hit: score 1.0, confidence 1.0*0.3+0.4.
	intent := engine.ClassifyIntent("cancel please")
	assert.Equal(t, taxonomy.IntentCancelBooking, intent.Type)
	assert.InDelta(t, 0.7, intent.Confidence, 0.0001)

	// No hits at all falls back to the general intent.
	intent = engine.ClassifyIntent("xyzzy")
	assert.Equal(t, taxonomy.IntentGeneralQuery, intent.Type)
	assert.InDelta(t, 0.5, intent.Confidence, 0.0001)
}

func TestObserveDecisionTable(t *testing.T) {
	many := search.Result{SearchType: search.TypeDirectQuery}
	for i := 0; i < 5; i++ {
		many.Vehicles = append(many.Vehicles, rank.ScoredVehicle{})
	}
	few := search.Result{SearchType: search.TypeDirectQuery, Vehicles: many.Vehicles[:2]}
	none := search.Result{SearchType: search.TypeDirectQuery}

	tests := []struct {
		name    string
		result  ActionResult
		quality string
		refine  bool
	}{
		{"five results excellent",
			ActionResult{Status: StatusSuccess, Action: ActionVehicleSearch, Data: many},
			QualityExcellent, false},
		{"two results good",
			ActionResult{Status: StatusSuccess, Action: ActionVehicleSearch, Data: few},
			QualityGood, false},
		{"zero results poor",
			ActionResult{Status: StatusSuccess, Action: ActionVehicleSearch, Data: none},
			QualityPoor, true},
		{"sentiment always good",
			ActionResult{Status: StatusSuccess, Action: ActionAnalyzeSentiment,
				Data: sentiment.Result{Label: sentiment.LabelNegative}},
			QualityGood, false},
		{"booking always good",
			ActionResult{Status: StatusSuccess, Action: ActionCheckAvailability,
				Data: map[string]string{"message": "ok"}},
			QualityGood, false},
		{"message only adequate",
			ActionResult{Status: StatusSuccess, Action: ActionGeneralQuery,
				Data: map[string]string{"message": "hi"}},
			QualityAdequate, false},
		{"requires info pending",
			ActionResult{Status: StatusRequiresInfo, Action: ActionManageAppointment},
			QualityPending, false},
		{"error maps to error quality",
			ActionResult{Status: StatusError, Action: ActionVehicleSearch, Error: "boom"},
			QualityError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := Observe(tt.result)
			assert.Equal(t, tt.quality, obs.Quality)
			assert.Equal(t, tt.refine, obs.NeedsRefinement)
		})
	}
}
