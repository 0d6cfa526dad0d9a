package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/query"
)

func fp(v float64) *float64 { return &v }

func TestScoreBrandModelYearBudget(t *testing.T) {
	v := inventory.Vehicle{
		Make: "Toyota", Model: "Camry", Year: 2024, Price: 85000,
	}
	intent := query.SearchIntent{
		Type: query.TypeBudgetSearch,
		Parameters: query.Parameters{
			Brand: "Toyota", Model: "Camry", Year: 2024, MaxBudget: fp(100000),
		},
	}

	// 0.5 base + 0.3 brand + 0.25 model + 0.1 year + 0.1 under budget,
	// clipped to 1.0.
	score := Score(v, intent, "show me toyota camry 2024 under 100k")
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScoreOverBudgetPenalty(t *testing.T) {
	v := inventory.Vehicle{Make: "Bmw", Model: "X5", Year: 2023, Price: 350000}
	intent := query.SearchIntent{
		Parameters: query.Parameters{MaxBudget: fp(100000)},
	}

	// 0.5 base - 0.2 over budget.
	score := Score(v, intent, "anything under 100k")
	assert.InDelta(t, 0.3, score, 0.001)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	vehicles := []inventory.Vehicle{
		{Make: "Toyota", Model: "Camry", Year: 2024, Price: 85000,
			Features: []string{"Turbo", "Spacious Interior", "Leather Seats"}},
		{Make: "Honda", Model: "Accord", Year: 2020, Price: 500000},
		{},
	}
	intents := []query.SearchIntent{
		{},
		{Parameters: query.Parameters{Brand: "Toyota", Model: "Camry", Year: 2024,
			MinBudget: fp(0), MaxBudget: fp(1000000)},
			Features: []string{"turbo", "family", "comfort", "luxury"}},
		{Parameters: query.Parameters{MaxBudget: fp(1)}},
	}

	for _, v := range vehicles {
		for _, intent := range intents {
			score := Score(v, intent, "toyota camry turbo spacious family car")
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestScoreAllSortsDescending(t *testing.T) {
	vehicles := []inventory.Vehicle{
		{ID: "V1", Make: "Kia", Model: "Sportage", Price: 90000},
		{ID: "V2", Make: "Toyota", Model: "Camry", Price: 85000},
	}
	intent := query.SearchIntent{Parameters: query.Parameters{Brand: "Toyota", Model: "Camry"}}

	scored := ScoreAll(vehicles, intent, "toyota camry")

	require.Len(t, scored, 2)
	assert.Equal(t, "V2", scored[0].ID)
	assert.Greater(t, scored[0].RelevanceScore, scored[1].RelevanceScore)
}

func TestScoreAllStableOnTies(t *testing.T) {
	// Identical records except ID score identically; arrival order must
	// survive the sort.
	vehicles := []inventory.Vehicle{
		{ID: "A", Make: "Nissan", Model: "Altima", Price: 80000},
		{ID: "B", Make: "Nissan", Model: "Altima", Price: 80000},
		{ID: "C", Make: "Nissan", Model: "Altima", Price: 80000},
	}

	scored := ScoreAll(vehicles, query.SearchIntent{}, "nissan altima")

	require.Len(t, scored, 3)
	assert.Equal(t, scored[0].RelevanceScore, scored[1].RelevanceScore)
	assert.Equal(t, []string{"A", "B", "C"},
		[]string{scored[0].ID, scored[1].ID, scored[2].ID})
}

func TestScoreFeatureCapAtPointThree(t *testing.T) {
	v := inventory.Vehicle{
		Make: "Generic", Model: "Car",
		Features: []string{"turbo", "hybrid", "sunroof", "navigation", "leather"},
	}
	intent := query.SearchIntent{
		Features: []string{"turbo", "hybrid", "sunroof", "navigation"},
	}

	// 0.5 base + capped 0.3 feature bonus; the raw query shares no words
	// with the feature strings.
	score := Score(v, intent, "zzz")
	assert.InDelta(t, 0.8, score, 0.001)
}
