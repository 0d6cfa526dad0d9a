package search

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/query"
)

// failingStore simulates an infrastructure outage.
type failingStore struct{}

func (failingStore) FetchVehicles(context.Context, inventory.Filter, int) ([]inventory.Vehicle, error) {
	return nil, fmt.Errorf("%w: connection refused", inventory.ErrUnavailable)
}

func newOrchestrator() *Orchestrator {
	return New(inventory.NewMemoryStore(inventory.SampleInventory()))
}

func TestSearchFindsBrandedVehicles(t *testing.T) {
	o := newOrchestrator()

	result := o.Search(context.Background(), "Show me Toyota Camry under 100k", 5)

	assert.Equal(t, TypeDirectQuery, result.SearchType)
	require.NotEmpty(t, result.Vehicles)
	for _, v := range result.Vehicles {
		assert.Equal(t, "Toyota", v.Make)
		assert.LessOrEqual(t, v.Price, 100000.0)
	}
	assert.Contains(t, result.Message, "Good news!")
}

func TestSearchNoMatches(t *testing.T) {
	o := newOrchestrator()

	result := o.Search(context.Background(), "porsche under 2k", 5)

	assert.Empty(t, result.Vehicles)
	assert.Zero(t, result.Count)
	assert.Contains(t, result.Message, "No vehicles found")
	assert.NotEqual(t, MsgUnavailable, result.Message)
}

func TestSearchStoreUnavailable(t *testing.T) {
	o := New(failingStore{})

	result := o.Search(context.Background(), "toyota", 5)

	// Degraded, never hallucinated, and distinct from the zero-match case.
	assert.Empty(t, result.Vehicles)
	assert.Equal(t, MsgUnavailable, result.Message)
	assert.Equal(t, TypeError, result.SearchType)
}

func TestSearchRespectsTopK(t *testing.T) {
	o := newOrchestrator()

	result := o.Search(context.Background(), "show me cars", 3)
	assert.LessOrEqual(t, len(result.Vehicles), 3)
}

func TestSearchFAQ(t *testing.T) {
	o := newOrchestrator()

	result := o.Search(context.Background(), "what warranty do you offer?", 5)

	assert.Equal(t, TypeFAQ, result.SearchType)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.Vehicles)
}

func TestGeneralQueryFallsBackToHelp(t *testing.T) {
	o := newOrchestrator()

	result := o.GeneralQuery(context.Background(), "hmm okay")

	assert.Equal(t, TypeGeneralHelp, result.SearchType)
	assert.Contains(t, result.Message, "help you search")
}

func TestGeneralQuerySearchVerbTriggersSearch(t *testing.T) {
	o := newOrchestrator()

	result := o.GeneralQuery(context.Background(), "show me toyota")

	assert.Equal(t, TypeDirectQuery, result.SearchType)
	assert.NotEmpty(t, result.Vehicles)
}

func TestBuildFilterLuxuryFloor(t *testing.T) {
	o := newOrchestrator()
	interp := query.NewInterpreter(nil)

	// Luxury without a price bound applies the configured floor.
	f := o.BuildFilter(interp.Interpret("luxury suv"))
	require.NotNil(t, f.LuxuryFloor)
	assert.InDelta(t, 200000, *f.LuxuryFloor, 0.001)

	// An explicit bound switches the floor off.
	f = o.BuildFilter(interp.Interpret("luxury suv under 300k"))
	assert.Nil(t, f.LuxuryFloor)
	require.NotNil(t, f.MaxPrice)
}

func TestLuxurySearchOnlyReturnsAboveFloor(t *testing.T) {
	o := newOrchestrator()

	result := o.Search(context.Background(), "luxury suv", 10)

	require.NotEmpty(t, result.Vehicles)
	for _, v := range result.Vehicles {
		assert.Greater(t, v.Price, 200000.0,
			"%s %s should clear the luxury floor", v.Make, v.Model)
	}
}

func TestSearchMessageMentionsQuery(t *testing.T) {
	o := newOrchestrator()

	q := "show me sedans"
	result := o.Search(context.Background(), q, 5)
	assert.True(t, strings.Contains(result.Message, q))
}
