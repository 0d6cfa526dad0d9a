package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tax := Default()

	require.NotEmpty(t, tax.Intents)
	for _, spec := range tax.Intents {
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.Keywords, spec.Name)
		assert.GreaterOrEqual(t, spec.Priority, 1, spec.Name)
	}

	// Body-style precedence is encoded in slice order.
	require.Len(t, tax.VehicleTypes, 3)
	assert.Equal(t, "suv", tax.VehicleTypes[0].Name)
	assert.Equal(t, "sedan", tax.VehicleTypes[1].Name)
	assert.Equal(t, "truck", tax.VehicleTypes[2].Name)

	assert.Greater(t, tax.LuxuryPriceFloor, 0.0)
	assert.NotEmpty(t, tax.SUVBrands)
}

func TestIntentLookup(t *testing.T) {
	tax := Default()

	spec := tax.Intent(IntentCancelBooking)
	require.NotNil(t, spec)
	assert.Equal(t, 1, spec.Priority)

	assert.Nil(t, tax.Intent("no_such_intent"))
}

func TestFeatureNamesCoverTable(t *testing.T) {
	tax := Default()
	names := tax.FeatureNames()

	assert.Len(t, names, len(tax.Features))
	assert.Contains(t, names, "luxury")
	assert.Contains(t, names, "4wd")
}

func TestBrandAliasesAreLowercase(t *testing.T) {
	// Alias matching happens on lowercased text; the table must agree.
	for brand, aliases := range Default().Brands {
		for _, a := range aliases {
			assert.Equal(t, a, strings.ToLower(a), "alias %q of %s", a, brand)
		}
	}
}
