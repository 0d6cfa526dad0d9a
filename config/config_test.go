package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverMemory, cfg.InventoryDriver)
	assert.Equal(t, ProviderLexicon, cfg.SentimentProvider)
	assert.Equal(t, 5, cfg.TopK)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().TopK, cfg.TopK)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"top_k: 10\ninventory_driver: sqlite\nluxury_price_floor: 250000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, DriverSQLite, cfg.InventoryDriver)
	assert.InDelta(t, 250000, cfg.LuxuryPriceFloor, 0.001)
	// Untouched keys keep defaults.
	assert.Equal(t, Default().FetchLimit, cfg.FetchLimit)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_k: 10\n"), 0o644))
	t.Setenv("SHOWROOM_TOP_K", "7")
	t.Setenv("SHOWROOM_SENTIMENT_PROVIDER", "openai")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopK)
	assert.Equal(t, ProviderOpenAI, cfg.SentimentProvider)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad driver", func(c *Config) { c.InventoryDriver = "postgres" }},
		{"bad provider", func(c *Config) { c.SentimentProvider = "tarot" }},
		{"zero top_k", func(c *Config) { c.TopK = 0 }},
		{"zero fetch_limit", func(c *Config) { c.FetchLimit = 0 }},
		{"zero slot_capacity", func(c *Config) { c.SlotCapacity = 0 }},
		{"negative luxury floor", func(c *Config) { c.LuxuryPriceFloor = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestTaxonomyPolicyKnobs(t *testing.T) {
	cfg := Default()
	cfg.LuxuryPriceFloor = 300000
	cfg.SUVBrands = []string{"kia"}

	tax, err := cfg.Taxonomy()
	require.NoError(t, err)
	assert.InDelta(t, 300000, tax.LuxuryPriceFloor, 0.001)
	assert.Equal(t, []string{"kia"}, tax.SUVBrands)
	// The keyword tables themselves stay built-in.
	assert.NotEmpty(t, tax.Intents)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.TopK = 9
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.TopK)
}

func TestAPIKeyEnvVar(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", APIKeyEnvVar(ProviderOpenAI))
	assert.Equal(t, "ANTHROPIC_API_KEY", APIKeyEnvVar(ProviderAnthropic))
	assert.Empty(t, APIKeyEnvVar(ProviderLexicon))
}
