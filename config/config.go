// Package config loads assistant configuration from YAML with environment
// variable overrides (SHOWROOM_*). Business-policy knobs that could have
// been hard-coded (luxury price floor, SUV brand heuristic, page sizes) are
// deliberately configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dealerdesk/showroom/taxonomy"
)

// Inventory driver values.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Sentiment provider values.
const (
	ProviderLexicon   = "lexicon"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is the full assistant configuration.
type Config struct {
	ListenAddr string `koanf:"listen_addr" yaml:"listen_addr"`

	LogLevel  string `koanf:"log_level" yaml:"log_level"`
	LogFormat string `koanf:"log_format" yaml:"log_format"`

	InventoryDriver string `koanf:"inventory_driver" yaml:"inventory_driver"`
	InventoryPath   string `koanf:"inventory_path" yaml:"inventory_path"`

	SentimentProvider string `koanf:"sentiment_provider" yaml:"sentiment_provider"`
	SentimentModel    string `koanf:"sentiment_model" yaml:"sentiment_model"`

	TopK       int `koanf:"top_k" yaml:"top_k"`
	FetchLimit int `koanf:"fetch_limit" yaml:"fetch_limit"`

	SlotCapacity int `koanf:"slot_capacity" yaml:"slot_capacity"`

	LuxuryPriceFloor float64  `koanf:"luxury_price_floor" yaml:"luxury_price_floor"`
	SUVBrands        []string `koanf:"suv_brands" yaml:"suv_brands"`

	// TaxonomyPath optionally points at a YAML file overriding the whole
	// built-in keyword taxonomy.
	TaxonomyPath string `koanf:"taxonomy_path" yaml:"taxonomy_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	tax := taxonomy.Default()
	return &Config{
		ListenAddr:        ":8080",
		LogLevel:          "info",
		LogFormat:         "text",
		InventoryDriver:   DriverMemory,
		InventoryPath:     "showroom.db",
		SentimentProvider: ProviderLexicon,
		TopK:              5,
		FetchLimit:        100,
		SlotCapacity:      3,
		LuxuryPriceFloor:  tax.LuxuryPriceFloor,
		SUVBrands:         tax.SUVBrands,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SHOWROOM_*). A missing file is not an
// error; defaults plus environment apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SHOWROOM_TOP_K -> top_k, SHOWROOM_LOG_LEVEL -> log_level, etc.
	if err := k.Load(env.Provider("SHOWROOM_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SHOWROOM_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validDrivers = map[string]bool{
	DriverMemory: true,
	DriverSQLite: true,
}

var validProviders = map[string]bool{
	ProviderLexicon:   true,
	ProviderOpenAI:    true,
	ProviderAnthropic: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validDrivers[c.InventoryDriver] {
		return fmt.Errorf("invalid inventory_driver %q: must be one of memory, sqlite", c.InventoryDriver)
	}
	if !validProviders[c.SentimentProvider] {
		return fmt.Errorf("invalid sentiment_provider %q: must be one of lexicon, openai, anthropic", c.SentimentProvider)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive")
	}
	if c.FetchLimit < 1 {
		return fmt.Errorf("fetch_limit must be positive")
	}
	if c.SlotCapacity < 1 {
		return fmt.Errorf("slot_capacity must be positive")
	}
	if c.LuxuryPriceFloor < 0 {
		return fmt.Errorf("luxury_price_floor must be non-negative")
	}
	return nil
}

// Taxonomy resolves the effective keyword taxonomy: the file at
// TaxonomyPath when set, otherwise the built-in default, with the policy
// knobs from this config applied on top.
func (c *Config) Taxonomy() (*taxonomy.Taxonomy, error) {
	tax := taxonomy.Default()
	if c.TaxonomyPath != "" {
		data, err := os.ReadFile(c.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("reading taxonomy %s: %w", c.TaxonomyPath, err)
		}
		if err := yamlv3.Unmarshal(data, tax); err != nil {
			return nil, fmt.Errorf("parsing taxonomy %s: %w", c.TaxonomyPath, err)
		}
	}
	if c.LuxuryPriceFloor > 0 {
		tax.LuxuryPriceFloor = c.LuxuryPriceFloor
	}
	if len(c.SUVBrands) > 0 {
		tax.SUVBrands = c.SUVBrands
	}
	return tax, nil
}

// APIKeyEnvVar returns the conventional environment variable name for the
// API key of the given sentiment provider.
func APIKeyEnvVar(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}
