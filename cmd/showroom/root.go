package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/dealerdesk/showroom"
	"github.com/dealerdesk/showroom/booking"
	"github.com/dealerdesk/showroom/config"
	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/inventory/sqlite"
	"github.com/dealerdesk/showroom/logging"
	"github.com/dealerdesk/showroom/sentiment"
	sentimentanthropic "github.com/dealerdesk/showroom/sentiment/anthropic"
	sentimentopenai "github.com/dealerdesk/showroom/sentiment/openai"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "showroom",
		Short: "Conversational car dealership sales assistant",
		Long: "Showroom runs a reason-act-observe-learn sales assistant over a vehicle\n" +
			"inventory: search, test drive booking, sentiment-aware replies and\n" +
			"per-session performance analytics.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "showroom.yaml", "path to config file")

	rootCmd.AddCommand(newChatCmd(&cfgPath))
	rootCmd.AddCommand(newServeCmd(&cfgPath))

	return rootCmd
}

// buildShowroom assembles the façade from configuration: storage driver,
// sentiment provider, booking scheduler and logger.
func buildShowroom(cfg *config.Config) (*showroom.Showroom, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)

	tax, err := cfg.Taxonomy()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var store inventory.Store
	switch cfg.InventoryDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.InventoryPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening inventory db: %w", err)
		}
		if n, err := db.Count(context.Background()); err == nil && n == 0 {
			if err := db.Seed(inventory.SampleInventory()); err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("seeding inventory db: %w", err)
			}
		}
		store = db
		cleanup = func() { _ = db.Close() }
	default:
		store = inventory.NewMemoryStore(inventory.SampleInventory())
	}

	var analyzer sentiment.Analyzer
	switch cfg.SentimentProvider {
	case config.ProviderOpenAI:
		analyzer = sentimentopenai.NewAnalyzer(func(o *sentimentopenai.Options) {
			if cfg.SentimentModel != "" {
				o.Model = cfg.SentimentModel
			}
		})
	case config.ProviderAnthropic:
		analyzer = sentimentanthropic.NewAnalyzer(func(o *sentimentanthropic.Options) {
			o.APIKey = os.Getenv(config.APIKeyEnvVar(config.ProviderAnthropic))
			if cfg.SentimentModel != "" {
				o.Model = anthropic.Model(cfg.SentimentModel)
			}
		})
	default:
		analyzer = sentiment.NewLexicon()
	}

	sr := showroom.New(func(o *showroom.Options) {
		o.Store = store
		o.Analyzer = analyzer
		o.Scheduler = booking.NewInMemoryScheduler(cfg.SlotCapacity)
		o.Taxonomy = tax
		o.Logger = logger
		o.TopK = cfg.TopK
		o.FetchLimit = cfg.FetchLimit
	})
	return sr, cleanup, nil
}
