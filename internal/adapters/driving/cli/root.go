// Package cli wires the services into cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/cache/sqlite"
	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/reference/wikipedia"
	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eli5-cli/internal/core/services"
	"github.com/custodia-labs/eli5-cli/internal/logger"
	"github.com/custodia-labs/eli5-cli/internal/normalisers/wikitext"
	"github.com/custodia-labs/eli5-cli/internal/readability/fleschkincaid"
)

// version is injected at build time via -ldflags.
var version = "dev"

// Command flags.
var (
	verbose bool
	dataDir string
)

// Services wired by initServices, shared by the commands.
var (
	explainService  driving.ExplainService
	settingsService driving.SettingsService
	summaryCache    driven.SummaryCache
	cacheStore      *sqlite.Store
	llmService      driven.LLMService
)

var rootCmd = &cobra.Command{
	Use:   "eli5",
	Short: "Explain any topic like you're five",
	Long: `eli5 fetches reference text for a topic and iteratively rewrites it
until a young child could understand it, then adds key-word
definitions and a factual example.

Configure a generative backend with 'eli5 settings llm'. Without one,
eli5 still fetches and scores the reference text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.eli5/data)")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// initServices builds the full service graph. Optional pieces degrade
// with a warning instead of failing startup.
func initServices() error {
	if explainService != nil {
		return nil
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	settingsService = services.NewSettingsService(configStore, ai.NewValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Durable cache, with an in-memory fallback when SQLite cannot open.
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Summary cache unavailable, falling back to memory: %v", err)
		summaryCache = memory.NewSummaryCache()
	} else {
		cacheStore = store
		summaryCache = store
	}

	llmService, err = ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("Generative backend unavailable: %v", err)
		llmService = nil
	}

	fetcher := services.NewFetchService(wikipedia.New(wikipedia.Config{}), summaryCache)
	fetcher.SetTimeout(settings.Fetch.Timeout)
	fetcher.SetRetries(settings.Fetch.MaxRetries)

	generation := services.NewGenerationService(llmService, promptStore)

	explain := services.NewExplainService(fetcher, wikitext.New(), fleschkincaid.New(), generation)
	explain.SetDefaults(settings.Explain)
	explainService = explain

	return nil
}

// closeServices releases held resources.
func closeServices() {
	if summaryCache != nil {
		if err := summaryCache.Close(); err != nil {
			logger.Warn("Closing summary cache: %v", err)
		}
	}
	if llmService != nil {
		if err := llmService.Close(); err != nil {
			logger.Warn("Closing generative backend: %v", err)
		}
	}
}
