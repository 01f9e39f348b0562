package driving

import "github.com/custodia-labs/eli5-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the generative backend.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// SetTargetGrade updates the readability target for the simplification loop.
	SetTargetGrade(grade float64) error

	// SetMaxAttempts updates the rewrite cap for the simplification loop.
	SetMaxAttempts(attempts int) error

	// Validate checks whether the current settings form a usable configuration.
	Validate() error

	// ValidateLLMConfig validates the current backend configuration by pinging it.
	ValidateLLMConfig() error
}
