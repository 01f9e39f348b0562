package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyExplainGrade      = "explain.target_grade"
	keyExplainAttempts   = "explain.max_attempts"
	keyFetchTimeoutSecs  = "fetch.timeout_seconds"
	keyFetchMaxRetries   = "fetch.max_retries"
	defaultOllamaBaseURL = "http://localhost:11434"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
// The aiValidator parameter is optional (can be nil).
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: domain.AIProvider(s.configStore.GetString(keyLLMProvider)),
			Model:    s.configStore.GetString(keyLLMModel),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL),
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Explain: domain.ExplainSettings{
			TargetGrade: s.getFloat(keyExplainGrade, defaults.Explain.TargetGrade),
			MaxAttempts: s.getInt(keyExplainAttempts, defaults.Explain.MaxAttempts),
		},
		Fetch: defaults.Fetch,
	}

	if secs := s.configStore.GetInt(keyFetchTimeoutSecs); secs > 0 {
		settings.Fetch.Timeout = time.Duration(secs) * time.Second
	}
	if _, ok := s.configStore.Get(keyFetchMaxRetries); ok {
		if n := s.configStore.GetInt(keyFetchMaxRetries); n >= 0 {
			settings.Fetch.MaxRetries = n
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyExplainGrade, settings.Explain.TargetGrade); err != nil {
		return fmt.Errorf("save target grade: %w", err)
	}
	if err := s.configStore.Set(keyExplainAttempts, settings.Explain.MaxAttempts); err != nil {
		return fmt.Errorf("save max attempts: %w", err)
	}
	if err := s.configStore.Set(keyFetchTimeoutSecs, int(settings.Fetch.Timeout.Seconds())); err != nil {
		return fmt.Errorf("save fetch timeout: %w", err)
	}
	if err := s.configStore.Set(keyFetchMaxRetries, settings.Fetch.MaxRetries); err != nil {
		return fmt.Errorf("save fetch retries: %w", err)
	}

	return nil
}

// SetLLMProvider configures the generative backend.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid provider: %s", provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	if model != "" {
		settings.LLM.Model = model
	} else if defaultModel, ok := domain.DefaultLLMModels()[provider]; ok {
		settings.LLM.Model = defaultModel
	}

	if provider.IsLocal() {
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = defaultOllamaBaseURL
		}
	} else {
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetTargetGrade updates the readability target for the loop.
func (s *SettingsService) SetTargetGrade(grade float64) error {
	if grade <= 0 {
		return fmt.Errorf("%w: target grade must be positive", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Explain.TargetGrade = grade
	return s.Save(settings)
}

// SetMaxAttempts updates the rewrite cap for the loop.
func (s *SettingsService) SetMaxAttempts(attempts int) error {
	if attempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Explain.MaxAttempts = attempts
	return s.Save(settings)
}

// Validate checks the current settings. An unconfigured backend is
// reported as an error so the CLI can suggest setup, but the pipeline
// itself still runs degraded.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.LLM.Provider == "" {
		return fmt.Errorf("no generative backend configured")
	}
	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("generative backend %s is not fully configured", settings.LLM.Provider)
	}
	if settings.Explain.TargetGrade <= 0 {
		return fmt.Errorf("target grade must be positive")
	}
	if settings.Explain.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1")
	}

	return nil
}

// ValidateLLMConfig pings the configured backend.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return fmt.Errorf("no validator available")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLMConfig(settings.LLM)
}

// getFloat reads a float key with a fallback default.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// getInt reads an int key with a fallback default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
