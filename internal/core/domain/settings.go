package domain

import "time"

// AIProvider identifies a generative text backend.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// AllAIProviders returns every selectable provider, in menu order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic}
}

// DefaultLLMModels maps each provider to its default model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-haiku-latest",
	}
}

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs on the local machine.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds generative backend configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// ExplainSettings holds simplification loop configuration.
type ExplainSettings struct {
	// TargetGrade is the readability grade at or below which the loop stops.
	TargetGrade float64

	// MaxAttempts caps the number of rewrites. This is the
	// authoritative termination guarantee for the loop.
	MaxAttempts int
}

// FetchSettings holds reference fetch configuration.
type FetchSettings struct {
	// Timeout bounds a single resolve attempt.
	Timeout time.Duration

	// MaxRetries is the number of attempts per source on timeout.
	MaxRetries int
}

// AppSettings aggregates all user-facing configuration.
type AppSettings struct {
	// LLM holds generative backend settings. Zero value means unconfigured;
	// the pipeline then degrades to fetch-and-score only.
	LLM LLMSettings

	// Explain holds simplification loop settings.
	Explain ExplainSettings

	// Fetch holds reference fetch settings.
	Fetch FetchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM backend is left unconfigured; users set it via 'eli5 settings'.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Explain: ExplainSettings{
			TargetGrade: 4.0,
			MaxAttempts: 5,
		},
		Fetch: FetchSettings{
			Timeout:    20 * time.Second,
			MaxRetries: 2,
		},
	}
}
