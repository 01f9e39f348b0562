package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/config.toml"
}

// mockValidator implements driven.AIConfigValidator.
type mockValidator struct {
	err  error
	seen *domain.LLMSettings
}

func (m *mockValidator) ValidateLLMConfig(settings domain.LLMSettings) error {
	m.seen = &settings
	return m.err
}

func TestSettingsGet_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.InDelta(t, 4.0, settings.Explain.TargetGrade, 0.001)
	assert.Equal(t, 5, settings.Explain.MaxAttempts)
	assert.Equal(t, 20*time.Second, settings.Fetch.Timeout)
	assert.Equal(t, 2, settings.Fetch.MaxRetries)
	assert.False(t, settings.LLM.IsConfigured())
}

func TestSettingsSaveAndGet_RoundTrip(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store, nil)

	want := domain.DefaultAppSettings()
	want.LLM = domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		Model:    "llama3.2",
		BaseURL:  "http://localhost:11434",
	}
	want.Explain.TargetGrade = 6.0
	want.Explain.MaxAttempts = 3
	want.Fetch.Timeout = 30 * time.Second
	want.Fetch.MaxRetries = 1

	require.NoError(t, svc.Save(&want))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want.LLM, got.LLM)
	assert.InDelta(t, 6.0, got.Explain.TargetGrade, 0.001)
	assert.Equal(t, 3, got.Explain.MaxAttempts)
	assert.Equal(t, 30*time.Second, got.Fetch.Timeout)
	assert.Equal(t, 1, got.Fetch.MaxRetries)
}

func TestSetLLMProvider_Ollama(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOllama, "", ""))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model, "default model applied")
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
	assert.True(t, settings.LLM.IsConfigured())
}

func TestSetLLMProvider_CloudRequiresAPIKey(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	err := svc.SetLLMProvider(domain.AIProviderOpenAI, "gpt-4o-mini", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOpenAI, "gpt-4o-mini", "sk-test"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", settings.LLM.APIKey)
	assert.Empty(t, settings.LLM.BaseURL, "cloud providers use the default endpoint")
}

func TestSetLLMProvider_Invalid(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	err := svc.SetLLMProvider("watson", "", "")
	assert.Error(t, err)
}

func TestSetTargetGrade(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	require.NoError(t, svc.SetTargetGrade(6.5))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.InDelta(t, 6.5, settings.Explain.TargetGrade, 0.001)

	assert.ErrorIs(t, svc.SetTargetGrade(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.SetTargetGrade(-1), domain.ErrInvalidInput)
}

func TestSetMaxAttempts(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	require.NoError(t, svc.SetMaxAttempts(3))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Explain.MaxAttempts)

	assert.ErrorIs(t, svc.SetMaxAttempts(0), domain.ErrInvalidInput)
}

func TestSettingsValidate(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)

	err := svc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no generative backend configured")

	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOllama, "", ""))
	assert.NoError(t, svc.Validate())
}

func TestValidateLLMConfig(t *testing.T) {
	validator := &mockValidator{}
	svc := NewSettingsService(newMockConfigStore(), validator)
	require.NoError(t, svc.SetLLMProvider(domain.AIProviderOllama, "llama3.2", ""))

	require.NoError(t, svc.ValidateLLMConfig())
	require.NotNil(t, validator.seen)
	assert.Equal(t, domain.AIProviderOllama, validator.seen.Provider)

	validator.err = errors.New("backend unreachable")
	assert.Error(t, svc.ValidateLLMConfig())
}

func TestValidateLLMConfig_NoValidator(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), nil)
	assert.Error(t, svc.ValidateLLMConfig())
}
