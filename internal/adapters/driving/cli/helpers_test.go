package cli

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

// --- Mock services for command tests ---

// mockExplainer implements driving.ExplainService.
type mockExplainer struct {
	result *domain.ExplanationResult
	err    error

	lastTopic string
	lastOpts  domain.ExplainOptions
}

func (m *mockExplainer) Explain(
	_ context.Context, topic string, opts domain.ExplainOptions,
) (*domain.ExplanationResult, error) {
	m.lastTopic = topic
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockSettings implements driving.SettingsService.
type mockSettings struct {
	settings    domain.AppSettings
	validateErr error

	lastGrade    float64
	lastAttempts int
}

func newMockSettings() *mockSettings {
	return &mockSettings{settings: domain.AppSettings{
		Explain: domain.ExplainSettings{TargetGrade: 4.0, MaxAttempts: 5},
		Fetch:   domain.FetchSettings{Timeout: 20 * time.Second, MaxRetries: 2},
	}}
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettings) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return errors.New("invalid provider")
	}
	m.settings.LLM = domain.LLMSettings{Provider: provider, Model: model, APIKey: apiKey}
	return nil
}

func (m *mockSettings) SetTargetGrade(grade float64) error {
	if grade <= 0 {
		return errors.New("target grade must be positive")
	}
	m.lastGrade = grade
	m.settings.Explain.TargetGrade = grade
	return nil
}

func (m *mockSettings) SetMaxAttempts(attempts int) error {
	if attempts < 1 {
		return errors.New("max attempts must be at least 1")
	}
	m.lastAttempts = attempts
	m.settings.Explain.MaxAttempts = attempts
	return nil
}

func (m *mockSettings) Validate() error { return m.validateErr }

func (m *mockSettings) ValidateLLMConfig() error { return nil }

// setupTestServices wires mock services so commands run without real
// adapters. It returns a cleanup that restores the previous wiring.
func setupTestServices(explainer *mockExplainer, settings *mockSettings) func() {
	prevExplain := explainService
	prevSettings := settingsService

	explainService = explainer
	settingsService = settings

	return func() {
		explainService = prevExplain
		settingsService = prevSettings
	}
}

func testResult() *domain.ExplanationResult {
	g1, g2 := 6.0, 3.0
	return &domain.ExplanationResult{
		ID:        "test-id",
		Topic:     "Photosynthesis",
		Source:    domain.SourceSimplified,
		FinalText: "Plants use sunlight to make food.",
		KeyTerms: []domain.JargonEntry{
			{Term: "chlorophyll", Definition: "The green stuff in leaves."},
		},
		Example: "Trees and grass both do this.",
		Attempts: []domain.SimplificationAttempt{
			{Sequence: 1, Text: "Photosynthesis converts light energy.", Grade: &g1},
			{Sequence: 2, Text: "Plants use sunlight to make food.", Grade: &g2},
		},
	}
}
