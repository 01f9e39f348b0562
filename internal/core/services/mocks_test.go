package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockProvider implements driven.ReferenceProvider.
type mockProvider struct {
	// summaries maps source kind to the summary it returns.
	summaries map[domain.SourceKind]driven.Summary

	// errs maps source kind to a resolve error.
	errs map[domain.SourceKind]error

	// calls counts Resolve invocations per kind.
	calls map[domain.SourceKind]int
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		summaries: make(map[domain.SourceKind]driven.Summary),
		errs:      make(map[domain.SourceKind]error),
		calls:     make(map[domain.SourceKind]int),
	}
}

func (m *mockProvider) Resolve(
	_ context.Context, _ string, kind domain.SourceKind,
) (driven.Summary, error) {
	m.calls[kind]++
	if err := m.errs[kind]; err != nil {
		return driven.Summary{}, err
	}
	return m.summaries[kind], nil
}

// mockScorer implements driven.ReadabilityScorer, returning queued
// grades in order. The last grade repeats once the queue is drained.
type mockScorer struct {
	grades []float64
	err    error
	calls  int
}

func (m *mockScorer) Score(_ string) (float64, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	if len(m.grades) == 0 {
		return 0, fmt.Errorf("mock scorer: no grades queued")
	}
	idx := m.calls - 1
	if idx >= len(m.grades) {
		idx = len(m.grades) - 1
	}
	return m.grades[idx], nil
}

// mockLLM implements driven.LLMService. Generate dispatches on prompt
// content so a single mock can answer define, rewrite and example
// prompts in one run.
type mockLLM struct {
	// respond maps a prompt substring to the response for it.
	respond map[string]string

	// generateErr fails every Generate call when set.
	generateErr error

	// prompts records every prompt passed to Generate.
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateErr != nil {
		return "", m.generateErr
	}
	for needle, response := range m.respond {
		if strings.Contains(prompt, needle) {
			return response, nil
		}
	}
	return "", nil
}

func (m *mockLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return "", fmt.Errorf("mock llm: chat not implemented")
}

func (m *mockLLM) ModelName() string { return "mock-model" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// countPrompts returns how many recorded prompts contain the needle.
func (m *mockLLM) countPrompts(needle string) int {
	n := 0
	for _, p := range m.prompts {
		if strings.Contains(p, needle) {
			n++
		}
	}
	return n
}

// mockPrompts implements driven.PromptStore with minimal templates
// that keep the placeholder arity of the real defaults.
type mockPrompts struct{}

func (mockPrompts) Load(name string) (string, error) {
	switch name {
	case driven.PromptDefineTerm:
		return "DEFINE term=%s", nil
	case driven.PromptRewriteSimpler:
		return "REWRITE instruction=%s text=%s", nil
	case driven.PromptFactualExample:
		return "EXAMPLE topic=%s context=%s", nil
	case driven.PromptAnalogy:
		return "ANALOGY concept=%s", nil
	}
	return "", fmt.Errorf("unknown prompt %q", name)
}

func (mockPrompts) Reload() {}

// mockNormaliser implements driven.TextNormaliser as a pass-through.
type mockNormaliser struct {
	err error
}

func (m *mockNormaliser) Normalise(raw string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return strings.TrimSpace(raw), nil
}
