package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

func newTestExplainService(provider *mockProvider, scorer *mockScorer, llm driven.LLMService) *ExplainService {
	generation := NewGenerationService(llm, mockPrompts{})
	return NewExplainService(
		NewFetchService(provider, nil),
		&mockNormaliser{},
		scorer,
		generation,
	)
}

func TestExplain_FullPipeline(t *testing.T) {
	source := "Photosynthesis is the process by which plants convert light energy into chemical energy."
	rewritten := "Plants use sunlight to make their own food."

	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: source}

	scorer := &mockScorer{grades: []float64{6.0, 3.0}}
	llm := &mockLLM{respond: map[string]string{
		"DEFINE":  "It is how plants make food from sunlight.",
		"REWRITE": rewritten,
		"EXAMPLE": "Trees and grass both use photosynthesis.",
		"ANALOGY": "Photosynthesis is like a kitchen inside every leaf.",
	}}

	svc := newTestExplainService(provider, scorer, llm)

	result, err := svc.Explain(context.Background(), "Photosynthesis", domain.ExplainOptions{
		WithAnalogy: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Photosynthesis", result.Topic)
	assert.Equal(t, domain.SourceSimplified, result.Source)
	assert.Equal(t, rewritten, result.FinalText)
	assert.Equal(t, "3.0", result.FinalGradeLabel())
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, "Trees and grass both use photosynthesis.", result.Example)
	assert.Equal(t, "Photosynthesis is like a kitchen inside every leaf.", result.Analogy)
	assert.False(t, result.Degraded())

	require.NotEmpty(t, result.KeyTerms)
	assert.Equal(t, "photosynthesis", result.KeyTerms[0].Term)
}

func TestExplain_DistinctIDs(t *testing.T) {
	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: "The cat sat on the mat."}
	scorer := &mockScorer{grades: []float64{2.0}}

	svc := newTestExplainService(provider, scorer, &mockLLM{})

	first, err := svc.Explain(context.Background(), "Cats", domain.ExplainOptions{})
	require.NoError(t, err)
	second, err := svc.Explain(context.Background(), "Cats", domain.ExplainOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestExplain_NilBackendDegrades(t *testing.T) {
	source := "Photosynthesis is the process by which plants convert light energy."

	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: source}
	scorer := &mockScorer{grades: []float64{6.0}}

	svc := newTestExplainService(provider, scorer, nil)

	result, err := svc.Explain(context.Background(), "Photosynthesis", domain.ExplainOptions{})
	require.NoError(t, err)

	assert.Equal(t, source, result.FinalText)
	require.Len(t, result.Attempts, 1)
	require.NotNil(t, result.Attempts[0].Grade)
	assert.InDelta(t, 6.0, *result.Attempts[0].Grade, 0.001)
	assert.Empty(t, result.KeyTerms)
	assert.Empty(t, result.Example)
	assert.True(t, result.Degraded())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "generative backend not configured")
}

func TestExplain_TopicNotFound(t *testing.T) {
	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: false}
	provider.summaries[domain.SourceGeneral] = driven.Summary{Exists: false}

	svc := newTestExplainService(provider, &mockScorer{}, &mockLLM{})

	_, err := svc.Explain(context.Background(), "Xyzzy", domain.ExplainOptions{})
	assert.ErrorIs(t, err, domain.ErrTopicNotFound)
}

func TestExplain_EmptyTopic(t *testing.T) {
	svc := newTestExplainService(newMockProvider(), &mockScorer{}, &mockLLM{})

	_, err := svc.Explain(context.Background(), "  ", domain.ExplainOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExplain_KeyTermsToppedUpFromFinalText(t *testing.T) {
	// Already below target: no rewrites, so no terms were defined
	// during simplification and both key terms come from mining the
	// final text.
	source := "Photosynthesis needs energy daily."

	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: source}
	scorer := &mockScorer{grades: []float64{3.0}}
	llm := &mockLLM{respond: map[string]string{
		"DEFINE":  "A science word.",
		"EXAMPLE": "Plants are an example.",
	}}

	svc := newTestExplainService(provider, scorer, llm)

	result, err := svc.Explain(context.Background(), "Photosynthesis", domain.ExplainOptions{})
	require.NoError(t, err)

	require.Len(t, result.Attempts, 1)
	require.Len(t, result.KeyTerms, 2)
	assert.Equal(t, "photosynthesis", result.KeyTerms[0].Term)
	assert.Equal(t, "energy", result.KeyTerms[1].Term)
	assert.Equal(t, 2, llm.countPrompts("DEFINE"))
}

func TestExplain_ExampleFailureIsWarning(t *testing.T) {
	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: "The cat sat on the mat."}
	scorer := &mockScorer{grades: []float64{2.0}}
	llm := &mockLLM{generateErr: errors.New("backend down")}

	svc := newTestExplainService(provider, scorer, llm)

	result, err := svc.Explain(context.Background(), "Cats", domain.ExplainOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.Example)
	assert.True(t, result.Degraded())
}

func TestExplain_OptionOverrides(t *testing.T) {
	source := "Electromagnetism influences metabolism in complicated organisms regularly."

	provider := newMockProvider()
	provider.summaries[domain.SourceSimplified] = driven.Summary{Exists: true, Text: source}
	scorer := &mockScorer{grades: []float64{9.0}}
	llm := &mockLLM{respond: map[string]string{
		"DEFINE":  "A science word.",
		"REWRITE": source,
		"EXAMPLE": "Magnets are an example.",
	}}

	svc := newTestExplainService(provider, scorer, llm)

	result, err := svc.Explain(context.Background(), "Physics", domain.ExplainOptions{
		MaxAttempts: 1,
	})
	require.NoError(t, err)
	assert.Len(t, result.Attempts, 2, "one rewrite when MaxAttempts is 1")

	// The shared defaults are untouched by per-request overrides.
	assert.Equal(t, DefaultMaxAttempts, svc.simplifier.MaxAttempts)
}

func TestExplain_SetDefaults(t *testing.T) {
	svc := newTestExplainService(newMockProvider(), &mockScorer{}, &mockLLM{})

	svc.SetDefaults(domain.ExplainSettings{TargetGrade: 6.5, MaxAttempts: 2})
	assert.InDelta(t, 6.5, svc.simplifier.TargetGrade, 0.001)
	assert.Equal(t, 2, svc.simplifier.MaxAttempts)

	// Zero values leave the current settings alone.
	svc.SetDefaults(domain.ExplainSettings{})
	assert.InDelta(t, 6.5, svc.simplifier.TargetGrade, 0.001)
	assert.Equal(t, 2, svc.simplifier.MaxAttempts)
}
