package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eli5-cli/internal/logger"
)

// Ensure ExplainService implements the interface.
var _ driving.ExplainService = (*ExplainService)(nil)

// keyTermTarget is how many key-word definitions the result carries.
const keyTermTarget = 2

// ExplainService orchestrates the full pipeline: fetch reference text,
// normalise it, simplify it to the target grade, and decorate the
// result with key-word definitions and a factual example.
type ExplainService struct {
	fetcher    *FetchService
	normaliser driven.TextNormaliser
	scorer     driven.ReadabilityScorer
	generation *GenerationService
	simplifier *Simplifier
}

// NewExplainService creates a new explain service. The generation
// service may wrap a nil backend; the pipeline then degrades to
// fetch-and-score only.
func NewExplainService(
	fetcher *FetchService,
	normaliser driven.TextNormaliser,
	scorer driven.ReadabilityScorer,
	generation *GenerationService,
) *ExplainService {
	return &ExplainService{
		fetcher:    fetcher,
		normaliser: normaliser,
		scorer:     scorer,
		generation: generation,
		simplifier: NewSimplifier(scorer, generation),
	}
}

// Explain produces a child-level explanation of a topic.
func (s *ExplainService) Explain(
	ctx context.Context, topic string, opts domain.ExplainOptions,
) (*domain.ExplanationResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is empty", domain.ErrInvalidInput)
	}

	logger.Section("Explain Pipeline")
	logger.Info("Explaining %q", topic)

	source, err := s.fetcher.Fetch(ctx, topic)
	if err != nil {
		return nil, err
	}

	normalised, err := s.normaliser.Normalise(source.Text)
	if err != nil {
		return nil, fmt.Errorf("normalise %q: %w", topic, err)
	}

	result := &domain.ExplanationResult{
		ID:     uuid.NewString(),
		Topic:  topic,
		Source: source.Kind,
	}

	if !s.generation.Available() {
		return s.degradedResult(result, normalised), nil
	}

	simplifier := s.simplifierFor(opts)
	outcome, err := simplifier.Simplify(ctx, topic, normalised)
	if err != nil {
		return nil, err
	}

	result.FinalText = outcome.FinalText
	result.Attempts = outcome.Attempts
	result.Warnings = outcome.Warnings
	result.KeyTerms = s.keyTerms(ctx, result, outcome)

	example, err := s.generation.FactualExample(ctx, topic, result.FinalText)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("Example generation failed: %v", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("no example: %v", err))
	} else {
		result.Example = example
	}

	if opts.WithAnalogy {
		analogy, err := s.generation.Analogy(ctx, topic)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("Analogy generation failed: %v", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("no analogy: %v", err))
		} else {
			result.Analogy = analogy
		}
	}

	logger.Info("Explanation ready: grade %s after %d attempt(s)",
		result.FinalGradeLabel(), len(result.Attempts))
	return result, nil
}

// degradedResult scores the normalised text once and packages it as a
// single-attempt result. Work already done is never discarded just
// because no generative backend is configured.
func (s *ExplainService) degradedResult(
	result *domain.ExplanationResult, text string,
) *domain.ExplanationResult {
	logger.Warn("Generative backend not configured, returning reference text as-is")

	attempt := domain.SimplificationAttempt{Sequence: 1, Text: text}
	if s.scorer != nil {
		if grade, err := s.scorer.Score(text); err == nil {
			attempt.Grade = &grade
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not score attempt 1: %v", err))
		}
	}

	result.FinalText = text
	result.Attempts = []domain.SimplificationAttempt{attempt}
	result.Warnings = append(result.Warnings,
		"generative backend not configured; showing the reference text without simplification")
	return result
}

// simplifierFor applies per-request overrides without mutating the
// shared simplifier.
func (s *ExplainService) simplifierFor(opts domain.ExplainOptions) *Simplifier {
	if opts.TargetGrade <= 0 && opts.MaxAttempts <= 0 {
		return s.simplifier
	}

	simplifier := NewSimplifier(s.scorer, s.generation)
	simplifier.TargetGrade = s.simplifier.TargetGrade
	simplifier.MaxAttempts = s.simplifier.MaxAttempts
	if opts.TargetGrade > 0 {
		simplifier.TargetGrade = opts.TargetGrade
	}
	if opts.MaxAttempts > 0 {
		simplifier.MaxAttempts = opts.MaxAttempts
	}
	return simplifier
}

// SetDefaults applies configured explain settings to the shared
// simplifier.
func (s *ExplainService) SetDefaults(settings domain.ExplainSettings) {
	if settings.TargetGrade > 0 {
		s.simplifier.TargetGrade = settings.TargetGrade
	}
	if settings.MaxAttempts > 0 {
		s.simplifier.MaxAttempts = settings.MaxAttempts
	}
}

// keyTerms returns 1-2 defined terms for the result. Terms defined
// during simplification come first; when fewer than two exist, the
// final text is mined for further candidates and those are defined now.
func (s *ExplainService) keyTerms(
	ctx context.Context, result *domain.ExplanationResult, outcome *Outcome,
) []domain.JargonEntry {
	terms := make([]domain.JargonEntry, 0, keyTermTarget)
	seen := make(map[string]bool)

	for _, entry := range outcome.Defined {
		if len(terms) == keyTermTarget {
			break
		}
		terms = append(terms, entry)
		seen[strings.ToLower(entry.Term)] = true
	}

	for len(terms) < keyTermTarget {
		term := s.simplifier.selectTerm(result.FinalText, seen)
		if term == "" {
			break
		}
		seen[term] = true

		entry, err := s.generation.DefineTerm(ctx, term)
		if err != nil {
			if ctx.Err() != nil {
				return terms
			}
			logger.Warn("Defining key term %q failed: %v", term, err)
			entry = domain.JargonEntry{Term: term, Unavailable: true}
		}
		terms = append(terms, entry)
	}

	return terms
}
