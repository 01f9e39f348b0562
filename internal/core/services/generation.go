package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/logger"
)

// Generation token budgets. Definitions and analogies are single
// sentences; rewrites carry the full explanation text.
const (
	defineMaxTokens  = 120
	exampleMaxTokens = 220
	analogyMaxTokens = 120
	rewriteMaxTokens = 700

	generationTemperature = 0.3
)

// GenerationService wraps the generative backend with the prompt
// templates for defining terms, producing examples and rewriting text.
type GenerationService struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewGenerationService creates a new generation service.
// The llm parameter is optional (can be nil); every method then
// returns domain.ErrLLMUnavailable.
func NewGenerationService(llm driven.LLMService, prompts driven.PromptStore) *GenerationService {
	return &GenerationService{
		llm:     llm,
		prompts: prompts,
	}
}

// Available reports whether a generative backend is configured.
func (s *GenerationService) Available() bool {
	return s.llm != nil
}

// DefineTerm produces a one-sentence child-level definition of a term.
// A blank model response is not an error: the entry comes back with
// Unavailable set so the caller can render a placeholder.
func (s *GenerationService) DefineTerm(ctx context.Context, term string) (domain.JargonEntry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.JargonEntry{}, fmt.Errorf("%w: term is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return domain.JargonEntry{}, domain.ErrLLMUnavailable
	}

	prompt, err := s.loadPrompt(driven.PromptDefineTerm)
	if err != nil {
		return domain.JargonEntry{}, err
	}

	logger.Debug("Defining term %q", term)
	out, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, term), driven.GenerateOptions{
		MaxTokens:   defineMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return domain.JargonEntry{}, fmt.Errorf("define term %q: %w", term, err)
	}

	definition := strings.TrimSpace(out)
	if definition == "" {
		logger.Warn("Model returned no definition for %q", term)
		return domain.JargonEntry{Term: term, Unavailable: true}, nil
	}

	return domain.JargonEntry{Term: term, Definition: definition}, nil
}

// FactualExample produces 1-2 named real-world examples for the topic.
// The prompt forbids analogies so the output stays factual.
func (s *GenerationService) FactualExample(ctx context.Context, topic, concept string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	prompt, err := s.loadPrompt(driven.PromptFactualExample)
	if err != nil {
		return "", err
	}

	logger.Debug("Generating factual example for %q", topic)
	out, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, topic, strings.TrimSpace(concept)),
		driven.GenerateOptions{
			MaxTokens:   exampleMaxTokens,
			Temperature: generationTemperature,
		})
	if err != nil {
		return "", fmt.Errorf("factual example for %q: %w", topic, err)
	}

	example := strings.TrimSpace(out)
	if example == "" {
		logger.Warn("Model returned no example for %q", topic)
		return fmt.Sprintf("Examples of %s can be found all around you.", topic), nil
	}

	return example, nil
}

// Analogy produces a one-sentence analogy for the concept.
func (s *GenerationService) Analogy(ctx context.Context, concept string) (string, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return "", fmt.Errorf("%w: concept is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	prompt, err := s.loadPrompt(driven.PromptAnalogy)
	if err != nil {
		return "", err
	}

	logger.Debug("Generating analogy for %q", concept)
	out, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, concept), driven.GenerateOptions{
		MaxTokens:   analogyMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("analogy for %q: %w", concept, err)
	}

	analogy := strings.TrimSpace(out)
	if analogy == "" {
		return "", fmt.Errorf("analogy for %q: %w: model returned empty output", concept, domain.ErrEmptyResult)
	}

	return analogy, nil
}

// Rewrite produces a simpler version of text. The instruction line is
// spliced into the prompt and typically carries the definition of the
// term being unpacked. A blank response is an error so the caller
// keeps the previous attempt instead of an empty explanation.
func (s *GenerationService) Rewrite(ctx context.Context, text, instruction string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	prompt, err := s.loadPrompt(driven.PromptRewriteSimpler)
	if err != nil {
		return "", err
	}

	logger.Debug("Rewriting text (%d chars)", len(text))
	out, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, strings.TrimSpace(instruction), text),
		driven.GenerateOptions{
			MaxTokens:   rewriteMaxTokens,
			Temperature: generationTemperature,
		})
	if err != nil {
		return "", fmt.Errorf("rewrite: %w", err)
	}

	rewritten := strings.TrimSpace(out)
	if rewritten == "" {
		return "", fmt.Errorf("rewrite: %w: model returned empty output", domain.ErrEmptyResult)
	}

	return rewritten, nil
}

// loadPrompt fetches a template from the store, falling back to a
// store-less error message if no store was wired.
func (s *GenerationService) loadPrompt(name string) (string, error) {
	if s.prompts == nil {
		return "", fmt.Errorf("prompt store unavailable for %q", name)
	}
	prompt, err := s.prompts.Load(name)
	if err != nil {
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}
	return prompt, nil
}
