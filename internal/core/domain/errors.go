package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed, empty, or missing required input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyResult indicates an operation produced no usable output,
	// e.g. text that normalises to nothing.
	ErrEmptyResult = errors.New("empty result")

	// ErrTopicNotFound indicates the topic is absent from every reference source.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrFetchTimeout indicates a reference fetch exceeded its deadline
	// after all retries were spent.
	ErrFetchTimeout = errors.New("fetch timed out")

	// ErrLLMUnavailable indicates the generative backend is not configured.
	// Steps requiring generation (defining, rewriting, examples) are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnscorableText indicates text is too short or too degenerate for a
	// meaningful readability grade. Returned instead of a silent zero score.
	ErrUnscorableText = errors.New("text cannot be scored")
)

// TopicNotFoundError reports that a topic was absent from all reference
// sources, naming each source tried. It unwraps to ErrTopicNotFound.
type TopicNotFoundError struct {
	Topic   string
	Sources []SourceKind
}

// Error implements the error interface.
func (e *TopicNotFoundError) Error() string {
	names := make([]string, len(e.Sources))
	for i, s := range e.Sources {
		names[i] = s.Label()
	}
	return fmt.Sprintf("topic %q not found in %s", e.Topic, strings.Join(names, " or "))
}

// Unwrap allows errors.Is(err, ErrTopicNotFound).
func (e *TopicNotFoundError) Unwrap() error {
	return ErrTopicNotFound
}
