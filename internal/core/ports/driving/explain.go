package driving

import (
	"context"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

// ExplainService produces simplified explanations of topics.
type ExplainService interface {
	// Explain runs the full pipeline for one topic: fetch, normalise,
	// iteratively simplify, define key terms, and generate an example.
	Explain(ctx context.Context, topic string, opts domain.ExplainOptions) (*domain.ExplanationResult, error)
}
