package driven

import "github.com/custodia-labs/eli5-cli/internal/core/domain"

// AIConfigValidator checks that a generative backend configuration is
// actually reachable, not merely well-formed.
type AIConfigValidator interface {
	// ValidateLLMConfig pings the backend described by settings.
	ValidateLLMConfig(settings domain.LLMSettings) error
}
