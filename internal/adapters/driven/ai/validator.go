package ai

import (
	"fmt"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.AIConfigValidator = (*Validator)(nil)

// Validator checks backend configurations by constructing and pinging
// the corresponding client.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLLMConfig pings the backend described by settings.
func (Validator) ValidateLLMConfig(settings domain.LLMSettings) error {
	svc, err := CreateAndValidateLLMService(&settings)
	if err != nil {
		return err
	}
	if svc == nil {
		return fmt.Errorf("%w: no backend configured", domain.ErrLLMUnavailable)
	}
	return svc.Close()
}
