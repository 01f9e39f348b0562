package driven

// TextNormaliser strips source-specific artifacts from fetched reference
// text. Implementations must be deterministic and idempotent: normalising
// already-normalised text is a no-op.
type TextNormaliser interface {
	// Normalise cleans raw reference text.
	// Empty or whitespace-only input fails with domain.ErrInvalidInput;
	// input that cleans down to nothing fails with domain.ErrEmptyResult.
	Normalise(raw string) (string, error)
}
