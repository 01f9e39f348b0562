package driven

// ReadabilityScorer maps a text to a single scalar grade-level estimate.
// Implementations must be pure and deterministic for a given formula, and
// must fail explicitly (domain.ErrUnscorableText) rather than silently
// return zero when the text is too short to score meaningfully.
type ReadabilityScorer interface {
	// Score returns the estimated school grade required to comprehend text.
	Score(text string) (float64, error)
}
