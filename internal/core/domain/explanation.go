package domain

// ExplainOptions carries per-request overrides for the explain pipeline.
type ExplainOptions struct {
	// WithAnalogy requests an additional child-friendly analogy.
	WithAnalogy bool

	// TargetGrade overrides the configured target grade when > 0.
	TargetGrade float64

	// MaxAttempts overrides the configured attempt cap when > 0.
	MaxAttempts int
}

// ExplanationResult is the terminal output of one explain request.
// Constructed once per request and immutable afterwards.
type ExplanationResult struct {
	// ID uniquely identifies this request.
	ID string `json:"id"`

	// Topic is the topic that was explained.
	Topic string `json:"topic"`

	// Source is the corpus the reference text came from.
	Source SourceKind `json:"source"`

	// FinalText is the last attempt's explanation text.
	FinalText string `json:"final_text"`

	// KeyTerms holds the 1-2 key-word definitions for the topic.
	KeyTerms []JargonEntry `json:"key_terms"`

	// Example is the factual real-world example text.
	Example string `json:"example"`

	// Analogy is an optional child-friendly analogy. Empty when not requested
	// or when generation failed.
	Analogy string `json:"analogy,omitempty"`

	// Attempts is the full simplification history, in order.
	Attempts []SimplificationAttempt `json:"attempts"`

	// Warnings records non-fatal failures encountered while producing this
	// result (unknown scores, unavailable definitions, unconfigured backend).
	Warnings []string `json:"warnings,omitempty"`
}

// FinalGradeLabel renders the grade of the final attempt.
func (r *ExplanationResult) FinalGradeLabel() string {
	if len(r.Attempts) == 0 {
		return "unknown"
	}
	return r.Attempts[len(r.Attempts)-1].GradeLabel()
}

// Degraded returns true if any sub-step failed and the result is best-effort.
func (r *ExplanationResult) Degraded() bool {
	return len(r.Warnings) > 0
}
