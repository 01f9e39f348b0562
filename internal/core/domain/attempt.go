package domain

import "strconv"

// SimplificationAttempt is one full version of the explanation text produced
// during simplification, paired with its measured grade. The attempt sequence
// is append-only and owned exclusively by the simplification controller.
type SimplificationAttempt struct {
	// Sequence is the 1-based position of this attempt. Strictly increasing.
	Sequence int

	// Text is the full explanation text at this attempt, never a diff.
	Text string

	// Grade is the measured readability grade level.
	// Nil means the scorer failed for this attempt and the grade is unknown.
	Grade *float64
}

// GradeLabel renders the grade for display, or "unknown" when scoring failed.
func (a SimplificationAttempt) GradeLabel() string {
	if a.Grade == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*a.Grade, 'f', 1, 64)
}

// JargonEntry is a term/definition pair produced on demand.
type JargonEntry struct {
	// Term is the jargon term that was defined.
	Term string

	// Definition is the one-sentence simplified definition.
	Definition string

	// Unavailable is true when the generative backend returned no usable
	// definition. Callers branch on this instead of sniffing the string.
	Unavailable bool
}
