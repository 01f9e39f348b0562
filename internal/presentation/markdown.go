// Package presentation renders explanation results as markdown.
// Pure formatting, no I/O.
package presentation

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

// Explanation renders the final answer: the simplified text, the
// key-word definitions, the factual example and, when present, the
// analogy.
func Explanation(res *domain.ExplanationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**What is %s?**\n\n", res.Topic)
	b.WriteString(strings.TrimSpace(res.FinalText))
	b.WriteString("\n")

	if len(res.KeyTerms) > 0 {
		b.WriteString("\n**Key Words**\n\n")
		for _, entry := range res.KeyTerms {
			if entry.Unavailable {
				fmt.Fprintf(&b, "*   **%s:** _definition unavailable_\n", entry.Term)
				continue
			}
			fmt.Fprintf(&b, "*   **%s:** %s\n", entry.Term, entry.Definition)
		}
	}

	if res.Example != "" {
		b.WriteString("\n**For Example**\n\n")
		b.WriteString(strings.TrimSpace(res.Example))
		b.WriteString("\n")
	}

	if res.Analogy != "" {
		b.WriteString("\n**Think of it like this**\n\n")
		b.WriteString(strings.TrimSpace(res.Analogy))
		b.WriteString("\n")
	}

	return b.String()
}

// History renders the attempt-by-attempt simplification trail.
// Unscored attempts show their grade as "unknown".
func History(attempts []domain.SimplificationAttempt) string {
	var b strings.Builder

	b.WriteString("**Simplification History**\n\n")
	if len(attempts) == 0 {
		b.WriteString("_no attempts recorded_\n")
		return b.String()
	}

	for _, attempt := range attempts {
		fmt.Fprintf(&b, "*   **Attempt %d (Grade: %s):** \"%s\"\n",
			attempt.Sequence, attempt.GradeLabel(), attempt.Text)
	}

	return b.String()
}

// Warnings renders non-fatal degradations as a footnote block.
// Empty input renders nothing.
func Warnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Notes**\n\n")
	for _, w := range warnings {
		fmt.Fprintf(&b, "*   %s\n", w)
	}
	return b.String()
}
