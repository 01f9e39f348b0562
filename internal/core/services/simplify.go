package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eli5-cli/internal/logger"
	"github.com/custodia-labs/eli5-cli/internal/readability/fleschkincaid"
)

const (
	// DefaultTargetGrade is the reading grade the loop simplifies towards.
	DefaultTargetGrade = 4.0

	// DefaultMaxAttempts caps the number of rewrites. The attempt list
	// holds at most DefaultMaxAttempts+1 entries including the seed.
	DefaultMaxAttempts = 5
)

// simplifyState drives the control loop. Fetching happens before the
// loop starts, so scoring is the entry state.
type simplifyState int

const (
	stateScoring simplifyState = iota
	stateSelecting
	stateDefining
	stateRewriting
	stateDone
)

// Outcome is the result of a simplification run.
type Outcome struct {
	// FinalText is the text of the last attempt.
	FinalText string

	// Attempts lists every version of the text, in order, including
	// the seed. Sequence numbers run 1, 2, 3...
	Attempts []domain.SimplificationAttempt

	// Defined lists the jargon terms defined during the run.
	Defined []domain.JargonEntry

	// Warnings records non-fatal degradations (scoring failures,
	// rewrite failures).
	Warnings []string
}

// Simplifier iteratively rewrites text until it scores at or below the
// target reading grade, a rewrite cap is hit, or nothing worth
// defining remains.
type Simplifier struct {
	scorer     driven.ReadabilityScorer
	generation *GenerationService

	// TargetGrade is the highest acceptable reading grade.
	TargetGrade float64

	// MaxAttempts caps the number of rewrites. Termination is
	// guaranteed by this cap alone; scoring failures do not stop
	// the loop.
	MaxAttempts int
}

// NewSimplifier creates a new simplifier with default target and cap.
func NewSimplifier(scorer driven.ReadabilityScorer, generation *GenerationService) *Simplifier {
	return &Simplifier{
		scorer:      scorer,
		generation:  generation,
		TargetGrade: DefaultTargetGrade,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Simplify runs the control loop over the normalised source text.
// The topic is only used for logging. The returned outcome always has
// at least one attempt, even when every downstream service fails.
func (s *Simplifier) Simplify(ctx context.Context, topic, text string) (*Outcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty", domain.ErrInvalidInput)
	}

	logger.Section("Simplification Loop")
	logger.Debug("Topic: %q, target grade: %.1f, max rewrites: %d", topic, s.TargetGrade, s.MaxAttempts)

	outcome := &Outcome{}
	defined := make(map[string]bool)

	current := text
	var term string
	var instruction string

	state := stateScoring
	for state != stateDone {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch state {
		case stateScoring:
			attempt := domain.SimplificationAttempt{
				Sequence: len(outcome.Attempts) + 1,
				Text:     current,
			}
			grade, err := s.score(current)
			if err != nil {
				logger.Warn("Scoring attempt %d failed: %v", attempt.Sequence, err)
				outcome.Warnings = append(outcome.Warnings,
					fmt.Sprintf("could not score attempt %d: %v", attempt.Sequence, err))
			} else {
				attempt.Grade = grade
				logger.Info("Attempt %d scored grade %s", attempt.Sequence, attempt.GradeLabel())
			}
			outcome.Attempts = append(outcome.Attempts, attempt)

			switch {
			case attempt.Grade != nil && *attempt.Grade <= s.TargetGrade:
				logger.Info("Target grade reached after %d attempt(s)", attempt.Sequence)
				state = stateDone
			case len(outcome.Attempts) > s.MaxAttempts:
				logger.Info("Rewrite cap reached after %d attempt(s)", attempt.Sequence)
				state = stateDone
			default:
				state = stateSelecting
			}

		case stateSelecting:
			term = s.selectTerm(current, defined)
			if term == "" {
				logger.Info("No jargon candidates left, stopping")
				state = stateDone
				break
			}
			logger.Debug("Selected term %q", term)
			state = stateDefining

		case stateDefining:
			instruction = fmt.Sprintf("Make sure to explain %q in simpler words.", term)
			entry, err := s.generation.DefineTerm(ctx, term)
			switch {
			case err != nil:
				logger.Warn("Defining %q failed: %v", term, err)
			case entry.Unavailable:
				logger.Warn("No definition available for %q", term)
			default:
				outcome.Defined = append(outcome.Defined, entry)
				instruction = fmt.Sprintf("The term %q means: %s Work this meaning into the explanation using simpler words.",
					entry.Term, entry.Definition)
			}
			defined[strings.ToLower(term)] = true
			state = stateRewriting

		case stateRewriting:
			rewritten, err := s.generation.Rewrite(ctx, current, instruction)
			if err != nil {
				logger.Warn("Rewrite failed: %v", err)
				outcome.Warnings = append(outcome.Warnings,
					fmt.Sprintf("rewrite stopped early: %v", err))
				state = stateDone
				break
			}
			current = rewritten
			state = stateScoring
		}
	}

	outcome.FinalText = outcome.Attempts[len(outcome.Attempts)-1].Text
	return outcome, nil
}

// score wraps the scorer, tolerating its absence.
func (s *Simplifier) score(text string) (*float64, error) {
	if s.scorer == nil {
		return nil, fmt.Errorf("readability scorer unavailable")
	}
	grade, err := s.scorer.Score(text)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// selectTerm picks the next jargon term to unpack: the hardest word in
// the text by syllable count, earliest occurrence breaking ties. A
// word qualifies when it is not a stopword, has not been defined this
// run, and has at least 3 syllables or 10 letters. Returns "" when
// nothing qualifies.
func (s *Simplifier) selectTerm(text string, defined map[string]bool) string {
	best := ""
	bestSyllables := 0

	for _, field := range strings.Fields(text) {
		word := normaliseWord(field)
		if word == "" || stopwords[word] || defined[word] {
			continue
		}

		syllables := fleschkincaid.Syllables(word)
		if syllables < 3 && len(word) < 10 {
			continue
		}
		if syllables > bestSyllables {
			best = word
			bestSyllables = syllables
		}
	}

	return best
}

// normaliseWord lowercases a token and strips surrounding punctuation.
// Tokens with interior non-letter characters are rejected so numbers,
// URLs and hyphenated composites never become candidate terms.
func normaliseWord(token string) string {
	word := strings.ToLower(strings.Trim(token, ".,;:!?\"'()[]{}"))
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return ""
		}
	}
	return word
}

// stopwords are common words never worth defining, regardless of
// length or syllable count.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "of": true, "in": true, "on": true, "at": true,
	"to": true, "from": true, "by": true, "with": true, "about": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "between": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "can": true, "may": true, "might": true,
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"he": true, "she": true, "his": true, "her": true, "we": true,
	"you": true, "your": true, "our": true, "us": true, "i": true,
	"not": true, "no": true, "nor": true, "so": true, "too": true,
	"very": true, "also": true, "just": true, "than": true, "then": true,
	"there": true, "here": true, "when": true, "where": true, "which": true,
	"who": true, "whom": true, "what": true, "why": true, "how": true,
	"all": true, "any": true, "both": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "same": true, "as": true, "because": true, "while": true,
	"however": true, "therefore": true, "another": true, "many": true,
	"usually": true, "often": true, "sometimes": true, "something": true,
	"anything": true, "everything": true, "example": true, "called": true,
}
