// Package fleschkincaid estimates the U.S. school grade level required to
// comprehend a text, using the Flesch-Kincaid grade formula:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// The scorer is pure and deterministic. Texts too short to score
// meaningfully fail with domain.ErrUnscorableText instead of returning a
// misleading zero.
package fleschkincaid

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.ReadabilityScorer = (*Scorer)(nil)

// minWords is the smallest word count for which a grade is meaningful.
const minWords = 3

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	nonLetterRe   = regexp.MustCompile(`[^a-z]`)
)

// Scorer computes Flesch-Kincaid grade levels.
type Scorer struct{}

// New creates a new Flesch-Kincaid scorer.
func New() *Scorer {
	return &Scorer{}
}

// Score returns the estimated grade level for text.
func (s *Scorer) Score(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, domain.ErrInvalidInput
	}

	words := fields(text)
	if len(words) < minWords {
		return 0, domain.ErrUnscorableText
	}

	sentences := len(sentenceEndRe.FindAllString(text, -1))
	if sentences == 0 {
		// An unterminated fragment still reads as one sentence.
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	wordCount := float64(len(words))
	grade := 0.39*(wordCount/float64(sentences)) + 11.8*(float64(syllables)/wordCount) - 15.59
	return grade, nil
}

// fields splits text into words that contain at least one letter or digit.
func fields(text string) []string {
	raw := strings.Fields(text)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if strings.ContainsFunc(w, isAlphanumeric) {
			words = append(words, w)
		}
	}
	return words
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Syllables estimates the syllable count of a single word using a
// vowel-group heuristic with silent-e handling. Minimum result is 1.
// The simplification controller also uses this to rank jargon candidates.
func Syllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if w == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Trailing silent e, but not the "-le" ending (table, apple).
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}
