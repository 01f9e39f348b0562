package fleschkincaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
)

func TestScore_EmptyText(t *testing.T) {
	scorer := New()

	_, err := scorer.Score("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = scorer.Score("   \n ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScore_TooShort(t *testing.T) {
	scorer := New()

	_, err := scorer.Score("Gravity.")
	assert.ErrorIs(t, err, domain.ErrUnscorableText)

	_, err = scorer.Score("Two words.")
	assert.ErrorIs(t, err, domain.ErrUnscorableText)
}

func TestScore_SimpleSentence(t *testing.T) {
	scorer := New()

	// 6 words, 1 sentence, 6 syllables:
	// 0.39*6 + 11.8*1 - 15.59 = -1.45
	grade, err := scorer.Score("The cat sat on the mat.")
	require.NoError(t, err)
	assert.InDelta(t, -1.45, grade, 0.01)
}

func TestScore_UnterminatedFragmentCountsAsOneSentence(t *testing.T) {
	scorer := New()

	withPeriod, err := scorer.Score("The cat sat on the mat.")
	require.NoError(t, err)

	withoutPeriod, err := scorer.Score("The cat sat on the mat")
	require.NoError(t, err)

	assert.InDelta(t, withPeriod, withoutPeriod, 0.001)
}

func TestScore_ComplexTextGradesHigher(t *testing.T) {
	scorer := New()

	simple, err := scorer.Score("Plants eat light. The sun helps them grow. Leaves are green.")
	require.NoError(t, err)

	complex, err := scorer.Score(
		"Photosynthesis is the physiological mechanism whereby chlorophyll-containing organisms " +
			"transduce electromagnetic radiation into chemically utilisable energy.")
	require.NoError(t, err)

	assert.Greater(t, complex, simple)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := New()
	text := "Photosynthesis is the process by which plants convert light energy into chemical energy."

	first, err := scorer.Score(text)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := scorer.Score(text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"make", 1},
		{"apple", 2},
		{"table", 2},
		{"water", 2},
		{"banana", 3},
		{"gravity", 3},
		{"photosynthesis", 5},
		{"chlorophyll", 3},
		{"a", 1},
		{"rhythm", 1},
		{"", 1},
		{"(listen)", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word), "word %q", tt.word)
		})
	}
}
