package positional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashtok-ml/hashtok/internal/segment"
)

func TestNewPrecise_Validation(t *testing.T) {
	_, err := NewPrecise(0)
	assert.ErrorIs(t, err, ErrMaxPositional)

	_, err = NewPrecise(-2)
	assert.ErrorIs(t, err, ErrMaxPositional)
}

func TestPrecise_Positions(t *testing.T) {
	p, err := NewPrecise(10)
	require.NoError(t, err)

	tests := []struct {
		name string
		word string
		want []int
	}{
		{
			name: "clamped at bound",
			word: "abcdefghijkl", // 12 chars, max 10
			want: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 9, 9},
		},
		{
			name: "short word",
			word: "cat",
			want: []int{0, 1, 2},
		},
		{
			name: "empty word",
			word: "",
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Positions(tt.word))
		})
	}
}

func TestNewRough_UnsupportedLanguage(t *testing.T) {
	_, err := NewRough(10, "de")
	assert.ErrorIs(t, err, segment.ErrLanguage)
}

func TestRough_Positions(t *testing.T) {
	r, err := NewRough(10, "en")
	require.NoError(t, err)

	// "hello" syllabifies as hel|lo.
	assert.Equal(t, []int{0, 0, 0, 1, 1}, r.Positions("hello"))

	// One position per rune, always.
	for _, word := range []string{"tokenization", "a", "strengths"} {
		positions := r.Positions(word)
		assert.Len(t, positions, len([]rune(word)), "word %q", word)
	}
}

func TestRough_Positions_Clamped(t *testing.T) {
	r, err := NewRough(2, "en")
	require.NoError(t, err)

	// Every syllable past the second maps to position 1.
	for _, pos := range r.Positions("tokenization") {
		assert.LessOrEqual(t, pos, 1)
	}
}
