package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_Segment(t *testing.T) {
	seg := NewWords()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain words",
			text: "the quick fox",
			want: []string{"the", "quick", "fox"},
		},
		{
			name: "punctuation split off",
			text: "hello, world!",
			want: []string{"hello", ",", "world", "!"},
		},
		{
			name: "contraction",
			text: "don't stop",
			want: []string{"don", "'t", "stop"},
		},
		{
			name: "digits",
			text: "room 404",
			want: []string{"room", "404"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.text))
		})
	}
}

func TestWhole_Segment(t *testing.T) {
	assert.Equal(t, []string{"hello world"}, Whole{}.Segment("hello world"))
	assert.Nil(t, Whole{}.Segment(""))
}

func TestNewSyllabifier_UnsupportedLanguage(t *testing.T) {
	_, err := NewSyllabifier("fr")
	assert.ErrorIs(t, err, ErrLanguage)

	_, err = NewSyllabifier("")
	assert.ErrorIs(t, err, ErrLanguage)
}

func TestEnglishSyllabifier(t *testing.T) {
	syl, err := NewSyllabifier("en")
	require.NoError(t, err)

	tests := []struct {
		word string
		want []string
	}{
		{word: "hello", want: []string{"hel", "lo"}},
		{word: "baker", want: []string{"ba", "ker"}},
		{word: "cat", want: []string{"cat"}},
		{word: "a", want: []string{"a"}},
		{word: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, syl.Syllables(tt.word))
		})
	}
}

func TestSyllabifiers_Reconstruct(t *testing.T) {
	// Concatenating the syllables must reproduce the word exactly.
	en, err := NewSyllabifier("en")
	require.NoError(t, err)
	th, err := NewSyllabifier("th")
	require.NoError(t, err)

	enWords := []string{"tokenization", "strengths", "aeiou", "rhythm", "xyz"}
	for _, w := range enWords {
		assert.Equal(t, w, strings.Join(en.Syllables(w), ""), "word %q", w)
	}

	thWords := []string{"สวัสดี", "เมืองไทย"}
	for _, w := range thWords {
		assert.Equal(t, w, strings.Join(th.Syllables(w), ""), "word %q", w)
	}
}

func TestThaiSyllabifier_SplitsAtLeadingVowel(t *testing.T) {
	th, err := NewSyllabifier("th")
	require.NoError(t, err)

	// เมืองไทย contains two leading vowels; expect a split before each
	// (the first is word-initial so it opens the first syllable).
	sylls := th.Syllables("เมืองไทย")
	assert.Len(t, sylls, 2)
}
