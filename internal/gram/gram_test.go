package gram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNgrams(t *testing.T) {
	tests := []struct {
		name string
		word string
		n    int
		want []string
	}{
		{name: "hello trigrams", word: "hello", n: 3, want: []string{"hel", "ell", "llo"}},
		{name: "word shorter than n", word: "hi", n: 3, want: nil},
		{name: "word equals n", word: "cat", n: 3, want: []string{"cat"}},
		{name: "unigrams", word: "abc", n: 1, want: []string{"a", "b", "c"}},
		{name: "empty word", word: "", n: 2, want: nil},
		{name: "non-positive n", word: "hello", n: 0, want: nil},
		{name: "multibyte runes", word: "héllo", n: 2, want: []string{"hé", "él", "ll", "lo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ngrams(tt.word, tt.n))
		})
	}
}

func TestSkipGrams(t *testing.T) {
	tests := []struct {
		name string
		word string
		step int
		want []string
	}{
		{name: "hello step two", word: "hello", step: 2, want: []string{"hlo", "el"}},
		{name: "hello step three", word: "hello", step: 3, want: []string{"hl", "eo", "l"}},
		{name: "step one is identity", word: "abc", step: 1, want: []string{"abc"}},
		{name: "step beyond length", word: "ab", step: 5, want: []string{"a", "b"}},
		{name: "empty word", word: "", step: 2, want: nil},
		{name: "non-positive step", word: "abc", step: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipGrams(tt.word, tt.step))
		})
	}
}
