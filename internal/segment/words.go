package segment

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Segmenter splits raw text into an ordered list of word-level tokens.
type Segmenter interface {
	Segment(text string) []string
}

// wordPattern follows the tiktoken family of splitting patterns:
// contractions, letter runs, short digit runs, punctuation runs, and
// whitespace (kept separate via lookahead, then discarded).
const wordPattern = `'(?i:[sdmt]|ll|ve|re)|\p{L}+|\p{N}{1,3}|[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

// Words is the default word segmenter.
type Words struct {
	re *regexp2.Regexp
}

// NewWords creates the default segmenter.
func NewWords() *Words {
	return &Words{re: regexp2.MustCompile(wordPattern, regexp2.None)}
}

// Segment returns the word and punctuation tokens of text in order,
// dropping whitespace.
func (w *Words) Segment(text string) []string {
	var tokens []string
	m, err := w.re.FindStringMatch(text)
	for err == nil && m != nil {
		tok := m.String()
		if strings.TrimSpace(tok) != "" {
			tokens = append(tokens, tok)
		}
		m, err = w.re.FindNextMatch(m)
	}
	return tokens
}

// Whole treats every input as a single pre-segmented word.
type Whole struct{}

// Segment returns the input unchanged as a one-element list, or an empty
// list for empty input.
func (Whole) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}
