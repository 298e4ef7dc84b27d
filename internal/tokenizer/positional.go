package tokenizer

import (
	"github.com/hashtok-ml/hashtok/internal/hashing"
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/positional"
	"github.com/hashtok-ml/hashtok/internal/segment"
)

// PositionedChars pairs the characters of one word with their positions.
type PositionedChars struct {
	Chars     []string
	Positions []int
}

// PositionedIDs pairs hashed character ids with their positions.
type PositionedIDs struct {
	IDs       []int
	Positions []int
}

// Positional hashes each character of each word and attaches a bounded
// position, either the raw character index or the syllable index.
type Positional struct {
	quant   *hashing.Digest
	seg     segment.Segmenter
	buckets positional.Bucketer
	batch   parallel.Config
}

// NewPrecisePositional creates a positional tokenizer using raw character
// indices, clamped at maxPositional-1 (default bound 10).
func NewPrecisePositional(numEmbeddings int, opts ...Option) (*Positional, error) {
	o := textDefaults()
	o.apply(opts)

	buckets, err := positional.NewPrecise(o.maxPositional)
	if err != nil {
		return nil, err
	}
	return newPositional(numEmbeddings, o, buckets)
}

// NewRoughPositional creates a positional tokenizer using syllable
// indices. The language must be in the supported set; anything else fails
// here rather than at call time.
func NewRoughPositional(numEmbeddings int, language string, opts ...Option) (*Positional, error) {
	o := textDefaults()
	o.apply(opts)

	buckets, err := positional.NewRough(o.maxPositional, language)
	if err != nil {
		return nil, err
	}
	return newPositional(numEmbeddings, o, buckets)
}

func newPositional(numEmbeddings int, o options, buckets positional.Bucketer) (*Positional, error) {
	quant, err := hashing.NewDigest(numEmbeddings, o.paddingIdx)
	if err != nil {
		return nil, err
	}
	return &Positional{quant: quant, seg: o.segmenter, buckets: buckets, batch: o.batch}, nil
}

// Tokenize returns, per word, its characters paired with their positions.
func (t *Positional) Tokenize(text string) []PositionedChars {
	words := t.seg.Segment(text)
	tokens := make([]PositionedChars, len(words))
	for i, word := range words {
		runes := []rune(word)
		chars := make([]string, len(runes))
		for j, r := range runes {
			chars[j] = string(r)
		}
		tokens[i] = PositionedChars{Chars: chars, Positions: t.buckets.Positions(word)}
	}
	return tokens
}

// Numerize hashes the characters of each word, carrying positions through
// unchanged.
func (t *Positional) Numerize(tokens []PositionedChars) []PositionedIDs {
	out := make([]PositionedIDs, len(tokens))
	for i, word := range tokens {
		ids := make([]int, len(word.Chars))
		for j, c := range word.Chars {
			ids[j] = t.quant.Quantize(c)
		}
		out[i] = PositionedIDs{IDs: ids, Positions: word.Positions}
	}
	return out
}

// Call tokenizes and numerizes each input, preserving order.
func (t *Positional) Call(texts []string) ([][]PositionedIDs, error) {
	return parallel.MapErr(texts, t.batch, func(text string) ([]PositionedIDs, error) {
		return t.Numerize(t.Tokenize(text)), nil
	})
}
