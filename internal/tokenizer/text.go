package tokenizer

import (
	"errors"
	"fmt"

	"github.com/hashtok-ml/hashtok/internal/gram"
	"github.com/hashtok-ml/hashtok/internal/hashing"
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/segment"
)

// ErrGramSize is returned for non-positive n-gram or skip-gram sizes.
var ErrGramSize = errors.New("gram sizes must be positive")

// Default gram configuration.
var (
	defaultNgrams    = []int{3, 4, 5, 6}
	defaultSkipGrams = []int{2, 3}
)

func textDefaults() options {
	return options{
		segmenter:     segment.NewWords(),
		batch:         parallel.DefaultConfig(),
		ngrams:        defaultNgrams,
		skipGrams:     defaultSkipGrams,
		maxPositional: 10,
	}
}

// Word hashes each segmented word to one id.
type Word struct {
	quant *hashing.Digest
	seg   segment.Segmenter
	batch parallel.Config
}

// NewWord creates a word-level tokenizer.
func NewWord(numEmbeddings int, opts ...Option) (*Word, error) {
	o := textDefaults()
	o.apply(opts)

	quant, err := hashing.NewDigest(numEmbeddings, o.paddingIdx)
	if err != nil {
		return nil, err
	}
	return &Word{quant: quant, seg: o.segmenter, batch: o.batch}, nil
}

// Tokenize splits text into word tokens.
func (t *Word) Tokenize(text string) []string {
	return t.seg.Segment(text)
}

// Numerize hashes each token to an id.
func (t *Word) Numerize(tokens []string) []int {
	ids := make([]int, len(tokens))
	for i, token := range tokens {
		ids[i] = t.quant.Quantize(token)
	}
	return ids
}

// Call tokenizes and numerizes each input, preserving order.
func (t *Word) Call(texts []string) ([][]int, error) {
	return parallel.MapErr(texts, t.batch, func(text string) ([]int, error) {
		return t.Numerize(t.Tokenize(text)), nil
	})
}

// Ngram hashes the n-grams and skip-grams of each word.
type Ngram struct {
	quant     *hashing.Digest
	seg       segment.Segmenter
	ngrams    []int
	skipGrams []int
	batch     parallel.Config
}

// NewNgram creates an n-gram tokenizer. Default gram sizes are 3-6 with
// skip steps 2 and 3.
func NewNgram(numEmbeddings int, opts ...Option) (*Ngram, error) {
	o := textDefaults()
	o.apply(opts)

	for _, n := range o.ngrams {
		if n <= 0 {
			return nil, fmt.Errorf("%w: ngram %d", ErrGramSize, n)
		}
	}
	for _, k := range o.skipGrams {
		if k <= 0 {
			return nil, fmt.Errorf("%w: skip-gram %d", ErrGramSize, k)
		}
	}

	quant, err := hashing.NewDigest(numEmbeddings, o.paddingIdx)
	if err != nil {
		return nil, err
	}
	return &Ngram{
		quant:     quant,
		seg:       o.segmenter,
		ngrams:    o.ngrams,
		skipGrams: o.skipGrams,
		batch:     o.batch,
	}, nil
}

// Tokenize returns, per word, all configured n-grams followed by all
// configured skip-grams, each list in its configured size order.
func (t *Ngram) Tokenize(text string) [][]string {
	words := t.seg.Segment(text)
	tokens := make([][]string, len(words))
	for i, word := range words {
		var grams []string
		for _, n := range t.ngrams {
			grams = append(grams, gram.Ngrams(word, n)...)
		}
		for _, k := range t.skipGrams {
			grams = append(grams, gram.SkipGrams(word, k)...)
		}
		tokens[i] = grams
	}
	return tokens
}

// Numerize hashes each gram, mirroring the nested structure.
func (t *Ngram) Numerize(tokens [][]string) [][]int {
	ids := make([][]int, len(tokens))
	for i, grams := range tokens {
		wordIDs := make([]int, len(grams))
		for j, g := range grams {
			wordIDs[j] = t.quant.Quantize(g)
		}
		ids[i] = wordIDs
	}
	return ids
}

// Call tokenizes and numerizes each input, preserving order.
func (t *Ngram) Call(texts []string) ([][][]int, error) {
	return parallel.MapErr(texts, t.batch, func(text string) ([][]int, error) {
		return t.Numerize(t.Tokenize(text)), nil
	})
}

// Character hashes each character of each word.
type Character struct {
	quant *hashing.Digest
	seg   segment.Segmenter
	batch parallel.Config
}

// NewCharacter creates a character-level tokenizer.
func NewCharacter(numEmbeddings int, opts ...Option) (*Character, error) {
	o := textDefaults()
	o.apply(opts)

	quant, err := hashing.NewDigest(numEmbeddings, o.paddingIdx)
	if err != nil {
		return nil, err
	}
	return &Character{quant: quant, seg: o.segmenter, batch: o.batch}, nil
}

// Tokenize returns the characters of each word as strings.
func (t *Character) Tokenize(text string) [][]string {
	words := t.seg.Segment(text)
	tokens := make([][]string, len(words))
	for i, word := range words {
		runes := []rune(word)
		chars := make([]string, len(runes))
		for j, r := range runes {
			chars[j] = string(r)
		}
		tokens[i] = chars
	}
	return tokens
}

// Numerize hashes each character, mirroring the nested structure.
func (t *Character) Numerize(tokens [][]string) [][]int {
	ids := make([][]int, len(tokens))
	for i, chars := range tokens {
		wordIDs := make([]int, len(chars))
		for j, c := range chars {
			wordIDs[j] = t.quant.Quantize(c)
		}
		ids[i] = wordIDs
	}
	return ids
}

// Call tokenizes and numerizes each input, preserving order.
func (t *Character) Call(texts []string) ([][][]int, error) {
	return parallel.MapErr(texts, t.batch, func(text string) ([][]int, error) {
		return t.Numerize(t.Tokenize(text)), nil
	})
}
