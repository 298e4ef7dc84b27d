// Package tokenizer is the public API for hashtok's feature-hashing
// tokenizers.
//
// It wraps the internal implementations and exposes one facade per input
// modality. Every facade maps raw inputs to integer token ids in
// [paddingIdx+5, numEmbeddings) without building a vocabulary: strings
// are hashed with SHA3-224, numeric windows with random-hyperplane
// locality-sensitive hashing.
//
// Example usage:
//
//	import "github.com/hashtok-ml/hashtok/tokenizer"
//
//	tok, err := tokenizer.NewNgram(50000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ids, err := tok.Call([]string{"feature hashing needs no vocab"})
package tokenizer

import (
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/segment"
	"github.com/hashtok-ml/hashtok/internal/tokenizer"
)

// Option configures a facade at construction time.
type Option = tokenizer.Option

// Segmenter splits raw text into the units a text facade hashes.
type Segmenter = segment.Segmenter

// ParallelConfig controls how Call fans a batch out over workers.
type ParallelConfig = parallel.Config

// DefaultParallelConfig enables parallel batches sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Facades.
type (
	// Word hashes each segmented word to one id.
	Word = tokenizer.Word
	// Ngram hashes the n-grams and skip-grams of each word.
	Ngram = tokenizer.Ngram
	// Character hashes each character of each word.
	Character = tokenizer.Character
	// Positional hashes characters and attaches bounded positions.
	Positional = tokenizer.Positional
	// Signal hashes sliding windows of a 1D signal.
	Signal = tokenizer.Signal
	// Image hashes sliding patches of a 2D matrix.
	Image = tokenizer.Image
	// Spectrogram hashes patches of a signal's dB spectrogram.
	Spectrogram = tokenizer.Spectrogram
)

// Structures returned by the positional facades.
type (
	PositionedChars = tokenizer.PositionedChars
	PositionedIDs   = tokenizer.PositionedIDs
)

// NewWord creates a word-level tokenizer.
func NewWord(numEmbeddings int, opts ...Option) (*Word, error) {
	return tokenizer.NewWord(numEmbeddings, opts...)
}

// NewNgram creates an n-gram/skip-gram tokenizer.
func NewNgram(numEmbeddings int, opts ...Option) (*Ngram, error) {
	return tokenizer.NewNgram(numEmbeddings, opts...)
}

// NewCharacter creates a character-level tokenizer.
func NewCharacter(numEmbeddings int, opts ...Option) (*Character, error) {
	return tokenizer.NewCharacter(numEmbeddings, opts...)
}

// NewPrecisePositional creates a positional tokenizer using raw character
// indices.
func NewPrecisePositional(numEmbeddings int, opts ...Option) (*Positional, error) {
	return tokenizer.NewPrecisePositional(numEmbeddings, opts...)
}

// NewRoughPositional creates a positional tokenizer using syllable
// indices for a supported language ("en", "th").
func NewRoughPositional(numEmbeddings int, language string, opts ...Option) (*Positional, error) {
	return tokenizer.NewRoughPositional(numEmbeddings, language, opts...)
}

// NewSignal creates a raw-signal tokenizer.
func NewSignal(numEmbeddings int, opts ...Option) (*Signal, error) {
	return tokenizer.NewSignal(numEmbeddings, opts...)
}

// NewSignalDerivative creates a tokenizer over a signal's first
// difference.
func NewSignalDerivative(numEmbeddings int, opts ...Option) (*Signal, error) {
	return tokenizer.NewSignalDerivative(numEmbeddings, opts...)
}

// NewImage creates an image tokenizer.
func NewImage(numEmbeddings int, opts ...Option) (*Image, error) {
	return tokenizer.NewImage(numEmbeddings, opts...)
}

// NewSpectrogram creates a spectrogram tokenizer.
func NewSpectrogram(numEmbeddings int, opts ...Option) (*Spectrogram, error) {
	return tokenizer.NewSpectrogram(numEmbeddings, opts...)
}

// Construction options re-exported from the internal package.
var (
	WithPaddingIdx    = tokenizer.WithPaddingIdx
	WithSegmenter     = tokenizer.WithSegmenter
	WithWholeWords    = tokenizer.WithWholeWords
	WithParallel      = tokenizer.WithParallel
	WithNgrams        = tokenizer.WithNgrams
	WithSkipGrams     = tokenizer.WithSkipGrams
	WithMaxPositional = tokenizer.WithMaxPositional
	WithWindowSize    = tokenizer.WithWindowSize
	WithWindowShape   = tokenizer.WithWindowShape
	WithStride        = tokenizer.WithStride
	WithPaddingValue  = tokenizer.WithPaddingValue
	WithSeed          = tokenizer.WithSeed
	WithFFT           = tokenizer.WithFFT
	WithSilenceTrim   = tokenizer.WithSilenceTrim
)
