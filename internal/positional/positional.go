// Package positional assigns a bounded integer position to each character
// of a word, either by raw character index or by syllable group.
package positional

import (
	"errors"
	"fmt"

	"github.com/hashtok-ml/hashtok/internal/segment"
)

// ErrMaxPositional is returned for a non-positive position bound.
var ErrMaxPositional = errors.New("max positional must be positive")

// Bucketer maps a word to one position per character.
type Bucketer interface {
	Positions(word string) []int
}

// Precise assigns each character its own index, clamped at max-1.
type Precise struct {
	max int
}

// NewPrecise creates a precise bucketer with positions in [0, max).
func NewPrecise(max int) (*Precise, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrMaxPositional, max)
	}
	return &Precise{max: max}, nil
}

// Positions returns min(i, max-1) for each rune index i.
func (p *Precise) Positions(word string) []int {
	runes := []rune(word)
	positions := make([]int, len(runes))
	for i := range runes {
		positions[i] = min(i, p.max-1)
	}
	return positions
}

// Rough assigns every character of syllable j the position j, clamped at
// max-1. The syllabifier language is fixed at construction.
type Rough struct {
	max int
	syl segment.Syllabifier
}

// NewRough creates a rough bucketer for the given language. Unsupported
// languages fail here, not at call time.
func NewRough(max int, language string) (*Rough, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrMaxPositional, max)
	}
	syl, err := segment.NewSyllabifier(language)
	if err != nil {
		return nil, err
	}
	return &Rough{max: max, syl: syl}, nil
}

// Positions returns one position per rune of word, grouped by syllable.
func (r *Rough) Positions(word string) []int {
	var positions []int
	for j, syllable := range r.syl.Syllables(word) {
		pos := min(j, r.max-1)
		for range []rune(syllable) {
			positions = append(positions, pos)
		}
	}
	return positions
}
