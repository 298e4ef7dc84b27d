package hashing

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Projection errors.
var (
	ErrDimension = errors.New("projection dimension must be positive")
	ErrDimMatch  = errors.New("window length does not match projection dimension")
)

// Projection quantizes numeric windows via random-hyperplane sign hashing.
//
// The basis has ceil(log2(numEmbeddings)) rows of dim Gaussian entries,
// drawn from an instance-local generator seeded at construction. The basis
// is immutable afterwards, so a Projection is safe for concurrent use.
type Projection struct {
	numEmbeddings int
	reserved      int
	dim           int
	basis         [][]float64
}

// NewProjection creates a projection quantizer for windows of length dim.
// The same seed, dim and numEmbeddings always reproduce the same basis.
func NewProjection(numEmbeddings, paddingIdx, dim int, seed uint64) (*Projection, error) {
	reserved, err := reservedRange(numEmbeddings, paddingIdx)
	if err != nil {
		return nil, err
	}
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrDimension, dim)
	}

	bits := int(math.Ceil(math.Log2(float64(numEmbeddings))))
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewPCG(seed, seed),
	}

	// Row-major fill order is part of the determinism contract.
	basis := make([][]float64, bits)
	for i := range basis {
		row := make([]float64, dim)
		for j := range row {
			row[j] = normal.Rand()
		}
		basis[i] = row
	}

	return &Projection{
		numEmbeddings: numEmbeddings,
		reserved:      reserved,
		dim:           dim,
		basis:         basis,
	}, nil
}

// NumEmbeddings returns the vocabulary ceiling.
func (p *Projection) NumEmbeddings() int { return p.numEmbeddings }

// Reserved returns the first id the hashing path may produce.
func (p *Projection) Reserved() int { return p.reserved }

// Dim returns the expected window length.
func (p *Projection) Dim() int { return p.dim }

// Bits returns the number of hyperplanes, ceil(log2(numEmbeddings)).
func (p *Projection) Bits() int { return len(p.basis) }

// Basis returns the hyperplane matrix. The caller must not modify it.
func (p *Projection) Basis() [][]float64 { return p.basis }

// Quantize maps a window to an id in [Reserved, NumEmbeddings). Bit k of
// the hash is 1 iff the dot product with basis row k is strictly positive;
// bits are packed most-significant first.
func (p *Projection) Quantize(win []float64) (int, error) {
	if len(win) != p.dim {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimMatch, len(win), p.dim)
	}

	id := 0
	for _, plane := range p.basis {
		id <<= 1
		if floats.Dot(win, plane) > 0 {
			id |= 1
		}
	}
	id %= p.numEmbeddings
	return max(id, p.reserved), nil
}

// QuantizeFlat flattens a matrix window row-major and quantizes it.
func (p *Projection) QuantizeFlat(win [][]float64) (int, error) {
	flat := make([]float64, 0, p.dim)
	for _, row := range win {
		flat = append(flat, row...)
	}
	return p.Quantize(flat)
}
