package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjection_BasisShape(t *testing.T) {
	tests := []struct {
		name          string
		numEmbeddings int
		dim           int
		wantBits      int
	}{
		{name: "1000 needs 10 bits", numEmbeddings: 1000, dim: 8, wantBits: 10},
		{name: "1024 needs 10 bits", numEmbeddings: 1024, dim: 8, wantBits: 10},
		{name: "1025 needs 11 bits", numEmbeddings: 1025, dim: 8, wantBits: 11},
		{name: "100 needs 7 bits", numEmbeddings: 100, dim: 3, wantBits: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProjection(tt.numEmbeddings, 0, tt.dim, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBits, p.Bits())
			require.Len(t, p.Basis(), tt.wantBits)
			for _, row := range p.Basis() {
				assert.Len(t, row, tt.dim)
			}
		})
	}
}

func TestNewProjection_Validation(t *testing.T) {
	_, err := NewProjection(1000, 0, 0, 0)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = NewProjection(3, 0, 4, 0)
	assert.ErrorIs(t, err, ErrVocabSize)
}

func TestProjection_BasisReproducible(t *testing.T) {
	p1, err := NewProjection(1000, 0, 16, 42)
	require.NoError(t, err)
	p2, err := NewProjection(1000, 0, 16, 42)
	require.NoError(t, err)

	assert.Equal(t, p1.Basis(), p2.Basis())

	p3, err := NewProjection(1000, 0, 16, 43)
	require.NoError(t, err)
	assert.NotEqual(t, p1.Basis(), p3.Basis())
}

func TestProjection_Quantize(t *testing.T) {
	p, err := NewProjection(1000, 0, 4, 7)
	require.NoError(t, err)

	win := []float64{0.5, -1.2, 3.4, 0.1}

	id1, err := p.Quantize(win)
	require.NoError(t, err)
	id2, err := p.Quantize(win)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.GreaterOrEqual(t, id1, p.Reserved())
	assert.Less(t, id1, 1000)
}

func TestProjection_Quantize_DimMismatch(t *testing.T) {
	p, err := NewProjection(1000, 0, 4, 0)
	require.NoError(t, err)

	_, err = p.Quantize([]float64{1, 2})
	assert.ErrorIs(t, err, ErrDimMatch)
}

func TestProjection_Quantize_ScaleInvariantSigns(t *testing.T) {
	// Sign hashing depends only on direction: a positively scaled window
	// hashes to the same id.
	p, err := NewProjection(4096, 0, 8, 3)
	require.NoError(t, err)

	win := []float64{1, -2, 3, -4, 5, -6, 7, -8}
	scaled := make([]float64, len(win))
	for i, v := range win {
		scaled[i] = v * 100
	}

	id1, err := p.Quantize(win)
	require.NoError(t, err)
	id2, err := p.Quantize(scaled)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestProjection_QuantizeFlat(t *testing.T) {
	p, err := NewProjection(1000, 0, 4, 0)
	require.NoError(t, err)

	flatID, err := p.Quantize([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	matID, err := p.QuantizeFlat([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, flatID, matID)
}
