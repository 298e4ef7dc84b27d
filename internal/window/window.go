package window

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrWindowSize  = errors.New("window size must be positive")
	ErrStride      = errors.New("stride must be positive")
	ErrShortInput  = errors.New("input shorter than window")
	ErrRaggedInput = errors.New("matrix rows have unequal length")
)

// Extractor1D slices a sequence into overlapping fixed-size windows.
type Extractor1D struct {
	size     int
	stride   int
	padValue float64
}

// New1D creates a 1D window extractor.
func New1D(size, stride int, padValue float64) (*Extractor1D, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrStride, stride)
	}
	return &Extractor1D{size: size, stride: stride, padValue: padValue}, nil
}

// Size returns the window size.
func (e *Extractor1D) Size() int { return e.size }

// NumWindows returns the number of windows produced for a sequence of
// length n, i.e. ceil((n-size)/stride + 1). Only valid for n >= size.
func (e *Extractor1D) NumWindows(n int) int {
	return ceilDiv(n-e.size, e.stride) + 1
}

// Slide returns every window of the sequence. The sequence is right-padded
// with the pad value so the final window has exactly size elements.
// Each window is an independent copy; the input is not modified.
func (e *Extractor1D) Slide(seq []float64) ([][]float64, error) {
	n := len(seq)
	if n < e.size {
		return nil, fmt.Errorf("%w: length %d, window %d", ErrShortInput, n, e.size)
	}

	count := e.NumWindows(n)
	padding := (count-1)*e.stride - n + e.size

	padded := seq
	if padding > 0 {
		padded = make([]float64, n+padding)
		copy(padded, seq)
		for i := n; i < len(padded); i++ {
			padded[i] = e.padValue
		}
	}

	windows := make([][]float64, count)
	for i := 0; i < count; i++ {
		w := make([]float64, e.size)
		copy(w, padded[i*e.stride:i*e.stride+e.size])
		windows[i] = w
	}
	return windows, nil
}

// Extractor2D slices a matrix into overlapping fixed-size patches.
// The same padding formula is applied independently per axis.
type Extractor2D struct {
	height   int
	width    int
	stride   int
	padValue float64
}

// New2D creates a 2D window extractor.
func New2D(height, width, stride int, padValue float64) (*Extractor2D, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrWindowSize, height, width)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrStride, stride)
	}
	return &Extractor2D{height: height, width: width, stride: stride, padValue: padValue}, nil
}

// Height returns the window height.
func (e *Extractor2D) Height() int { return e.height }

// Width returns the window width.
func (e *Extractor2D) Width() int { return e.width }

// Slide returns the patch collection of shape
// (outputHeight, outputWidth, height, width). The matrix is padded at the
// bottom and right, each axis by its own padding amount, so every patch is
// fully populated. Row and column offsets advance independently.
func (e *Extractor2D) Slide(m [][]float64) ([][][][]float64, error) {
	rows := len(m)
	if rows < e.height {
		return nil, fmt.Errorf("%w: %d rows, window height %d", ErrShortInput, rows, e.height)
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedInput, i, len(row), cols)
		}
	}
	if cols < e.width {
		return nil, fmt.Errorf("%w: %d columns, window width %d", ErrShortInput, cols, e.width)
	}

	outH := ceilDiv(rows-e.height, e.stride) + 1
	outW := ceilDiv(cols-e.width, e.stride) + 1
	padH := (outH-1)*e.stride - rows + e.height
	padW := (outW-1)*e.stride - cols + e.width

	padded := make([][]float64, rows+padH)
	for i := range padded {
		r := make([]float64, cols+padW)
		if i < rows {
			copy(r, m[i])
			for j := cols; j < len(r); j++ {
				r[j] = e.padValue
			}
		} else {
			for j := range r {
				r[j] = e.padValue
			}
		}
		padded[i] = r
	}

	patches := make([][][][]float64, outH)
	for i := 0; i < outH; i++ {
		patches[i] = make([][][]float64, outW)
		startY := i * e.stride
		for j := 0; j < outW; j++ {
			startX := j * e.stride
			patch := make([][]float64, e.height)
			for y := 0; y < e.height; y++ {
				row := make([]float64, e.width)
				copy(row, padded[startY+y][startX:startX+e.width])
				patch[y] = row
			}
			patches[i][j] = patch
		}
	}
	return patches, nil
}

// ceilDiv computes ceil(a/b) for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
