package tokenizer

import (
	"fmt"

	"github.com/hashtok-ml/hashtok/internal/hashing"
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/spectral"
	"github.com/hashtok-ml/hashtok/internal/window"
)

func spectrogramDefaults() options {
	return options{
		batch:         parallel.DefaultConfig(),
		windowSize:    9,
		stride:        1,
		paddingValue:  -80,
		seed:          0,
		fftSize:       2000,
		hopLength:     100,
		trimThreshold: 1e-3,
		trimOffset:    500,
	}
}

// Spectrogram tokenizes raw audio signals through a spectrogram: the
// signal is trimmed of leading and trailing near-silence, transformed to a
// dB magnitude spectrogram, and the (frames, bins) matrix is sliced into
// square patches hashed with a window-squared projection basis.
type Spectrogram struct {
	quant     *hashing.Projection
	ex        *window.Extractor2D
	stft      *spectral.STFT
	threshold float64
	offset    int
	floorDB   float64
	batch     parallel.Config
}

// NewSpectrogram creates a spectrogram tokenizer. Defaults: FFT size
// 2000 with hop 100, 9x9 patches at stride 1, dB floor and pad value -80,
// silence threshold 1e-3 with 500 retained samples per side.
func NewSpectrogram(numEmbeddings int, opts ...Option) (*Spectrogram, error) {
	o := spectrogramDefaults()
	o.apply(opts)

	ex, err := window.New2D(o.windowSize, o.windowSize, o.stride, o.paddingValue)
	if err != nil {
		return nil, err
	}
	stft, err := spectral.New(o.fftSize, o.hopLength)
	if err != nil {
		return nil, err
	}
	quant, err := hashing.NewProjection(numEmbeddings, o.paddingIdx, o.windowSize*o.windowSize, o.seed)
	if err != nil {
		return nil, err
	}
	return &Spectrogram{
		quant:     quant,
		ex:        ex,
		stft:      stft,
		threshold: o.trimThreshold,
		offset:    o.trimOffset,
		floorDB:   o.paddingValue,
		batch:     o.batch,
	}, nil
}

// Tokenize trims the signal, computes its dB spectrogram and slices it
// into a (outputHeight, outputWidth, window, window) patch grid. The
// trimmed signal must cover at least one FFT frame and the spectrogram
// must cover at least one patch.
func (t *Spectrogram) Tokenize(signal []float64) ([][][][]float64, error) {
	trimmed := spectral.Trim(signal, t.threshold, t.offset)
	spec, err := t.stft.Magnitude(trimmed, t.floorDB)
	if err != nil {
		return nil, fmt.Errorf("spectrogram tokenizer: %w", err)
	}
	patches, err := t.ex.Slide(spec)
	if err != nil {
		return nil, fmt.Errorf("spectrogram tokenizer: %w", err)
	}
	return patches, nil
}

// Numerize hashes each patch, producing an (outputHeight, outputWidth)
// id grid.
func (t *Spectrogram) Numerize(patches [][][][]float64) ([][]int, error) {
	ids := make([][]int, len(patches))
	for i, row := range patches {
		rowIDs := make([]int, len(row))
		for j, patch := range row {
			id, err := t.quant.QuantizeFlat(patch)
			if err != nil {
				return nil, fmt.Errorf("spectrogram tokenizer: %w", err)
			}
			rowIDs[j] = id
		}
		ids[i] = rowIDs
	}
	return ids, nil
}

// Call tokenizes and numerizes each signal, preserving order. A failing
// signal fails the whole batch.
func (t *Spectrogram) Call(signals [][]float64) ([][][]int, error) {
	return parallel.MapErr(signals, t.batch, func(signal []float64) ([][]int, error) {
		patches, err := t.Tokenize(signal)
		if err != nil {
			return nil, err
		}
		return t.Numerize(patches)
	})
}
