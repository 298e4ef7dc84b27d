package tokenizer

import (
	"fmt"

	"github.com/hashtok-ml/hashtok/internal/hashing"
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/window"
)

func signalDefaults() options {
	return options{
		batch:        parallel.DefaultConfig(),
		windowSize:   1000,
		stride:       100,
		paddingValue: 0,
		seed:         0,
	}
}

// Signal tokenizes 1D signals by sliding-window extraction and
// random-hyperplane hashing of each window.
type Signal struct {
	quant      *hashing.Projection
	ex         *window.Extractor1D
	derivative bool
	batch      parallel.Config
}

// NewSignal creates a raw-signal tokenizer. Defaults: window 1000,
// stride 100, pad value 0, seed 0.
func NewSignal(numEmbeddings int, opts ...Option) (*Signal, error) {
	return newSignal(numEmbeddings, false, opts)
}

// NewSignalDerivative creates a signal tokenizer that windows the first
// difference of the signal instead of the raw samples.
func NewSignalDerivative(numEmbeddings int, opts ...Option) (*Signal, error) {
	return newSignal(numEmbeddings, true, opts)
}

func newSignal(numEmbeddings int, derivative bool, opts []Option) (*Signal, error) {
	o := signalDefaults()
	o.apply(opts)

	ex, err := window.New1D(o.windowSize, o.stride, o.paddingValue)
	if err != nil {
		return nil, err
	}
	quant, err := hashing.NewProjection(numEmbeddings, o.paddingIdx, o.windowSize, o.seed)
	if err != nil {
		return nil, err
	}
	return &Signal{quant: quant, ex: ex, derivative: derivative, batch: o.batch}, nil
}

// Tokenize slices the signal into fixed-size windows. The derivative
// variant differentiates first, so the signal must be one sample longer
// than the window.
func (t *Signal) Tokenize(signal []float64) ([][]float64, error) {
	if t.derivative {
		signal = firstDifference(signal)
	}
	windows, err := t.ex.Slide(signal)
	if err != nil {
		return nil, fmt.Errorf("signal tokenizer: %w", err)
	}
	return windows, nil
}

// Numerize hashes each window to an id.
func (t *Signal) Numerize(windows [][]float64) ([]int, error) {
	ids := make([]int, len(windows))
	for i, w := range windows {
		id, err := t.quant.Quantize(w)
		if err != nil {
			return nil, fmt.Errorf("signal tokenizer: %w", err)
		}
		ids[i] = id
	}
	return ids, nil
}

// Call tokenizes and numerizes each signal, preserving order. A failing
// signal fails the whole batch.
func (t *Signal) Call(signals [][]float64) ([][]int, error) {
	return parallel.MapErr(signals, t.batch, func(signal []float64) ([]int, error) {
		windows, err := t.Tokenize(signal)
		if err != nil {
			return nil, err
		}
		return t.Numerize(windows)
	})
}

// firstDifference returns x[i+1] - x[i] for each adjacent pair.
func firstDifference(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}
	diff := make([]float64, len(signal)-1)
	for i := range diff {
		diff[i] = signal[i+1] - signal[i]
	}
	return diff
}
