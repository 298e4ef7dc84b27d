package tokenizer

import (
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/segment"
)

// options holds every tunable shared across facades. Constructors start
// from their own defaults and apply the caller's options on top.
type options struct {
	paddingIdx    int
	segmenter     segment.Segmenter
	batch         parallel.Config
	ngrams        []int
	skipGrams     []int
	maxPositional int
	windowSize    int
	windowHeight  int
	windowWidth   int
	stride        int
	paddingValue  float64
	seed          uint64
	fftSize       int
	hopLength     int
	trimThreshold float64
	trimOffset    int
}

// Option configures a facade at construction time.
type Option func(*options)

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithPaddingIdx sets the padding index below the reserved special-token
// range. Default 0.
func WithPaddingIdx(idx int) Option {
	return func(o *options) { o.paddingIdx = idx }
}

// WithSegmenter replaces the word segmenter used by the text facades.
func WithSegmenter(seg segment.Segmenter) Option {
	return func(o *options) { o.segmenter = seg }
}

// WithWholeWords treats each input string as a single pre-segmented word
// instead of running the word segmenter.
func WithWholeWords() Option {
	return func(o *options) { o.segmenter = segment.Whole{} }
}

// WithParallel overrides the batch execution config used by Call.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) { o.batch = cfg }
}

// WithNgrams sets the contiguous gram sizes, applied in the given order.
func WithNgrams(sizes ...int) Option {
	return func(o *options) { o.ngrams = sizes }
}

// WithSkipGrams sets the skip-gram step sizes, applied in the given order.
func WithSkipGrams(steps ...int) Option {
	return func(o *options) { o.skipGrams = steps }
}

// WithMaxPositional bounds character positions to [0, max).
func WithMaxPositional(max int) Option {
	return func(o *options) { o.maxPositional = max }
}

// WithWindowSize sets the 1D window length (signal facades) or the square
// window side (spectrogram facade).
func WithWindowSize(size int) Option {
	return func(o *options) { o.windowSize = size }
}

// WithWindowShape sets the 2D window height and width (image facade).
func WithWindowShape(height, width int) Option {
	return func(o *options) {
		o.windowHeight = height
		o.windowWidth = width
	}
}

// WithStride sets the window stride.
func WithStride(stride int) Option {
	return func(o *options) { o.stride = stride }
}

// WithPaddingValue sets the value used to pad partial windows.
func WithPaddingValue(v float64) Option {
	return func(o *options) { o.paddingValue = v }
}

// WithSeed seeds the random projection basis.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithFFT sets the STFT frame size and hop length (spectrogram facade).
func WithFFT(size, hop int) Option {
	return func(o *options) {
		o.fftSize = size
		o.hopLength = hop
	}
}

// WithSilenceTrim sets the near-silence magnitude threshold and the number
// of samples retained on each side of the trimmed region.
func WithSilenceTrim(threshold float64, offset int) Option {
	return func(o *options) {
		o.trimThreshold = threshold
		o.trimOffset = offset
	}
}
