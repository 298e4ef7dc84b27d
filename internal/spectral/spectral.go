// Package spectral prepares raw audio signals for spectrogram
// tokenization: near-silence trimming and a Hann-windowed STFT magnitude
// in decibels.
package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Common errors.
var (
	ErrFFTSize     = errors.New("fft size must be positive")
	ErrHopLength   = errors.New("hop length must be positive")
	ErrShortSignal = errors.New("signal shorter than fft size")
)

// Trim removes leading and trailing samples whose magnitude stays at or
// below threshold, keeping offset extra samples on each side (clamped to
// the signal bounds). A signal with no sample above the threshold is
// returned unchanged.
func Trim(signal []float64, threshold float64, offset int) []float64 {
	first, last := -1, -1
	for i, v := range signal {
		if math.Abs(v) > threshold {
			first = i
			break
		}
	}
	if first < 0 {
		return signal
	}
	for i := len(signal) - 1; i >= 0; i-- {
		if math.Abs(signal[i]) > threshold {
			last = i
			break
		}
	}

	start := max(first-offset, 0)
	end := min(last+offset+1, len(signal))
	return signal[start:end]
}

// STFT computes short-time Fourier transform magnitudes.
type STFT struct {
	nfft int
	hop  int
	win  []float64
	fft  *fourier.FFT
}

// New creates an STFT with the given frame size and hop length. Frames
// are weighted with a Hann window.
func New(nfft, hop int) (*STFT, error) {
	if nfft <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, nfft)
	}
	if hop <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrHopLength, hop)
	}

	win := make([]float64, nfft)
	for i := range win {
		win[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(nfft-1)))
	}
	if nfft == 1 {
		win[0] = 1
	}

	return &STFT{nfft: nfft, hop: hop, win: win, fft: fourier.NewFFT(nfft)}, nil
}

// NumBins returns the number of frequency bins per frame, nfft/2 + 1.
func (s *STFT) NumBins() int { return s.nfft/2 + 1 }

// Magnitude returns the dB-scaled magnitude spectrogram of the signal,
// shaped (frames, bins). Magnitudes are floored at floorDB.
func (s *STFT) Magnitude(signal []float64, floorDB float64) ([][]float64, error) {
	if len(signal) < s.nfft {
		return nil, fmt.Errorf("%w: length %d, fft size %d", ErrShortSignal, len(signal), s.nfft)
	}

	frames := (len(signal)-s.nfft)/s.hop + 1
	spec := make([][]float64, frames)
	frame := make([]float64, s.nfft)
	coeffs := make([]complex128, s.NumBins())

	for f := 0; f < frames; f++ {
		start := f * s.hop
		for i := range frame {
			frame[i] = signal[start+i] * s.win[i]
		}
		coeffs = s.fft.Coefficients(coeffs, frame)

		bins := make([]float64, len(coeffs))
		for i, c := range coeffs {
			mag := cmplx.Abs(c)
			if mag <= 0 {
				bins[i] = floorDB
				continue
			}
			bins[i] = math.Max(20*math.Log10(mag), floorDB)
		}
		spec[f] = bins
	}
	return spec, nil
}
