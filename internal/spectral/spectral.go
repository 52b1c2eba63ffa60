// Package spectral turns time-domain sample series into frequency-domain
// power spectra using gonum's real FFT, with Hann windowing and
// dominant-frequency detection.
package spectral

import (
	"math"
	"math/cmplx"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthesize generates n samples at the given rate: a sum of unit-amplitude
// sine tones plus gaussian noise of the given sigma. Returns sample times
// and values.
func Synthesize(n int, rate float64, tones []float64, noise float64, seed int64) (times, samples []float64) {
	norm := distuv.Normal{Mu: 0, Sigma: noise, Src: rand.New(rand.NewSource(uint64(seed)))}

	times = make([]float64, n)
	samples = make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / rate
		times[i] = t
		v := 0.0
		for _, f := range tones {
			v += math.Sin(2 * math.Pi * f * t)
		}
		if noise > 0 {
			v += norm.Rand()
		}
		samples[i] = v
	}
	return times, samples
}

// Hann returns the n-point Hann window.
func Hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// ApplyWindow returns samples multiplied by the Hann window, leaving the
// input untouched.
func ApplyWindow(samples []float64) []float64 {
	w := Hann(len(samples))
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s * w[i]
	}
	return out
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Spectrum computes the one-sided power spectrum of the samples, zero-padded
// to a power of two. Frequencies are in the units of rate (Hz for samples
// per second).
func Spectrum(samples []float64, rate float64) (freqs, power []float64) {
	n := NextPow2(len(samples))
	padded := make([]float64, n)
	copy(padded, samples)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, padded)

	freqs = make([]float64, len(coeffs))
	power = make([]float64, len(coeffs))
	for i, c := range coeffs {
		freqs[i] = fft.Freq(i) * rate
		power[i] = cmplx.Abs(c) / float64(n)
	}
	return freqs, power
}

// Dominant returns the strongest non-DC spectral line.
func Dominant(freqs, power []float64) (freq, peak float64) {
	maxIdx := 1
	for i := 1; i < len(power); i++ {
		if power[i] > power[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx >= len(freqs) {
		return 0, 0
	}
	return freqs[maxIdx], power[maxIdx]
}
