package spectral

import (
	"math"
	"testing"
)

func TestSpectrumFindsTone(t *testing.T) {
	rate := 256.0
	_, samples := Synthesize(1024, rate, []float64{32}, 0, 1)

	freqs, power := Spectrum(samples, rate)
	f, p := Dominant(freqs, power)

	if math.Abs(f-32) > rate/1024 {
		t.Errorf("dominant frequency %.3f, expected 32", f)
	}
	if p <= 0 {
		t.Error("expected positive peak power")
	}
}

func TestSpectrumTwoTones(t *testing.T) {
	rate := 512.0
	_, samples := Synthesize(2048, rate, []float64{40, 120}, 0, 1)
	windowed := ApplyWindow(samples)

	freqs, power := Spectrum(windowed, rate)

	// Both tones must stand out against the bins between them.
	peakAt := func(target float64) float64 {
		best := 0.0
		for i, f := range freqs {
			if math.Abs(f-target) < 2 && power[i] > best {
				best = power[i]
			}
		}
		return best
	}
	between := 0.0
	for i, f := range freqs {
		if f > 60 && f < 100 && power[i] > between {
			between = power[i]
		}
	}

	if peakAt(40) < 10*between || peakAt(120) < 10*between {
		t.Errorf("tone peaks (%.4f, %.4f) not clearly above floor %.4f",
			peakAt(40), peakAt(120), between)
	}
}

func TestSpectrumPadsToPowerOfTwo(t *testing.T) {
	_, samples := Synthesize(1000, 100, []float64{10}, 0, 2)
	freqs, power := Spectrum(samples, 100)

	// 1000 pads to 1024; a real FFT yields n/2+1 bins.
	if len(freqs) != 513 || len(power) != 513 {
		t.Errorf("expected 513 bins, got %d/%d", len(freqs), len(power))
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.in); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHannEndpoints(t *testing.T) {
	w := Hann(64)
	if w[0] > 1e-12 || w[63] > 1e-12 {
		t.Errorf("hann endpoints %.2e/%.2e, expected 0", w[0], w[63])
	}
	mid := w[32]
	if mid < 0.9 {
		t.Errorf("hann midpoint %.3f, expected near 1", mid)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	_, a := Synthesize(128, 64, []float64{8}, 0.5, 7)
	_, b := Synthesize(128, 64, []float64{8}, 0.5, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at sample %d", i)
		}
	}
}
