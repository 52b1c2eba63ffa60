package distfit

import (
	"math"
	"testing"
)

func TestFitRecoversParameters(t *testing.T) {
	xs, err := Sample(20000, 3.0, 1.5, 42)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	mu, sigma := Fit(xs)
	if math.Abs(mu-3.0) > 0.05 {
		t.Errorf("fitted mu %.4f, expected ~3.0", mu)
	}
	if math.Abs(sigma-1.5) > 0.05 {
		t.Errorf("fitted sigma %.4f, expected ~1.5", sigma)
	}
}

func TestSampleValidation(t *testing.T) {
	if _, err := Sample(1, 0, 1, 1); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := Sample(100, 0, -1, 1); err == nil {
		t.Error("expected error for sigma <= 0")
	}
}

func TestHistogramIsDensity(t *testing.T) {
	xs, err := Sample(5000, 0, 1, 7)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	lo, hi := Range(xs)
	centers, density := Histogram(xs, 24, lo, hi)
	if len(centers) != 24 || len(density) != 24 {
		t.Fatalf("expected 24 bins, got %d/%d", len(centers), len(density))
	}

	// Densities integrate to 1 over the covered range.
	width := (hi - lo) / 24
	area := 0.0
	for _, d := range density {
		area += d * width
	}
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("histogram area %.6f, expected 1", area)
	}
}

func TestHistogramTracksPDF(t *testing.T) {
	xs, err := Sample(50000, 0, 1, 3)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	centers, density := Histogram(xs, 20, -4, 4)

	// Compare each bin against the true density at its center.
	norm := func(x float64) float64 {
		return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	}
	for i, c := range centers {
		want := norm(c)
		if math.Abs(density[i]-want) > 0.03 {
			t.Errorf("bin %d density %.4f, pdf %.4f", i, density[i], want)
		}
	}
}

func TestPDFSeriesPeak(t *testing.T) {
	xs, ys := PDFSeries(2, 0.5, 0, 4, 401)
	if len(xs) != 401 {
		t.Fatalf("expected 401 points, got %d", len(xs))
	}

	maxIdx := 0
	for i := range ys {
		if ys[i] > ys[maxIdx] {
			maxIdx = i
		}
	}
	if math.Abs(xs[maxIdx]-2) > 0.02 {
		t.Errorf("pdf peak at %.3f, expected 2", xs[maxIdx])
	}
}
