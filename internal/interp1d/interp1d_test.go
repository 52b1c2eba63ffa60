package interp1d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func sampleCurve(c Curve, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	floats.Span(xs, c.A, c.B)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = c.F(x)
	}
	return xs, ys
}

func TestFitReproducesKnots(t *testing.T) {
	c, err := LookupCurve("sin")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	xs, ys := sampleCurve(c, 12)

	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			p, err := Fit(m, xs, ys)
			if err != nil {
				t.Fatalf("fit failed: %v", err)
			}
			for i, x := range xs {
				if math.Abs(p.Predict(x)-ys[i]) > 1e-9 {
					t.Errorf("knot %d not reproduced: %f vs %f", i, p.Predict(x), ys[i])
				}
			}
		})
	}
}

func TestSplineBeatsLinearOnSmoothCurve(t *testing.T) {
	c, err := LookupCurve("damped")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	xs, ys := sampleCurve(c, 16)

	lin, err := Fit(Linear, xs, ys)
	if err != nil {
		t.Fatalf("linear fit failed: %v", err)
	}
	cub, err := Fit(Cubic, xs, ys)
	if err != nil {
		t.Fatalf("cubic fit failed: %v", err)
	}

	linErr := MaxAbsError(lin, c.F, c.A, c.B, 400)
	cubErr := MaxAbsError(cub, c.F, c.A, c.B, 400)

	if cubErr >= linErr {
		t.Errorf("cubic error %.2e not below linear error %.2e", cubErr, linErr)
	}
}

func TestResampleRange(t *testing.T) {
	c, _ := LookupCurve("runge")
	xs, ys := sampleCurve(c, 10)
	p, err := Fit(Akima, xs, ys)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	rx, ry := Resample(p, c.A, c.B, 101)
	if len(rx) != 101 || len(ry) != 101 {
		t.Fatalf("expected 101 resample points, got %d/%d", len(rx), len(ry))
	}
	if rx[0] != c.A || rx[100] != c.B {
		t.Errorf("resample endpoints %f..%f, expected %f..%f", rx[0], rx[100], c.A, c.B)
	}
}

func TestFitValidation(t *testing.T) {
	if _, err := Fit(Linear, []float64{0, 1}, []float64{0, 1}); err == nil {
		t.Error("expected error for too few samples")
	}
	if _, err := Fit(Method("nope"), []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}); err == nil {
		t.Error("expected error for unknown method")
	}
}
