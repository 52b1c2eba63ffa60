package minimize

import (
	"math"
	"testing"
)

func TestGoldenSectionCatalogue(t *testing.T) {
	for name := range map[string]bool{"bowl": true, "cosine": true, "quartic": true} {
		t.Run(name, func(t *testing.T) {
			o, err := Lookup(name)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			x, fx, evals := GoldenSection(o.F, o.A, o.B, 1e-9)
			if math.Abs(x-o.MinX) > 1e-6 {
				t.Errorf("minimizer %.8f, expected %.8f", x, o.MinX)
			}
			if fx > o.F(o.MinX)+1e-9 {
				t.Errorf("minimum value %.8f above true minimum %.8f", fx, o.F(o.MinX))
			}
			if evals <= 0 {
				t.Error("expected positive evaluation count")
			}
		})
	}
}

func TestNelderMeadRosenbrock(t *testing.T) {
	x, fx, evals, err := NelderMead(Rosenbrock, []float64{-1.2, 1.0})
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	if math.Abs(x[0]-1) > 1e-4 || math.Abs(x[1]-1) > 1e-4 {
		t.Errorf("minimizer (%.6f, %.6f), expected (1, 1)", x[0], x[1])
	}
	if fx > 1e-6 {
		t.Errorf("minimum value %.2e, expected ~0", fx)
	}
	if evals <= 0 {
		t.Error("expected positive evaluation count")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown objective")
	}
}
