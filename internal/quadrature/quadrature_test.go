package quadrature

import (
	"math"
	"testing"
)

func TestGaussLegendreAgainstExact(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"gauss", -2, 2},
		{"sin", 0, math.Pi},
		{"poly", -1, 3},
		{"runge", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			got := GaussLegendre(in.F, tt.a, tt.b, 60)
			want := in.Exact(tt.a, tt.b)
			if math.Abs(got-want) > 1e-8 {
				t.Errorf("gauss-legendre %.10f, exact %.10f", got, want)
			}
		})
	}
}

func TestCompositeRulesConverge(t *testing.T) {
	in, err := Lookup("sin")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	want := in.Exact(0, math.Pi) // 2

	trap := Trapezoid(in.F, 0, math.Pi, 1001)
	if math.Abs(trap-want) > 1e-4 {
		t.Errorf("trapezoid %.8f, expected ~%.8f", trap, want)
	}

	simp := Simpson(in.F, 0, math.Pi, 1001)
	if math.Abs(simp-want) > 1e-8 {
		t.Errorf("simpson %.10f, expected ~%.10f", simp, want)
	}

	// Simpson should beat trapezoid at equal sample count.
	if math.Abs(simp-want) > math.Abs(trap-want) {
		t.Error("simpson error exceeds trapezoid error")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown integrand")
	}
}

func TestSampleSpansDomain(t *testing.T) {
	xs, ys := Sample(math.Sin, 0, 1, 11)
	if len(xs) != 11 || len(ys) != 11 {
		t.Fatalf("expected 11 samples, got %d/%d", len(xs), len(ys))
	}
	if xs[0] != 0 || xs[10] != 1 {
		t.Errorf("sample endpoints %f..%f, expected 0..1", xs[0], xs[10])
	}
}
