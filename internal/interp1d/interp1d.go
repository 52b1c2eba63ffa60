// Package interp1d reconstructs 1-D functions from sparse samples with
// gonum's fit-predict interpolators, and resamples them densely for
// plotting and error measurement.
package interp1d

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/numlab/internal/lab"
)

// Method selects an interpolation scheme.
type Method string

const (
	Linear Method = "linear"
	Akima  Method = "akima"
	Cubic  Method = "cubic"
)

// Methods lists the supported schemes in presentation order.
func Methods() []Method { return []Method{Linear, Akima, Cubic} }

// Curve is a named ground-truth function for the interpolation exercise.
type Curve struct {
	Name string
	F    func(float64) float64
	A, B float64
}

var curves = map[string]Curve{
	"sin": {
		Name: "sin",
		F:    math.Sin,
		A:    0, B: 2 * math.Pi,
	},
	"runge": {
		Name: "runge",
		F:    func(x float64) float64 { return 1 / (1 + 25*x*x) },
		A:    -1, B: 1,
	},
	"damped": {
		Name: "damped",
		F:    func(x float64) float64 { return math.Exp(-x/3) * math.Cos(2*x) },
		A:    0, B: 6,
	},
}

// LookupCurve resolves a named curve.
func LookupCurve(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return Curve{}, &lab.ParamError{Field: "function", Reason: "unknown curve " + name}
	}
	return c, nil
}

// CurveNames lists the catalogue.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	return names
}

// Fit builds a predictor over the sample points. xs must be strictly
// increasing with at least four samples (the spline schemes need the room).
func Fit(m Method, xs, ys []float64) (interp.Predictor, error) {
	if len(xs) < 4 {
		return nil, &lab.ParamError{Field: "samples", Reason: "need at least 4"}
	}

	var fp interp.FittablePredictor
	switch m {
	case Linear:
		fp = &interp.PiecewiseLinear{}
	case Akima:
		fp = &interp.AkimaSpline{}
	case Cubic:
		fp = &interp.NaturalCubic{}
	default:
		return nil, &lab.ParamError{Field: "method", Reason: "unknown " + string(m)}
	}

	if err := fp.Fit(xs, ys); err != nil {
		return nil, err
	}
	return fp, nil
}

// Resample evaluates the predictor at n evenly spaced points over [a,b].
func Resample(p interp.Predictor, a, b float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	floats.Span(xs, a, b)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = p.Predict(x)
	}
	return xs, ys
}

// MaxAbsError measures the worst reconstruction error against the ground
// truth over n probe points in [a,b].
func MaxAbsError(p interp.Predictor, truth func(float64) float64, a, b float64, n int) float64 {
	xs := make([]float64, n)
	floats.Span(xs, a, b)
	worst := 0.0
	for _, x := range xs {
		if e := math.Abs(p.Predict(x) - truth(x)); e > worst {
			worst = e
		}
	}
	return worst
}
