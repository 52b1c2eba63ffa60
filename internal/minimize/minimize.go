// Package minimize finds function minima: golden-section search for scalar
// objectives on a bracket, and gonum's Nelder-Mead simplex for vector
// objectives.
package minimize

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/san-kum/numlab/internal/lab"
)

// Objective is a named scalar function with its known minimizer, used to
// report the search error.
type Objective struct {
	Name string
	F    func(float64) float64
	A, B float64 // default bracket
	MinX float64
}

var catalogue = map[string]Objective{
	"bowl": {
		Name: "bowl",
		F:    func(x float64) float64 { return (x-1.5)*(x-1.5) + 0.5 },
		A:    -4, B: 6,
		MinX: 1.5,
	},
	"cosine": {
		Name: "cosine",
		F:    math.Cos,
		A:    0, B: 2 * math.Pi,
		MinX: math.Pi,
	},
	"quartic": {
		Name: "quartic",
		F:    func(x float64) float64 { return x*x*x*x - 3*x*x*x + 2 },
		A:    0, B: 4,
		MinX: 2.25,
	},
}

// Lookup resolves a named objective.
func Lookup(name string) (Objective, error) {
	o, ok := catalogue[name]
	if !ok {
		return Objective{}, &lab.ParamError{Field: "function", Reason: "unknown objective " + name}
	}
	return o, nil
}

// Names lists the catalogue.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	return names
}

const invPhi = 0.6180339887498949 // 1/phi

// GoldenSection minimizes f on [a,b] to the given tolerance, returning the
// minimizer, its value, and the number of function evaluations.
func GoldenSection(f func(float64) float64, a, b, tol float64) (x, fx float64, evals int) {
	if tol <= 0 {
		tol = 1e-8
	}
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)
	evals = 2

	for b-a > tol {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
		evals++
	}

	x = (a + b) / 2
	return x, f(x), evals + 1
}

// NelderMead minimizes a vector objective starting from x0 with gonum's
// derivative-free simplex method.
func NelderMead(f func([]float64) float64, x0 []float64) (x []float64, fx float64, evals int, err error) {
	problem := optimize.Problem{Func: f}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, 0, 0, err
	}
	if err := result.Status.Err(); err != nil {
		return nil, 0, 0, err
	}
	return result.X, result.F, result.Stats.FuncEvaluations, nil
}

// Rosenbrock is the classic banana-valley test objective; the global
// minimum is 0 at (1, 1, ..., 1).
func Rosenbrock(x []float64) float64 {
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}
