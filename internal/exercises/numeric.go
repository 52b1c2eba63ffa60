package exercises

import (
	"context"
	"math"
	"path/filepath"

	"github.com/san-kum/numlab/internal/interp1d"
	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/minimize"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/render"
)

// defaultBounds gives each integrand an interesting interval when the
// caller leaves a == b.
var defaultBounds = map[string][2]float64{
	"gauss": {-2, 2},
	"sin":   {0, math.Pi},
	"poly":  {-1, 3},
	"runge": {-1, 1},
}

type integrateExercise struct{}

func (e *integrateExercise) Name() string { return "integrate" }
func (e *integrateExercise) Describe() string {
	return "gauss-legendre vs trapezoid vs simpson on a named integrand"
}

func (e *integrateExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := p.Function
	if name == "" {
		name = "gauss"
	}
	in, err := quadrature.Lookup(name)
	if err != nil {
		return nil, err
	}

	a, b := p.A, p.B
	if a == b {
		bounds := defaultBounds[name]
		a, b = bounds[0], bounds[1]
	}
	if a >= b {
		return nil, &lab.ParamError{Field: "bounds", Reason: "need a < b"}
	}
	n := p.Samples
	if n < 3 {
		n = 201
	}
	if n%2 == 0 {
		n++ // simpson wants an odd sample count
	}

	gl := quadrature.GaussLegendre(in.F, a, b, 20)
	trap := quadrature.Trapezoid(in.F, a, b, n)
	simp := quadrature.Simpson(in.F, a, b, n)

	xs, ys := quadrature.Sample(in.F, a, b, n)
	result := &lab.Result{
		Series: []lab.Series{{Name: in.Name, X: xs, Y: ys}},
	}
	result.AddStat("gauss_legendre", gl)
	result.AddStat("trapezoid", trap)
	result.AddStat("simpson", simp)

	if in.Exact != nil {
		exact := in.Exact(a, b)
		result.AddStat("exact", exact)
		result.AddStat("gl_error", math.Abs(gl-exact))
		result.AddStat("trapezoid_error", math.Abs(trap-exact))
		result.AddStat("simpson_error", math.Abs(simp-exact))
	}

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "integrand.png")
		if err := render.LinesPNG(path, "integrand "+in.Name, "x", "f(x)", result.Series...); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

type minimizeExercise struct{}

func (e *minimizeExercise) Name() string { return "minimize" }
func (e *minimizeExercise) Describe() string {
	return "golden-section search on a scalar objective, nelder-mead on rosenbrock"
}

func (e *minimizeExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := p.Function
	if name == "" {
		name = "bowl"
	}
	obj, err := minimize.Lookup(name)
	if err != nil {
		return nil, err
	}

	a, b := p.A, p.B
	if a == b {
		a, b = obj.A, obj.B
	}
	if a >= b {
		return nil, &lab.ParamError{Field: "bounds", Reason: "need a < b"}
	}

	x, fx, evals := minimize.GoldenSection(obj.F, a, b, 1e-8)

	n := p.Samples
	if n < 2 {
		n = 400
	}
	xs, ys := quadrature.Sample(obj.F, a, b, n)

	result := &lab.Result{
		Series: []lab.Series{{Name: obj.Name, X: xs, Y: ys}},
		Points: []lab.PointSet{{Name: "minimum", Dim: 2, Coords: []float64{x, fx}}},
	}
	result.AddStat("min_x", x)
	result.AddStat("min_f", fx)
	result.AddStat("evals", float64(evals))
	result.AddStat("x_error", math.Abs(x-obj.MinX))

	rx, rf, revals, err := minimize.NelderMead(minimize.Rosenbrock, []float64{-1.2, 1})
	if err != nil {
		return nil, err
	}
	result.AddStat("rosenbrock_x0", rx[0])
	result.AddStat("rosenbrock_x1", rx[1])
	result.AddStat("rosenbrock_f", rf)
	result.AddStat("rosenbrock_evals", float64(revals))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "objective.png")
		if err := render.LinesPNG(path, "objective "+obj.Name, "x", "f(x)", result.Series...); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

type interpExercise struct{}

func (e *interpExercise) Name() string { return "interp" }
func (e *interpExercise) Describe() string {
	return "linear, akima and cubic reconstruction of a curve from sparse knots"
}

func (e *interpExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := p.Function
	if name == "" {
		name = "runge"
	}
	curve, err := interp1d.LookupCurve(name)
	if err != nil {
		return nil, err
	}

	knots := p.Points
	if knots == 0 {
		knots = 12
	}
	if knots < 4 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 4 knots"}
	}
	dense := p.Samples
	if dense < 2 {
		dense = 400
	}

	kx, ky := quadrature.Sample(curve.F, curve.A, curve.B, knots)
	tx, ty := quadrature.Sample(curve.F, curve.A, curve.B, dense)

	result := &lab.Result{
		Series: []lab.Series{{Name: "truth", X: tx, Y: ty}},
		Points: []lab.PointSet{knotsToSet(kx, ky)},
	}
	result.AddStat("knots", float64(knots))

	for _, m := range interp1d.Methods() {
		pred, err := interp1d.Fit(m, kx, ky)
		if err != nil {
			return nil, err
		}
		xs, ys := interp1d.Resample(pred, curve.A, curve.B, dense)
		result.Series = append(result.Series, lab.Series{Name: string(m), X: xs, Y: ys})
		result.AddStat(string(m)+"_max_error", interp1d.MaxAbsError(pred, curve.F, curve.A, curve.B, 1000))
	}

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "interp.png")
		if err := render.LinesPNG(path, "interpolating "+curve.Name, "x", "y", result.Series...); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

func knotsToSet(xs, ys []float64) lab.PointSet {
	ps := lab.PointSet{Name: "knots", Dim: 2, Coords: make([]float64, 0, len(xs)*2)}
	for i := range xs {
		ps.Coords = append(ps.Coords, xs[i], ys[i])
	}
	return ps
}
