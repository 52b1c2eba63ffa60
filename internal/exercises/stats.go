package exercises

import (
	"context"
	"math"
	"path/filepath"

	"github.com/san-kum/numlab/internal/distfit"
	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/render"
)

type distfitExercise struct{}

func (e *distfitExercise) Name() string { return "distfit" }
func (e *distfitExercise) Describe() string {
	return "sample a normal distribution and recover mu/sigma from the sample"
}

func (e *distfitExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := p.Samples
	if n == 0 {
		n = 5000
	}
	sigma := p.Sigma
	if sigma == 0 {
		sigma = 1
	}
	bins := p.Bins
	if bins == 0 {
		bins = 24
	}

	xs, err := distfit.Sample(n, p.Mu, sigma, p.Seed)
	if err != nil {
		return nil, err
	}

	fitMu, fitSigma := distfit.Fit(xs)
	lo, hi := distfit.Range(xs)
	centers, density := distfit.Histogram(xs, bins, lo, hi)
	px, py := distfit.PDFSeries(fitMu, fitSigma, lo, hi, 200)

	result := &lab.Result{
		Series: []lab.Series{
			{Name: "histogram", X: centers, Y: density},
			{Name: "fitted pdf", X: px, Y: py},
		},
	}
	result.AddStat("samples", float64(n))
	result.AddStat("mu", p.Mu)
	result.AddStat("sigma", sigma)
	result.AddStat("fitted_mu", fitMu)
	result.AddStat("fitted_sigma", fitSigma)
	result.AddStat("mu_error", math.Abs(fitMu-p.Mu))
	result.AddStat("sigma_error", math.Abs(fitSigma-sigma))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "distfit.png")
		curve := lab.Series{Name: "fitted pdf", X: px, Y: py}
		if err := render.HistDensityPNG(path, "normal fit", xs, bins, curve); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}
