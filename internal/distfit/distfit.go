// Package distfit samples from a normal distribution, recovers its
// parameters from the sample, and prepares histogram and density series for
// overlay plots.
package distfit

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/numlab/internal/lab"
)

// Sample draws n values from Normal(mu, sigma).
func Sample(n int, mu, sigma float64, seed int64) ([]float64, error) {
	if n < 2 {
		return nil, &lab.ParamError{Field: "samples", Reason: "need at least 2"}
	}
	if sigma <= 0 {
		return nil, &lab.ParamError{Field: "sigma", Reason: "must be positive"}
	}

	norm := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.New(rand.NewSource(uint64(seed)))}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = norm.Rand()
	}
	return xs, nil
}

// Fit recovers mu and sigma by maximum likelihood (sample mean and
// standard deviation).
func Fit(xs []float64) (mu, sigma float64) {
	return stat.MeanStdDev(xs, nil)
}

// Histogram counts xs into bins evenly spanning [lo, hi]. Values outside
// the range are dropped; the top edge folds into the last bin. Returns bin
// centers and normalized densities so the histogram overlays the PDF.
func Histogram(xs []float64, bins int, lo, hi float64) (centers, density []float64) {
	if bins < 1 {
		bins = 1
	}
	width := (hi - lo) / float64(bins)
	counts := make([]float64, bins)
	total := 0.0

	for _, v := range xs {
		if v < lo || v > hi {
			continue
		}
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
		total++
	}

	centers = make([]float64, bins)
	density = make([]float64, bins)
	for i := range counts {
		centers[i] = lo + (float64(i)+0.5)*width
		if total > 0 {
			density[i] = counts[i] / (total * width)
		}
	}
	return centers, density
}

// PDFSeries evaluates the Normal(mu, sigma) density at n points over [lo, hi].
func PDFSeries(mu, sigma float64, lo, hi float64, n int) (xs, ys []float64) {
	norm := distuv.Normal{Mu: mu, Sigma: sigma}
	xs = make([]float64, n)
	floats.Span(xs, lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = norm.Prob(x)
	}
	return xs, ys
}

// Range picks plotting bounds around the sample: mean +/- 4 fitted sigmas,
// widened to include every observation.
func Range(xs []float64) (lo, hi float64) {
	mu, sigma := Fit(xs)
	lo = mu - 4*sigma
	hi = mu + 4*sigma
	for _, v := range xs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
