package exercises

import (
	"context"
	"image"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/numlab/internal/imaging"
	"github.com/san-kum/numlab/internal/lab"
)

const syntheticSize = 256

func loadOrSynthesize(path string, seed int64, overlay bool) (image.Image, error) {
	if path != "" {
		return imaging.Load(path)
	}
	if overlay {
		return imaging.SyntheticOverlay(syntheticSize, syntheticSize, seed+1), nil
	}
	return imaging.SyntheticBase(syntheticSize, syntheticSize, seed), nil
}

type compositeExercise struct{}

func (e *compositeExercise) Name() string { return "composite" }
func (e *compositeExercise) Describe() string {
	return "scale an overlay onto a base image and alpha-blend them"
}

func (e *compositeExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	alpha := p.Alpha
	if alpha == 0 {
		alpha = 0.6
	}

	base, err := loadOrSynthesize(p.Image, p.Seed, false)
	if err != nil {
		return nil, err
	}
	overlay, err := loadOrSynthesize(p.Overlay, p.Seed, true)
	if err != nil {
		return nil, err
	}

	out, err := imaging.Composite(base, overlay, alpha)
	if err != nil {
		return nil, err
	}

	b := out.Bounds()
	result := &lab.Result{}
	result.AddStat("width", float64(b.Dx()))
	result.AddStat("height", float64(b.Dy()))
	result.AddStat("alpha", alpha)

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "composite.png")
		if err := imaging.SavePNG(path, out); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

type edgesExercise struct{}

func (e *edgesExercise) Name() string { return "edges" }
func (e *edgesExercise) Describe() string {
	return "gaussian blur plus sobel gradient magnitude over an image"
}

func (e *edgesExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sigma := p.Sigma
	if sigma == 0 {
		sigma = 1.2
	}
	bins := p.Bins
	if bins == 0 {
		bins = 16
	}

	src, err := loadOrSynthesize(p.Image, p.Seed, false)
	if err != nil {
		return nil, err
	}

	gray := imaging.Grayscale(src)
	blurred := imaging.GaussianBlur(gray, sigma)
	edges, mags := imaging.Sobel(blurred)

	maxMag := floats.Max(mags)
	mean := floats.Sum(mags) / float64(len(mags))
	strong := 0
	for _, m := range mags {
		if m > maxMag/2 {
			strong++
		}
	}

	centers, counts := gradientHistogram(mags, bins, maxMag)
	b := edges.Bounds()

	result := &lab.Result{
		Series: []lab.Series{{Name: "gradient histogram", X: centers, Y: counts}},
	}
	result.AddStat("width", float64(b.Dx()))
	result.AddStat("height", float64(b.Dy()))
	result.AddStat("sigma", sigma)
	result.AddStat("max_gradient", maxMag)
	result.AddStat("mean_gradient", mean)
	result.AddStat("strong_edge_frac", float64(strong)/float64(len(mags)))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "edges.png")
		if err := imaging.SavePNG(path, edges); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

func gradientHistogram(mags []float64, bins int, maxMag float64) (centers, counts []float64) {
	centers = make([]float64, bins)
	counts = make([]float64, bins)
	if maxMag == 0 {
		return centers, counts
	}
	width := maxMag / float64(bins)
	for i := range centers {
		centers[i] = (float64(i) + 0.5) * width
	}
	for _, m := range mags {
		b := int(m / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return centers, counts
}
