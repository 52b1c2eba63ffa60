package exercises

import (
	"context"
	"path/filepath"

	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/pointset"
	"github.com/san-kum/numlab/internal/render"
)

type scatter3dExercise struct{}

func (e *scatter3dExercise) Name() string { return "scatter3d" }
func (e *scatter3dExercise) Describe() string {
	return "3-d point cloud projected onto the terminal canvas"
}

func (e *scatter3dExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := p.Points
	if n == 0 {
		n = 400
	}
	if n < 2 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 2"}
	}

	var cloud lab.PointSet
	switch p.Function {
	case "", "helix":
		jitter := p.Spread
		if jitter <= 0 {
			jitter = 0.05
		}
		cloud = pointset.Helix(n, 1.0, 0.8, jitter, p.Seed)
	case "clusters":
		k := p.Cluster
		if k < 1 {
			k = 3
		}
		spread := p.Spread
		if spread <= 0 {
			spread = 0.3
		}
		cloud = pointset.GaussianClusters3D(n, k, spread, p.Seed)
	default:
		return nil, &lab.ParamError{Field: "function", Reason: "unknown cloud " + p.Function}
	}

	result := &lab.Result{Points: []lab.PointSet{cloud}}
	result.AddStat("points", float64(cloud.Len()))
	result.AddStat("dim", 3)

	if p.OutDir != "" {
		canvas := render.NewCanvas(100, 40)
		cam := render.NewCamera()
		cam.RotX = 0.4
		cam.RotY = 0.7
		render.RenderCloud(canvas, cloud, cam)

		path := filepath.Join(p.OutDir, "scatter3d.svg")
		if err := render.WriteSVG(path, render.CanvasSVG(canvas, 6)); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}
