package exercises

import (
	"context"
	"math"
	"path/filepath"

	"github.com/san-kum/numlab/internal/geom"
	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/pointset"
	"github.com/san-kum/numlab/internal/render"
)

type voronoiExercise struct{}

func (e *voronoiExercise) Name() string { return "voronoi" }
func (e *voronoiExercise) Describe() string {
	return "voronoi diagram of a seeded random point set"
}

func (e *voronoiExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Points < 3 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 3"}
	}
	half := p.Spread
	if half <= 0 {
		half = 1.0
	}

	sites := pointset.UniformSquare(p.Points, half, p.Seed)
	sites.Name = "sites"

	mesh, err := geom.Triangulate(sites)
	if err != nil {
		return nil, err
	}
	diagram := geom.Voronoi(mesh)

	vertices := lab.PointSet{Name: "vertices", Dim: 2}
	for _, v := range diagram.Vertices {
		vertices.Coords = append(vertices.Coords, v.X, v.Y)
	}

	// Extend unbounded ridges just past the site extent so they visibly
	// leave the frame without blowing up the viewport.
	segs := make([]lab.Segment, 0, len(diagram.Ridges))
	unbounded := 0
	for _, s := range diagram.ClipRidges(3 * half) {
		segs = append(segs, lab.Segment{X1: s[0], Y1: s[1], X2: s[2], Y2: s[3]})
	}
	for _, r := range diagram.Ridges {
		if r.V2 == geom.Unbounded {
			unbounded++
		}
	}

	result := &lab.Result{
		Points:   []lab.PointSet{sites, vertices},
		Segments: segs,
	}
	result.AddStat("sites", float64(sites.Len()))
	result.AddStat("vertices", float64(len(diagram.Vertices)))
	result.AddStat("ridges", float64(len(diagram.Ridges)))
	result.AddStat("unbounded_ridges", float64(unbounded))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "voronoi.svg")
		svg := render.GeometrySVG(result.Points, result.Segments, 800, 800)
		if err := render.WriteSVG(path, svg); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

type delaunayExercise struct{}

func (e *delaunayExercise) Name() string { return "delaunay" }
func (e *delaunayExercise) Describe() string {
	return "delaunay triangulation of a seeded random point set"
}

func (e *delaunayExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Points < 3 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 3"}
	}
	half := p.Spread
	if half <= 0 {
		half = 1.0
	}

	sites := pointset.UniformSquare(p.Points, half, p.Seed)
	sites.Name = "sites"

	mesh, err := geom.Triangulate(sites)
	if err != nil {
		return nil, err
	}

	result := &lab.Result{
		Points:   []lab.PointSet{sites},
		Segments: mesh.Edges(),
	}
	result.AddStat("sites", float64(sites.Len()))
	result.AddStat("triangles", float64(mesh.TriangleCount()))
	result.AddStat("edges", float64(len(result.Segments)))
	result.AddStat("hull_points", float64(len(mesh.Hull)))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "delaunay.svg")
		svg := render.GeometrySVG(result.Points, result.Segments, 800, 800)
		if err := render.WriteSVG(path, svg); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

type hullExercise struct{}

func (e *hullExercise) Name() string { return "hull" }
func (e *hullExercise) Describe() string {
	return "convex hull of a jittered ring of points"
}

func (e *hullExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Points < 3 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 3"}
	}
	jitter := p.Spread
	if jitter <= 0 {
		jitter = 0.2
	}

	pts := pointset.Ring(p.Points, 1.0, jitter, p.Seed)
	pts.Name = "points"

	hull, err := geom.ConvexHull(pts)
	if err != nil {
		return nil, err
	}

	result := &lab.Result{
		Points:   []lab.PointSet{pts},
		Segments: geom.HullSegments(hull),
	}
	result.AddStat("points", float64(pts.Len()))
	result.AddStat("hull_points", float64(len(hull)))
	result.AddStat("perimeter", polygonPerimeter(hull))
	result.AddStat("area", math.Abs(polygonArea(hull)))

	if p.OutDir != "" {
		path := filepath.Join(p.OutDir, "hull.svg")
		svg := render.GeometrySVG(result.Points, result.Segments, 800, 800)
		if err := render.WriteSVG(path, svg); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, path)
	}
	return result, nil
}

func polygonPerimeter(poly []geom.Point) float64 {
	sum := 0.0
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		sum += math.Hypot(q.X-p.X, q.Y-p.Y)
	}
	return sum
}

// polygonArea is the signed shoelace area.
func polygonArea(poly []geom.Point) float64 {
	sum := 0.0
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
