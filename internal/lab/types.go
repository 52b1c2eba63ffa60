package lab

import "context"

// Params carries every knob an exercise can consume. Exercises read the
// fields they care about and validate them before doing any work.
type Params struct {
	Seed int64

	// Point-set exercises.
	Points  int
	Spread  float64
	Cluster int

	// Domain bounds and sampling.
	A, B    float64
	Samples int

	// Named function (integrand, objective, or curve) where applicable.
	Function string

	// Spectral exercise.
	SampleRate float64
	Tones      []float64
	Noise      float64

	// Distribution fitting.
	Mu, Sigma float64
	Bins      int

	// Imaging exercises. Empty paths mean "synthesize a test image".
	Image   string
	Overlay string
	Alpha   float64

	// OutDir receives artifact files (PNG/SVG). Empty disables artifacts.
	OutDir string
}

// Series is a named 1-D plottable signal.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// PointSet is a named collection of coordinates, Dim 2 or 3. Coords is
// row-major: point i occupies Coords[i*Dim : (i+1)*Dim]. Generated once and
// treated as read-only afterwards.
type PointSet struct {
	Name   string
	Dim    int
	Coords []float64
}

// Len returns the number of points.
func (ps PointSet) Len() int {
	if ps.Dim == 0 {
		return 0
	}
	return len(ps.Coords) / ps.Dim
}

// At returns the coordinates of point i.
func (ps PointSet) At(i int) []float64 {
	return ps.Coords[i*ps.Dim : (i+1)*ps.Dim]
}

// Segment is a line segment between two 2-D points, used to carry geometry
// (triangulation edges, Voronoi ridges, hull sides) to the renderers.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Result is what an exercise produces. All fields are optional; renderers
// and storage skip what is absent.
type Result struct {
	Series    []Series
	Points    []PointSet
	Segments  []Segment
	Stats     map[string]float64
	Artifacts []string
}

// AddStat records a named scalar, allocating the map on first use.
func (r *Result) AddStat(name string, v float64) {
	if r.Stats == nil {
		r.Stats = make(map[string]float64)
	}
	r.Stats[name] = v
}

// Exercise is one self-contained demonstration.
type Exercise interface {
	Name() string
	Describe() string
	Run(ctx context.Context, p Params) (*Result, error)
}
