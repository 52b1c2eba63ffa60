package geom

import (
	"github.com/fogleman/delaunay"

	"github.com/san-kum/numlab/internal/lab"
)

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Mesh is a Delaunay triangulation in delaunator-style indexed form.
// Triangles holds vertex indices in triples; Halfedges[e] is the opposite
// halfedge of e, or -1 on the hull boundary.
type Mesh struct {
	Points    []Point
	Triangles []int
	Halfedges []int
	Hull      []Point
}

// Triangulate builds the Delaunay triangulation of a 2-D point set.
func Triangulate(ps lab.PointSet) (*Mesh, error) {
	if ps.Dim != 2 {
		return nil, &lab.ParamError{Field: "points", Reason: "must be 2-d"}
	}
	n := ps.Len()
	if n < 3 {
		return nil, &lab.ParamError{Field: "points", Reason: "need at least 3"}
	}

	dpts := make([]delaunay.Point, n)
	for i := 0; i < n; i++ {
		p := ps.At(i)
		dpts[i] = delaunay.Point{X: p[0], Y: p[1]}
	}

	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		Points:    make([]Point, n),
		Triangles: tri.Triangles,
		Halfedges: tri.Halfedges,
		Hull:      make([]Point, len(tri.ConvexHull)),
	}
	for i, p := range tri.Points {
		m.Points[i] = Point{p.X, p.Y}
	}
	for i, p := range tri.ConvexHull {
		m.Hull[i] = Point{p.X, p.Y}
	}
	return m, nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// Edges returns each triangulation edge exactly once.
func (m *Mesh) Edges() []lab.Segment {
	segs := make([]lab.Segment, 0, len(m.Triangles)/2)
	for e := 0; e < len(m.Triangles); e++ {
		// A shared edge appears as two halfedges; keep one of them.
		if m.Halfedges[e] > e {
			continue
		}
		p := m.Points[m.Triangles[e]]
		q := m.Points[m.Triangles[nextHalfedge(e)]]
		segs = append(segs, lab.Segment{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y})
	}
	return segs
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}
