package geom

import "math"

// Unbounded is the sentinel vertex index marking the infinite end of a
// Voronoi ridge.
const Unbounded = -1

// Ridge is one edge of the Voronoi diagram. V1 and V2 index into
// Diagram.Vertices; V2 == Unbounded means the ridge is an infinite ray
// starting at V1 with unit direction Dir. Site1 and Site2 index the two
// input points the ridge separates.
type Ridge struct {
	V1, V2       int
	Site1, Site2 int
	Dir          Point
}

// Diagram is a Voronoi diagram derived from a Delaunay triangulation.
// Vertices[t] is the circumcenter of triangle t.
type Diagram struct {
	Sites    []Point
	Vertices []Point
	Ridges   []Ridge
}

// Voronoi derives the Voronoi diagram dual to the mesh.
func Voronoi(m *Mesh) *Diagram {
	nt := m.TriangleCount()
	d := &Diagram{
		Sites:    m.Points,
		Vertices: make([]Point, nt),
		Ridges:   make([]Ridge, 0, nt*2),
	}

	for t := 0; t < nt; t++ {
		a := m.Points[m.Triangles[3*t]]
		b := m.Points[m.Triangles[3*t+1]]
		c := m.Points[m.Triangles[3*t+2]]
		d.Vertices[t] = circumcenter(a, b, c)
	}

	for e := 0; e < len(m.Triangles); e++ {
		twin := m.Halfedges[e]
		if twin > e {
			continue // interior edge handled once, from its twin
		}

		s1 := m.Triangles[e]
		s2 := m.Triangles[nextHalfedge(e)]
		t1 := e / 3

		if twin >= 0 {
			d.Ridges = append(d.Ridges, Ridge{
				V1: t1, V2: twin / 3,
				Site1: s1, Site2: s2,
			})
			continue
		}

		// Hull edge: the dual ridge shoots off to infinity, perpendicular
		// to the site-to-site edge, away from the triangle interior.
		d.Ridges = append(d.Ridges, Ridge{
			V1: t1, V2: Unbounded,
			Site1: s1, Site2: s2,
			Dir: outwardNormal(m, e),
		})
	}

	return d
}

// ClipRidges converts ridges to drawable segments, extending unbounded rays
// by reach so they leave any sensible viewport.
func (d *Diagram) ClipRidges(reach float64) [][4]float64 {
	segs := make([][4]float64, 0, len(d.Ridges))
	for _, r := range d.Ridges {
		v1 := d.Vertices[r.V1]
		if r.V2 == Unbounded {
			segs = append(segs, [4]float64{
				v1.X, v1.Y,
				v1.X + r.Dir.X*reach, v1.Y + r.Dir.Y*reach,
			})
			continue
		}
		v2 := d.Vertices[r.V2]
		segs = append(segs, [4]float64{v1.X, v1.Y, v2.X, v2.Y})
	}
	return segs
}

func circumcenter(a, b, c Point) Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		// Near-collinear triangle: fall back to the centroid so the
		// diagram stays renderable.
		return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
}

func outwardNormal(m *Mesh, e int) Point {
	p := m.Points[m.Triangles[e]]
	q := m.Points[m.Triangles[nextHalfedge(e)]]

	// Perpendicular of the hull edge.
	n := Point{q.Y - p.Y, p.X - q.X}
	if l := math.Hypot(n.X, n.Y); l > 0 {
		n.X /= l
		n.Y /= l
	}

	// Flip if it points toward the triangle's third vertex.
	r := m.Points[m.Triangles[prevHalfedge(e)]]
	mid := Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
	if n.X*(r.X-mid.X)+n.Y*(r.Y-mid.Y) > 0 {
		n.X, n.Y = -n.X, -n.Y
	}
	return n
}

func prevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}
