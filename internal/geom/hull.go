package geom

import "github.com/san-kum/numlab/internal/lab"

// ConvexHull returns the hull polygon of a 2-D point set, in traversal
// order. The polygon is implicitly closed.
func ConvexHull(ps lab.PointSet) ([]Point, error) {
	m, err := Triangulate(ps)
	if err != nil {
		return nil, err
	}
	return m.Hull, nil
}

// HullSegments converts a hull polygon into drawable closed-loop segments.
func HullSegments(hull []Point) []lab.Segment {
	if len(hull) < 2 {
		return nil
	}
	segs := make([]lab.Segment, 0, len(hull))
	for i := range hull {
		p := hull[i]
		q := hull[(i+1)%len(hull)]
		segs = append(segs, lab.Segment{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y})
	}
	return segs
}
