package render

import (
	"github.com/san-kum/numlab/internal/lab"
)

// Viewport maps data coordinates onto a canvas's sub-pixel grid.
type Viewport struct {
	MinX, MaxX, MinY, MaxY float64
	canvas                 *Canvas
}

// NewViewport wraps a canvas with explicit data bounds.
func NewViewport(c *Canvas, minX, maxX, minY, maxY float64) *Viewport {
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}
	return &Viewport{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, canvas: c}
}

// FitViewport sizes bounds to cover every point and segment, with a
// fractional margin.
func FitViewport(c *Canvas, points []lab.PointSet, segs []lab.Segment, margin float64) *Viewport {
	first := true
	var minX, maxX, minY, maxY float64

	grow := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, ps := range points {
		for i := 0; i < ps.Len(); i++ {
			p := ps.At(i)
			grow(p[0], p[1])
		}
	}
	for _, s := range segs {
		grow(s.X1, s.Y1)
		grow(s.X2, s.Y2)
	}
	if first {
		minX, maxX, minY, maxY = -1, 1, -1, 1
	}

	dx := (maxX - minX) * margin
	dy := (maxY - minY) * margin
	return NewViewport(c, minX-dx, maxX+dx, minY-dy, maxY+dy)
}

func (v *Viewport) toPixel(x, y float64) (int, int) {
	w := v.canvas.Width * 2
	h := v.canvas.Height * 4
	px := int((x - v.MinX) / (v.MaxX - v.MinX) * float64(w-1))
	py := int((y - v.MinY) / (v.MaxY - v.MinY) * float64(h-1))
	return px, h - 1 - py // flip so y grows upward
}

// DrawPoint plots one data point.
func (v *Viewport) DrawPoint(x, y float64) {
	px, py := v.toPixel(x, y)
	v.canvas.Set(px, py)
}

// DrawPoints plots a 2-D point set.
func (v *Viewport) DrawPoints(ps lab.PointSet) {
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		v.DrawPoint(p[0], p[1])
	}
}

// DrawSegments plots line segments, clipping is left to the canvas bounds
// check.
func (v *Viewport) DrawSegments(segs []lab.Segment) {
	for _, s := range segs {
		x0, y0 := v.toPixel(s.X1, s.Y1)
		x1, y1 := v.toPixel(s.X2, s.Y2)
		v.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// DrawSeries plots a polyline through the series points.
func (v *Viewport) DrawSeries(s lab.Series) {
	for i := 1; i < len(s.X); i++ {
		x0, y0 := v.toPixel(s.X[i-1], s.Y[i-1])
		x1, y1 := v.toPixel(s.X[i], s.Y[i])
		v.canvas.DrawLine(x0, y0, x1, y1)
	}
}
