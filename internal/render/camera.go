package render

import (
	"math"
	"sort"

	"github.com/san-kum/numlab/internal/lab"
)

// Camera projects 3-D coordinates onto a 2-D surface: rotate around the
// axes, then apply simple perspective from a fixed eye on the z axis.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	Distance         float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1.0, Distance: 50}
}

func (c *Camera) rotate(x, y, z float64) (float64, float64, float64) {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	y, z = y*cx-z*sx, y*sx+z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	x, z = x*cy+z*sy, -x*sy+z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	x, y = x*cz-y*sz, x*sz+y*cz
	return x, y, z
}

// Project maps a world point to sub-pixel canvas coordinates. The boolean
// reports whether the point lands on the surface.
func (c *Camera) Project(x, y, z float64, sw, sh int) (int, int, float64, bool) {
	rx, ry, rz := c.rotate(x, y, z)
	rx, ry, rz = rx*c.Zoom, ry*c.Zoom, rz*c.Zoom

	if rz >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rz)

	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0

	sx := int(rx*scale*pScale) + sw/2
	sy := int(-ry*scale*pScale) + sh/2
	return sx, sy, rz, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// RenderCloud draws a 3-D point set onto the canvas back-to-front, after
// normalizing the cloud to roughly unit scale so any input fits the view.
func RenderCloud(c *Canvas, ps lab.PointSet, cam *Camera) {
	if ps.Dim != 3 || ps.Len() == 0 {
		return
	}

	// Center and scale to a unit-ish cube.
	var cx, cy, cz float64
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		cx += p[0]
		cy += p[1]
		cz += p[2]
	}
	n := float64(ps.Len())
	cx, cy, cz = cx/n, cy/n, cz/n

	maxR := 0.0
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		r := math.Sqrt((p[0]-cx)*(p[0]-cx) + (p[1]-cy)*(p[1]-cy) + (p[2]-cz)*(p[2]-cz))
		if r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}

	type proj struct {
		x, y  int
		depth float64
	}
	sw, sh := c.Width*2, c.Height*4
	pts := make([]proj, 0, ps.Len())
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		x, y, d, ok := cam.Project((p[0]-cx)/maxR, (p[1]-cy)/maxR, (p[2]-cz)/maxR, sw, sh)
		if ok {
			pts = append(pts, proj{x, y, d})
		}
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].depth < pts[j].depth })
	for _, p := range pts {
		c.Set(p.x, p.y)
	}
}
