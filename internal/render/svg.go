package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/numlab/internal/lab"
)

// GeometrySVG renders 2-D points and segments into an SVG document. Bounds
// come from the data with a 5% margin; points become dots, segments become
// strokes.
func GeometrySVG(points []lab.PointSet, segs []lab.Segment, width, height int) string {
	v := FitViewport(NewCanvas(1, 1), points, segs, 0.05)

	tx := func(x float64) float64 {
		return (x - v.MinX) / (v.MaxX - v.MinX) * float64(width)
	}
	ty := func(y float64) float64 {
		return float64(height) - (y-v.MinY)/(v.MaxY-v.MinY)*float64(height)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(segs) > 0 {
		sb.WriteString(`<g stroke="#00ff88" stroke-width="1" fill="none">` + "\n")
		for _, s := range segs {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`,
				tx(s.X1), ty(s.Y1), tx(s.X2), ty(s.Y2)))
			sb.WriteString("\n")
		}
		sb.WriteString("</g>\n")
	}

	colors := []string{"#00ccff", "#ff00ff", "#ffcc00"}
	for i, ps := range points {
		if ps.Dim != 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<g fill="%s">`, colors[i%len(colors)]) + "\n")
		for j := 0; j < ps.Len(); j++ {
			p := ps.At(j)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2"/>`, tx(p[0]), ty(p[1])))
			sb.WriteString("\n")
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasSVG converts a Braille canvas to SVG dots, for saving terminal
// renders as artifacts.
func CanvasSVG(c *Canvas, scale float64) string {
	if c == nil {
		return ""
	}

	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG saves an SVG document to disk.
func WriteSVG(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
