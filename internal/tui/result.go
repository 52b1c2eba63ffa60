package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numlab/internal/render"
)

func (a App) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(strings.ToUpper(a.selected)) + "\n\n")

	if a.runErr != nil {
		b.WriteString("  " + errStyle.Render("error: "+a.runErr.Error()) + "\n")
		b.WriteString("\n  " + keyHint("r", "retry") + keyHint("esc", "back") + keyHint("q", "quit") + "\n")
		return b.String()
	}

	cw := a.width - 6
	if cw < 40 {
		cw = 40
	}
	ch := a.height - 12
	if ch < 10 {
		ch = 10
	}

	if plot := a.plotResult(cw, ch); plot != "" {
		for _, line := range strings.Split(plot, "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.statsTable())

	hints := keyHint("r", "rerun") + keyHint("esc", "back") + keyHint("q", "quit")
	if len(a.result.Points) > 0 && a.result.Points[0].Dim == 3 {
		hints = keyHint("h/j/k/l", "rotate") + hints
	}
	b.WriteString("\n  " + hints + "\n")
	return b.String()
}

// plotResult picks the right terminal rendering for what the exercise
// produced: braille canvas for geometry, a rotatable cloud for 3-d points,
// asciigraph for plain series.
func (a App) plotResult(w, h int) string {
	r := a.result

	if len(r.Points) > 0 && r.Points[0].Dim == 3 {
		canvas := render.NewCanvas(w, h)
		cam := render.NewCamera()
		cam.RotX, cam.RotY = a.rotX, a.rotY
		render.RenderCloud(canvas, r.Points[0], cam)
		return canvas.String()
	}

	if len(r.Segments) > 0 {
		canvas := render.NewCanvas(w, h)
		vp := render.FitViewport(canvas, r.Points, r.Segments, 0.05)
		vp.DrawSegments(r.Segments)
		for _, ps := range r.Points {
			if ps.Dim == 2 {
				vp.DrawPoints(ps)
			}
		}
		return canvas.String()
	}

	if len(r.Series) > 0 {
		s := r.Series[len(r.Series)-1]
		return asciigraph.Plot(s.Y,
			asciigraph.Height(h),
			asciigraph.Width(w-10),
			asciigraph.Caption(s.Name),
		)
	}

	if len(r.Points) > 0 && r.Points[0].Dim == 2 {
		canvas := render.NewCanvas(w, h)
		vp := render.FitViewport(canvas, r.Points, nil, 0.05)
		for _, ps := range r.Points {
			vp.DrawPoints(ps)
		}
		return canvas.String()
	}
	return ""
}

func (a App) statsTable() string {
	names := make([]string, 0, len(a.result.Stats))
	for name := range a.result.Stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-20s", name)),
			valueStyle.Render(fmt.Sprintf("%.6g", a.result.Stats[name]))))
	}
	return b.String()
}

// Run starts the interactive browser.
func Run() error {
	_, err := tea.NewProgram(NewApp(), tea.WithAltScreen()).Run()
	return err
}
