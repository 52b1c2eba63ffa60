package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/numlab/internal/lab"
)

func toXYs(s lab.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}

// LinesPNG saves a line plot of one or more series. The file format follows
// the path extension (.png or .svg).
func LinesPNG(path, title, xlabel, ylabel string, series ...lab.Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	for i, s := range series {
		line, err := plotter.NewLine(toXYs(s))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// ScatterPNG saves a 2-D scatter of a point set.
func ScatterPNG(path, title string, ps lab.PointSet) error {
	p := plot.New()
	p.Title.Text = title

	pts := make(plotter.XYs, ps.Len())
	for i := 0; i < ps.Len(); i++ {
		c := ps.At(i)
		pts[i].X = c[0]
		pts[i].Y = c[1]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(sc)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// HistDensityPNG saves a density-normalized histogram with an optional
// overlaid curve (pass a series with empty X to skip it).
func HistDensityPNG(path, title string, values []float64, bins int, curve lab.Series) error {
	p := plot.New()
	p.Title.Text = title

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	p.Add(h)

	if len(curve.X) > 0 {
		line, err := plotter.NewLine(toXYs(curve))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(1)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(curve.Name, line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
