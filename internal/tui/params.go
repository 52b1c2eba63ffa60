package tui

import (
	"sort"

	"github.com/san-kum/numlab/internal/interp1d"
	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/minimize"
	"github.com/san-kum/numlab/internal/quadrature"
)

// paramSpec lists the knobs the browser exposes per exercise. Everything
// else falls back to the exercise's own defaults.
func paramSpec(exercise string) []param {
	seed := param{name: "seed", value: 42, step: 1}

	switch exercise {
	case "voronoi", "delaunay":
		return []param{seed,
			{name: "points", value: 64, step: 8},
			{name: "spread", value: 1.0, step: 0.1},
		}
	case "hull":
		return []param{seed,
			{name: "points", value: 80, step: 8},
			{name: "spread", value: 0.2, step: 0.05},
		}
	case "integrate":
		return []param{
			{name: "function", choices: sorted(quadrature.Names())},
			{name: "a", value: 0, step: 0.5},
			{name: "b", value: 0, step: 0.5},
			{name: "samples", value: 201, step: 50},
		}
	case "minimize":
		return []param{
			{name: "function", choices: sorted(minimize.Names())},
			{name: "a", value: 0, step: 0.5},
			{name: "b", value: 0, step: 0.5},
		}
	case "interp":
		return []param{
			{name: "function", choices: sorted(interp1d.CurveNames())},
			{name: "points", value: 12, step: 1},
			{name: "samples", value: 400, step: 50},
		}
	case "fft":
		return []param{seed,
			{name: "samples", value: 1024, step: 256},
			{name: "rate", value: 256, step: 32},
			{name: "noise", value: 0.3, step: 0.1},
		}
	case "composite":
		return []param{seed,
			{name: "alpha", value: 0.6, step: 0.1},
		}
	case "edges":
		return []param{seed,
			{name: "sigma", value: 1.2, step: 0.2},
			{name: "bins", value: 16, step: 2},
		}
	case "distfit":
		return []param{seed,
			{name: "samples", value: 5000, step: 1000},
			{name: "mu", value: 0, step: 0.5},
			{name: "sigma", value: 1, step: 0.1},
			{name: "bins", value: 24, step: 2},
		}
	case "scatter3d":
		return []param{seed,
			{name: "function", choices: []string{"helix", "clusters"}},
			{name: "points", value: 400, step: 50},
			{name: "spread", value: 0.05, step: 0.05},
			{name: "clusters", value: 3, step: 1},
		}
	}
	return []param{seed}
}

func buildParams(params []param) lab.Params {
	var p lab.Params
	for _, pr := range params {
		if pr.choices != nil {
			if pr.name == "function" {
				p.Function = pr.choices[pr.choice]
			}
			continue
		}
		switch pr.name {
		case "seed":
			p.Seed = int64(pr.value)
		case "points":
			p.Points = int(pr.value)
		case "spread":
			p.Spread = pr.value
		case "clusters":
			p.Cluster = int(pr.value)
		case "a":
			p.A = pr.value
		case "b":
			p.B = pr.value
		case "samples":
			p.Samples = int(pr.value)
		case "rate":
			p.SampleRate = pr.value
		case "noise":
			p.Noise = pr.value
		case "mu":
			p.Mu = pr.value
		case "sigma":
			p.Sigma = pr.value
		case "bins":
			p.Bins = int(pr.value)
		case "alpha":
			p.Alpha = pr.value
		}
	}
	return p
}

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
