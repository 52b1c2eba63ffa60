package exercises

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/numlab/internal/lab"
)

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	if len(names) != 11 {
		t.Fatalf("expected 11 exercises, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %s before %s", names[i-1], names[i])
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("warp-drive")
	if !errors.Is(err, lab.ErrUnknownExercise) {
		t.Errorf("expected ErrUnknownExercise, got %v", err)
	}
}

func TestRegistryGetReportsOwnName(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.Names() {
		ex, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s failed: %v", name, err)
		}
		if ex.Name() != name {
			t.Errorf("exercise registered as %s reports name %s", name, ex.Name())
		}
		if ex.Describe() == "" {
			t.Errorf("exercise %s has no description", name)
		}
	}
}

// Every exercise should run with nothing but a seed, filling in its own
// defaults.
func TestAllExercisesRunWithDefaults(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			ex, err := r.Get(name)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			p := lab.Params{Seed: 7}
			switch name {
			case "voronoi", "delaunay", "hull":
				p.Points = 30
			case "fft":
				p.Samples = 256
			case "distfit":
				p.Samples = 500
			case "scatter3d":
				p.Points = 50
			case "composite", "edges":
				// synthetic images, defaults suffice
			}
			result, err := ex.Run(context.Background(), p)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if len(result.Stats) == 0 {
				t.Error("no stats recorded")
			}
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRegistry()
	ex, _ := r.Get("integrate")
	if _, err := ex.Run(ctx, lab.Params{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestVoronoiStats(t *testing.T) {
	ex := &voronoiExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 3, Points: 40})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Stats["sites"] != 40 {
		t.Errorf("expected 40 sites, got %v", result.Stats["sites"])
	}
	if result.Stats["vertices"] < 1 {
		t.Error("expected voronoi vertices")
	}
	if result.Stats["unbounded_ridges"] < 3 {
		t.Errorf("hull sites should spawn unbounded ridges, got %v", result.Stats["unbounded_ridges"])
	}
	if len(result.Segments) == 0 {
		t.Error("expected ridge segments")
	}
	if len(result.Points) != 2 {
		t.Fatalf("expected sites and vertices point sets, got %d", len(result.Points))
	}
}

func TestVoronoiTooFewPoints(t *testing.T) {
	ex := &voronoiExercise{}
	_, err := ex.Run(context.Background(), lab.Params{Points: 2})
	if !errors.Is(err, lab.ErrBadParams) {
		t.Errorf("expected ErrBadParams, got %v", err)
	}
}

func TestDelaunayEulerCounts(t *testing.T) {
	ex := &delaunayExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 9, Points: 50})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	n := result.Stats["sites"]
	h := result.Stats["hull_points"]
	if got, want := result.Stats["triangles"], 2*n-2-h; got != want {
		t.Errorf("triangle count %v, want %v", got, want)
	}
	if got, want := result.Stats["edges"], 3*n-3-h; got != want {
		t.Errorf("edge count %v, want %v", got, want)
	}
}

func TestHullRing(t *testing.T) {
	ex := &hullExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 5, Points: 60, Spread: 0.05})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Unit ring with light jitter: hull area and perimeter near the circle's.
	if a := result.Stats["area"]; a < 2.4 || a > 4.3 {
		t.Errorf("hull area %v far from pi", a)
	}
	if p := result.Stats["perimeter"]; p < 5.3 || p > 7.6 {
		t.Errorf("hull perimeter %v far from 2*pi", p)
	}
	if result.Stats["hull_points"] > result.Stats["points"] {
		t.Error("hull cannot use more points than given")
	}
}

func TestIntegrateAgainstClosedForm(t *testing.T) {
	ex := &integrateExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Function: "sin"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Integral of sin over [0, pi] is 2.
	if math.Abs(result.Stats["exact"]-2) > 1e-12 {
		t.Errorf("exact value %v, want 2", result.Stats["exact"])
	}
	if result.Stats["gl_error"] > 1e-10 {
		t.Errorf("gauss-legendre error too large: %v", result.Stats["gl_error"])
	}
	if result.Stats["simpson_error"] > 1e-6 {
		t.Errorf("simpson error too large: %v", result.Stats["simpson_error"])
	}
	if result.Stats["simpson_error"] > result.Stats["trapezoid_error"] {
		t.Error("simpson should beat trapezoid on a smooth integrand")
	}
}

func TestIntegrateUnknownFunction(t *testing.T) {
	ex := &integrateExercise{}
	_, err := ex.Run(context.Background(), lab.Params{Function: "mystery"})
	if !errors.Is(err, lab.ErrBadParams) {
		t.Errorf("expected ErrBadParams, got %v", err)
	}
}

func TestMinimizeFindsKnownMinimum(t *testing.T) {
	ex := &minimizeExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Function: "cosine"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Stats["x_error"] > 1e-6 {
		t.Errorf("golden section missed pi by %v", result.Stats["x_error"])
	}
	if math.Abs(result.Stats["rosenbrock_x0"]-1) > 1e-4 ||
		math.Abs(result.Stats["rosenbrock_x1"]-1) > 1e-4 {
		t.Errorf("nelder-mead missed (1,1): (%v, %v)",
			result.Stats["rosenbrock_x0"], result.Stats["rosenbrock_x1"])
	}
}

func TestInterpCubicBeatsLinear(t *testing.T) {
	ex := &interpExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Function: "damped", Points: 14})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Series) != 4 {
		t.Fatalf("expected truth + 3 methods, got %d series", len(result.Series))
	}
	if result.Stats["cubic_max_error"] >= result.Stats["linear_max_error"] {
		t.Errorf("cubic (%v) should beat linear (%v) on a smooth curve",
			result.Stats["cubic_max_error"], result.Stats["linear_max_error"])
	}
}

func TestFFTFindsTone(t *testing.T) {
	ex := &fftExercise{}
	p := lab.Params{Seed: 1, Samples: 1024, SampleRate: 256, Tones: []float64{48}}
	result, err := ex.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if math.Abs(result.Stats["dominant_hz"]-48) > 1 {
		t.Errorf("dominant frequency %v, want ~48", result.Stats["dominant_hz"])
	}
	if result.Stats["bins"] != 513 {
		t.Errorf("expected 513 one-sided bins for 1024 samples, got %v", result.Stats["bins"])
	}
}

func TestFFTRejectsToneAboveNyquist(t *testing.T) {
	ex := &fftExercise{}
	p := lab.Params{Samples: 256, SampleRate: 100, Tones: []float64{60}}
	if _, err := ex.Run(context.Background(), p); !errors.Is(err, lab.ErrBadParams) {
		t.Errorf("expected ErrBadParams, got %v", err)
	}
}

func TestCompositeArtifact(t *testing.T) {
	dir := t.TempDir()
	ex := &compositeExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 2, Alpha: 0.5, OutDir: dir})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Stats["width"] != syntheticSize || result.Stats["height"] != syntheticSize {
		t.Errorf("unexpected output size %vx%v", result.Stats["width"], result.Stats["height"])
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(result.Artifacts))
	}
	if _, err := os.Stat(result.Artifacts[0]); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestCompositeBadAlpha(t *testing.T) {
	ex := &compositeExercise{}
	if _, err := ex.Run(context.Background(), lab.Params{Alpha: 1.5}); !errors.Is(err, lab.ErrBadParams) {
		t.Errorf("expected ErrBadParams, got %v", err)
	}
}

func TestEdgesHistogram(t *testing.T) {
	ex := &edgesExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 4, Bins: 12})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Series) != 1 || len(result.Series[0].X) != 12 {
		t.Fatalf("expected 12-bin histogram series")
	}
	if result.Stats["max_gradient"] <= 0 {
		t.Error("synthetic image should have edges")
	}
	frac := result.Stats["strong_edge_frac"]
	if frac <= 0 || frac >= 1 {
		t.Errorf("strong edge fraction %v out of (0,1)", frac)
	}
}

func TestDistfitRecoversParameters(t *testing.T) {
	ex := &distfitExercise{}
	p := lab.Params{Seed: 11, Samples: 20000, Mu: 3, Sigma: 0.5}
	result, err := ex.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Stats["mu_error"] > 0.05 {
		t.Errorf("fitted mu off by %v", result.Stats["mu_error"])
	}
	if result.Stats["sigma_error"] > 0.05 {
		t.Errorf("fitted sigma off by %v", result.Stats["sigma_error"])
	}
}

func TestScatter3DClouds(t *testing.T) {
	ex := &scatter3dExercise{}

	for _, fn := range []string{"helix", "clusters"} {
		result, err := ex.Run(context.Background(), lab.Params{Seed: 6, Points: 100, Function: fn})
		if err != nil {
			t.Fatalf("run %s failed: %v", fn, err)
		}
		if len(result.Points) != 1 || result.Points[0].Dim != 3 {
			t.Fatalf("%s: expected one 3-d point set", fn)
		}
		if result.Points[0].Len() != 100 {
			t.Errorf("%s: expected 100 points, got %d", fn, result.Points[0].Len())
		}
	}

	if _, err := ex.Run(context.Background(), lab.Params{Points: 10, Function: "torus"}); !errors.Is(err, lab.ErrBadParams) {
		t.Errorf("expected ErrBadParams for unknown cloud, got %v", err)
	}
}

func TestGeometryArtifacts(t *testing.T) {
	dir := t.TempDir()
	ex := &voronoiExercise{}
	result, err := ex.Run(context.Background(), lab.Params{Seed: 8, Points: 20, OutDir: dir})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(result.Artifacts))
	}
	if filepath.Ext(result.Artifacts[0]) != ".svg" {
		t.Errorf("expected svg artifact, got %s", result.Artifacts[0])
	}
	if _, err := os.Stat(result.Artifacts[0]); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}
