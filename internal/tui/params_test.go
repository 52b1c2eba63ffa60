package tui

import (
	"context"
	"testing"

	"github.com/san-kum/numlab/internal/exercises"
)

// Every exercise's default knob values must produce a runnable parameter
// set, otherwise the browser's "run" key fails on first use.
func TestDefaultSpecsRun(t *testing.T) {
	registry := exercises.NewRegistry()
	for _, name := range registry.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			spec := paramSpec(name)
			if len(spec) == 0 {
				t.Fatal("empty param spec")
			}
			ex, err := registry.Get(name)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			p := buildParams(spec)
			if name == "distfit" {
				p.Samples = 500 // keep the test quick
			}
			if _, err := ex.Run(context.Background(), p); err != nil {
				t.Errorf("defaults do not run: %v", err)
			}
		})
	}
}

func TestBuildParamsMapsFields(t *testing.T) {
	p := buildParams([]param{
		{name: "seed", value: 9},
		{name: "points", value: 30},
		{name: "sigma", value: 0.5},
		{name: "function", choices: []string{"runge", "sin"}, choice: 1},
	})

	if p.Seed != 9 || p.Points != 30 || p.Sigma != 0.5 {
		t.Errorf("numeric fields not mapped: %+v", p)
	}
	if p.Function != "sin" {
		t.Errorf("choice field not mapped: %q", p.Function)
	}
}

func TestNudgeWrapsChoices(t *testing.T) {
	a := NewApp()
	a.selected = "integrate"
	a.params = paramSpec("integrate")
	a.paramCursor = 0

	n := len(a.params[0].choices)
	a.nudge(-1)
	if a.params[0].choice != n-1 {
		t.Errorf("expected wrap to %d, got %d", n-1, a.params[0].choice)
	}
	a.nudge(+1)
	if a.params[0].choice != 0 {
		t.Errorf("expected wrap back to 0, got %d", a.params[0].choice)
	}
}
