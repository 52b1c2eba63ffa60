// Package exercises implements the numlab exercise catalogue and its
// registry. Each exercise is a thin, stateless pipeline: generate or load
// input, call into the numerical library that owns the algorithm, package
// the output for rendering and storage.
package exercises

import (
	"fmt"
	"sort"

	"github.com/san-kum/numlab/internal/lab"
)

type Registry struct {
	factories map[string]func() lab.Exercise
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]func() lab.Exercise)}

	r.factories["voronoi"] = func() lab.Exercise { return &voronoiExercise{} }
	r.factories["delaunay"] = func() lab.Exercise { return &delaunayExercise{} }
	r.factories["hull"] = func() lab.Exercise { return &hullExercise{} }
	r.factories["integrate"] = func() lab.Exercise { return &integrateExercise{} }
	r.factories["minimize"] = func() lab.Exercise { return &minimizeExercise{} }
	r.factories["interp"] = func() lab.Exercise { return &interpExercise{} }
	r.factories["fft"] = func() lab.Exercise { return &fftExercise{} }
	r.factories["composite"] = func() lab.Exercise { return &compositeExercise{} }
	r.factories["edges"] = func() lab.Exercise { return &edgesExercise{} }
	r.factories["distfit"] = func() lab.Exercise { return &distfitExercise{} }
	r.factories["scatter3d"] = func() lab.Exercise { return &scatter3dExercise{} }

	return r
}

func (r *Registry) Get(name string) (lab.Exercise, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", lab.ErrUnknownExercise, name)
	}
	return fn(), nil
}

// Names lists registered exercises alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
