// Package pointset generates seeded pseudo-random coordinate sets for the
// geometry and scatter exercises. Every generator is deterministic for a
// given seed and returns a read-only point set.
package pointset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/numlab/internal/lab"
)

// UniformSquare draws n points uniformly from [-half, half] x [-half, half].
func UniformSquare(n int, half float64, seed int64) lab.PointSet {
	rng := rand.New(rand.NewSource(uint64(seed)))
	coords := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		coords = append(coords,
			(rng.Float64()*2-1)*half,
			(rng.Float64()*2-1)*half,
		)
	}
	return lab.PointSet{Name: "uniform", Dim: 2, Coords: coords}
}

// GaussianClusters draws n points from k gaussian blobs with the given
// spread. Cluster centers are themselves drawn uniformly from the unit-ish
// square scaled by 3*spread so blobs separate visibly.
func GaussianClusters(n, k int, spread float64, seed int64) lab.PointSet {
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	norm := distuv.Normal{Mu: 0, Sigma: spread, Src: rng}

	centers := make([][2]float64, k)
	for i := range centers {
		centers[i] = [2]float64{
			(rng.Float64()*2 - 1) * 3 * spread,
			(rng.Float64()*2 - 1) * 3 * spread,
		}
	}

	coords := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		c := centers[i%k]
		coords = append(coords, c[0]+norm.Rand(), c[1]+norm.Rand())
	}
	return lab.PointSet{Name: "clusters", Dim: 2, Coords: coords}
}

// Ring draws n points on a circle of the given radius with radial gaussian
// jitter.
func Ring(n int, radius, jitter float64, seed int64) lab.PointSet {
	rng := rand.New(rand.NewSource(uint64(seed)))
	norm := distuv.Normal{Mu: 0, Sigma: jitter, Src: rng}

	coords := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		r := radius + norm.Rand()
		coords = append(coords, r*math.Cos(theta), r*math.Sin(theta))
	}
	return lab.PointSet{Name: "ring", Dim: 2, Coords: coords}
}

// JitterGrid lays out a side x side grid spanning [-half, half]^2 and
// perturbs each node by a uniform jitter. Handy for tessellation demos: the
// structure stays visible while ridges remain non-degenerate.
func JitterGrid(side int, half, jitter float64, seed int64) lab.PointSet {
	if side < 2 {
		side = 2
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	step := 2 * half / float64(side-1)

	coords := make([]float64, 0, side*side*2)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			x := -half + float64(i)*step + (rng.Float64()*2-1)*jitter
			y := -half + float64(j)*step + (rng.Float64()*2-1)*jitter
			coords = append(coords, x, y)
		}
	}
	return lab.PointSet{Name: "grid", Dim: 2, Coords: coords}
}

// GaussianClusters3D draws n points from k gaussian blobs in 3-D.
func GaussianClusters3D(n, k int, spread float64, seed int64) lab.PointSet {
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	norm := distuv.Normal{Mu: 0, Sigma: spread, Src: rng}

	centers := make([][3]float64, k)
	for i := range centers {
		centers[i] = [3]float64{
			(rng.Float64()*2 - 1) * 3 * spread,
			(rng.Float64()*2 - 1) * 3 * spread,
			(rng.Float64()*2 - 1) * 3 * spread,
		}
	}

	coords := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		c := centers[i%k]
		coords = append(coords, c[0]+norm.Rand(), c[1]+norm.Rand(), c[2]+norm.Rand())
	}
	return lab.PointSet{Name: "clusters3d", Dim: 3, Coords: coords}
}

// Helix draws n points along a vertical helix with gaussian jitter, a nice
// default cloud for the 3-D scatter exercise.
func Helix(n int, radius, pitch, jitter float64, seed int64) lab.PointSet {
	rng := rand.New(rand.NewSource(uint64(seed)))
	norm := distuv.Normal{Mu: 0, Sigma: jitter, Src: rng}

	turns := 3.0
	coords := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		theta := t * turns * 2 * math.Pi
		coords = append(coords,
			radius*math.Cos(theta)+norm.Rand(),
			radius*math.Sin(theta)+norm.Rand(),
			(t-0.5)*pitch*turns+norm.Rand(),
		)
	}
	return lab.PointSet{Name: "helix", Dim: 3, Coords: coords}
}
