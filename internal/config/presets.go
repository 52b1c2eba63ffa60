package config

var Presets = map[string]map[string]*Config{
	"voronoi": {
		"sparse": {
			Exercise: "voronoi", Points: 24, Spread: 1.0, Seed: 7,
		},
		"dense": {
			Exercise: "voronoi", Points: 200, Spread: 1.0, Seed: 7,
		},
		"grid": {
			Exercise: "voronoi", Points: 49, Spread: 0.05, Seed: 3,
		},
	},
	"delaunay": {
		"sparse": {
			Exercise: "delaunay", Points: 30, Seed: 11,
		},
		"dense": {
			Exercise: "delaunay", Points: 300, Seed: 11,
		},
	},
	"hull": {
		"ring": {
			Exercise: "hull", Points: 80, Spread: 0.2, Seed: 5,
		},
	},
	"integrate": {
		"gauss": {
			Exercise: "integrate", Function: "gauss", A: -2, B: 2, Samples: 201,
		},
		"runge": {
			Exercise: "integrate", Function: "runge", A: -1, B: 1, Samples: 201,
		},
	},
	"minimize": {
		"bowl": {
			Exercise: "minimize", Function: "bowl",
		},
		"cosine": {
			Exercise: "minimize", Function: "cosine",
		},
	},
	"interp": {
		"runge": {
			Exercise: "interp", Function: "runge", Points: 12, Samples: 400,
		},
		"damped": {
			Exercise: "interp", Function: "damped", Points: 16, Samples: 400,
		},
	},
	"fft": {
		"twotone": {
			Exercise: "fft", Samples: 2048, SampleRate: 512,
			Tones: []float64{40, 120}, Noise: 0.2, Seed: 1,
		},
		"noisy": {
			Exercise: "fft", Samples: 1024, SampleRate: 256,
			Tones: []float64{32}, Noise: 1.5, Seed: 1,
		},
	},
	"distfit": {
		"standard": {
			Exercise: "distfit", Samples: 5000, Mu: 0, Sigma: 1, Bins: 24, Seed: 42,
		},
		"wide": {
			Exercise: "distfit", Samples: 20000, Mu: 5, Sigma: 3, Bins: 40, Seed: 42,
		},
	},
	"scatter3d": {
		"helix": {
			Exercise: "scatter3d", Points: 400, Spread: 0.05, Seed: 2,
		},
		"clusters": {
			Exercise: "scatter3d", Function: "clusters", Points: 600, Spread: 0.6, Clusters: 4, Seed: 2,
		},
	},
	"composite": {
		"synthetic": {
			Exercise: "composite", Alpha: 0.6, Seed: 9,
		},
	},
	"edges": {
		"synthetic": {
			Exercise: "edges", Sigma: 1.2, Seed: 9, Bins: 16,
		},
	},
}

func GetPreset(exercise, preset string) *Config {
	exPresets, ok := Presets[exercise]
	if !ok {
		return nil
	}
	cfg, ok := exPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(exercise string) []string {
	exPresets, ok := Presets[exercise]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(exPresets))
	for name := range exPresets {
		names = append(names, name)
	}
	return names
}
