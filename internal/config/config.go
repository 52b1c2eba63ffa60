package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/numlab/internal/lab"
)

const (
	DefaultPoints     = 64
	DefaultSpread     = 1.0
	DefaultClusters   = 3
	DefaultSamples    = 512
	DefaultSampleRate = 256.0
	DefaultNoise      = 0.3
	DefaultMu         = 0.0
	DefaultSigma      = 1.0
	DefaultBins       = 24
	DefaultAlpha      = 0.6
)

type Config struct {
	Exercise   string    `yaml:"exercise"`
	Seed       int64     `yaml:"seed"`
	Points     int       `yaml:"points"`
	Spread     float64   `yaml:"spread"`
	Clusters   int       `yaml:"clusters"`
	A          float64   `yaml:"a"`
	B          float64   `yaml:"b"`
	Samples    int       `yaml:"samples"`
	Function   string    `yaml:"function"`
	SampleRate float64   `yaml:"sample_rate"`
	Tones      []float64 `yaml:"tones"`
	Noise      float64   `yaml:"noise"`
	Mu         float64   `yaml:"mu"`
	Sigma      float64   `yaml:"sigma"`
	Bins       int       `yaml:"bins"`
	Image      string    `yaml:"image"`
	Overlay    string    `yaml:"overlay"`
	Alpha      float64   `yaml:"alpha"`
	OutDir     string    `yaml:"out_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Exercise:   "voronoi",
		Points:     DefaultPoints,
		Spread:     DefaultSpread,
		Clusters:   DefaultClusters,
		A:          0,
		B:          1,
		Samples:    DefaultSamples,
		SampleRate: DefaultSampleRate,
		Tones:      []float64{32, 80},
		Noise:      DefaultNoise,
		Mu:         DefaultMu,
		Sigma:      DefaultSigma,
		Bins:       DefaultBins,
		Alpha:      DefaultAlpha,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into run parameters.
func (c *Config) Params() lab.Params {
	return lab.Params{
		Seed:       c.Seed,
		Points:     c.Points,
		Spread:     c.Spread,
		Cluster:    c.Clusters,
		A:          c.A,
		B:          c.B,
		Samples:    c.Samples,
		Function:   c.Function,
		SampleRate: c.SampleRate,
		Tones:      c.Tones,
		Noise:      c.Noise,
		Mu:         c.Mu,
		Sigma:      c.Sigma,
		Bins:       c.Bins,
		Image:      c.Image,
		Overlay:    c.Overlay,
		Alpha:      c.Alpha,
		OutDir:     c.OutDir,
	}
}
