package exercises

import (
	"context"
	"path/filepath"

	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/render"
	"github.com/san-kum/numlab/internal/spectral"
)

type fftExercise struct{}

func (e *fftExercise) Name() string { return "fft" }
func (e *fftExercise) Describe() string {
	return "power spectrum of a synthesized multi-tone signal"
}

func (e *fftExercise) Run(ctx context.Context, p lab.Params) (*lab.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := p.Samples
	if n == 0 {
		n = 1024
	}
	if n < 16 {
		return nil, &lab.ParamError{Field: "samples", Reason: "need at least 16"}
	}
	rate := p.SampleRate
	if rate == 0 {
		rate = 256
	}
	if rate <= 0 {
		return nil, &lab.ParamError{Field: "rate", Reason: "must be positive"}
	}
	tones := p.Tones
	if len(tones) == 0 {
		tones = []float64{32, 80}
	}
	for _, f := range tones {
		if f >= rate/2 {
			return nil, &lab.ParamError{Field: "tones", Reason: "tone above nyquist"}
		}
	}

	times, samples := spectral.Synthesize(n, rate, tones, p.Noise, p.Seed)
	windowed := spectral.ApplyWindow(samples)
	freqs, power := spectral.Spectrum(windowed, rate)
	dom, peak := spectral.Dominant(freqs, power)

	result := &lab.Result{
		Series: []lab.Series{
			{Name: "signal", X: times, Y: samples},
			{Name: "spectrum", X: freqs, Y: power},
		},
	}
	result.AddStat("samples", float64(n))
	result.AddStat("bins", float64(len(freqs)))
	result.AddStat("dominant_hz", dom)
	result.AddStat("peak", peak)
	result.AddStat("nyquist_hz", rate/2)

	if p.OutDir != "" {
		sigPath := filepath.Join(p.OutDir, "signal.png")
		if err := render.LinesPNG(sigPath, "signal", "t", "amplitude", result.Series[0]); err != nil {
			return nil, err
		}
		specPath := filepath.Join(p.OutDir, "spectrum.png")
		if err := render.LinesPNG(specPath, "power spectrum", "hz", "power", result.Series[1]); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, sigPath, specPath)
	}
	return result, nil
}
