package imaging

import (
	"image"
	"image/color"
	"math"
)

// Grayscale converts any image to 8-bit luminance.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return out
}

// GaussianKernel builds a half-kernel for the given sigma, truncated where
// the density falls below a small threshold, then mirrors and normalizes
// it into a full odd-length kernel.
func GaussianKernel(sigma float64) []float64 {
	const threshold = 1e-3
	g := func(x float64) float64 {
		return math.Exp(-x*x/(2*sigma*sigma)) / math.Sqrt(2*math.Pi*sigma*sigma)
	}

	half := 1
	for g(float64(half)) >= threshold {
		half++
	}

	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := -half; i <= half; i++ {
		v := g(float64(i))
		kernel[i+half] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianBlur applies a separable gaussian blur with edge clamping.
func GaussianBlur(src *image.Gray, sigma float64) *image.Gray {
	if sigma <= 0 {
		return src
	}
	kernel := GaussianKernel(sigma)
	half := len(kernel) / 2
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	tmp := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k := -half; k <= half; k++ {
				acc += kernel[k+half] * float64(src.GrayAt(clamp(x+k, w-1)+b.Min.X, y+b.Min.Y).Y)
			}
			tmp.SetGray(x+b.Min.X, y+b.Min.Y, color.Gray{Y: uint8(acc + 0.5)})
		}
	}

	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k := -half; k <= half; k++ {
				acc += kernel[k+half] * float64(tmp.GrayAt(x+b.Min.X, clamp(y+k, h-1)+b.Min.Y).Y)
			}
			out.SetGray(x+b.Min.X, y+b.Min.Y, color.Gray{Y: uint8(acc + 0.5)})
		}
	}
	return out
}

// Sobel computes the gradient magnitude image and returns it alongside the
// raw per-pixel magnitudes (for histogramming). Border pixels are zero.
func Sobel(src *image.Gray) (*image.Gray, []float64) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(b)
	mags := make([]float64, 0, w*h)

	at := func(x, y int) float64 {
		return float64(src.GrayAt(x+b.Min.X, y+b.Min.Y).Y)
	}

	maxMag := 0.0
	raw := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			m := math.Hypot(gx, gy)
			raw[y*w+x] = m
			if m > maxMag {
				maxMag = m
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := raw[y*w+x]
			v := 0.0
			if maxMag > 0 {
				v = m / maxMag * 255
			}
			out.SetGray(x+b.Min.X, y+b.Min.Y, color.Gray{Y: uint8(v + 0.5)})
			mags = append(mags, m)
		}
	}
	return out, mags
}

func clamp(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
