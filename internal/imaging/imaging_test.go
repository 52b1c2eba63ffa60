package imaging

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.png")

	img := SyntheticBase(64, 48, 1)
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Errorf("bounds changed across round trip: %v vs %v", loaded.Bounds(), img.Bounds())
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestCompositeAlpha(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			base.SetRGBA(x, y, color.RGBA{R: 200, G: 0, B: 0, A: 255})
		}
	}
	overlay := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			overlay.SetRGBA(x, y, color.RGBA{R: 0, G: 0, B: 200, A: 255})
		}
	}

	out, err := Composite(base, overlay, 0.5)
	if err != nil {
		t.Fatalf("composite failed: %v", err)
	}

	c := out.RGBAAt(5, 5)
	if c.R < 80 || c.R > 120 {
		t.Errorf("red channel %d, expected ~100 at alpha 0.5", c.R)
	}
	if c.B < 80 || c.B > 120 {
		t.Errorf("blue channel %d, expected ~100 at alpha 0.5", c.B)
	}
}

func TestCompositeZeroAlphaKeepsBase(t *testing.T) {
	base := SyntheticBase(32, 32, 2)
	overlay := SyntheticOverlay(32, 32, 3)

	out, err := Composite(base, overlay, 0)
	if err != nil {
		t.Fatalf("composite failed: %v", err)
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if out.RGBAAt(x, y).R != base.RGBAAt(x, y).R {
				t.Fatalf("pixel (%d,%d) changed at alpha 0", x, y)
			}
		}
	}
}

func TestCompositeBadAlpha(t *testing.T) {
	base := SyntheticBase(8, 8, 1)
	if _, err := Composite(base, base, 1.5); err == nil {
		t.Error("expected error for alpha > 1")
	}
}

func TestCompositeTransparentOverlayRegions(t *testing.T) {
	base := SyntheticBase(40, 40, 4)
	overlay := SyntheticOverlay(40, 40, 5) // ring on transparent background

	out, err := Composite(base, overlay, 1)
	if err != nil {
		t.Fatalf("composite failed: %v", err)
	}

	// The overlay center is transparent, so the base must show through.
	if out.RGBAAt(20, 20) != base.RGBAAt(20, 20) {
		t.Error("transparent overlay region altered the base")
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, sigma := range []float64{0.8, 1.5, 3.0} {
		k := GaussianKernel(sigma)
		if len(k)%2 != 1 {
			t.Errorf("sigma %.1f: kernel length %d not odd", sigma, len(k))
		}
		sum := 0.0
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("sigma %.1f: kernel sums to %f", sigma, sum)
		}
		mid := len(k) / 2
		if k[mid] < k[0] {
			t.Errorf("sigma %.1f: kernel not peaked at center", sigma)
		}
	}
}

func TestGaussianBlurSmooths(t *testing.T) {
	// Single bright pixel on black: blur must spread it.
	src := image.NewGray(image.Rect(0, 0, 21, 21))
	src.SetGray(10, 10, color.Gray{Y: 255})

	out := GaussianBlur(src, 1.5)

	if out.GrayAt(10, 10).Y >= 255 {
		t.Error("center should lose intensity")
	}
	if out.GrayAt(11, 10).Y == 0 || out.GrayAt(10, 11).Y == 0 {
		t.Error("neighbors should gain intensity")
	}
}

func TestSobelDetectsVerticalEdge(t *testing.T) {
	// Left half black, right half white.
	src := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 10; x < 20; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	out, mags := Sobel(src)
	if len(mags) != 400 {
		t.Fatalf("expected 400 magnitudes, got %d", len(mags))
	}

	if out.GrayAt(10, 10).Y < 200 {
		t.Errorf("edge pixel magnitude %d, expected strong response", out.GrayAt(10, 10).Y)
	}
	if out.GrayAt(3, 10).Y != 0 {
		t.Errorf("flat region magnitude %d, expected 0", out.GrayAt(3, 10).Y)
	}
}
