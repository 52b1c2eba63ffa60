package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/numlab/internal/lab"
)

// Composite scales the overlay to the base's bounds with a bilinear kernel
// and alpha-blends it on top. alpha in [0,1] scales the overlay's own alpha
// channel, so transparent overlay regions stay transparent.
func Composite(base, overlay image.Image, alpha float64) (*image.RGBA, error) {
	if alpha < 0 || alpha > 1 {
		return nil, &lab.ParamError{Field: "alpha", Reason: "must be in [0,1]"}
	}

	b := base.Bounds()
	out := image.NewRGBA(b)
	xdraw.Draw(out, b, base, b.Min, xdraw.Src)

	scaled := image.NewRGBA(b)
	xdraw.BiLinear.Scale(scaled, b, overlay, overlay.Bounds(), xdraw.Src, nil)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			or, og, ob, oa := scaled.At(x, y).RGBA()
			if oa == 0 {
				continue
			}
			br, bg, bb, _ := out.At(x, y).RGBA()

			// Effective coverage of the overlay pixel.
			a := alpha * float64(oa) / 0xffff

			i := out.PixOffset(x, y)
			out.Pix[i+0] = blend(br, or, oa, a)
			out.Pix[i+1] = blend(bg, og, oa, a)
			out.Pix[i+2] = blend(bb, ob, oa, a)
			out.Pix[i+3] = 0xff
		}
	}
	return out, nil
}

// blend mixes a base and a premultiplied overlay channel at coverage a.
func blend(base, over, overAlpha uint32, a float64) uint8 {
	// Un-premultiply the overlay channel before mixing.
	o := float64(over) / float64(overAlpha) * 0xffff
	v := (1-a)*float64(base) + a*o
	if v > 0xffff {
		v = 0xffff
	}
	return uint8(uint32(v) >> 8)
}
