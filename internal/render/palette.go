package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MirrorPalette returns n visually distinct colors for mirror outlines. Hues
// are spread evenly around the wheel at fixed saturation and value so the
// outlines stay readable over the tiling underneath.
func MirrorPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		h := float64(i) * 360.0 / float64(n)
		r, g, b := colorful.Hsv(h, 0.85, 0.95).RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// WithAlpha returns c with its alpha replaced, premultiplying the color
// channels so the result stays valid for ebiten's draw pipeline.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := uint32(a)
	return color.RGBA{
		R: uint8(uint32(c.R) * scale / 255),
		G: uint8(uint32(c.G) * scale / 255),
		B: uint8(uint32(c.B) * scale / 255),
		A: a,
	}
}
