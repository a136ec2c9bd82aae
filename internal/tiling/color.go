package tiling

import (
	"math"

	"coxtile/internal/group"
)

// RGBA is a straight-alpha color with components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Gray is the fixed highlight color of the untouched fundamental domain.
var Gray = RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}

// White marks the contour band between color halves.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// colorNorm matches the automaton's color-index range; it is part of the
// table contract, not a tunable.
const colorNorm = 50.0

// Shade maps a reduction result to its final pixel color under the frame's
// render-mode flags.
func Shade(res Result, params *Params) RGBA {
	if params.Flags&FlagHighlight != 0 && res.Steps == 0 {
		return Gray
	}

	if params.Flags&FlagElements != 0 && res.Elem != group.Sentinel {
		elem := res.Elem
		if params.Stickers != nil {
			elem = params.Stickers.FaceletOf(elem, params.Cut.Inside(res.Point))
		}
		if params.Flags&FlagTrailing != 0 {
			elem = params.Automaton.Advance(elem, params.MirrorCount-1)
		}
		if col := params.Automaton.ColorOf(elem); col != group.Sentinel {
			return Colormap(float64(col)/colorNorm, 0, params.ColScale)
		}
	}

	// Distance-field fallback: proximity to the nearest boundary mirror.
	d := math.Inf(1)
	for j := 0; j < params.MirrorCount; j++ {
		if !params.Edges[j] {
			continue
		}
		if s := params.Mirrors[j].SignedDistance(res.Point); s < d {
			d = s
		}
	}
	if math.IsInf(d, 1) {
		d = 0
	}
	return Colormap(d, 0, params.ColScale)
}

// Colormap evaluates the fixed perceptual colormap over [lo, hi]. Inputs
// whose normalized position falls in (0.49, 0.51) come back pure white: a
// deliberate contour marker between the color bands, not an artifact.
func Colormap(v, lo, hi float64) RGBA {
	t := 0.0
	if hi != lo {
		t = (v - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t > 0.49 && t < 0.51 {
		return White
	}
	return RGBA{
		R: clamp01(polyR(t)),
		G: clamp01(polyG(t)),
		B: clamp01(polyB(t)),
		A: 1,
	}
}

// Quintic fits to the turbo colormap.
func polyR(t float64) float64 {
	return 0.13572138 + t*(4.61539260+t*(-42.66032258+t*(132.13108234+t*(-152.94239396+t*59.28637943))))
}

func polyG(t float64) float64 {
	return 0.09140261 + t*(2.19418839+t*(4.84296658+t*(-14.18503333+t*(4.27729857+t*2.82956604))))
}

func polyB(t float64) float64 {
	return 0.10667330 + t*(12.64194608+t*(-60.58204836+t*(110.36276771+t*(-89.90310912+t*27.34824973))))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
