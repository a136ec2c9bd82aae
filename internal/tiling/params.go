package tiling

import (
	"coxtile/internal/conformal"
	"coxtile/internal/group"
)

// Render-mode flag bits.
const (
	// FlagHighlight paints the untouched copy of the fundamental domain a
	// fixed neutral gray.
	FlagHighlight uint32 = 1 << 0
	// FlagElements switches from distance-field coloring to per-element
	// coloring through the automaton.
	FlagElements uint32 = 1 << 1
	// FlagTrailing applies one extra automaton step with the trailing
	// generator before the color lookup, folding the two domain copies
	// adjacent across the last mirror into one color.
	FlagTrailing uint32 = 1 << 2
)

// MaxMirrors is the size of the fixed mirror slots in Params.
const MaxMirrors = 4

// Params is the complete per-frame kernel configuration. It is immutable for
// the duration of a frame; the tables it references are read-only and safe
// to share across all concurrent pixel computations.
type Params struct {
	// Mirrors holds the generating set; only the first MirrorCount slots
	// are live.
	Mirrors     [MaxMirrors]conformal.Mirror
	MirrorCount int
	// Edges flags the mirrors that count as domain boundaries for the
	// distance-field coloring mode.
	Edges [MaxMirrors]bool

	// Cut selects the sticker column for points that reduce into it.
	Cut conformal.Mirror
	// Reference marks the canonical copy of the fundamental domain.
	Reference conformal.Point

	// Center is the model-space point shown at the screen center.
	Center [2]float64
	// Scale maps pixel offsets from the screen center to model units,
	// per axis.
	Scale [2]float64
	// ColScale stretches the colormap input range.
	ColScale float64
	// Depth caps the number of reduction rounds per point.
	Depth int
	Flags uint32

	Automaton *group.Automaton
	// Stickers is optional; when present, element coloring is re-routed
	// through the facelet partition.
	Stickers *group.Sticker
}

// PixelToModel converts a pixel coordinate to model coordinates, centering
// the view on Center and flipping y so the model's positive y points up.
func (p *Params) PixelToModel(px, py, w, h int) (float64, float64) {
	x := p.Center[0] + (float64(px)-float64(w)/2+0.5)*p.Scale[0]
	y := p.Center[1] - (float64(py)-float64(h)/2+0.5)*p.Scale[1]
	return x, y
}

// ModelToPixel is the inverse view transform, used for drawing model-space
// geometry over a rendered frame.
func (p *Params) ModelToPixel(mx, my float64, w, h int) (float64, float64) {
	x := float64(w)/2 - 0.5 + (mx-p.Center[0])/p.Scale[0]
	y := float64(h)/2 - 0.5 - (my-p.Center[1])/p.Scale[1]
	return x, y
}
