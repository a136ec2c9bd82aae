//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"coxtile/internal/conformal"
	"coxtile/internal/render"
	"coxtile/internal/tiling"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the generating mirrors and the sticker cut as Euclidean
// outlines on top of a rendered frame.
type Overlay struct {
	showMirrors bool
	showCut     bool
	showRef     bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the outline layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMirrors = !o.showMirrors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCut = !o.showCut
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRef = !o.showRef
	}
}

// Draw renders the enabled outline layers onto the frame region of screen.
func (o *Overlay) Draw(screen *ebiten.Image, params *tiling.Params, w, h int) {
	if params == nil || w <= 0 || h <= 0 {
		return
	}
	if o.showMirrors {
		palette := render.MirrorPalette(params.MirrorCount)
		for j := 0; j < params.MirrorCount; j++ {
			o.drawMirror(screen, params, params.Mirrors[j], palette[j], w, h)
		}
	}
	if o.showCut {
		o.drawMirror(screen, params, params.Cut, color.RGBA{R: 230, G: 230, B: 230, A: 255}, w, h)
	}
	if o.showRef {
		mx, my := params.Reference.Project()
		x, y := params.ModelToPixel(mx, my, w, h)
		const arm = 6
		col := color.RGBA{R: 255, G: 80, B: 80, A: 255}
		o.drawSegment(screen, x-arm, y, x+arm, y, col)
		o.drawSegment(screen, x, y-arm, x, y+arm, col)
	}
}

func (o *Overlay) drawMirror(screen *ebiten.Image, params *tiling.Params, m conformal.Mirror, col color.RGBA, w, h int) {
	if cx, cy, r, ok := m.Circle(); ok {
		o.drawCircle(screen, params, cx, cy, r, col, w, h)
		return
	}
	if nx, ny, d, ok := m.Line(); ok {
		// Parametrize the line through d*n along the direction
		// perpendicular to the normal, long enough to cross the view.
		span := (math.Abs(float64(w)*params.Scale[0]) + math.Abs(float64(h)*params.Scale[1])) +
			math.Abs(d)*2 + 1
		px, py := d*nx, d*ny
		x1, y1 := params.ModelToPixel(px-ny*span, py+nx*span, w, h)
		x2, y2 := params.ModelToPixel(px+ny*span, py-nx*span, w, h)
		o.drawSegment(screen, x1, y1, x2, y2, col)
	}
}

func (o *Overlay) drawCircle(screen *ebiten.Image, params *tiling.Params, cx, cy, r float64, col color.RGBA, w, h int) {
	// Segment count follows the on-screen radius so large circles stay
	// smooth and small ones stay cheap.
	screenR := r / math.Min(params.Scale[0], params.Scale[1])
	segments := int(math.Ceil(screenR * 0.5))
	if segments < 24 {
		segments = 24
	}
	if segments > 720 {
		segments = 720
	}

	step := 2 * math.Pi / float64(segments)
	x0, y0 := params.ModelToPixel(cx+r, cy, w, h)
	for i := 1; i <= segments; i++ {
		a := float64(i) * step
		x1, y1 := params.ModelToPixel(cx+r*math.Cos(a), cy+r*math.Sin(a), w, h)
		o.drawSegment(screen, x0, y0, x1, y1, col)
		x0, y0 = x1, y1
	}
}

func (o *Overlay) drawSegment(screen *ebiten.Image, x1, y1, x2, y2 float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	const thickness = 1.5
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
