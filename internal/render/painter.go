//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter owns the GPU-side image a rendered frame is blitted through.
type FramePainter struct {
	img *ebiten.Image
	w   int
	h   int
}

// NewFramePainter constructs a painter for frames of the given size.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{img: ebiten.NewImage(w, h), w: w, h: h}
}

// Resize reallocates the backing image when the frame size changes.
func (p *FramePainter) Resize(w, h int) {
	if w == p.w && h == p.h {
		return
	}
	p.img = ebiten.NewImage(w, h)
	p.w = w
	p.h = h
}

// Blit uploads the RGBA pixel buffer and draws it at the screen origin. The
// buffer must hold exactly w*h*4 bytes.
func (p *FramePainter) Blit(screen *ebiten.Image, pix []byte) {
	if len(pix) != p.w*p.h*4 {
		return
	}
	p.img.WritePixels(pix)
	screen.DrawImage(p.img, nil)
}
