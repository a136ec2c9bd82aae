//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
)

// HUD renders the parameter readout panel to the right of the tiling view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the text lines into the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, lines []string) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
