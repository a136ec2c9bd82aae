//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"coxtile/internal/render"
	"coxtile/internal/tiling"
	"coxtile/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts an interactive tiling view to the ebiten.Game interface. The
// frame is re-rendered only when the view or the render mode changes.
type Game struct {
	cfg *Config

	names     []string
	presetIdx int

	til    *tiling.Tiling
	params *tiling.Params
	frame  *tiling.Frame

	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	dirty      bool
	renderTime time.Duration

	dragging    bool
	lastCursorX int
	lastCursorY int
}

// New constructs a Game showing the configured preset.
func New(cfg *Config) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		names:   tiling.PresetNames(),
		frame:   tiling.NewFrame(cfg.Width, cfg.Height),
		painter: render.NewFramePainter(cfg.Width, cfg.Height),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(hudWidth),
	}
	for i, name := range g.names {
		if name == cfg.Preset {
			g.presetIdx = i
		}
	}
	if err := g.loadPreset(cfg.Preset); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadPreset(name string) error {
	factory, ok := tiling.Presets()[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	til, err := factory()
	if err != nil {
		return err
	}
	a, s := til.Tables(g.cfg.Limit)
	params := til.Params(a, s, g.cfg.Depth)
	params.Scale = [2]float64{g.cfg.Scale, g.cfg.Scale}
	params.ColScale = g.cfg.ColScale

	g.til = til
	g.params = params
	g.dirty = true
	return nil
}

// Update handles input and re-renders the frame when anything changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleView()
	g.handleMode()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && len(g.names) > 0 {
		g.presetIdx = (g.presetIdx + 1) % len(g.names)
		if err := g.loadPreset(g.names[g.presetIdx]); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if g.dirty {
		start := time.Now()
		g.frame.Render(g.params)
		g.renderTime = time.Since(start)
		g.dirty = false
	}
	return nil
}

func (g *Game) handleView() {
	const panStep = 64.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.params.Center[0] -= panStep * g.params.Scale[0]
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.params.Center[0] += panStep * g.params.Scale[0]
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.params.Center[1] += panStep * g.params.Scale[1]
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.params.Center[1] -= panStep * g.params.Scale[1]
		g.dirty = true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging && x < g.cfg.Width {
			g.params.Center[0] -= float64(x-g.lastCursorX) * g.params.Scale[0]
			g.params.Center[1] += float64(y-g.lastCursorY) * g.params.Scale[1]
			g.dirty = true
		}
		g.dragging = true
		g.lastCursorX = x
		g.lastCursorY = y
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom(math.Pow(1.15, -wy))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.zoom(1 / 1.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.zoom(1.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.params.Center = [2]float64{}
		g.params.Scale = [2]float64{g.cfg.Scale, g.cfg.Scale}
		g.dirty = true
	}
}

func (g *Game) zoom(factor float64) {
	g.params.Scale[0] *= factor
	g.params.Scale[1] *= factor
	g.dirty = true
}

func (g *Game) handleMode() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.params.Flags ^= tiling.FlagHighlight
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.params.Flags ^= tiling.FlagElements
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.params.Flags ^= tiling.FlagTrailing
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.params.Depth > 5 {
		g.params.Depth -= 5
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.params.Depth += 5
		g.dirty = true
	}
}

// Draw renders the current frame, the mirror overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame.Pix())
	g.overlay.Draw(screen, g.params, g.cfg.Width, g.cfg.Height)
	g.hud.Draw(screen, g.cfg.Width, g.cfg.Height, g.hudLines())
}

func (g *Game) hudLines() []string {
	mode := ""
	if g.params.Flags&tiling.FlagHighlight != 0 {
		mode += " highlight"
	}
	if g.params.Flags&tiling.FlagElements != 0 {
		mode += " elements"
	}
	if g.params.Flags&tiling.FlagTrailing != 0 {
		mode += " trailing"
	}
	if mode == "" {
		mode = " distance"
	}
	return []string{
		g.til.Name,
		fmt.Sprintf("symbol %v", g.til.Symbol),
		fmt.Sprintf("depth  %d", g.params.Depth),
		fmt.Sprintf("scale  %.5f", g.params.Scale[0]),
		fmt.Sprintf("render %s", g.renderTime.Round(time.Millisecond)),
		"mode  " + mode,
		"",
		"arrows/drag  pan",
		"wheel +/-    zoom",
		"[ ]          depth",
		"F E T        mode",
		"1 2 3        outlines",
		"P            preset",
		"R            reset view",
		"Q            quit",
	}
}

// Layout returns the logical screen size: the frame plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width + hudWidth, g.cfg.Height
}
