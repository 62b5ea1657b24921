//go:build ebiten

package app

import (
	"time"

	"shipgen/internal/core"
	"shipgen/internal/render"
	"shipgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 260

// Game adapts a phase-stepped generator to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pace    *core.FixedStep

	scale    int
	running  bool
	tickOnce bool
	finish   bool
	seed     int64
	lastErr  error
}

// New constructs a Game for the provided generator.
func New(sim core.Sim, scale, rate int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		pace:    core.NewFixedStep(rate),
		scale:   scale,
		seed:    seed,
	}
}

// Reset restarts generation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.finish = false
	g.lastErr = nil
}

// Err returns the error that stopped the last run, if any.
func (g *Game) Err() error { return g.lastErr }

// Update handles per-frame logic and advances the pipeline.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.finish = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	switch {
	case g.finish:
		for !g.sim.Done() {
			g.step()
		}
		g.finish = false
	case g.tickOnce || (g.running && g.pace.ShouldStep()):
		g.step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) step() {
	if g.sim.Done() {
		return
	}
	if err := g.sim.Step(); err != nil {
		g.lastErr = err
		g.running = false
	}
}

// Draw renders the grid, overlays and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.ShipPalette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
