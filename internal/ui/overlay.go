//go:build ebiten

package ui

import (
	"image/color"

	"shipgen/internal/core"
	"shipgen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskProvider interface {
	HullMask() []float32
	DeadEndMask() []float32
}

// Overlay draws optional debugging masks on top of the grid.
type Overlay struct {
	sim         core.Sim
	scale       int
	showHull    bool
	showDeadEnd bool
	painter     *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update toggles masks from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHull = !o.showHull
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDeadEnd = !o.showDeadEnd
	}
}

// Draw renders the enabled masks onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(maskProvider)
	if !ok {
		return
	}
	if o.showHull {
		o.painter.BlitMask(screen, provider.HullMask(), color.RGBA{R: 255, G: 120, B: 40}, o.scale)
	}
	if o.showDeadEnd {
		o.painter.BlitMask(screen, provider.DeadEndMask(), color.RGBA{R: 230, G: 40, B: 60}, o.scale)
	}
}
