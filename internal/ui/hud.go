//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"shipgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type phaseProvider interface {
	Phase() string
}

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update rebuilds the panel text from the generator's current state.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	title := strings.ToUpper(h.sim.Name())
	if p, ok := h.sim.(phaseProvider); ok {
		title = fmt.Sprintf("%s  [%s]", title, p.Phase())
	}
	h.lines = append(h.lines, hudLine{text: title, header: true})
	if provider, ok := h.sim.(parameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			h.lines = append(h.lines, hudLine{text: group.Name, header: true})
			for _, param := range group.Params {
				h.lines = append(h.lines, hudLine{text: fmt.Sprintf("%s: %s", param.Label, param.Value)})
			}
		}
	}
	h.lines = append(h.lines,
		hudLine{text: "Keys", header: true},
		hudLine{text: "N step  Space run  G finish"},
		hudLine{text: "R replay  S new seed"},
		hudLine{text: "1 hull  2 dead ends"},
	)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			y += headerGap
			col = color.RGBA{R: 200, G: 170, B: 110, A: 255}
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, col)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 6
	headerGap      = 8
	lineHeight     = 16
)
