// Package tty is a terminal front end for stepping the ship pipeline.
package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"shipgen/internal/ship"
)

var styles = [...]tcell.Style{
	ship.Void:   tcell.StyleDefault.Background(tcell.ColorBlack),
	ship.Wall:   tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite),
	ship.Floor:  tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack),
	ship.Window: tcell.StyleDefault.Background(tcell.ColorLightBlue).Foreground(tcell.ColorNavy),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

// View draws a generator onto a tcell screen.
type View struct {
	screen tcell.Screen
	gen    *ship.Generator
	status string
}

// NewView binds gen to an initialised screen.
func NewView(screen tcell.Screen, gen *ship.Generator) *View {
	return &View{screen: screen, gen: gen}
}

// Draw paints the grid and a status line below it.
func (v *View) Draw() {
	v.screen.Clear()
	grid := v.gen.Grid()
	for p, c := range grid.All() {
		style := styles[ship.Void]
		if int(c.Type) < len(styles) {
			style = styles[c.Type]
		}
		v.screen.SetContent(p.X, p.Y, rune(c.Type.Glyph()), nil, style)
	}
	line := fmt.Sprintf("seed %d  phase %s", v.gen.Seed(), v.gen.Phase())
	if v.status != "" {
		line += "  " + v.status
	}
	for i, r := range line {
		v.screen.SetContent(i, grid.H+1, r, nil, statusStyle)
	}
	for i, r := range "n step  g finish  r replay  s new seed  q quit" {
		v.screen.SetContent(i, grid.H+2, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

// HandleKey applies one key press. It reports false when the view should
// close.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'n':
		v.step()
	case 'g':
		for !v.gen.Done() {
			v.step()
		}
	case 'r':
		v.gen.Reset(v.gen.Seed())
		v.status = ""
	case 's':
		v.gen.Reset(time.Now().UnixNano())
		v.status = ""
	}
	return true
}

func (v *View) step() {
	if v.gen.Done() {
		return
	}
	if err := v.gen.Step(); err != nil {
		v.status = err.Error()
		return
	}
	floor := ship.CountCells(v.gen.Grid())[ship.Floor]
	v.status = fmt.Sprintf("floor %d", floor)
}

// Run takes over the terminal until the user quits.
func Run(gen *ship.Generator) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	v := NewView(screen, gen)
	for {
		v.Draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}
