package ship

import (
	"strings"

	"shipgen/internal/core"
)

// Format renders the grid one row per line using CellType glyphs. Void is a
// space; trailing spaces are kept so every line has the grid width.
func Format(grid *core.Grid[Cell]) string {
	var b strings.Builder
	b.Grow((grid.W + 1) * grid.H)
	for p, c := range grid.All() {
		b.WriteByte(c.Type.Glyph())
		if p.X == grid.W-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
