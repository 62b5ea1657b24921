package ship

import "shipgen/internal/core"

// CellType is the final classification of a grid position.
type CellType uint8

const (
	Void CellType = iota
	Wall
	Floor
	Window
)

var cellNames = [...]string{"void", "wall", "floor", "window"}

func (t CellType) String() string {
	if int(t) < len(cellNames) {
		return cellNames[t]
	}
	return "unknown"
}

// Glyph returns the character Format uses for the type.
func (t CellType) Glyph() byte {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return '.'
	case Window:
		return '+'
	default:
		return ' '
	}
}

// ParseGlyph is the inverse of Glyph. Unknown glyphs map to Void.
func ParseGlyph(b byte) CellType {
	switch b {
	case '#':
		return Wall
	case '.':
		return Floor
	case '+':
		return Window
	default:
		return Void
	}
}

// Cell is the generator's per-position working state.
type Cell struct {
	Type CellType
	// Group is the component id from the last group update, or -1.
	Group int
	// Hull marks ring membership. MakeHollow only adds marks; RemoveExcessHull
	// replaces them.
	Hull bool
	// FloorCount and WallCount are neighbour tallies, valid right after
	// updateNeighbourCounts.
	FloorCount int
	WallCount  int
}

func sameType(a, b *Cell) bool { return a.Type == b.Type }

// notWall gates the hull field: the ring stops at the first wall layer.
func notWall(from *Cell) bool { return from.Type != Wall }

// anyCell gates the torus field. Unlike notWall it lets expansion continue
// through walls, so the field measures step distance from the void across
// the whole solid mass and its farthest cells are true interior.
func anyCell(*Cell) bool { return true }

func newCellGrid(w, h int) *core.Grid[Cell] {
	return core.NewGrid(w, h, func(core.Point) Cell {
		return Cell{Type: Void, Group: -1, FloorCount: -1, WallCount: -1}
	})
}
