package ship

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"shipgen/internal/core"
)

// ErrInvariant is wrapped by every CheckInvariants failure.
var ErrInvariant = errors.New("ship invariant violated")

// Census counts cells per type, indexed by CellType.
type Census [Window + 1]int

// CountCells tallies the grid by type.
func CountCells(grid *core.Grid[Cell]) Census {
	var c Census
	for _, cell := range grid.All() {
		c[cell.Type]++
	}
	return c
}

// CheckInvariants verifies a finished grid: no walkable or window cell on the
// border, exactly one floor component, no floor dead ends and no wall that
// touches neither floor nor void. All violations are joined.
func CheckInvariants(grid *core.Grid[Cell]) error {
	var errs []error
	var floor []core.Point
	for p, c := range grid.All() {
		if grid.IsBorder(p) && (c.Type == Floor || c.Type == Window) {
			errs = append(errs, fmt.Errorf("%w: %s on border at %v", ErrInvariant, c.Type, p))
		}
		switch c.Type {
		case Floor:
			floor = append(floor, p)
			if n := countNeighbours(grid, p, Floor); n < 2 {
				errs = append(errs, fmt.Errorf("%w: dead end at %v with %d floor neighbours", ErrInvariant, p, n))
			}
		case Wall:
			if countNeighbours(grid, p, Floor)+countNeighbours(grid, p, Void) == 0 {
				errs = append(errs, fmt.Errorf("%w: buried wall at %v", ErrInvariant, p))
			}
		}
	}
	if len(floor) == 0 {
		errs = append(errs, fmt.Errorf("%w: no floor", ErrInvariant))
	} else if reached := floodFloor(grid, floor[0]); reached.Size() != len(floor) {
		errs = append(errs, fmt.Errorf("%w: floor from %v reaches %d of %d cells", ErrInvariant, floor[0], reached.Size(), len(floor)))
	}
	return errors.Join(errs...)
}

func countNeighbours(grid *core.Grid[Cell], p core.Point, t CellType) int {
	n := 0
	for _, c := range grid.Neighbours(p) {
		if c.Type == t {
			n++
		}
	}
	return n
}

// floodFloor collects the floor cells 4-connected to start.
func floodFloor(grid *core.Grid[Cell], start core.Point) mapset.Set[core.Point] {
	seen := mapset.New[core.Point]()
	seen.Put(start)
	queue := []core.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for n, c := range grid.Neighbours(p) {
			if c.Type != Floor || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}
