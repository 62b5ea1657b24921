package ship

import "shipgen/internal/core"

// run is the longest stretch of floor found along one grid line. start is
// the non-floor cell just before the stretch and end the one just after, so
// walling [start, end) closes the whole stretch.
type run struct {
	length int
	start  int
	end    int
}

// longestRun scans indices [from, to). A stretch that reaches to without a
// closing cell is not counted.
func longestRun(from, to int, isFloor func(i int) bool) run {
	var best run
	start, length := from, 0
	for i := from; i < to; i++ {
		if isFloor(i) {
			length++
			continue
		}
		if length > best.length {
			best = run{length: length, start: start, end: i}
		}
		length = 0
		start = i
	}
	return best
}

// bestAxis scores each line by its run plus the runs of the two lines on
// either side and returns the first line with the highest non-zero score.
func bestAxis(runs []run) (int, bool) {
	best, index := 0, 0
	for i := 2; i < len(runs)-2; i++ {
		total := runs[i-2].length + runs[i-1].length + runs[i].length + runs[i+1].length + runs[i+2].length
		if total > best {
			best = total
			index = i
		}
	}
	return index, best > 0
}

func (g *Generator) isFloor(p core.Point) bool {
	return g.grid.MustGet(p).Type == Floor
}

// generateRooms splits the interior with a vertical divider pair through the
// longest column runs, then splits each side horizontally and cuts a doorway
// through the vertical divider next to each horizontal one.
func (g *Generator) generateRooms() error {
	w, h := g.grid.W, g.grid.H
	pad := g.cfg.RoomPaddingX

	cols := make([]run, w)
	for x := pad; x < w-pad; x++ {
		cols[x] = longestRun(0, h, func(y int) bool { return g.isFloor(core.Pt(x, y)) })
	}
	mid, ok := bestAxis(cols)
	if !ok {
		g.logf("ship: no floor column between x=%d and x=%d; skipping rooms", pad, w-pad)
		return nil
	}
	for _, x := range [2]int{mid - 2, mid + 2} {
		r := cols[x]
		for y := r.start; y < r.end; y++ {
			g.grid.MustGet(core.Pt(x, y)).Type = Wall
		}
	}

	g.splitSide(0, mid-1, mid-2)
	g.splitSide(mid+2, w, mid+2)
	return nil
}

// splitSide walls off the two rows around the best horizontal axis within
// columns [fromX, toX) and opens a three cell doorway in column doorX.
func (g *Generator) splitSide(fromX, toX, doorX int) {
	h := g.grid.H
	pad := g.cfg.RoomPaddingY

	rows := make([]run, h)
	for y := pad; y < h-pad; y++ {
		rows[y] = longestRun(fromX, toX, func(x int) bool { return g.isFloor(core.Pt(x, y)) })
	}
	mid, ok := bestAxis(rows)
	if !ok {
		g.logf("ship: no floor row in columns %d..%d; leaving side whole", fromX, toX-1)
		return
	}
	for _, y := range [2]int{mid - 2, mid + 2} {
		r := rows[y]
		for x := r.start; x < r.end; x++ {
			g.grid.MustGet(core.Pt(x, y)).Type = Wall
		}
	}
	for y := mid - 1; y <= mid+1; y++ {
		g.punchDoor(core.Pt(doorX, y))
	}
}

// punchDoor floors p unless that would open the interior to the void.
func (g *Generator) punchDoor(p core.Point) {
	c := g.grid.MustGet(p)
	if c.Type == Void {
		return
	}
	for _, n := range g.grid.Neighbours(p) {
		if n.Type == Void {
			g.logf("ship: doorway at %v would breach the hull; left closed", p)
			return
		}
	}
	c.Type = Floor
}
