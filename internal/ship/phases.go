package ship

import (
	"fmt"
	"iter"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"shipgen/internal/core"
)

// initialize turns every interior cell into wall. The border frame stays
// void so the hull field always has exterior space to grow from.
func (g *Generator) initialize() error {
	for p, c := range g.grid.All() {
		*c = Cell{Type: Void, Group: -1, FloorCount: -1, WallCount: -1}
		if !g.grid.IsBorder(p) {
			c.Type = Wall
		}
	}
	return nil
}

// voidCoords yields every cell of every void region.
func (g *Generator) voidCoords() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		for region := range g.grid.FloodFill(sameType) {
			if g.grid.MustGet(region[0]).Type != Void {
				continue
			}
			for _, p := range region {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// hullRing returns the cells reached from the void, in discovery order.
func (g *Generator) hullRing() []core.Point {
	return g.hull.Compute(g.voidCoords()).Ring
}

// cutHole clears a w*h rectangle centred on centre, clipped to the grid.
func (g *Generator) cutHole(centre core.Point, minSize, maxSize int) {
	w := g.rng.IntInclusive(minSize, maxSize)
	h := g.rng.IntInclusive(minSize, maxSize)
	start := core.Pt(centre.X-w/2, centre.Y-h/2)
	for j := 0; j < h; j++ {
		for k := 0; k < w; k++ {
			p := start.Add(core.Pt(k, j))
			if !g.grid.IsValid(p) {
				continue
			}
			g.grid.MustGet(p).Type = Void
		}
	}
}

// cutHoles shuffles candidates, draws how many to use and cuts a hole around
// each chosen one.
func (g *Generator) cutHoles(what string, candidates []core.Point, b Band) {
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	amount := g.clamp(what, g.rng.IntInclusive(b.MinAmount, b.MaxAmount), len(candidates))
	for _, centre := range candidates[:amount] {
		g.cutHole(centre, b.MinSize, b.MaxSize)
	}
}

func (g *Generator) cutout(b Band) error {
	g.cutHoles("cutout "+b.String(), g.hullRing(), b)
	return nil
}

// makeHoles cuts interior holes around the cells farthest from the void.
func (g *Generator) makeHoles() error {
	res := g.torus.Compute(g.voidCoords())
	limit := res.Farthest - g.cfg.Holes.Threshold
	var candidates []core.Point
	for p, d := range res.Field.All() {
		if d.Visited && d.Value >= limit {
			candidates = append(candidates, p)
		}
	}
	g.cutHoles("holes "+g.cfg.Holes.String(), candidates, g.cfg.Holes.Band)
	return nil
}

// updateGroups numbers every non-void region and remembers the largest one
// overall and the largest floor region. Ties go to the region found first.
func (g *Generator) updateGroups() {
	group := 0
	biggest, biggestFloor := -1, -1
	g.biggestGroup = -1
	g.biggestFloorGroup = -1
	for region := range g.grid.FloodFill(sameType) {
		t := g.grid.MustGet(region[0]).Type
		if t == Void {
			for _, p := range region {
				g.grid.MustGet(p).Group = -1
			}
			continue
		}
		for _, p := range region {
			g.grid.MustGet(p).Group = group
		}
		if len(region) > biggest {
			g.biggestGroup = group
			biggest = len(region)
		}
		if t == Floor && len(region) > biggestFloor {
			g.biggestFloorGroup = group
			biggestFloor = len(region)
		}
		group++
	}
}

// keepBiggestGroup voids every solid cell outside the largest region.
func (g *Generator) keepBiggestGroup() error {
	g.updateGroups()
	if g.biggestGroup < 0 {
		return fmt.Errorf("%w: nothing left but void", ErrDegenerateLayout)
	}
	for _, c := range g.grid.All() {
		if c.Type != Void && c.Group != g.biggestGroup {
			c.Type = Void
		}
	}
	return nil
}

// keepBiggestFloorGroup walls up every floor region but the largest.
func (g *Generator) keepBiggestFloorGroup() error {
	g.updateGroups()
	if g.biggestFloorGroup < 0 {
		return fmt.Errorf("%w: no floor left", ErrDegenerateLayout)
	}
	for _, c := range g.grid.All() {
		if c.Type == Floor && c.Group != g.biggestFloorGroup {
			c.Type = Wall
		}
	}
	return nil
}

// makeHollow marks the ring around the void as hull and floors every other
// solid cell. Hull marks left by the last removeExcessHull stay, so the shell
// drawn around earlier floor survives as interior wall.
func (g *Generator) makeHollow() error {
	for _, p := range g.hullRing() {
		g.grid.MustGet(p).Hull = true
	}
	for _, c := range g.grid.All() {
		if c.Type != Void && !c.Hull {
			c.Type = Floor
		}
	}
	return nil
}

func (g *Generator) makeFilled() error {
	for _, c := range g.grid.All() {
		if c.Type != Void {
			c.Type = Wall
		}
	}
	return nil
}

func (g *Generator) updateNeighbourCounts() {
	for p, c := range g.grid.All() {
		floor, wall := 0, 0
		for _, n := range g.grid.Neighbours(p) {
			switch n.Type {
			case Floor:
				floor++
			case Wall:
				wall++
			}
		}
		c.FloorCount = floor
		c.WallCount = wall
	}
}

// removeDeadEnds runs one erosion pass and returns how many floor cells it
// turned into wall.
func (g *Generator) removeDeadEnds() int {
	g.queue.Clear()
	g.updateNeighbourCounts()
	for p, c := range g.grid.All() {
		if c.Type == Floor && c.FloorCount <= 1 {
			g.queue.Insert(p)
		}
	}

	removed := 0
	for !g.queue.Empty() {
		p := g.queue.Remove()
		c := g.grid.MustGet(p)
		if c.Type == Floor {
			removed++
		}
		c.Type = Wall
		for np, n := range g.grid.Neighbours(p) {
			n.FloorCount--
			// Gate on the removed cell's count, not the neighbour's: a nub
			// with several open sides still goes when the cell feeding it did.
			if n.Type == Floor && c.FloorCount <= 1 {
				g.queue.Insert(np)
			}
		}
	}
	return removed
}

// erode runs the configured number of dead end passes, stopping early once a
// pass changes nothing. With converge set it keeps going past the budget
// until no dead end is left.
func (g *Generator) erode(converge bool) error {
	removed := -1
	for i := 0; i < g.cfg.DeadEndPasses && removed != 0; i++ {
		removed = g.removeDeadEnds()
	}
	if !converge || removed == 0 {
		return nil
	}
	extra := 0
	for g.removeDeadEnds() != 0 {
		extra++
	}
	if extra > 0 {
		g.logf("ship: dead ends needed %d passes beyond the budget of %d", extra, g.cfg.DeadEndPasses)
	}
	return nil
}

// removeExcessHull keeps only the walls on the ring around the floor and
// voids the rest.
func (g *Generator) removeExcessHull() error {
	var floor []core.Point
	for p, c := range g.grid.All() {
		if c.Type == Floor {
			floor = append(floor, p)
		}
		c.Hull = false
	}

	ring := mapset.New[core.Point]()
	for _, p := range g.hull.Compute(slices.Values(floor)).Ring {
		ring.Put(p)
	}
	for p, c := range g.grid.All() {
		c.Hull = ring.Has(p)
		if c.Type == Wall && !c.Hull {
			c.Type = Void
		}
	}
	return nil
}

// addWindows turns walls between floor and the outside into windows with the
// configured probability.
func (g *Generator) addWindows() error {
	g.updateNeighbourCounts()
	for _, c := range g.grid.All() {
		if c.Type != Wall || c.FloorCount < 2 || c.FloorCount > 3 || c.WallCount >= 4 {
			continue
		}
		if g.rng.Float64() < g.cfg.WindowChance {
			c.Type = Window
		}
	}
	return nil
}
