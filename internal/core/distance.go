package core

import "iter"

// Unvisited is the value of a distance cell no seed has reached.
const Unvisited = -1

// DistanceCell is one entry of a DistanceField.
type DistanceCell struct {
	Value   int
	Visited bool
}

// DistanceResult is what a single Compute call produced. Field aliases the
// distance field's storage and is only valid until the next Compute or Clear.
type DistanceResult struct {
	Field *Grid[DistanceCell]
	// Ring lists every non-seed cell in the order it was first reached.
	Ring []Point
	// Farthest is the largest value assigned, or -1 when nothing was seeded.
	Farthest int
}

// DistanceField computes multi-source breadth-first step counts over a grid
// of the same dimensions as src. Expansion out of a visited cell p happens
// only when enterable reports true for src's cell at p.
type DistanceField[C any] struct {
	src       *Grid[C]
	cells     *Grid[DistanceCell]
	enterable func(from *C) bool
	queue     []Point
	ring      []Point
}

// NewDistanceField binds a field to src. src is not owned; the field reads it
// on every Compute.
func NewDistanceField[C any](src *Grid[C], enterable func(from *C) bool) *DistanceField[C] {
	f := &DistanceField[C]{
		src:       src,
		cells:     NewGrid(src.W, src.H, func(Point) DistanceCell { return DistanceCell{Value: Unvisited} }),
		enterable: enterable,
		queue:     make([]Point, 0, src.Len()),
	}
	return f
}

// Clear resets every cell and the ring without reallocating.
func (f *DistanceField[C]) Clear() {
	for _, c := range f.cells.All() {
		*c = DistanceCell{Value: Unvisited}
	}
	f.queue = f.queue[:0]
	f.ring = f.ring[:0]
}

// Value returns the distance stored at p, or Unvisited.
func (f *DistanceField[C]) Value(p Point) int {
	c, err := f.cells.Get(p)
	if err != nil {
		return Unvisited
	}
	return c.Value
}

// Compute clears the field, seeds every point with zero and expands
// breadth-first. Out-of-range seeds are ignored. Ties resolve in discovery
// order and no cell is visited twice.
func (f *DistanceField[C]) Compute(seeds iter.Seq[Point]) DistanceResult {
	f.Clear()
	farthest := -1
	for p := range seeds {
		c, err := f.cells.Get(p)
		if err != nil || c.Visited {
			continue
		}
		c.Value = 0
		c.Visited = true
		f.queue = append(f.queue, p)
		farthest = 0
	}
	for head := 0; head < len(f.queue); head++ {
		p := f.queue[head]
		if !f.enterable(f.src.MustGet(p)) {
			continue
		}
		value := f.cells.MustGet(p).Value + 1
		for n, c := range f.cells.Neighbours(p) {
			if c.Visited {
				continue
			}
			c.Value = value
			c.Visited = true
			f.queue = append(f.queue, n)
			f.ring = append(f.ring, n)
			if value > farthest {
				farthest = value
			}
		}
	}
	ring := make([]Point, len(f.ring))
	copy(ring, f.ring)
	return DistanceResult{Field: f.cells, Ring: ring, Farthest: farthest}
}
