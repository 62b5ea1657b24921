package core

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfBounds is returned when a coordinate lies outside a grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Point addresses a cell by column (X) and row (Y).
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Directions lists the four orthogonal offsets in the order neighbours are
// visited: up, right, down, left.
var Directions = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid stores a fixed-size 2D grid of cells in row-major order.
type Grid[C any] struct {
	W, H int
	data []C
}

// NewGrid allocates a w*h grid. When init is non-nil it is called once per
// cell in row-major order to produce the initial value.
func NewGrid[C any](w, h int, init func(p Point) C) *Grid[C] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[C]{W: w, H: h, data: make([]C, w*h)}
	if init != nil {
		for i := range g.data {
			g.data[i] = init(g.point(i))
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid[C]) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g *Grid[C]) Len() int { return len(g.data) }

// Index returns the linear slice index for p. It does not check bounds.
func (g *Grid[C]) Index(p Point) int { return p.Y*g.W + p.X }

func (g *Grid[C]) point(i int) Point { return Point{X: i % g.W, Y: i / g.W} }

// IsValid reports whether p lies inside the grid.
func (g *Grid[C]) IsValid(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// IsBorder reports whether p is on the outermost row or column.
func (g *Grid[C]) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.W-1 || p.Y == g.H-1
}

// Get returns the cell at p, or ErrOutOfBounds.
func (g *Grid[C]) Get(p Point) (*C, error) {
	if !g.IsValid(p) {
		return nil, fmt.Errorf("get %v in %dx%d grid: %w", p, g.W, g.H, ErrOutOfBounds)
	}
	return &g.data[g.Index(p)], nil
}

// MustGet is Get for callers that already validated p. It panics otherwise.
func (g *Grid[C]) MustGet(p Point) *C {
	c, err := g.Get(p)
	if err != nil {
		panic(err)
	}
	return c
}

// All yields every cell in row-major order.
func (g *Grid[C]) All() iter.Seq2[Point, *C] {
	return func(yield func(Point, *C) bool) {
		for i := range g.data {
			if !yield(g.point(i), &g.data[i]) {
				return
			}
		}
	}
}

// Neighbours yields the orthogonal neighbours of p that exist.
func (g *Grid[C]) Neighbours(p Point) iter.Seq2[Point, *C] {
	return func(yield func(Point, *C) bool) {
		for _, d := range Directions {
			n := p.Add(d)
			if !g.IsValid(n) {
				continue
			}
			if !yield(n, &g.data[g.Index(n)]) {
				return
			}
		}
	}
}

// FloodFill partitions the grid into maximal 4-connected regions where
// adjacent cells are joined when same reports true. Regions are discovered in
// row-major order of their first cell and filled breadth-first, so the
// sequence is deterministic for a fixed grid state. The sequence reads the
// grid lazily; iterate it again after mutating the grid to get fresh regions.
func (g *Grid[C]) FloodFill(same func(a, b *C) bool) iter.Seq[[]Point] {
	return func(yield func([]Point) bool) {
		seen := make([]bool, len(g.data))
		queue := make([]Point, 0, len(g.data))
		for i := range g.data {
			if seen[i] {
				continue
			}
			seen[i] = true
			queue = append(queue[:0], g.point(i))
			for head := 0; head < len(queue); head++ {
				p := queue[head]
				cur := &g.data[g.Index(p)]
				for _, d := range Directions {
					n := p.Add(d)
					if !g.IsValid(n) {
						continue
					}
					ni := g.Index(n)
					if seen[ni] || !same(cur, &g.data[ni]) {
						continue
					}
					seen[ni] = true
					queue = append(queue, n)
				}
			}
			region := make([]Point, len(queue))
			copy(region, queue)
			if !yield(region) {
				return
			}
		}
	}
}
