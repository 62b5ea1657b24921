// Package ship generates deterministic ship interiors on a cell grid.
//
// A Generator runs a fixed sequence of phases over one grid: cutting the hull
// shape out of solid wall, hollowing it, eroding dead ends, trimming excess
// hull and partitioning the interior into rooms. Every random draw comes from
// a single seeded source, so a seed and a Config fully determine the result.
package ship

import (
	"errors"
	"fmt"

	"shipgen/internal/core"
)

// ErrDegenerateLayout is returned when a pruning phase finds nothing to keep.
var ErrDegenerateLayout = errors.New("degenerate ship layout")

// Random is the source every generator draw comes from.
type Random interface {
	Seed(seed int64)
	IntInclusive(min, max int) int
	Shuffle(n int, swap func(i, j int))
	Float64() float64
}

// Option customises a Generator.
type Option func(*Generator)

// WithRandom replaces the default PCG source. Reset still calls Seed on it.
func WithRandom(r Random) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger routes generator diagnostics (clamps, skipped steps, phase
// progress) to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(g *Generator) {
		if logf != nil {
			g.logf = logf
		}
	}
}

type phase struct {
	name string
	run  func() error
}

// Generator is a phase-stepped ship generator. It implements core.Sim so the
// viewer can watch it work.
type Generator struct {
	cfg  Config
	seed int64

	grid  *core.Grid[Cell]
	hull  *core.DistanceField[Cell]
	torus *core.DistanceField[Cell]
	queue *ErosionQueue
	rng   Random
	logf  func(format string, args ...any)

	phases []phase
	next   int
	err    error

	biggestGroup      int
	biggestFloorGroup int

	display []uint8
}

// New validates cfg and returns a generator reset to cfg.Seed.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:   cfg,
		rng:   core.NewRNG(cfg.Seed),
		logf:  func(string, ...any) {},
		queue: NewErosionQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.grid = newCellGrid(cfg.Width, cfg.Height)
	g.hull = core.NewDistanceField(g.grid, notWall)
	g.torus = core.NewDistanceField(g.grid, anyCell)
	g.display = make([]uint8, g.grid.Len())
	g.phases = g.buildPhases()
	g.Reset(0)
	return g, nil
}

// Generate is a one-shot helper: build a generator for cfg and run it to
// completion.
func Generate(cfg Config, opts ...Option) (*Generator, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) buildPhases() []phase {
	ps := []phase{{"initialize", g.initialize}}
	for i, b := range g.cfg.Cutouts {
		ps = append(ps, phase{fmt.Sprintf("cutout-%d", i+1), func() error { return g.cutout(b) }})
	}
	ps = append(ps, phase{"keep-biggest-group", g.keepBiggestGroup})
	if g.cfg.Holes.Enabled() {
		ps = append(ps, phase{"make-holes", g.makeHoles})
	}
	ps = append(ps,
		phase{"make-hollow", g.makeHollow},
		phase{"remove-dead-ends", func() error { return g.erode(false) }},
		phase{"keep-biggest-floor-group", g.keepBiggestFloorGroup},
		phase{"remove-excess-hull", g.removeExcessHull},
		phase{"make-filled", g.makeFilled},
		phase{"keep-biggest-group", g.keepBiggestGroup},
		phase{"make-hollow", g.makeHollow},
		phase{"generate-rooms", g.generateRooms},
		phase{"remove-dead-ends", func() error { return g.erode(true) }},
		phase{"keep-biggest-floor-group", g.keepBiggestFloorGroup},
		phase{"remove-excess-hull", g.removeExcessHull},
	)
	if g.cfg.WindowChance > 0 {
		ps = append(ps, phase{"add-windows", g.addWindows})
	}
	return ps
}

// Name implements core.Sim.
func (g *Generator) Name() string { return "ship" }

// Size implements core.Sim.
func (g *Generator) Size() core.Size { return g.grid.Size() }

// Seed returns the seed of the current run.
func (g *Generator) Seed() int64 { return g.seed }

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Reset rewinds to the first phase and reseeds the random source. A zero
// seed selects cfg.Seed; to run seed 0 itself, set it in the Config.
func (g *Generator) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.seed = seed
	g.rng.Seed(seed)
	g.queue.Clear()
	for _, c := range g.grid.All() {
		*c = Cell{Type: Void, Group: -1, FloorCount: -1, WallCount: -1}
	}
	g.biggestGroup = -1
	g.biggestFloorGroup = -1
	g.next = 0
	g.err = nil
	g.refreshDisplay()
}

// Step runs the next phase. Once a phase fails the generator stays failed
// and Step keeps returning the same error until Reset.
func (g *Generator) Step() error {
	if g.err != nil {
		return g.err
	}
	if g.next >= len(g.phases) {
		return nil
	}
	p := g.phases[g.next]
	g.next++
	if err := p.run(); err != nil {
		g.err = fmt.Errorf("seed %d: phase %s: %w", g.seed, p.name, err)
		g.logf("ship: %v", g.err)
	}
	g.refreshDisplay()
	return g.err
}

// Generate runs every remaining phase.
func (g *Generator) Generate() error {
	for !g.Done() {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return g.err
}

// Done reports whether the run finished or failed.
func (g *Generator) Done() bool {
	return g.err != nil || g.next >= len(g.phases)
}

// Err returns the error that stopped the run, if any.
func (g *Generator) Err() error { return g.err }

// Phase names the phase Step will run next, "done" after the last one.
func (g *Generator) Phase() string {
	switch {
	case g.err != nil:
		return "failed"
	case g.next >= len(g.phases):
		return "done"
	}
	return g.phases[g.next].name
}

// Phases lists the phase names in run order.
func (g *Generator) Phases() []string {
	names := make([]string, len(g.phases))
	for i, p := range g.phases {
		names[i] = p.name
	}
	return names
}

// Grid exposes the working grid. It is only stable once Done reports true.
func (g *Generator) Grid() *core.Grid[Cell] { return g.grid }

// Cells implements core.Sim: one CellType value per cell in row-major order.
func (g *Generator) Cells() []uint8 { return g.display }

func (g *Generator) refreshDisplay() {
	for p, c := range g.grid.All() {
		g.display[g.grid.Index(p)] = uint8(c.Type)
	}
}

// clamp caps a requested sample count at the number of candidates.
func (g *Generator) clamp(what string, amount, available int) int {
	if amount <= available {
		return amount
	}
	g.logf("ship: %s wants %d samples but only %d candidates exist; clamping", what, amount, available)
	return available
}
