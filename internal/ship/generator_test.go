package ship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipgen/internal/core"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPhasesFollowConfig(t *testing.T) {
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"initialize",
		"cutout-1", "cutout-2", "cutout-3",
		"keep-biggest-group",
		"make-hollow",
		"remove-dead-ends",
		"keep-biggest-floor-group",
		"remove-excess-hull",
		"make-filled",
		"keep-biggest-group",
		"make-hollow",
		"generate-rooms",
		"remove-dead-ends",
		"keep-biggest-floor-group",
		"remove-excess-hull",
	}, g.Phases())

	cfg := DefaultConfig()
	cfg.Holes.MinAmount, cfg.Holes.MaxAmount = 1, 2
	cfg.WindowChance = 0.2
	g, err = New(cfg)
	require.NoError(t, err)
	names := g.Phases()
	assert.Equal(t, "make-holes", names[5])
	assert.Equal(t, "add-windows", names[len(names)-1])
}

func TestStepWalksPhases(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	assert.Equal(t, "initialize", g.Phase())
	assert.False(t, g.Done())

	require.NoError(t, g.Step())
	assert.Equal(t, "cutout-1", g.Phase())
	cells := g.Cells()
	assert.Equal(t, uint8(Void), cells[0])
	assert.Equal(t, uint8(Wall), cells[g.grid.Index(core.Pt(1, 1))])

	steps := 1
	for !g.Done() {
		if err := g.Step(); err != nil {
			require.ErrorIs(t, err, ErrDegenerateLayout)
			return
		}
		steps++
	}
	assert.Equal(t, len(g.Phases()), steps)
	assert.Equal(t, "done", g.Phase())
	assert.NoError(t, g.Step(), "stepping a finished generator is a no-op")
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := firstGenerated(t, DefaultConfig(), 20)

	cfg := DefaultConfig()
	cfg.Seed = first.Seed()
	second, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, Format(first.Grid()), Format(second.Grid()))

	first.Reset(0)
	assert.Equal(t, "initialize", first.Phase())
	assert.Equal(t, CountCells(first.Grid())[Void], first.Grid().Len())
	require.NoError(t, first.Generate())
	assert.Equal(t, Format(second.Grid()), Format(first.Grid()), "reset must replay the same run")
}

func TestGeneratedShipsHoldInvariants(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), testConfig()} {
		ok := 0
		for seed := int64(1); seed <= 12; seed++ {
			cfg.Seed = seed
			g, err := Generate(cfg)
			if err != nil {
				require.ErrorIs(t, err, ErrDegenerateLayout, "seed %d", seed)
				continue
			}
			ok++
			require.NoError(t, CheckInvariants(g.Grid()), "seed %d %dx%d\n%s", seed, cfg.Width, cfg.Height, Format(g.Grid()))

			census := CountCells(g.Grid())
			assert.Positive(t, census[Floor])
			assert.Less(t, census[Floor], g.Grid().Len())
			assert.Zero(t, census[Window], "windows are off by default")
		}
		assert.Positive(t, ok, "%dx%d: every seed degenerated", cfg.Width, cfg.Height)
	}
}

func TestWindowsStayOffBorder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowChance = 1
	g := firstGenerated(t, cfg, 20)
	for p, c := range g.Grid().All() {
		if c.Type == Window && g.Grid().IsBorder(p) {
			t.Fatalf("window on border at %v", p)
		}
	}
	require.NoError(t, CheckInvariants(g.Grid()))
}

func TestDegenerateLayoutFailsRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Cutouts = []Band{{MinAmount: 1, MaxAmount: 1, MinSize: 20, MaxSize: 20}}
	rec := &logRecorder{}
	g, err := New(cfg, WithLogger(rec.logf))
	require.NoError(t, err)

	err = g.Generate()
	require.ErrorIs(t, err, ErrDegenerateLayout)
	assert.Contains(t, err.Error(), "keep-biggest-group")
	assert.True(t, g.Done())
	assert.Equal(t, "failed", g.Phase())
	assert.True(t, errors.Is(g.Step(), ErrDegenerateLayout), "failure is sticky")
	assert.NotEmpty(t, rec.lines)
}

// fixedRandom always draws the maximum and never shuffles.
type fixedRandom struct{ seeds []int64 }

func (r *fixedRandom) Seed(seed int64) { r.seeds = append(r.seeds, seed) }
func (r *fixedRandom) IntInclusive(min, max int) int { return max }
func (r *fixedRandom) Shuffle(n int, swap func(i, j int)) {}
func (r *fixedRandom) Float64() float64 { return 0 }

func TestWithRandomIsSeededOnReset(t *testing.T) {
	r := &fixedRandom{}
	g, err := New(testConfig(), WithRandom(r))
	require.NoError(t, err)
	g.Reset(99)
	assert.Equal(t, []int64{1, 99}, r.seeds)
	assert.Equal(t, int64(99), g.Seed())
}

func TestResetZeroSelectsConfiguredSeed(t *testing.T) {
	r := &fixedRandom{}
	cfg := testConfig()
	cfg.Seed = 0
	g, err := New(cfg, WithRandom(r))
	require.NoError(t, err)

	g.Reset(7)
	assert.Equal(t, int64(7), g.Seed())
	g.Reset(0)
	assert.Equal(t, int64(0), g.Seed(), "a configured zero seed is still reachable")
	assert.Equal(t, []int64{0, 7, 0}, r.seeds)
}
