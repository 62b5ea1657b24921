package ship

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shipgen/internal/core"
)

// testConfig is a small configuration that fits a 16x16 grid.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Seed = 1
	cfg.Cutouts = []Band{
		{MinAmount: 2, MaxAmount: 2, MinSize: 5, MaxSize: 7},
		{MinAmount: 4, MaxAmount: 4, MinSize: 2, MaxSize: 3},
	}
	cfg.RoomPaddingX = 4
	cfg.RoomPaddingY = 4
	return cfg
}

type logRecorder struct {
	lines []string
}

func (r *logRecorder) logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *logRecorder) contains(sub string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

// fromRows builds a generator whose grid holds the given rows. '~' and ' '
// are void, the rest follows Glyph.
func fromRows(t *testing.T, cfg Config, rows ...string) (*Generator, *logRecorder) {
	t.Helper()
	require.NotEmpty(t, rows)
	cfg.Width = len(rows[0])
	cfg.Height = len(rows)
	rec := &logRecorder{}
	g, err := New(cfg, WithLogger(rec.logf))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, cfg.Width, "row %d", y)
		for x := range row {
			g.grid.MustGet(core.Pt(x, y)).Type = ParseGlyph(row[x])
		}
	}
	return g, rec
}

// rows renders the grid with '~' for void so expectations stay readable.
func rows(g *Generator) []string {
	out := strings.Split(strings.TrimSuffix(Format(g.grid), "\n"), "\n")
	for i, r := range out {
		out[i] = strings.ReplaceAll(r, " ", "~")
	}
	return out
}

// firstGenerated returns the first seed from 1 up that generates cleanly.
func firstGenerated(t *testing.T, cfg Config, tries int) *Generator {
	t.Helper()
	for seed := int64(1); seed <= int64(tries); seed++ {
		cfg.Seed = seed
		g, err := Generate(cfg)
		if err == nil {
			return g
		}
		require.ErrorIs(t, err, ErrDegenerateLayout, "seed %d", seed)
	}
	t.Fatalf("no seed in 1..%d produced a ship", tries)
	return nil
}
