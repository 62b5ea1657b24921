package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipgen/internal/core"
)

func TestFormat(t *testing.T) {
	g, _ := fromRows(t, testConfig(),
		"~###",
		"~#.+",
		"~###",
	)
	assert.Equal(t, " ###\n #.+\n ###\n", Format(g.Grid()))
}

func TestCheckInvariantsReportsViolations(t *testing.T) {
	g, _ := fromRows(t, testConfig(),
		"~~~~~~~",
		"~#####~",
		"~#...#~",
		"~#.#.#~",
		"~#...#~",
		"~#####~",
		"~~~~~~~",
	)
	require.NoError(t, CheckInvariants(g.Grid()))

	g.grid.MustGet(core.Pt(0, 3)).Type = Floor
	g.grid.MustGet(core.Pt(1, 3)).Type = Floor
	err := CheckInvariants(g.Grid())
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "floor on border")
	assert.Contains(t, err.Error(), "dead end at (0,3)")

	g, _ = fromRows(t, testConfig(),
		"~~~~~~~~~~",
		"~####~###~",
		"~#..#~#.#~",
		"~#..#~#.#~",
		"~####~###~",
		"~~~~~~~~~~",
	)
	err = CheckInvariants(g.Grid())
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "reaches 4 of 6")
}
