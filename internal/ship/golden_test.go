package ship

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipgen/internal/core"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/")

func TestShipGolden(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		golden string
		census Census
		cells  map[core.Point]CellType
	}{
		{
			name:   "small",
			cfg:    testConfig(),
			golden: "ship_16x16.golden",
			census: Census{Void: 174, Wall: 34, Floor: 48},
			cells: map[core.Point]CellType{
				core.Pt(0, 0):  Void,
				core.Pt(9, 1):  Wall,
				core.Pt(9, 2):  Floor,
				core.Pt(1, 6):  Wall,
				core.Pt(2, 6):  Floor,
				core.Pt(10, 9): Floor,
				core.Pt(11, 9): Wall,
				core.Pt(8, 12): Void,
			},
		},
		{
			name:   "reference",
			cfg:    DefaultConfig(),
			golden: "ship_64x40.golden",
			census: Census{Void: 2143, Wall: 102, Floor: 315},
			cells: map[core.Point]CellType{
				core.Pt(35, 1):  Wall,
				core.Pt(36, 2):  Floor,
				core.Pt(28, 10): Wall,
				core.Pt(29, 10): Floor,
				core.Pt(30, 19): Wall,
				core.Pt(30, 30): Void,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Generate(tc.cfg)
			require.NoError(t, err)
			got := fmt.Sprintf("seed %d\n%s", g.Seed(), Format(g.Grid()))

			assert.Equal(t, tc.census, CountCells(g.Grid()))
			for p, want := range tc.cells {
				assert.Equal(t, want, g.Grid().MustGet(p).Type, "cell %v", p)
			}

			path := filepath.Join("testdata", tc.golden)
			if *update {
				require.NoError(t, os.MkdirAll("testdata", 0o755))
				require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v (run go test -run Golden -update to record it)", path, err)
			}
			assert.Equal(t, string(want), got)
		})
	}
}
