package ship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipgen/internal/core"
	"shipgen/internal/entity"
	"shipgen/internal/level"
)

func TestEmitFillsLevel(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerSpawn = core.Pt(2, 3)
	g := firstGenerated(t, cfg, 50)

	lvl := level.New()
	require.NoError(t, g.Emit(lvl, DefaultPrototypes()))

	census := CountCells(g.Grid())
	assert.Equal(t, g.Grid().Len()+1, lvl.Len())
	assert.Equal(t, census[Floor], lvl.CountNamed("Floor"))
	assert.Equal(t, census[Wall], lvl.CountNamed("Wall"))
	assert.Equal(t, census[Void], lvl.CountNamed("Space"))
	assert.Equal(t, census[Wall]+census[Window]+1, lvl.Solids())

	pos, ok := lvl.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, entity.Position{X: 2, Y: 3}, pos)
}

func TestEmitVisitsCellsInRowMajorOrder(t *testing.T) {
	g := firstGenerated(t, testConfig(), 50)

	var got []entity.Position
	err := g.Emit(EmplacerFunc(func(b entity.Bundle) error {
		pos, ok := entity.Find[entity.Position](b)
		require.True(t, ok)
		got = append(got, pos)
		return nil
	}), DefaultPrototypes())
	require.NoError(t, err)

	require.Len(t, got, g.Grid().Len()+1)
	assert.Equal(t, entity.Position{X: 1, Y: 0}, got[1])
	assert.Equal(t, entity.Position{X: 0, Y: 1}, got[g.Grid().W])
	assert.Equal(t, entity.Position{}, got[len(got)-1], "player spawns at the origin by default")
}

func TestEmitStopsOnFirstFailure(t *testing.T) {
	g := firstGenerated(t, testConfig(), 50)
	boom := errors.New("boom")
	calls := 0
	err := g.Emit(EmplacerFunc(func(entity.Bundle) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	}), DefaultPrototypes())
	require.ErrorIs(t, err, ErrEmit)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestEmitRequiresFinishedRun(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)
	sink := EmplacerFunc(func(entity.Bundle) error { return nil })
	assert.ErrorIs(t, g.Emit(sink, DefaultPrototypes()), ErrEmit)

	g = firstGenerated(t, testConfig(), 50)
	protos := DefaultPrototypes()
	delete(protos.Cells, Floor)
	assert.ErrorIs(t, g.Emit(sink, protos), ErrEmit)
}
