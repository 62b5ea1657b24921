package ship

import (
	"errors"
	"fmt"

	"shipgen/internal/entity"
)

// ErrEmit wraps every failure while handing the finished grid to an Emplacer.
var ErrEmit = errors.New("emit ship")

// Emplacer receives one bundle per emitted entity.
type Emplacer interface {
	Emplace(b entity.Bundle) error
}

// EmplacerFunc adapts a function to Emplacer.
type EmplacerFunc func(b entity.Bundle) error

func (f EmplacerFunc) Emplace(b entity.Bundle) error { return f(b) }

// Prototypes maps final cell types, and the player, to bundle factories.
type Prototypes struct {
	Cells  map[CellType]entity.Prototype
	Player entity.Prototype
}

// DefaultPrototypes returns the stock entity set.
func DefaultPrototypes() Prototypes {
	return Prototypes{
		Cells: map[CellType]entity.Prototype{
			Void:   entity.Void,
			Wall:   entity.Wall,
			Floor:  entity.Floor,
			Window: entity.Window,
		},
		Player: entity.PlayerCharacter,
	}
}

// Emit walks the finished grid in row-major order, emplacing one bundle per
// cell, then the player at the configured spawn point. It refuses to run on
// a generator that has not completed successfully. The first failure stops
// emission.
func (g *Generator) Emit(dst Emplacer, protos Prototypes) error {
	if g.err != nil {
		return fmt.Errorf("%w: generation failed: %w", ErrEmit, g.err)
	}
	if !g.Done() {
		return fmt.Errorf("%w: generation stopped before phase %s", ErrEmit, g.Phase())
	}
	if protos.Player == nil {
		return fmt.Errorf("%w: no player prototype", ErrEmit)
	}
	for p, c := range g.grid.All() {
		proto, ok := protos.Cells[c.Type]
		if !ok || proto == nil {
			return fmt.Errorf("%w: no prototype for %s", ErrEmit, c.Type)
		}
		if err := dst.Emplace(proto(p.X, p.Y)); err != nil {
			return fmt.Errorf("%w: %s at %v: %w", ErrEmit, c.Type, p, err)
		}
	}
	spawn := g.cfg.PlayerSpawn
	if err := dst.Emplace(protos.Player(spawn.X, spawn.Y)); err != nil {
		return fmt.Errorf("%w: player at %v: %w", ErrEmit, spawn, err)
	}
	return nil
}
