// Package level stores emitted entities in a donburi ECS world.
package level

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"shipgen/internal/entity"
)

var (
	// ErrNoPosition is returned for bundles without an entity.Position.
	ErrNoPosition = errors.New("bundle has no position")
	// ErrUnknownComponent is returned for component values the level cannot store.
	ErrUnknownComponent = errors.New("unknown component")
)

// Component types registered with donburi.
var (
	Position  = donburi.NewComponentType[entity.Position]()
	Tile      = donburi.NewComponentType[entity.Tile]()
	WallTile  = donburi.NewComponentType[entity.WallTile]()
	Opacity   = donburi.NewComponentType[entity.Opacity]()
	Label     = donburi.NewComponentType[entity.Label]()
	Solid     = donburi.NewTag()
	Breakable = donburi.NewTag()
	Exterior  = donburi.NewTag()
	Player    = donburi.NewTag()
)

// Level owns the ECS world a generated ship is emitted into.
type Level struct {
	world donburi.World
}

// New creates an empty level.
func New() *Level {
	return &Level{world: donburi.NewWorld()}
}

// World exposes the underlying donburi world.
func (l *Level) World() donburi.World { return l.world }

// Len returns the number of entities in the level.
func (l *Level) Len() int { return l.world.Len() }

// Emplace creates one entity from a bundle. The bundle must carry a position.
func (l *Level) Emplace(b entity.Bundle) error {
	pos, ok := entity.Find[entity.Position](b)
	if !ok {
		return ErrNoPosition
	}
	for _, c := range b {
		if !known(c) {
			return fmt.Errorf("emplace at %d,%d: %w %T", pos.X, pos.Y, ErrUnknownComponent, c)
		}
	}

	entry := l.world.Entry(l.world.Create(Position))
	Position.Set(entry, &pos)
	for _, c := range b {
		switch v := c.(type) {
		case entity.Tile:
			entry.AddComponent(Tile)
			Tile.Set(entry, &v)
		case entity.WallTile:
			entry.AddComponent(WallTile)
			WallTile.Set(entry, &v)
		case entity.Opacity:
			entry.AddComponent(Opacity)
			Opacity.Set(entry, &v)
		case entity.Label:
			entry.AddComponent(Label)
			Label.Set(entry, &v)
		case entity.Solid:
			entry.AddComponent(Solid)
		case entity.Breakable:
			entry.AddComponent(Breakable)
		case entity.Exterior:
			entry.AddComponent(Exterior)
		case entity.Player:
			entry.AddComponent(Player)
		}
	}
	return nil
}

func known(c entity.Component) bool {
	switch c.(type) {
	case entity.Position, entity.Tile, entity.WallTile, entity.Opacity, entity.Label,
		entity.Solid, entity.Breakable, entity.Exterior, entity.Player:
		return true
	}
	return false
}

// CountNamed returns how many entities carry the given label.
func (l *Level) CountNamed(name string) int {
	n := 0
	donburi.NewQuery(filter.Contains(Label)).Each(l.world, func(entry *donburi.Entry) {
		if Label.Get(entry).Name == name {
			n++
		}
	})
	return n
}

// Solids returns how many entities block movement.
func (l *Level) Solids() int {
	return donburi.NewQuery(filter.Contains(Solid)).Count(l.world)
}

// PlayerPosition returns where the player was spawned.
func (l *Level) PlayerPosition() (entity.Position, bool) {
	entry, ok := donburi.NewQuery(filter.Contains(Player, Position)).First(l.world)
	if !ok {
		return entity.Position{}, false
	}
	return *Position.Get(entry), true
}
