// Package entity defines the component bundles a generated level is emitted
// as. The generator never looks inside a Bundle; the level world does.
package entity

// Component is any value stored on an entity.
type Component any

// Bundle is the set of components one entity is created with.
type Bundle []Component

// Prototype builds the bundle for an entity placed at (x, y).
type Prototype func(x, y int) Bundle

// TileID indexes a glyph in the tileset.
type TileID int

const (
	TileVoid TileID = iota
	TileFloor
	TileWallFront
	TileWallTop
	TileWindowFront
	TileWindowTop
	TilePlayer
)

// Position stores an entity's grid coordinates.
type Position struct {
	X, Y int
}

// Tile is a single-glyph appearance drawn at Depth.
type Tile struct {
	ID    TileID
	Depth int
}

// WallTile is drawn with a front face and a top face.
type WallTile struct {
	Front TileID
	Top   TileID
	Depth int
}

// Opacity blocks line of sight by Value (0 transparent, 1 opaque).
type Opacity struct {
	Value float64
}

// Label is the display name shown when an entity is examined.
type Label struct {
	Name string
}

// Solid marks entities that block movement.
type Solid struct{}

// Breakable marks entities that can be destroyed.
type Breakable struct{}

// Exterior marks open space outside the hull.
type Exterior struct{}

// Player marks the player-controlled entity.
type Player struct{}

// Find returns the first component of type T in the bundle.
func Find[T Component](b Bundle) (T, bool) {
	for _, c := range b {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
