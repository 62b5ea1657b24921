package entity

// Void is open space outside the ship.
func Void(x, y int) Bundle {
	return Bundle{
		Position{X: x, Y: y},
		Tile{ID: TileVoid, Depth: 0},
		Exterior{},
		Label{Name: "Space"},
	}
}

// Wall is an opaque, breakable hull or partition segment.
func Wall(x, y int) Bundle {
	return Bundle{
		Position{X: x, Y: y},
		WallTile{Front: TileWallFront, Top: TileWallTop, Depth: 1},
		Solid{},
		Opacity{Value: 1},
		Label{Name: "Wall"},
		Breakable{},
	}
}

// Window is a solid but transparent hull segment.
func Window(x, y int) Bundle {
	return Bundle{
		Position{X: x, Y: y},
		WallTile{Front: TileWindowFront, Top: TileWindowTop, Depth: 1},
		Solid{},
		Label{Name: "Window"},
		Breakable{},
	}
}

// Floor is walkable deck.
func Floor(x, y int) Bundle {
	return Bundle{
		Position{X: x, Y: y},
		Tile{ID: TileFloor, Depth: 0},
		Label{Name: "Floor"},
	}
}

// PlayerCharacter is the player spawn.
func PlayerCharacter(x, y int) Bundle {
	return Bundle{
		Position{X: x, Y: y},
		Tile{ID: TilePlayer, Depth: 2},
		Player{},
		Solid{},
		Label{Name: "Player"},
	}
}
