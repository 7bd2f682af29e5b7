package gamemap

// TileKind identifies the type of an arena cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileWater
	TilePlatform
)

// Tile holds the collision surface of one arena cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
	// Floor is the height of the ground in the cell.
	Floor float64
	// Surface is the water height; only meaningful for TileWater.
	Surface float64
	// Dynamic marks ground carried by an actor rather than the scene.
	Dynamic bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns static ground at height 0.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}

// MakeWater returns a pool whose bed lies depth below the surface at 0.
func MakeWater(depth float64) Tile {
	return Tile{Kind: TileWater, Walkable: true, Floor: -depth}
}

// MakePlatform returns ground belonging to a moving platform.
func MakePlatform() Tile {
	return Tile{Kind: TilePlatform, Walkable: true, Dynamic: true}
}
