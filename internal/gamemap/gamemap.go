package gamemap

import (
	"math"

	"hmactors/internal/vmath"
)

// TileSize is the edge length of one cell in world units.
const TileSize = 40.0

// Rect is an axis-aligned cell rectangle, inclusive of both corners.
type Rect struct {
	X1, Z1, X2, Z2 int
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Z1 + r.Z2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Z1 <= other.Z2 && r.Z2 >= other.Z1
}

// GameMap is the arena: a grid of cells on the XZ plane.
type GameMap struct {
	Width, Depth int
	Tiles        [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, depth int) *GameMap {
	tiles := make([][]Tile, depth)
	for z := range tiles {
		tiles[z] = make([]Tile, width)
		for x := range tiles[z] {
			tiles[z][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Depth: depth, Tiles: tiles}
}

// NewArena creates an open floor ringed by a one-cell wall.
func NewArena(width, depth int) *GameMap {
	m := New(width, depth)
	m.Fill(Rect{1, 1, width - 2, depth - 2}, MakeFloor())
	return m
}

// Fill sets every in-bounds cell of r to t.
func (m *GameMap) Fill(r Rect, t Tile) {
	for z := r.Z1; z <= r.Z2; z++ {
		for x := r.X1; x <= r.X2; x++ {
			if m.InBounds(x, z) {
				m.Tiles[z][x] = t
			}
		}
	}
}

// InBounds reports whether (x, z) is within the map boundaries.
func (m *GameMap) InBounds(x, z int) bool {
	return x >= 0 && x < m.Width && z >= 0 && z < m.Depth
}

// At returns a pointer to the tile at (x, z). Panics if out of bounds.
func (m *GameMap) At(x, z int) *Tile {
	return &m.Tiles[z][x]
}

// Set replaces the tile at (x, z).
func (m *GameMap) Set(x, z int, t Tile) {
	m.Tiles[z][x] = t
}

// IsWalkable returns true when (x, z) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, z int) bool {
	if !m.InBounds(x, z) {
		return false
	}
	return m.Tiles[z][x].Walkable
}

// CellOf returns the cell containing a world position.
func CellOf(p vmath.Vec3f) (x, z int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Z / TileSize))
}

// CellCenter returns the world position of a cell's center at ground level.
func CellCenter(x, z int) vmath.Vec3f {
	return vmath.Vec3f{X: (float64(x) + 0.5) * TileSize, Z: (float64(z) + 0.5) * TileSize}
}

// WalkableAt reports whether the cell under p can be stood on.
func (m *GameMap) WalkableAt(p vmath.Vec3f) bool {
	x, z := CellOf(p)
	return m.IsWalkable(x, z)
}

func (m *GameMap) solid(x, z int) bool {
	return !m.InBounds(x, z) || m.Tiles[z][x].Kind == TileWall
}
