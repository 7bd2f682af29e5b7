package gamemap

import (
	"math"

	"hmactors/internal/vmath"
)

// Contact is the result of a background check.
type Contact struct {
	Ground       bool
	Wall         bool
	Water        bool
	Dynamic      bool
	FloorHeight  float64
	DepthInWater float64
}

// Check resolves pos against the arena. It pushes pos out of walls by
// wallRadius, clamps it to the floor, and zeroes a downward vel.Y on landing.
func (m *GameMap) Check(pos, vel *vmath.Vec3f, wallRadius float64) Contact {
	var c Contact
	if m.pushX(pos, wallRadius) {
		c.Wall = true
	}
	if m.pushZ(pos, wallRadius) {
		c.Wall = true
	}

	x, z := CellOf(*pos)
	if m.solid(x, z) {
		// Still inside a wall after the push; only the wall is reported.
		c.Wall = true
		return c
	}
	t := m.Tiles[z][x]
	c.FloorHeight = t.Floor
	c.Dynamic = t.Dynamic
	if pos.Y <= t.Floor {
		pos.Y = t.Floor
		if vel.Y < 0 {
			vel.Y = 0
		}
		c.Ground = true
	}
	if t.Kind == TileWater {
		c.DepthInWater = t.Surface - pos.Y
		c.Water = c.DepthInWater > 0
	}
	return c
}

func (m *GameMap) pushX(pos *vmath.Vec3f, r float64) bool {
	_, z := CellOf(*pos)
	if cx := int(math.Floor((pos.X + r) / TileSize)); m.solid(cx, z) {
		pos.X = float64(cx)*TileSize - r
		return true
	}
	if cx := int(math.Floor((pos.X - r) / TileSize)); m.solid(cx, z) {
		pos.X = float64(cx+1)*TileSize + r
		return true
	}
	return false
}

func (m *GameMap) pushZ(pos *vmath.Vec3f, r float64) bool {
	x, _ := CellOf(*pos)
	if cz := int(math.Floor((pos.Z + r) / TileSize)); m.solid(x, cz) {
		pos.Z = float64(cz)*TileSize - r
		return true
	}
	if cz := int(math.Floor((pos.Z - r) / TileSize)); m.solid(x, cz) {
		pos.Z = float64(cz+1)*TileSize + r
		return true
	}
	return false
}
