package system

import (
	"hmactors/internal/actor"
	"hmactors/internal/gamemap"
)

// dynaFloor is the floor id reported for platform cells.
const dynaFloor actor.BgID = 0

// BgCheck resolves a against the arena and stores the contact on it. Ground
// touch and leave flags compare against the previous check.
func BgCheck(m *gamemap.GameMap, a *actor.Actor, wallRadius float64) {
	wasGrounded := a.OnGround()
	c := m.Check(&a.World.Pos, &a.Velocity, wallRadius)

	var flags actor.BgCheckFlags
	switch {
	case c.Ground && !wasGrounded:
		flags |= actor.BgGround | actor.BgGroundTouch
	case c.Ground:
		flags |= actor.BgGround
	case wasGrounded:
		flags |= actor.BgGroundLeave
	}
	if c.Wall {
		flags |= actor.BgWall
	}
	if c.Water {
		flags |= actor.BgWater
	}

	a.BgCheckFlags = flags
	a.FloorHeight = c.FloorHeight
	a.DepthInWater = c.DepthInWater
	a.FloorBgID = actor.BgScene
	if c.Dynamic {
		a.FloorBgID = dynaFloor
	}
}
