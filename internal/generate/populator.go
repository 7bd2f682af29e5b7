package generate

import (
	"hmactors/internal/actor"
	"hmactors/internal/gamemap"
	"hmactors/internal/magic"
	"hmactors/internal/platform"
	"hmactors/internal/vmath"
)

// Placement is one actor to spawn at a cell.
type Placement struct {
	Kind   actor.Kind
	Params int16
	X, Z   int
	Yaw    int16
}

// Guard is one entry of the creature table.
type Guard struct {
	Kind   actor.Kind
	Params int16
	Cost   int
}

// DefaultGuards is the creature table used by the sandbox.
var DefaultGuards = []Guard{
	{Kind: actor.KindRat, Cost: 1},
	{Kind: actor.KindPolsVoice, Cost: 2},
	{Kind: actor.KindCaster, Params: magic.CasterFire, Cost: 3},
	{Kind: actor.KindCaster, Params: magic.CasterIce, Cost: 3},
}

// Populate places guards in every room except the start room, spending at
// most budget, and puts a jump-toggle platform in the last room when there
// is more than one. Platform cells are converted to platform tiles in
// lay.Map.
func Populate(lay Layout, cfg Config, guards []Guard, budget int) []Placement {
	var out []Placement
	if len(lay.Rooms) < 2 {
		return out
	}
	occupied := map[[2]int]bool{{lay.StartX, lay.StartZ}: true}
	rooms := lay.Rooms[1:]

	// faceStart turns a guard towards the start room.
	faceStart := func(x, z int) int16 {
		return vmath.Atan2S(float64(lay.StartX-x), float64(lay.StartZ-z))
	}

	last := rooms[len(rooms)-1]
	if x, z, ok := pickDry(lay.Map, last, cfg, occupied); ok {
		occupied[[2]int{x, z}] = true
		lay.Map.Set(x, z, gamemap.MakePlatform())
		out = append(out, Placement{Kind: actor.KindJumptoggle, Params: int16(platform.VariantStartRed), X: x, Z: z})
	}

	// One of the cheapest guard per room first, then spend what is left at random.
	if len(guards) == 0 {
		return out
	}
	cheapest := guards[0]
	for _, g := range guards[1:] {
		if g.Cost < cheapest.Cost {
			cheapest = g
		}
	}
	place := func(room gamemap.Rect, g Guard) bool {
		x, z, ok := pickDry(lay.Map, room, cfg, occupied)
		if !ok {
			return false
		}
		occupied[[2]int{x, z}] = true
		out = append(out, Placement{Kind: g.Kind, Params: g.Params, X: x, Z: z, Yaw: faceStart(x, z)})
		budget -= g.Cost
		return true
	}
	for _, room := range rooms {
		if cheapest.Cost > budget {
			break
		}
		place(room, cheapest)
	}
	for misses := 0; budget >= cheapest.Cost && misses < 20; {
		var affordable []Guard
		for _, g := range guards {
			if g.Cost <= budget {
				affordable = append(affordable, g)
			}
		}
		room := rooms[cfg.Rand.IntN(len(rooms))]
		if !place(room, affordable[cfg.Rand.IntN(len(affordable))]) {
			misses++
		}
	}
	return out
}

// pickDry finds a free floor cell in room, preferring cells away from the
// walls so nothing stands in a doorway.
func pickDry(m *gamemap.GameMap, room gamemap.Rect, cfg Config, occupied map[[2]int]bool) (int, int, bool) {
	const maxAttempts = 20
	inner := gamemap.Rect{X1: room.X1 + 1, Z1: room.Z1 + 1, X2: room.X2 - 1, Z2: room.Z2 - 1}
	if inner.X1 > inner.X2 || inner.Z1 > inner.Z2 {
		inner = room
	}
	try := func(r gamemap.Rect) (int, int, bool) {
		for range maxAttempts {
			x := r.X1 + cfg.Rand.IntN(r.X2-r.X1+1)
			z := r.Z1 + cfg.Rand.IntN(r.Z2-r.Z1+1)
			if !occupied[[2]int{x, z}] && m.At(x, z).Kind == gamemap.TileFloor {
				return x, z, true
			}
		}
		return 0, 0, false
	}
	if x, z, ok := try(inner); ok {
		return x, z, true
	}
	// Pools fill the inner cells; the rim stays dry.
	return try(room)
}
