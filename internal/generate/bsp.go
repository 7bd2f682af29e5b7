// Package generate lays out procedural temple arenas: rooms split by BSP,
// joined by corridors, with pools and platforms, plus the creatures that
// guard them.
package generate

import (
	"math/rand/v2"

	"hmactors/internal/gamemap"
)

// CorridorStyle selects how rooms are joined.
type CorridorStyle int

const (
	CorridorL CorridorStyle = iota
	CorridorZ
)

// Config controls one layout.
type Config struct {
	Width, Depth  int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	// WaterChance is the probability that a room other than the start room
	// holds a pool.
	WaterChance float64
	WaterDepth  float64
	Rand        *rand.Rand
}

// DefaultConfig returns a 48×32 layout driven by r.
func DefaultConfig(r *rand.Rand) Config {
	return Config{
		Width:       48,
		Depth:       32,
		MinLeafSize: 8,
		MaxLeafSize: 16,
		MinRoomSize: 4,
		RoomPadding: 1,
		WaterChance: 0.3,
		WaterDepth:  30,
		Rand:        r,
	}
}

// Layout is a generated arena.
type Layout struct {
	Map   *gamemap.GameMap
	Rooms []gamemap.Rect
	Pools []gamemap.Rect
	// StartX, StartZ is the centre of the first room.
	StartX, StartZ int
}

type leaf struct {
	x, z, w, d  int
	left, right *leaf
	room        *gamemap.Rect
}

func (l *leaf) split(cfg Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Split across the longer side when it is clearly longer.
	horizontal := cfg.Rand.IntN(2) == 0
	if l.w > l.d && float64(l.w)/float64(l.d) >= 1.25 {
		horizontal = false
	} else if l.d > l.w && float64(l.d)/float64(l.w) >= 1.25 {
		horizontal = true
	}

	limit := l.w
	if horizontal {
		limit = l.d
	}
	limit -= cfg.MinLeafSize
	if limit < cfg.MinLeafSize {
		return false
	}
	at := cfg.MinLeafSize + cfg.Rand.IntN(limit-cfg.MinLeafSize+1)
	if horizontal {
		l.left = &leaf{x: l.x, z: l.z, w: l.w, d: at}
		l.right = &leaf{x: l.x, z: l.z + at, w: l.w, d: l.d - at}
	} else {
		l.left = &leaf{x: l.x, z: l.z, w: at, d: l.d}
		l.right = &leaf{x: l.x + at, z: l.z, w: l.w - at, d: l.d}
	}
	return true
}

func (l *leaf) carveRooms(m *gamemap.GameMap, cfg Config, rooms *[]gamemap.Rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.carveRooms(m, cfg, rooms)
		}
		if l.right != nil {
			l.right.carveRooms(m, cfg, rooms)
		}
		if l.left != nil && l.right != nil {
			a, b := l.left.anyRoom(cfg.Rand), l.right.anyRoom(cfg.Rand)
			if a != nil && b != nil {
				ax, az := a.Center()
				bx, bz := b.Center()
				connect(m, ax, az, bx, bz, cfg)
			}
		}
		return
	}

	pad := cfg.RoomPadding
	maxW := l.w - 2*pad
	maxD := l.d - 2*pad
	if maxW < cfg.MinRoomSize || maxD < cfg.MinRoomSize {
		return
	}
	w := cfg.MinRoomSize + cfg.Rand.IntN(maxW-cfg.MinRoomSize+1)
	d := cfg.MinRoomSize + cfg.Rand.IntN(maxD-cfg.MinRoomSize+1)
	x := l.x + pad + cfg.Rand.IntN(maxW-w+1)
	z := l.z + pad + cfg.Rand.IntN(maxD-d+1)
	r := gamemap.Rect{X1: x, Z1: z, X2: x + w - 1, Z2: z + d - 1}
	l.room = &r
	m.Fill(r, gamemap.MakeFloor())
	*rooms = append(*rooms, r)
}

// anyRoom returns a room from somewhere in the subtree.
func (l *leaf) anyRoom(rng *rand.Rand) *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	var a, b *gamemap.Rect
	if l.left != nil {
		a = l.left.anyRoom(rng)
	}
	if l.right != nil {
		b = l.right.anyRoom(rng)
	}
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case rng.IntN(2) == 0:
		return a
	default:
		return b
	}
}

// Generate builds a layout. The outer ring of cells is always wall.
func Generate(cfg Config) Layout {
	m := gamemap.New(cfg.Width, cfg.Depth)
	root := &leaf{x: 1, z: 1, w: cfg.Width - 2, d: cfg.Depth - 2}

	leaves := []*leaf{root}
	for didSplit := true; didSplit; {
		didSplit = false
		for _, l := range leaves {
			if l.left != nil || l.right != nil {
				continue
			}
			if l.w > cfg.MaxLeafSize || l.d > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if l.split(cfg) {
					leaves = append(leaves, l.left, l.right)
					didSplit = true
				}
			}
		}
	}

	var rooms []gamemap.Rect
	root.carveRooms(m, cfg, &rooms)

	lay := Layout{Map: m, Rooms: rooms}
	if len(rooms) == 0 {
		// Leaves too small for any room; fall back to one open hall.
		hall := gamemap.Rect{X1: 1, Z1: 1, X2: cfg.Width - 2, Z2: cfg.Depth - 2}
		m.Fill(hall, gamemap.MakeFloor())
		lay.Rooms = []gamemap.Rect{hall}
	}
	lay.StartX, lay.StartZ = lay.Rooms[0].Center()

	for _, r := range lay.Rooms[1:] {
		if cfg.Rand.Float64() >= cfg.WaterChance {
			continue
		}
		pool := gamemap.Rect{X1: r.X1 + 1, Z1: r.Z1 + 1, X2: r.X2 - 1, Z2: r.Z2 - 1}
		if pool.X1 > pool.X2 || pool.Z1 > pool.Z2 {
			continue
		}
		m.Fill(pool, gamemap.MakeWater(cfg.WaterDepth))
		lay.Pools = append(lay.Pools, pool)
	}
	return lay
}
