package generate

import "hmactors/internal/gamemap"

// connect digs a tunnel between (x1,z1) and (x2,z2).
func connect(m *gamemap.GameMap, x1, z1, x2, z2 int, cfg Config) {
	switch cfg.CorridorStyle {
	case CorridorZ:
		midZ := (z1 + z2) / 2
		carveZ(m, z1, midZ, x1)
		carveX(m, x1, x2, midZ)
		carveZ(m, midZ, z2, x2)
	default:
		if cfg.Rand.IntN(2) == 0 {
			carveX(m, x1, x2, z1)
			carveZ(m, z1, z2, x2)
		} else {
			carveZ(m, z1, z2, x1)
			carveX(m, x1, x2, z2)
		}
	}
}

// carveX opens walls along row z. Cells that are already open keep their tile.
func carveX(m *gamemap.GameMap, x1, x2, z int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		open(m, x, z)
	}
}

func carveZ(m *gamemap.GameMap, z1, z2, x int) {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	for z := z1; z <= z2; z++ {
		open(m, x, z)
	}
}

func open(m *gamemap.GameMap, x, z int) {
	// Never breach the outer ring.
	if x < 1 || z < 1 || x > m.Width-2 || z > m.Depth-2 {
		return
	}
	if m.At(x, z).Kind == gamemap.TileWall {
		m.Set(x, z, gamemap.MakeFloor())
	}
}
