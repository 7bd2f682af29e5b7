package system

import (
	"math"

	"hmactors/internal/gamemap"
	"hmactors/internal/vmath"
)

// octant transform matrices.
// For each octant, a (dx, dz) sweep pair maps to a cell offset via:
//
//	cellX = cx + dx*xx + dz*xz
//	cellZ = cz + dx*zx + dz*zz
//
// where dx sweeps within the row and dz is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FOV is the set of arena cells lit from one origin.
type FOV struct {
	width, depth int
	lit          []bool
}

// Lit reports whether cell (x, z) is visible.
func (f *FOV) Lit(x, z int) bool {
	if x < 0 || z < 0 || x >= f.width || z >= f.depth {
		return false
	}
	return f.lit[z*f.width+x]
}

func (f *FOV) light(x, z int) {
	if x >= 0 && z >= 0 && x < f.width && z < f.depth {
		f.lit[z*f.width+x] = true
	}
}

// ComputeFOV runs recursive shadowcasting over the arena from cell (cx, cz).
// Walls are opaque; everything else, water included, lets sight through.
func ComputeFOV(m *gamemap.GameMap, cx, cz, radius int) *FOV {
	f := &FOV{width: m.Width, depth: m.Depth, lit: make([]bool, m.Width*m.Depth)}
	// Origin is always visible.
	f.light(cx, cz)
	for _, o := range octants {
		castLight(m, f, cx, cz, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
	return f
}

// LineOfSight reports whether the cell holding to can be seen from the cell
// holding from.
func LineOfSight(m *gamemap.GameMap, from, to vmath.Vec3f) bool {
	fx, fz := gamemap.CellOf(from)
	tx, tz := gamemap.CellOf(to)
	dx, dz := tx-fx, tz-fz
	r := int(math.Sqrt(float64(dx*dx+dz*dz))) + 1
	return ComputeFOV(m, fx, fz, r).Lit(tx, tz)
}

func opaque(m *gamemap.GameMap, x, z int) bool {
	return !m.InBounds(x, z) || m.At(x, z).Kind == gamemap.TileWall
}

// castLight lights one octant.
//
//   - j is the current row (distance from origin along the main axis)
//   - dz = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dz + 0.5), rSlope = (dx + 0.5) / (dz - 0.5)
func castLight(m *gamemap.GameMap, f *FOV, cx, cz, row int, start, end float64, radius, xx, xz, zx, zz int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dz := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dz*xz
			wz := cz + dx*zx + dz*zz

			lSlope := (float64(dx) - 0.5) / (float64(dz) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dz) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dz*dz) < radiusSq {
				f.light(wx, wz)
			}

			solid := opaque(m, wx, wz)
			if blocked {
				if solid {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if solid && j < radius {
				// Hit a new wall; scan the part of the row beyond it.
				blocked = true
				castLight(m, f, cx, cz, j+1, start, lSlope, radius, xx, xz, zx, zz)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
