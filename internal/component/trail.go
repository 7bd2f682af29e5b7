package component

import "hmactors/internal/vmath"

// TrailLength is the number of remembered projectile positions.
const TrailLength = 10

// Trail is a short position history drawn behind a projectile. Pos[0] is the
// newest entry. Entries below LowestUsed are no longer drawn.
type Trail struct {
	Pos        [TrailLength]vmath.Vec3f
	LowestUsed int
}

// Reset fills the history with pos and shows the full trail again.
func (t *Trail) Reset(pos vmath.Vec3f) {
	for i := range t.Pos {
		t.Pos[i] = pos
	}
	t.LowestUsed = 0
}

// Push shifts every entry one slot older and records pos as the newest.
func (t *Trail) Push(pos vmath.Vec3f) {
	copy(t.Pos[1:], t.Pos[:TrailLength-1])
	t.Pos[0] = pos
}

// Advance hides one more of the newest entries. The cursor only grows and
// stops at TrailLength.
func (t *Trail) Advance() {
	if t.LowestUsed < TrailLength {
		t.LowestUsed++
	}
}

// Visible calls fn for each drawn entry, oldest first.
func (t *Trail) Visible(fn func(i int, pos vmath.Vec3f)) {
	for i := TrailLength - 1; i >= t.LowestUsed; i-- {
		fn(i, t.Pos[i])
	}
}
