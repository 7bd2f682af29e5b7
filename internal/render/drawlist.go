package render

import (
	"sort"

	"hmactors/internal/vmath"

	"github.com/gdamore/tcell/v2"
)

// Sprite is one drawable item in world space.
type Sprite struct {
	Pos   vmath.Vec3f
	Glyph string
	FG    tcell.Color
	Scale float64
	Alpha int
	// Order sorts sprites; lower is drawn first.
	Order int
}

// DrawList collects the sprites actors emit during the draw pass.
type DrawList struct {
	Sprites []Sprite
}

// Add appends a sprite.
func (d *DrawList) Add(s Sprite) { d.Sprites = append(d.Sprites, s) }

// Reset empties the list, keeping its storage.
func (d *DrawList) Reset() { d.Sprites = d.Sprites[:0] }

// Len returns the number of sprites.
func (d *DrawList) Len() int { return len(d.Sprites) }

// Sorted returns the sprites ordered by Order, stable for equal orders.
func (d *DrawList) Sorted() []Sprite {
	out := make([]Sprite, len(d.Sprites))
	copy(out, d.Sprites)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
