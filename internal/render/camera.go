package render

import (
	"math"

	"hmactors/internal/vmath"
)

// Camera translates between arena cells and screen coordinates.
// Cell X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetZ    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	CellSize   float64
}

// NewCamera creates a camera centered on cell (cx, cz).
func NewCamera(cx, cz, viewW, viewH int, cellSize float64) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, CellSize: cellSize}
	c.Center(cx, cz)
	return c
}

// Center repositions the camera so that cell (cx, cz) is in the middle.
func (c *Camera) Center(cx, cz int) {
	// ViewWidth is in columns; each cell is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetZ = cz - c.ViewHeight/2
}

// CenterOnPos centers the camera on a world position.
func (c *Camera) CenterOnPos(p vmath.Vec3f) {
	c.Center(c.Cell(p))
}

// Cell returns the cell containing a world position.
func (c *Camera) Cell(p vmath.Vec3f) (int, int) {
	return int(math.Floor(p.X / c.CellSize)), int(math.Floor(p.Z / c.CellSize))
}

// CellToScreen converts cell (cx, cz) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) CellToScreen(cx, cz int) (sx, sy int, visible bool) {
	sx = (cx - c.OffsetX) * 2
	sy = cz - c.OffsetZ
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p vmath.Vec3f) (sx, sy int, visible bool) {
	return c.CellToScreen(c.Cell(p))
}

// ScreenToCell converts screen (sx, sy) to cell coordinates.
func (c *Camera) ScreenToCell(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetZ
}
