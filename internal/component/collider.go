package component

import "hmactors/internal/vmath"

// ColliderSide says whose attacks an AT collider counts as.
type ColliderSide uint8

const (
	SideEnemy ColliderSide = iota
	SidePlayer
)

// Cylinder is an upright collision cylinder anchored at Pos+YShift.
type Cylinder struct {
	Radius, Height, YShift float64
	Pos                    vmath.Vec3f
}

// DmgInfo describes the damage an AT collider inflicts.
type DmgInfo struct {
	DmgFlags uint32
	Damage   int
	Effect   uint8
}

// Hit is what the collision system records on an AC collider.
type Hit struct {
	Source AttackSource
	Pos    vmath.Vec3f
}

// Collider is a cylinder plus the hit bookkeeping shared between an actor and
// the collision system. The collision system sets the hit flags; the owning
// actor consumes them, each at most once.
type Collider struct {
	Dim  Cylinder
	AT   DmgInfo
	Side ColliderSide

	acHit   bool
	lastHit Hit
	atHit   bool
	bounced bool
}

// SetDim updates the cylinder size.
func (c *Collider) SetDim(radius, height, yShift float64) {
	c.Dim.Radius = radius
	c.Dim.Height = height
	c.Dim.YShift = yShift
}

// UpdateCylinder moves the cylinder to pos.
func (c *Collider) UpdateCylinder(pos vmath.Vec3f) { c.Dim.Pos = pos }

// Contains reports whether p lies within the cylinder, widened by pad.
func (c *Collider) Contains(p vmath.Vec3f, pad float64) bool {
	bottom := c.Dim.Pos.Y + c.Dim.YShift
	if p.Y < bottom-pad || p.Y > bottom+c.Dim.Height+pad {
		return false
	}
	r := c.Dim.Radius + pad
	return vmath.DistXZ(c.Dim.Pos, p) <= r
}

// Overlaps reports whether two cylinders intersect.
func (c *Collider) Overlaps(o *Collider) bool {
	ab, bb := c.Dim.Pos.Y+c.Dim.YShift, o.Dim.Pos.Y+o.Dim.YShift
	if ab > bb+o.Dim.Height || bb > ab+c.Dim.Height {
		return false
	}
	return vmath.DistXZ(c.Dim.Pos, o.Dim.Pos) <= c.Dim.Radius+o.Dim.Radius
}

// RegisterACHit is called by the collision system when the collider is struck.
func (c *Collider) RegisterACHit(h Hit) {
	c.acHit = true
	c.lastHit = h
}

// RegisterATHit is called by the collision system when the collider landed a hit.
func (c *Collider) RegisterATHit() { c.atHit = true }

// RegisterBounce is called when the collider's attack was deflected.
func (c *Collider) RegisterBounce() { c.bounced = true }

// ACHit reports a pending hit without consuming it.
func (c *Collider) ACHit() bool { return c.acHit }

// ConsumeACHit returns the pending hit and clears it.
func (c *Collider) ConsumeACHit() (Hit, bool) {
	if !c.acHit {
		return Hit{}, false
	}
	c.acHit = false
	return c.lastHit, true
}

// ConsumeATHit reports and clears a landed attack.
func (c *Collider) ConsumeATHit() bool {
	hit := c.atHit
	c.atHit = false
	return hit
}

// ConsumeBounce reports and clears a deflection.
func (c *Collider) ConsumeBounce() bool {
	b := c.bounced
	c.bounced = false
	return b
}
