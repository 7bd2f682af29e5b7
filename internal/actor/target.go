package actor

import (
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/vmath"
)

// BodyPart names a tracked point on the target.
type BodyPart uint8

const (
	BodyCollar BodyPart = iota
	BodyHead

	NumBodyParts
)

const (
	collarHeight = 40.0
	headHeight   = 55.0
)

// Target is the externally driven character the actors react to.
type Target struct {
	Pos       vmath.Vec3f
	Velocity  vmath.Vec3f
	Yaw       int16
	Grounded  bool
	BodyParts [NumBodyParts]vmath.Vec3f

	Grabbed   bool
	GrabbedBy ecs.EntityID

	InvincibilityTimer int
	MirrorShield       bool
	Adult              bool
	Health             component.Health
}

// NewTarget returns a grounded adult target at pos.
func NewTarget(pos vmath.Vec3f, health int) *Target {
	t := &Target{
		Pos:      pos,
		Grounded: true,
		Adult:    true,
		Health:   component.Health{Current: health, Max: health},
	}
	t.UpdateBodyParts()
	return t
}

// UpdateBodyParts recomputes the tracked points from Pos.
func (t *Target) UpdateBodyParts() {
	t.BodyParts[BodyCollar] = t.Pos.Add(vmath.Vec3f{Y: collarHeight})
	t.BodyParts[BodyHead] = t.Pos.Add(vmath.Vec3f{Y: headHeight})
}

// Collar returns the collar point.
func (t *Target) Collar() vmath.Vec3f { return t.BodyParts[BodyCollar] }

// Head returns the head point.
func (t *Target) Head() vmath.Vec3f { return t.BodyParts[BodyHead] }

// RefreshTargetCache recomputes the target-relative fields from t.
func (a *Actor) RefreshTargetCache(t *Target) {
	a.XZDistToTarget = vmath.DistXZ(a.World.Pos, t.Pos)
	a.XYZDistToTargetSq = vmath.DistXYZSq(a.World.Pos, t.Pos)
	a.YawTowardsTarget = vmath.YawTowardPoint(a.World.Pos, t.Pos)
}
