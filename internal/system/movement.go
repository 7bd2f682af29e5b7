package system

import (
	"hmactors/internal/actor"
	"hmactors/internal/vmath"
)

// UpdatePos integrates one tick of velocity.
func UpdatePos(a *actor.Actor) {
	a.World.Pos = a.World.Pos.Add(a.Velocity)
}

// MoveXZGravity derives horizontal velocity from speed and yaw, applies
// gravity down to MinVelocityY, and integrates position.
func MoveXZGravity(a *actor.Actor) {
	a.Velocity.X = a.Speed * vmath.Sins(a.World.Rot.Y)
	a.Velocity.Z = a.Speed * vmath.Coss(a.World.Rot.Y)
	a.Velocity.Y += a.Gravity
	if a.Velocity.Y < a.MinVelocityY {
		a.Velocity.Y = a.MinVelocityY
	}
	UpdatePos(a)
}

// VelocityFromAngles returns a velocity of magnitude speed along yaw, tilted
// upward by a positive pitch.
func VelocityFromAngles(yaw, pitch int16, speed float64) vmath.Vec3f {
	xz := vmath.Coss(pitch) * speed
	return vmath.Vec3f{
		X: vmath.Sins(yaw) * xz,
		Y: vmath.Sins(pitch) * speed,
		Z: vmath.Coss(yaw) * xz,
	}
}

// UpdateVelocityXYZ points the velocity along the actor's world rotation.
func UpdateVelocityXYZ(a *actor.Actor) {
	a.Velocity = VelocityFromAngles(a.World.Rot.Y, a.World.Rot.X, a.Speed)
}
