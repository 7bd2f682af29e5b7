package system

import (
	"math"

	"hmactors/internal/actor"
	"hmactors/internal/vmath"
)

// IsFacingTarget reports whether the actor's shape faces the target within maxAngle.
func IsFacingTarget(a *actor.Actor, maxAngle int16) bool {
	return vmath.AbsS(a.YawTowardsTarget-a.Shape.Rot.Y) < maxAngle
}

// IsFacingAndNearTarget also requires the target within rng units.
func IsFacingAndNearTarget(a *actor.Actor, rng float64, maxAngle int16) bool {
	if !IsFacingTarget(a, maxAngle) {
		return false
	}
	return math.Sqrt(a.XYZDistToTargetSq) < rng
}

// RotateTowardPoint eases the shape yaw toward point by at most step and
// moves along it.
func RotateTowardPoint(a *actor.Actor, point vmath.Vec3f, step int16) {
	vmath.SmoothStepToS(&a.Shape.Rot.Y, vmath.YawTowardPoint(a.World.Pos, point), 3, step, 0)
	a.World.Rot.Y = a.Shape.Rot.Y
}

// FaceTarget snaps both yaws onto the target.
func FaceTarget(a *actor.Actor) {
	a.World.Rot.Y = a.YawTowardsTarget
	a.Shape.Rot.Y = a.YawTowardsTarget
}
