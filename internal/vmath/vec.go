package vmath

import "math"

// Vec3f is a world-space position, velocity or scale.
type Vec3f struct {
	X, Y, Z float64
}

// Vec3s holds a rotation as three binary angles (pitch, yaw, roll).
type Vec3s struct {
	X, Y, Z int16
}

// Add returns v + o.
func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3f) Sub(o Vec3f) Vec3f {
	return Vec3f{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3f) Scale(s float64) Vec3f {
	return Vec3f{v.X * s, v.Y * s, v.Z * s}
}

// DistXZ is the horizontal distance between a and b.
func DistXZ(a, b Vec3f) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// DistXYZSq is the squared 3D distance between a and b.
func DistXYZSq(a, b Vec3f) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return dx*dx + dy*dy + dz*dz
}

// DistXYZ is the 3D distance between a and b.
func DistXYZ(a, b Vec3f) float64 {
	return math.Sqrt(DistXYZSq(a, b))
}
