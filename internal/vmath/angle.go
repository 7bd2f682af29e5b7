package vmath

import "math"

// Binary angles: a full turn is 0x10000 units, so int16 arithmetic wraps
// naturally at ±180°.

// HalfTurn is the largest positive binary angle, one unit short of 180°.
const HalfTurn int16 = 0x7FFF

// DegToBinAng converts degrees to a binary angle.
func DegToBinAng(deg float64) int16 {
	return int16(int32(math.Round(deg * 0x8000 / 180)))
}

// RadToBinAng converts radians to a binary angle.
func RadToBinAng(rad float64) int16 {
	return int16(int32(math.Round(rad * 0x8000 / math.Pi)))
}

// BinAngToRad converts a binary angle to radians.
func BinAngToRad(a int16) float64 {
	return float64(a) * math.Pi / 0x8000
}

// Sins is the sine of a binary angle.
func Sins(a int16) float64 { return math.Sin(BinAngToRad(a)) }

// Coss is the cosine of a binary angle.
func Coss(a int16) float64 { return math.Cos(BinAngToRad(a)) }

// Atan2S returns the binary angle of the vector (x, z), measured from +Z
// toward +X.
func Atan2S(x, z float64) int16 {
	return RadToBinAng(math.Atan2(x, z))
}

// YawTowardPoint is the yaw that faces from `from` toward `to` in the XZ plane.
func YawTowardPoint(from, to Vec3f) int16 {
	return Atan2S(to.X-from.X, to.Z-from.Z)
}

// AbsS is the magnitude of a binary angle difference.
func AbsS(a int16) int16 {
	if a == math.MinInt16 {
		return math.MaxInt16
	}
	if a < 0 {
		return -a
	}
	return a
}
