package vmath

// Random is the pseudo-random source behaviours draw from. *rand.Rand
// satisfies it.
type Random interface {
	Float64() float64
}

// RandZeroFloat returns a value in [0, f).
func RandZeroFloat(r Random, f float64) float64 {
	return r.Float64() * f
}

// RandCentered returns a value in [-f/2, f/2).
func RandCentered(r Random, f float64) float64 {
	return (r.Float64() - 0.5) * f
}

// RandS16Offset returns base plus a value in [0, rng).
func RandS16Offset(r Random, base, rng int16) int16 {
	return base + int16(r.Float64()*float64(rng))
}
