package component

import "hmactors/internal/vmath"

// EffectPoolCapacity is the number of particle slots an effect pool owns.
const EffectPoolCapacity = 20

// EffectParticle is one smoke/steam puff.
type EffectParticle struct {
	Enabled   bool
	Pos       vmath.Vec3f
	Velocity  vmath.Vec3f
	Accel     vmath.Vec3f
	Scale     float64
	Alpha     int
	FadingOut bool
	Scroll    int
}

// EffectPool is a fixed set of particles. Spawns into a full pool are dropped.
type EffectPool struct {
	Particles [EffectPoolCapacity]EffectParticle
}

// Spawn enables the first free particle at pos. It returns false when every
// slot is in use.
func (p *EffectPool) Spawn(pos, accel vmath.Vec3f, r vmath.Random) bool {
	for i := range p.Particles {
		e := &p.Particles[i]
		if e.Enabled {
			continue
		}
		*e = EffectParticle{
			Enabled: true,
			Pos:     pos,
			Accel:   accel,
			Scroll:  int(vmath.RandZeroFloat(r, 100)),
			Scale:   (vmath.RandZeroFloat(r, 5) + 20) * 0.001,
		}
		return true
	}
	return false
}

// Update moves every enabled particle and runs its fade in, then fade out.
func (p *EffectPool) Update() {
	for i := range p.Particles {
		e := &p.Particles[i]
		if !e.Enabled {
			continue
		}
		e.Scroll++
		e.Pos = e.Pos.Add(e.Velocity)
		e.Velocity = e.Velocity.Add(e.Accel)
		if !e.FadingOut {
			e.Alpha += 10
			if e.Alpha >= 100 {
				e.FadingOut = true
			}
		} else {
			e.Alpha -= 8
			if e.Alpha <= 0 {
				e.Alpha = 0
				e.Enabled = false
			}
		}
	}
}

// Enabled returns the number of live particles.
func (p *EffectPool) Enabled() int {
	n := 0
	for i := range p.Particles {
		if p.Particles[i].Enabled {
			n++
		}
	}
	return n
}
