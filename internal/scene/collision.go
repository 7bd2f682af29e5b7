package scene

import (
	"math/bits"

	"hmactors/internal/component"
	"hmactors/internal/vmath"
)

const (
	bodyPad        = 12.0
	unblockableBit = 1 << component.SourceUnblockable
)

// collide resolves the colliders registered during this tick's updates.
// Hits are recorded on the colliders and consumed by their owners next tick.
func (s *Scene) collide() {
	s.hitTarget()
	s.resolveStrikes()
	s.hitEnemies()
	s.pushApart()
}

// hitTarget tests enemy attacks against the target's body parts.
func (s *Scene) hitTarget() {
	t := s.Target
	for _, r := range s.at {
		if r.c.Side != component.SideEnemy || r.a.Killed() {
			continue
		}
		if t.InvincibilityTimer > 0 {
			return
		}
		touching := r.c.Contains(t.Pos, bodyPad) ||
			r.c.Contains(t.Collar(), bodyPad) ||
			r.c.Contains(t.Head(), bodyPad)
		if !touching {
			continue
		}
		if t.MirrorShield && r.a.Flags.Has(component.TagProjectile) && r.c.AT.DmgFlags&unblockableBit == 0 {
			r.c.RegisterBounce()
			s.log.Debug("attack deflected", "id", uint64(r.id))
			continue
		}
		r.c.RegisterATHit()
		s.DamageTarget(r.c.AT.Damage)
		t.InvincibilityTimer = targetHitGrace
		s.log.Debug("target hit", "by", uint64(r.id), "damage", r.c.AT.Damage, "health", t.Health.Current)
	}
}

// resolveStrikes lands queued target strikes on every hurtbox they reach.
func (s *Scene) resolveStrikes() {
	for _, st := range s.strikes {
		for _, r := range s.ac {
			if r.a.Killed() || !r.c.Contains(st.Pos, st.Radius) {
				continue
			}
			r.c.RegisterACHit(component.Hit{Source: st.Source, Pos: st.Pos})
			s.stats.strikesLanded++
		}
	}
	s.strikes = s.strikes[:0]
}

// hitEnemies tests player-side attacks, such as a reflected projectile,
// against targetable actors.
func (s *Scene) hitEnemies() {
	for _, at := range s.at {
		if at.c.Side != component.SidePlayer || at.c.AT.DmgFlags == 0 {
			continue
		}
		src := component.AttackSource(bits.TrailingZeros32(at.c.AT.DmgFlags))
		for _, ac := range s.ac {
			if ac.id == at.id || !ac.a.Flags.Has(component.TagTargetable) {
				continue
			}
			if !at.c.Overlaps(ac.c) {
				continue
			}
			ac.c.RegisterACHit(component.Hit{Source: src, Pos: at.a.World.Pos})
			at.c.RegisterATHit()
		}
	}
}

// pushApart separates overlapping bodies on the XZ plane, half each.
func (s *Scene) pushApart() {
	for i := range s.oc {
		for j := i + 1; j < len(s.oc); j++ {
			a, b := s.oc[i], s.oc[j]
			if !a.c.Overlaps(b.c) {
				continue
			}
			d := b.a.World.Pos.Sub(a.a.World.Pos)
			d.Y = 0
			dist := vmath.DistXZ(a.a.World.Pos, b.a.World.Pos)
			overlap := a.c.Dim.Radius + b.c.Dim.Radius - dist
			if overlap <= 0 {
				continue
			}
			if dist < 1e-6 {
				d, dist = vmath.Vec3f{X: 1}, 1
			}
			push := d.Scale(overlap / 2 / dist)
			a.a.World.Pos = a.a.World.Pos.Sub(push)
			b.a.World.Pos = b.a.World.Pos.Add(push)
		}
	}
}
