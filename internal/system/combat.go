package system

import (
	"hmactors/internal/actor"
	"hmactors/internal/component"
)

// Reaction is how a creature responds to a classified hit.
type Reaction uint8

const (
	ReactNone Reaction = iota
	ReactStun
	ReactDamaged
	ReactDeath
)

func (r Reaction) String() string {
	switch r {
	case ReactStun:
		return "stun"
	case ReactDamaged:
		return "damaged"
	case ReactDeath:
		return "death"
	default:
		return "none"
	}
}

const (
	stunFilterTicks   = 80
	damageFilterTicks = 20
)

// ResolveHit classifies hit with table and applies it to a.
// A stun only lands while more than one hit point remains and deals nothing;
// a default hit tints the actor red and applies the table damage. Hits with
// no effect leave the actor untouched.
func ResolveHit(a *actor.Actor, table *component.DamageTable, hit component.Hit) Reaction {
	e := table.Lookup(hit.Source)
	switch e.Effect {
	case component.EffectStun:
		if a.Health.Current > 1 {
			SetColorFilter(a, actor.FilterBlue, 255, stunFilterTicks)
			return ReactStun
		}
	case component.EffectDefault:
		SetColorFilter(a, actor.FilterRed, 200, damageFilterTicks)
		if a.Health.Apply(e.Damage) == 0 {
			return ReactDeath
		}
		return ReactDamaged
	}
	return ReactNone
}
