package actor

import "hmactors/internal/ecs"

// Shared is scene-owned state several actors read and write.
type Shared struct {
	// PoolHitByIceArrow is set when an ice arrow freezes a fire pool and
	// cleared when that pool finishes.
	PoolHitByIceArrow bool
	// SongPlayed is a pending free-play song that creatures consume.
	SongPlayed bool

	activeProjectile map[ecs.EntityID]bool
}

// NewShared returns empty shared state.
func NewShared() *Shared {
	return &Shared{activeProjectile: make(map[ecs.EntityID]bool)}
}

// SetActiveProjectile marks whether caster has a projectile in flight.
func (s *Shared) SetActiveProjectile(caster ecs.EntityID, active bool) {
	if s.activeProjectile == nil {
		s.activeProjectile = make(map[ecs.EntityID]bool)
	}
	if !active {
		delete(s.activeProjectile, caster)
		return
	}
	s.activeProjectile[caster] = true
}

// HasActiveProjectile reports caster's flag.
func (s *Shared) HasActiveProjectile(caster ecs.EntityID) bool {
	return s.activeProjectile[caster]
}

// ClearActiveProjectile clears caster's flag. Clearing an unknown caster is a no-op.
func (s *Shared) ClearActiveProjectile(caster ecs.EntityID) {
	delete(s.activeProjectile, caster)
}

// ConsumeSong reports and clears a pending song.
func (s *Shared) ConsumeSong() bool {
	played := s.SongPlayed
	s.SongPlayed = false
	return played
}
