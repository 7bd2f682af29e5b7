package actor

import (
	"log/slog"

	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/vmath"
)

//go:generate go tool mockgen -destination=mock_actor/mock_arbiter.go -package=mock_actor . Arbiter

// Item is a collectible dropped into the scene.
type Item uint8

const (
	ItemNone Item = iota
	ItemRecoveryHeart
)

func (i Item) String() string {
	if i == ItemRecoveryHeart {
		return "recovery_heart"
	}
	return "none"
}

// SpawnRequest describes an actor to create. The new actor is first updated
// on the tick after the request.
type SpawnRequest struct {
	Kind   Kind
	Pos    vmath.Vec3f
	Rot    vmath.Vec3s
	Params int16
	Parent ecs.EntityID
}

// Spawner creates actors. ok is false when the scene is full.
type Spawner interface {
	Spawn(req SpawnRequest) (id ecs.EntityID, ok bool)
}

// Snapshot is a copy of an actor as it stood at the end of the previous tick.
type Snapshot struct {
	Actor     Actor
	Published any
}

// Directory resolves handles to previous-tick snapshots. Removed or stale
// handles do not resolve.
type Directory interface {
	Peek(id ecs.EntityID) (Snapshot, bool)
}

// Arbiter owns the target's mutable state.
type Arbiter interface {
	// Grab attaches the target to by. It fails if the target is already held.
	Grab(by ecs.EntityID) bool
	// DamageTarget takes amount of health from the target.
	DamageTarget(amount int)
	// ExtendInvincibility adds ticks to the target's invincibility timer.
	ExtendInvincibility(ticks int)
}

// EffectSpawner creates scene effects that are not actors.
type EffectSpawner interface {
	DeathBurst(pos vmath.Vec3f)
	DropItem(pos vmath.Vec3f, item Item)
	FinishingBlow(a *Actor)
}

// Collision is the background check and the per-tick collider registration.
type Collision interface {
	BgCheck(a *Actor, wallRadius, ceilingHeight float64)
	SetAT(a *Actor, c *component.Collider)
	SetAC(a *Actor, c *component.Collider)
	SetOC(a *Actor, c *component.Collider)
	// LineOfSight reports whether walls leave a clear view between two points.
	LineOfSight(from, to vmath.Vec3f) bool
}

// Frame is everything a behaviour may touch during one tick.
type Frame struct {
	Tick      uint64
	Rand      vmath.Random
	Target    *Target
	Shared    *Shared
	Actors    Directory
	Spawner   Spawner
	Sound     audio.Sink
	Effects   EffectSpawner
	Arbiter   Arbiter
	Collision Collision
	Log       *slog.Logger
}

// PlaySfx plays cue at the actor's position.
func (f *Frame) PlaySfx(a *Actor, cue audio.Cue) {
	if f.Sound != nil {
		f.Sound.Play(cue, a.World.Pos)
	}
}
