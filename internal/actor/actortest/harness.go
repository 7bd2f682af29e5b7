// Package actortest drives a single behaviour through ticks against an
// in-memory frame, recording everything it asks of the scene.
package actortest

import (
	"log/slog"
	"math/rand/v2"

	"hmactors/internal/actor"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/gamemap"
	"hmactors/internal/render"
	"hmactors/internal/system"
	"hmactors/internal/vmath"
)

// Drop is a recorded item drop.
type Drop struct {
	Pos  vmath.Vec3f
	Item actor.Item
}

// Harness is a single-actor scene stand-in. Its fields are public so tests
// can arrange and inspect state directly.
type Harness struct {
	Frame  *actor.Frame
	Target *actor.Target
	Shared *actor.Shared
	Sound  *audio.Recorder
	Arena  *gamemap.GameMap

	// Snapshots is what Peek returns. Place and Step refresh the entry of the
	// actor under test; tests add others by hand.
	Snapshots map[ecs.EntityID]actor.Snapshot

	Spawns         []actor.SpawnRequest
	SpawnLimit     int
	Bursts         []vmath.Vec3f
	Drops          []Drop
	FinishingBlows int
	TargetDamage   int
	Grabs          int

	// AT, AC and OC hold the colliders registered during the last Step.
	AT, AC, OC map[ecs.EntityID]*component.Collider

	ids *ecs.World[actor.Kind]
}

// New returns a harness with an open 20×20 arena, a target at its centre and
// a seeded random source. Sound goes to a Recorder unless the caller swaps
// Frame.Sound.
func New(seed uint64) *Harness {
	h := &Harness{
		Shared:    actor.NewShared(),
		Sound:     &audio.Recorder{},
		Arena:     gamemap.NewArena(20, 20),
		Snapshots: make(map[ecs.EntityID]actor.Snapshot),
		ids:       ecs.NewWorld[actor.Kind](0),
	}
	h.Target = actor.NewTarget(gamemap.CellCenter(10, 10), 48)
	h.Frame = &actor.Frame{
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Target:    h.Target,
		Shared:    h.Shared,
		Actors:    h,
		Spawner:   h,
		Sound:     h.Sound,
		Effects:   h,
		Arbiter:   h,
		Collision: h,
		Log:       slog.New(slog.DiscardHandler),
	}
	h.resetRegistrations()
	return h
}

// Place assigns the behaviour's actor a handle, runs Init and records the
// first snapshot.
func (h *Harness) Place(b actor.Behavior) ecs.EntityID {
	a := b.Base()
	id, _ := h.ids.CreateEntity(a.Kind)
	a.ID = id
	a.RefreshTargetCache(h.Target)
	b.Init(h.Frame)
	h.snapshot(b)
	return id
}

// Step runs one tick for b the way the scene does.
func (h *Harness) Step(b actor.Behavior) {
	a := b.Base()
	h.Frame.Tick++
	h.resetRegistrations()
	h.Target.UpdateBodyParts()
	a.RefreshTargetCache(h.Target)
	system.TickColorFilter(a)
	b.Update(h.Frame)
	h.snapshot(b)
}

// StepN runs n ticks.
func (h *Harness) StepN(b actor.Behavior, n int) {
	for range n {
		h.Step(b)
	}
}

// StepUntil steps until done reports true or limit ticks pass, returning the
// number of ticks taken and whether done was reached.
func (h *Harness) StepUntil(b actor.Behavior, limit int, done func() bool) (int, bool) {
	for i := 1; i <= limit; i++ {
		h.Step(b)
		if done() {
			return i, true
		}
	}
	return limit, false
}

// Draw runs b's draw pass into a fresh list.
func (h *Harness) Draw(b actor.Behavior) *render.DrawList {
	var dl render.DrawList
	b.Draw(h.Frame, &dl)
	return &dl
}

// Strike registers an AC hit from src on b's collider.
func (h *Harness) Strike(b actor.Behavior, src component.AttackSource) {
	c, ok := b.(actor.Collidable)
	if !ok {
		return
	}
	c.Collider().RegisterACHit(component.Hit{Source: src, Pos: b.Base().World.Pos})
}

// Publish stores a snapshot for another actor so Peek can find it.
func (h *Harness) Publish(a actor.Actor, published any) {
	h.Snapshots[a.ID] = actor.Snapshot{Actor: a, Published: published}
}

// NewID allocates a live handle without an actor behind it.
func (h *Harness) NewID(kind actor.Kind) ecs.EntityID {
	id, _ := h.ids.CreateEntity(kind)
	return id
}

// Remove forgets an actor, making its handle stale.
func (h *Harness) Remove(id ecs.EntityID) {
	delete(h.Snapshots, id)
	h.ids.DestroyEntity(id)
}

func (h *Harness) snapshot(b actor.Behavior) {
	s := actor.Snapshot{Actor: *b.Base()}
	if p, ok := b.(actor.Publisher); ok {
		s.Published = p.Publish()
	}
	h.Snapshots[s.Actor.ID] = s
}

func (h *Harness) resetRegistrations() {
	h.AT = make(map[ecs.EntityID]*component.Collider)
	h.AC = make(map[ecs.EntityID]*component.Collider)
	h.OC = make(map[ecs.EntityID]*component.Collider)
}

// ─── actor.Directory ────────────────────────────────────────────────────────

// Peek implements actor.Directory.
func (h *Harness) Peek(id ecs.EntityID) (actor.Snapshot, bool) {
	if !h.ids.Alive(id) {
		return actor.Snapshot{}, false
	}
	s, ok := h.Snapshots[id]
	return s, ok
}

// ─── actor.Spawner ──────────────────────────────────────────────────────────

// Spawn implements actor.Spawner. Requests are recorded, never run.
func (h *Harness) Spawn(req actor.SpawnRequest) (ecs.EntityID, bool) {
	if h.SpawnLimit > 0 && len(h.Spawns) >= h.SpawnLimit {
		return ecs.NilEntity, false
	}
	h.Spawns = append(h.Spawns, req)
	id, _ := h.ids.CreateEntity(req.Kind)
	return id, true
}

// SpawnsOf returns the recorded requests of one kind.
func (h *Harness) SpawnsOf(kind actor.Kind) []actor.SpawnRequest {
	var out []actor.SpawnRequest
	for _, r := range h.Spawns {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// ─── actor.EffectSpawner ────────────────────────────────────────────────────

// DeathBurst implements actor.EffectSpawner.
func (h *Harness) DeathBurst(pos vmath.Vec3f) { h.Bursts = append(h.Bursts, pos) }

// DropItem implements actor.EffectSpawner.
func (h *Harness) DropItem(pos vmath.Vec3f, item actor.Item) {
	h.Drops = append(h.Drops, Drop{Pos: pos, Item: item})
}

// FinishingBlow implements actor.EffectSpawner.
func (h *Harness) FinishingBlow(*actor.Actor) { h.FinishingBlows++ }

// ─── actor.Arbiter ──────────────────────────────────────────────────────────

// Grab implements actor.Arbiter.
func (h *Harness) Grab(by ecs.EntityID) bool {
	if h.Target.Grabbed {
		return false
	}
	h.Target.Grabbed = true
	h.Target.GrabbedBy = by
	h.Grabs++
	return true
}

// Release lets the target go, as an escape input would.
func (h *Harness) Release() {
	h.Target.Grabbed = false
	h.Target.GrabbedBy = ecs.NilEntity
}

// DamageTarget implements actor.Arbiter.
func (h *Harness) DamageTarget(amount int) {
	h.Target.Health.Apply(amount)
	h.TargetDamage += amount
}

// ExtendInvincibility implements actor.Arbiter.
func (h *Harness) ExtendInvincibility(ticks int) { h.Target.InvincibilityTimer += ticks }

// ─── actor.Collision ────────────────────────────────────────────────────────

// BgCheck implements actor.Collision against the harness arena.
func (h *Harness) BgCheck(a *actor.Actor, wallRadius, _ float64) {
	system.BgCheck(h.Arena, a, wallRadius)
}

// SetAT implements actor.Collision.
func (h *Harness) SetAT(a *actor.Actor, c *component.Collider) { h.AT[a.ID] = c }

// SetAC implements actor.Collision.
func (h *Harness) SetAC(a *actor.Actor, c *component.Collider) { h.AC[a.ID] = c }

// SetOC implements actor.Collision.
func (h *Harness) SetOC(a *actor.Actor, c *component.Collider) { h.OC[a.ID] = c }

// LineOfSight implements actor.Collision against the harness arena.
func (h *Harness) LineOfSight(from, to vmath.Vec3f) bool {
	return system.LineOfSight(h.Arena, from, to)
}
