// Package scene owns the live actors and runs the fixed-tick loop: spawn
// promotion, updates in slot order, the collision pass, removal and the
// snapshots other actors read on the next tick.
package scene

import (
	"log/slog"
	"math/rand/v2"

	"hmactors/internal/actor"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/factory"
	"hmactors/internal/gamemap"
	"hmactors/internal/render"
	"hmactors/internal/system"
	"hmactors/internal/vmath"

	"github.com/google/uuid"
)

// DefaultMaxActors bounds the live and pending actors of a scene.
const DefaultMaxActors = 64

const (
	targetRadius       = 12.0
	targetHitGrace     = 20
	targetGravity      = -1.0
	targetJumpVelocity = 12.0
	burstTicks         = 12
	pickupRange        = 40.0
	heartHealth        = 16
)

// Builder makes the behaviour for a spawn request.
type Builder func(kind actor.Kind, params int16, home actor.PosRot) (actor.Behavior, error)

// Options configures a new scene. Zero fields take defaults.
type Options struct {
	Seed      uint64
	MaxActors int
	Arena     *gamemap.GameMap
	Target    *actor.Target
	Sound     audio.Sink
	Logger    *slog.Logger
	Build     Builder
}

type entry struct {
	b       actor.Behavior
	pending bool
	snap    actor.Snapshot
	snapped bool
}

type registration struct {
	id ecs.EntityID
	a  *actor.Actor
	c  *component.Collider
}

// Burst is a death burst the viewer shows for a few ticks.
type Burst struct {
	Pos vmath.Vec3f
	TTL int
}

// Drop is an item lying in the arena.
type Drop struct {
	Pos  vmath.Vec3f
	Item actor.Item
}

// Strike is an attack by the target against actor hurtboxes.
type Strike struct {
	Source component.AttackSource
	Pos    vmath.Vec3f
	Radius float64
}

// Scene is a single-threaded actor registry. Nothing in it is safe for
// concurrent use; callers drive Tick from one goroutine.
type Scene struct {
	RunID  uuid.UUID
	Seed   uint64
	Target *actor.Target
	Shared *actor.Shared
	Arena  *gamemap.GameMap

	actors *ecs.World[*entry]
	build  Builder
	frame  actor.Frame
	log    *slog.Logger
	cues   cueCounter
	stats  stats

	at, ac, oc []registration
	strikes    []Strike
	bursts     []Burst
	drops      []Drop
}

// New creates an empty scene.
func New(opts Options) *Scene {
	if opts.MaxActors <= 0 {
		opts.MaxActors = DefaultMaxActors
	}
	if opts.Arena == nil {
		opts.Arena = gamemap.NewArena(20, 20)
	}
	if opts.Target == nil {
		opts.Target = actor.NewTarget(gamemap.CellCenter(opts.Arena.Width/2, opts.Arena.Depth/2), 48)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Build == nil {
		opts.Build = factory.New
	}

	s := &Scene{
		RunID:  uuid.New(),
		Seed:   opts.Seed,
		Target: opts.Target,
		Shared: actor.NewShared(),
		Arena:  opts.Arena,
		actors: ecs.NewWorld[*entry](opts.MaxActors),
		build:  opts.Build,
		cues:   make(cueCounter),
		stats:  newStats(),
	}
	s.log = opts.Logger.With("run_id", s.RunID.String())

	var sink audio.Sink = s.cues
	if opts.Sound != nil {
		sink = audio.Multi(opts.Sound, s.cues)
	}
	s.frame = actor.Frame{
		Rand:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		Target:    s.Target,
		Shared:    s.Shared,
		Actors:    s,
		Spawner:   s,
		Sound:     sink,
		Effects:   s,
		Arbiter:   s,
		Collision: s,
		Log:       s.log,
	}
	s.log.Info("scene created", "seed", opts.Seed, "max_actors", opts.MaxActors)
	return s
}

// Logger returns the scene logger, tagged with the run id.
func (s *Scene) Logger() *slog.Logger { return s.log }

// Ticks returns the number of completed ticks.
func (s *Scene) Ticks() uint64 { return s.frame.Tick }

// Len returns the number of live and pending actors.
func (s *Scene) Len() int { return s.actors.Len() }

// Behavior returns the behaviour behind a live handle.
func (s *Scene) Behavior(id ecs.EntityID) (actor.Behavior, bool) {
	e, ok := s.actors.Get(id)
	if !ok {
		return nil, false
	}
	return e.b, true
}

// Each calls fn for every updated actor in slot order. Actors spawned this
// tick are not included.
func (s *Scene) Each(fn func(b actor.Behavior)) {
	s.actors.Each(func(_ ecs.EntityID, e *entry) {
		if !e.pending {
			fn(e.b)
		}
	})
}

// Bursts returns the death bursts still on screen.
func (s *Scene) Bursts() []Burst { return s.bursts }

// Drops returns the items lying in the arena.
func (s *Scene) Drops() []Drop { return s.drops }

// ─── Spawning ───────────────────────────────────────────────────────────────

// Spawn implements actor.Spawner. The actor is initialised at once but is
// first updated on the next tick. ok is false when the scene is full or the
// kind has no behaviour.
func (s *Scene) Spawn(req actor.SpawnRequest) (ecs.EntityID, bool) {
	if s.actors.Full() {
		s.log.Debug("spawn refused", "kind", req.Kind.String(), "reason", "full")
		return ecs.NilEntity, false
	}
	b, err := s.build(req.Kind, req.Params, actor.PosRot{Pos: req.Pos, Rot: req.Rot})
	if err != nil {
		s.log.Warn("spawn refused", "kind", req.Kind.String(), "error", err)
		return ecs.NilEntity, false
	}
	e := &entry{b: b, pending: true}
	id, ok := s.actors.CreateEntity(e)
	if !ok {
		return ecs.NilEntity, false
	}
	a := b.Base()
	a.ID = id
	a.Parent = req.Parent
	a.RefreshTargetCache(s.Target)
	b.Init(&s.frame)
	s.stats.spawned[req.Kind.String()]++
	s.log.Debug("spawned", "id", uint64(id), "kind", req.Kind.String(), "params", req.Params)
	return id, true
}

// SpawnAt is Spawn for callers outside the tick, such as config loading.
func (s *Scene) SpawnAt(kind actor.Kind, params int16, pos vmath.Vec3f, yaw int16) (ecs.EntityID, bool) {
	return s.Spawn(actor.SpawnRequest{Kind: kind, Pos: pos, Rot: vmath.Vec3s{Y: yaw}, Params: params})
}

// ─── Target input ───────────────────────────────────────────────────────────

// StrikeAt queues an attack by the target, resolved in the next collision
// pass.
func (s *Scene) StrikeAt(src component.AttackSource, pos vmath.Vec3f, radius float64) {
	s.strikes = append(s.strikes, Strike{Source: src, Pos: pos, Radius: radius})
}

// MoveTarget steps the target horizontally on the next tick. A held target
// cannot move.
func (s *Scene) MoveTarget(dx, dz float64) {
	if s.Target.Grabbed {
		return
	}
	s.Target.Velocity.X = dx
	s.Target.Velocity.Z = dz
	if dx != 0 || dz != 0 {
		s.Target.Yaw = vmath.Atan2S(dx, dz)
	}
}

// Jump launches a grounded, free target.
func (s *Scene) Jump() {
	if s.Target.Grounded && !s.Target.Grabbed {
		s.Target.Velocity.Y = targetJumpVelocity
	}
}

// Release frees a held target, as mashing out of a grab does.
func (s *Scene) Release() {
	if !s.Target.Grabbed {
		return
	}
	s.log.Debug("target released", "by", uint64(s.Target.GrabbedBy))
	s.Target.Grabbed = false
	s.Target.GrabbedBy = ecs.NilEntity
}

// PlaySong raises the free-play song event.
func (s *Scene) PlaySong() {
	s.Shared.SongPlayed = true
	s.stats.songs++
}

// ─── Tick ───────────────────────────────────────────────────────────────────

// Tick advances the scene by one fixed step.
func (s *Scene) Tick() {
	s.frame.Tick++

	// Actors spawned last tick join the update from now on.
	var live []ecs.EntityID
	s.actors.Each(func(id ecs.EntityID, e *entry) {
		e.pending = false
		live = append(live, id)
	})

	s.Target.UpdateBodyParts()
	for _, id := range live {
		e, _ := s.actors.Get(id)
		a := e.b.Base()
		a.RefreshTargetCache(s.Target)
		system.TickColorFilter(a)
	}

	s.at, s.ac, s.oc = s.at[:0], s.ac[:0], s.oc[:0]
	for _, id := range live {
		e, _ := s.actors.Get(id)
		if !e.b.Base().Killed() {
			e.b.Update(&s.frame)
		}
	}
	// A song nobody heard this tick is gone.
	s.Shared.SongPlayed = false

	s.collide()
	s.sweep()

	s.actors.Each(func(_ ecs.EntityID, e *entry) {
		if e.pending {
			return
		}
		e.snap = actor.Snapshot{Actor: *e.b.Base()}
		if p, ok := e.b.(actor.Publisher); ok {
			e.snap.Published = p.Publish()
		}
		e.snapped = true
	})

	s.tickTarget()
	s.tickEffects()
}

// sweep removes every actor that asked to be killed this tick. Actors spawned
// during the tick are left for the next one.
func (s *Scene) sweep() {
	doomed := s.actors.Query(func(e *entry) bool {
		return !e.pending && e.b.Base().Killed()
	})
	for _, id := range doomed {
		e, _ := s.actors.Get(id)
		a := e.b.Base()
		e.b.Destroy(&s.frame)
		if s.Target.Grabbed && s.Target.GrabbedBy == id {
			s.Release()
		}
		s.actors.DestroyEntity(id)
		s.stats.killed[a.Kind.String()]++
		s.log.Debug("removed", "id", uint64(id), "kind", a.Kind.String())
	}
}

func (s *Scene) tickTarget() {
	t := s.Target
	if t.InvincibilityTimer > 0 {
		t.InvincibilityTimer--
	}
	if t.Grabbed {
		t.Velocity = vmath.Vec3f{}
		return
	}
	t.Velocity.Y += targetGravity
	t.Pos = t.Pos.Add(t.Velocity)
	c := s.Arena.Check(&t.Pos, &t.Velocity, targetRadius)
	t.Grounded = c.Ground
	t.Velocity.X, t.Velocity.Z = 0, 0

	kept := s.drops[:0]
	for _, d := range s.drops {
		if vmath.DistXZ(d.Pos, t.Pos) < pickupRange && d.Item == actor.ItemRecoveryHeart {
			t.Health.Current = min(t.Health.Max, t.Health.Current+heartHealth)
			s.stats.pickups++
			continue
		}
		kept = append(kept, d)
	}
	s.drops = kept
}

func (s *Scene) tickEffects() {
	kept := s.bursts[:0]
	for _, b := range s.bursts {
		if b.TTL--; b.TTL > 0 {
			kept = append(kept, b)
		}
	}
	s.bursts = kept
}

// Draw runs every updated actor's draw pass into dl, followed by the scene
// effects.
func (s *Scene) Draw(dl *render.DrawList) {
	s.Each(func(b actor.Behavior) { b.Draw(&s.frame, dl) })
	for _, b := range s.bursts {
		dl.Add(render.Sprite{Pos: b.Pos, Glyph: "💥", Scale: 0.01, Alpha: 255 * b.TTL / burstTicks, Order: 5})
	}
	for _, d := range s.drops {
		dl.Add(render.Sprite{Pos: d.Pos, Glyph: "❤", FG: render.FilterRed, Scale: 0.01, Alpha: 255, Order: 1})
	}
}

// ─── actor.Directory ────────────────────────────────────────────────────────

// Peek implements actor.Directory. Handles of removed actors, and of actors
// not yet through their first tick, do not resolve.
func (s *Scene) Peek(id ecs.EntityID) (actor.Snapshot, bool) {
	e, ok := s.actors.Get(id)
	if !ok || !e.snapped {
		return actor.Snapshot{}, false
	}
	return e.snap, true
}

// ─── actor.Arbiter ──────────────────────────────────────────────────────────

// Grab implements actor.Arbiter.
func (s *Scene) Grab(by ecs.EntityID) bool {
	if s.Target.Grabbed {
		return false
	}
	s.Target.Grabbed = true
	s.Target.GrabbedBy = by
	s.Target.Velocity = vmath.Vec3f{}
	s.log.Debug("target grabbed", "by", uint64(by))
	return true
}

// DamageTarget implements actor.Arbiter.
func (s *Scene) DamageTarget(amount int) {
	s.stats.damageTaken += s.Target.Health.Current - max(s.Target.Health.Current-amount, 0)
	s.Target.Health.Apply(amount)
}

// ExtendInvincibility implements actor.Arbiter.
func (s *Scene) ExtendInvincibility(ticks int) { s.Target.InvincibilityTimer += ticks }

// ─── actor.EffectSpawner ────────────────────────────────────────────────────

// DeathBurst implements actor.EffectSpawner.
func (s *Scene) DeathBurst(pos vmath.Vec3f) {
	s.bursts = append(s.bursts, Burst{Pos: pos, TTL: burstTicks})
}

// DropItem implements actor.EffectSpawner.
func (s *Scene) DropItem(pos vmath.Vec3f, item actor.Item) {
	s.drops = append(s.drops, Drop{Pos: pos, Item: item})
	s.stats.drops[item.String()]++
}

// FinishingBlow implements actor.EffectSpawner.
func (s *Scene) FinishingBlow(a *actor.Actor) {
	s.stats.finishingBlows++
	s.log.Info("creature defeated", "id", uint64(a.ID), "kind", a.Kind.String(), "tick", s.frame.Tick)
}

// ─── actor.Collision ────────────────────────────────────────────────────────

// BgCheck implements actor.Collision against the arena.
func (s *Scene) BgCheck(a *actor.Actor, wallRadius, _ float64) {
	system.BgCheck(s.Arena, a, wallRadius)
}

// SetAT implements actor.Collision.
func (s *Scene) SetAT(a *actor.Actor, c *component.Collider) {
	s.at = append(s.at, registration{id: a.ID, a: a, c: c})
}

// SetAC implements actor.Collision.
func (s *Scene) SetAC(a *actor.Actor, c *component.Collider) {
	s.ac = append(s.ac, registration{id: a.ID, a: a, c: c})
}

// SetOC implements actor.Collision.
func (s *Scene) SetOC(a *actor.Actor, c *component.Collider) {
	s.oc = append(s.oc, registration{id: a.ID, a: a, c: c})
}

// LineOfSight implements actor.Collision against the arena walls.
func (s *Scene) LineOfSight(from, to vmath.Vec3f) bool {
	return system.LineOfSight(s.Arena, from, to)
}

type cueCounter map[audio.Cue]int

func (c cueCounter) Play(cue audio.Cue, _ vmath.Vec3f) { c[cue]++ }
