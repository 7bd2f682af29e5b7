package enemy

import (
	"hmactors/internal/actor"
	"hmactors/internal/anim"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/render"
	"hmactors/internal/system"
	"hmactors/internal/vmath"
)

type ratState uint8

const (
	ratIdle ratState = iota
	ratNotice
	ratStartRun
	ratRun
	ratEndRun
	ratAttack
	ratDamaged
	ratStunned
	ratDie
)

var ratStateNames = [...]string{"idle", "notice", "start_run", "run", "end_run", "attack", "damaged", "stunned", "die"}

func (s ratState) String() string { return ratStateNames[s] }

var (
	ratIdleClip     = anim.Clip{Name: "idle", Frames: 20}
	ratNoticeClip   = anim.Clip{Name: "notice", Frames: 12}
	ratStartRunClip = anim.Clip{Name: "start_run", Frames: 6}
	ratRunClip      = anim.Clip{Name: "run", Frames: 10}
	ratEndRunClip   = anim.Clip{Name: "end_run", Frames: 8}
	ratAttackClip   = anim.Clip{Name: "attack", Frames: 12}
	ratDamagedClip  = anim.Clip{Name: "damaged", Frames: 10}
	ratDeathClip    = anim.Clip{Name: "death", Frames: 16}
)

const (
	ratHealth        = 4
	ratNoticeRange   = 300.0
	ratHomeRange     = 450.0
	ratNestRadius    = 100.0
	ratFleeDistance  = 200.0
	ratArrivedRadius = 100.0
	ratRunSpeed      = 4.0
	ratLungeSpeed    = 8.0
	ratLungeHop      = 2.0
	ratAttackFlee    = 40
	ratDamagedFlee   = 120
)


// Rat guards the ground around its home. It notices a target that comes
// close, lunges at it, then flees and circles back; it never strays far from
// home and drowns in deep water.
type Rat struct {
	Creature
	m         actor.Machine[ratState]
	targetPos vmath.Vec3f
	fleePos   vmath.Vec3f
	fleeTimer int
}

// NewRat builds the rat behaviour around a.
func NewRat(a *actor.Actor) actor.Behavior {
	r := &Rat{Creature: Creature{Actor: a, Table: &RatDamageTable}}
	r.m = actor.NewMachine(ratIdle, map[ratState]func(*actor.Frame){
		ratIdle:     r.idle,
		ratNotice:   r.notice,
		ratStartRun: r.startRun,
		ratRun:      r.run,
		ratEndRun:   r.endRun,
		ratAttack:   r.attack,
		ratDamaged:  r.damaged,
		ratStunned:  r.stunned,
		ratDie:      r.die,
	})
	return r
}

// Init implements actor.Behavior.
func (r *Rat) Init(*actor.Frame) {
	r.initBody(ratHealth, 0.01, 20, 30)
	r.targetPos = r.Home.Pos
	r.Skel.PlayLoop(ratIdleClip)
	r.m.Settle()
}

// Update implements actor.Behavior.
func (r *Rat) Update(f *actor.Frame) {
	r.m.Interrupt(func() { r.checkDamage(f) })
	r.m.Update(f)
	if r.Killed() {
		return
	}
	r.move(f)
	f.Collision.SetOC(r.Actor, &r.Col)
	if !r.m.Is(ratDamaged) && !r.m.Is(ratDie) {
		f.Collision.SetAC(r.Actor, &r.Col)
	}
	if r.m.Is(ratAttack) {
		f.Collision.SetAT(r.Actor, &r.Col)
	}
}

// Draw implements actor.Behavior.
func (r *Rat) Draw(_ *actor.Frame, dl *render.DrawList) {
	r.draw(dl)
}

// State names the current action for logs and the viewer.
func (r *Rat) State() string { return r.m.State().String() }

func (r *Rat) checkDamage(f *actor.Frame) {
	if !r.m.Is(ratDie) && r.checkDrowned(f, audio.CueRatDeath) {
		r.setupDie()
		return
	}
	hit, ok := r.takeHit()
	if !ok || r.m.Is(ratDie) || r.m.Is(ratDamaged) {
		return
	}
	switch system.ResolveHit(r.Actor, r.Table, hit) {
	case system.ReactStun:
		f.PlaySfx(r.Actor, audio.CueStunFreeze)
		r.setupStunned()
	case system.ReactDeath:
		f.PlaySfx(r.Actor, audio.CueRatDeath)
		f.Effects.FinishingBlow(r.Actor)
		r.setupDie()
	case system.ReactDamaged:
		f.PlaySfx(r.Actor, audio.CueRatDamage)
		r.setupDamaged()
	}
}

// ─── Setup ──────────────────────────────────────────────────────────────────

func (r *Rat) setupIdle() {
	r.Speed = 0
	r.Velocity.Y = 0
	r.Skel.MorphToLoop(ratIdleClip, -3)
	r.m.Set(ratIdle)
}

func (r *Rat) setupNotice() {
	r.Speed = 0
	r.Skel.MorphToPlayOnce(ratNoticeClip, -3)
	r.m.Set(ratNotice)
}

func (r *Rat) setupStartRun() {
	r.Skel.MorphToPlayOnce(ratStartRunClip, -3)
	r.m.Set(ratStartRun)
}

func (r *Rat) setupRun(f *actor.Frame) {
	if r.fleeTimer != 0 {
		angle := r.YawTowardsTarget + deg180 + vmath.RandS16Offset(f.Rand, vmath.DegToBinAng(-45), vmath.DegToBinAng(90))
		r.fleePos.X = vmath.Coss(angle)*ratFleeDistance + r.Home.Pos.X
		r.fleePos.Y = r.Home.Pos.Y
		r.fleePos.Z = vmath.Sins(angle)*ratFleeDistance + r.Home.Pos.Z
	}
	r.Skel.MorphToLoop(ratRunClip, -4)
	r.m.Set(ratRun)
}

func (r *Rat) setupEndRun() {
	r.Speed = 0
	r.Skel.MorphToPlayOnce(ratEndRunClip, -4)
	r.m.Set(ratEndRun)
}

func (r *Rat) setupAttack(f *actor.Frame) {
	r.Speed = ratLungeSpeed
	r.Velocity.Y = ratLungeHop
	r.faceTarget()
	r.Skel.MorphToPlayOnce(ratAttackClip, -3)
	f.PlaySfx(r.Actor, audio.CueRatCry)
	r.m.Set(ratAttack)
}

func (r *Rat) setupDamaged() {
	r.Speed = -4
	r.faceTarget()
	r.Skel.MorphToPlayOnce(ratDamagedClip, -3)
	r.m.Set(ratDamaged)
}

func (r *Rat) setupStunned() {
	r.Speed = 0
	r.Skel.Change(ratDamagedClip, 0, 3, 0, anim.Once, 0)
	r.m.Set(ratStunned)
}

func (r *Rat) setupDie() {
	r.Speed = 0
	r.Flags &^= component.TagTargetable
	r.faceTarget()
	r.Skel.MorphToPlayOnce(ratDeathClip, -3)
	r.m.Set(ratDie)
}

// ─── Actions ────────────────────────────────────────────────────────────────

func (r *Rat) idle(*actor.Frame) {
	r.Skel.Update()
	if r.XZDistToTarget < ratNoticeRange {
		r.setupNotice()
	}
}

func (r *Rat) notice(f *actor.Frame) {
	done := r.Skel.Update()
	system.RotateTowardPoint(r.Actor, f.Target.Pos, deg15)
	if !done || !system.IsFacingTarget(r.Actor, deg20) {
		return
	}
	if r.XZDistToTarget < ratArrivedRadius {
		r.setupAttack(f)
	} else {
		r.setupStartRun()
	}
}

func (r *Rat) startRun(f *actor.Frame) {
	vmath.SmoothStepToF(&r.Speed, ratRunSpeed, 0.1, 1, 0)
	if r.Skel.Update() {
		r.setupRun(f)
	}
}

func (r *Rat) run(f *actor.Frame) {
	home := r.Home.Pos
	pos := r.World.Pos
	targetAway := vmath.DistXYZ(f.Target.Pos, home) > ratHomeRange
	ratAway := vmath.DistXYZ(pos, home) > ratHomeRange
	atHome := vmath.DistXYZ(pos, home) <= ratNestRadius
	targetUnnoticed := r.XZDistToTarget > ratNoticeRange
	ready := system.IsFacingAndNearTarget(r.Actor, 100, deg35) ||
		system.IsFacingAndNearTarget(r.Actor, 50, deg75)

	r.Skel.Update()
	vmath.SmoothStepToF(&r.Speed, ratRunSpeed, 0.1, 1, 0)
	system.RotateTowardPoint(r.Actor, r.targetPos, deg10)

	if atHome && targetUnnoticed {
		r.setupEndRun()
		return
	}
	if targetAway || ratAway {
		r.targetPos = home
		return
	}
	if decr(&r.fleeTimer) == 0 || vmath.DistXZ(pos, r.fleePos) < ratArrivedRadius {
		r.fleeTimer = 0
		r.targetPos = f.Target.Pos
	} else {
		r.targetPos = r.fleePos
	}
	if ready && r.fleeTimer == 0 {
		r.setupAttack(f)
	}
}

func (r *Rat) endRun(*actor.Frame) {
	if r.Skel.Update() {
		r.setupIdle()
	}
}

func (r *Rat) attack(f *actor.Frame) {
	vmath.SmoothStepToF(&r.Speed, 0, 0.1, 1, 0)
	if r.Skel.Update() {
		r.fleeTimer = ratAttackFlee
		r.setupRun(f)
	}
}

func (r *Rat) damaged(f *actor.Frame) {
	vmath.SmoothStepToF(&r.Speed, 0, 3, 0.5, 0)
	if r.Skel.Update() {
		r.fleeTimer = ratDamagedFlee
		r.setupRun(f)
	}
}

func (r *Rat) stunned(f *actor.Frame) {
	r.Skel.Update()
	if r.ColorFilter.Timer != 0 {
		return
	}
	if r.Health.Current == 0 {
		r.setupDie()
	} else {
		r.setupRun(f)
	}
}

func (r *Rat) die(f *actor.Frame) {
	r.shrinkAway(f)
}
