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

type polsState uint8

const (
	polsIdle polsState = iota
	polsHop
	polsStartGrab
	polsGrab
	polsGnaw
	polsEndGnaw
	polsDamaged
	polsStunned
	polsDie
)

var polsStateNames = [...]string{"idle", "hop", "start_grab", "grab", "gnaw", "end_gnaw", "damaged", "stunned", "die"}

func (s polsState) String() string { return polsStateNames[s] }

var (
	polsIdleClip    = anim.Clip{Name: "idle", Frames: 20}
	polsHopClip     = anim.Clip{Name: "hop", Frames: 16}
	polsGrabClip    = anim.Clip{Name: "grab", Frames: 26}
	polsDamagedClip = anim.Clip{Name: "damaged", Frames: 10}
	polsDieClip     = anim.Clip{Name: "die", Frames: 16}
)

const (
	polsHealth        = 10
	polsAggroRange    = 450.0
	polsGrabRange     = 250.0
	polsLatchRange    = 45.0
	polsReleaseRange  = 30.0
	polsSongRange     = 450.0
	polsHopBoost      = 5.0
	polsLeapSpeed     = 10.0
	polsGnawDamage    = 8
	polsGnawPeriod    = 20
	polsAggroTicks    = 200
	polsInvincibility = 40
	polsHeadOffset    = 8.0
)


// PolsVoice hops after a nearby target, leaps at its collar and, once
// latched on, gnaws its head until shaken off. A song played close by kills
// it outright.
type PolsVoice struct {
	Creature
	m          actor.Machine[polsState]
	aggroTimer int
	gnawTimer  int
	invincible int
	gnawing    bool
}

// NewPolsVoice builds the Pols Voice behaviour around a.
func NewPolsVoice(a *actor.Actor) actor.Behavior {
	p := &PolsVoice{Creature: Creature{Actor: a, Table: &PolsVoiceDamageTable}}
	p.m = actor.NewMachine(polsIdle, map[polsState]func(*actor.Frame){
		polsIdle:      p.idle,
		polsHop:       p.hop,
		polsStartGrab: p.startGrab,
		polsGrab:      p.grab,
		polsGnaw:      p.gnaw,
		polsEndGnaw:   p.endGnaw,
		polsDamaged:   p.damaged,
		polsStunned:   p.stunned,
		polsDie:       p.die,
	})
	return p
}

// Init implements actor.Behavior.
func (p *PolsVoice) Init(*actor.Frame) {
	p.initBody(polsHealth, 0.015, 40, 75)
	p.Skel.PlayLoop(polsIdleClip)
	p.m.Settle()
}

// Update implements actor.Behavior.
func (p *PolsVoice) Update(f *actor.Frame) {
	decr(&p.invincible)
	p.m.Interrupt(func() {
		if p.checkSong(f) {
			p.Col.ConsumeACHit()
			return
		}
		p.checkDamage(f)
	})
	p.m.Update(f)
	if p.Killed() {
		return
	}
	p.move(f)
	if !p.gnawing {
		f.Collision.SetOC(p.Actor, &p.Col)
	}
	if p.invincible == 0 && !p.m.Is(polsDamaged) && !p.m.Is(polsDie) {
		f.Collision.SetAC(p.Actor, &p.Col)
	}
}

// Draw implements actor.Behavior.
func (p *PolsVoice) Draw(_ *actor.Frame, dl *render.DrawList) {
	p.draw(dl)
}

// State names the current action for logs and the viewer.
func (p *PolsVoice) State() string { return p.m.State().String() }

// Gnawing reports whether the creature is latched on or just letting go.
func (p *PolsVoice) Gnawing() bool { return p.gnawing }

func (p *PolsVoice) holding(t *actor.Target) bool {
	return t.Grabbed && t.GrabbedBy == p.ID
}

// checkSong kills the creature when a song was played within earshot. A song
// out of range is used up without effect.
func (p *PolsVoice) checkSong(f *actor.Frame) bool {
	if !f.Shared.SongPlayed {
		return false
	}
	if p.XZDistToTarget > polsSongRange {
		f.Shared.ConsumeSong()
		return false
	}
	if p.m.Is(polsDie) {
		return false
	}
	f.PlaySfx(p.Actor, audio.CuePolsDeath)
	f.Effects.FinishingBlow(p.Actor)
	p.setupDie()
	return true
}

func (p *PolsVoice) checkDamage(f *actor.Frame) {
	if !p.m.Is(polsDie) && p.checkDrowned(f, audio.CuePolsDeath) {
		p.setupDie()
		return
	}
	hit, ok := p.takeHit()
	if !ok {
		return
	}
	if p.invincible == 0 {
		p.invincible = polsInvincibility
	}
	if p.m.Is(polsDie) || p.m.Is(polsDamaged) || p.gnawing {
		return
	}
	switch system.ResolveHit(p.Actor, p.Table, hit) {
	case system.ReactStun:
		f.PlaySfx(p.Actor, audio.CueStunFreeze)
		p.setupStunned()
	case system.ReactDeath:
		f.PlaySfx(p.Actor, audio.CuePolsDeath)
		f.Effects.FinishingBlow(p.Actor)
		p.setupDie()
	case system.ReactDamaged:
		f.PlaySfx(p.Actor, audio.CuePolsDamage)
		p.setupDamaged()
	}
}

// ─── Setup ──────────────────────────────────────────────────────────────────

func (p *PolsVoice) setupIdle() {
	p.Speed = 0
	p.Velocity.Y = 0
	p.Skel.MorphToLoop(polsIdleClip, -6)
	p.m.Set(polsIdle)
}

func (p *PolsVoice) setupHop() {
	p.Skel.MorphToLoop(polsHopClip, 4)
	p.m.Set(polsHop)
}

func (p *PolsVoice) setupStartGrab() {
	p.Speed = 0
	p.Velocity.Y = 0
	p.Skel.MorphToPlayOnce(polsGrabClip, -3)
	p.m.Set(polsStartGrab)
}

func (p *PolsVoice) setupGrab(f *actor.Frame) {
	p.Speed = polsLeapSpeed
	p.Velocity.Y = polsLeapSpeed
	p.faceTarget()
	f.PlaySfx(p.Actor, audio.CuePolsJump)
	p.m.Set(polsGrab)
}

func (p *PolsVoice) setupGnaw() {
	p.Speed = 0
	p.Velocity.Y = 0
	p.Gravity = 0
	p.Shape.Rot.X = vmath.DegToBinAng(-25)
	p.Flags &^= component.TagTargetable
	p.Skel.Change(polsGrabClip, 1, 0, 12, anim.Once, 0)
	p.m.Set(polsGnaw)
}

func (p *PolsVoice) setupEndGnaw(f *actor.Frame) {
	p.gnawTimer = 0
	p.Speed = 8
	p.Velocity.Y = 4
	p.Gravity = -1
	p.Shape.Rot.X = 0
	p.Flags |= component.TagTargetable
	p.Skel.MorphToPlayOnce(polsHopClip, -4)
	f.PlaySfx(p.Actor, audio.CuePolsJump)
	p.m.Set(polsEndGnaw)
}

func (p *PolsVoice) setupDamaged() {
	p.Speed = -4
	p.faceTarget()
	p.Skel.MorphToPlayOnce(polsDamagedClip, -3)
	p.m.Set(polsDamaged)
}

func (p *PolsVoice) setupStunned() {
	p.Speed = 0
	p.Skel.Change(polsDamagedClip, 0, 2, 0, anim.Once, 0)
	p.m.Set(polsStunned)
}

func (p *PolsVoice) setupDie() {
	p.Speed = 0
	p.Flags &^= component.TagTargetable
	p.faceTarget()
	p.Skel.MorphToPlayOnce(polsDieClip, -3)
	p.m.Set(polsDie)
}

// ─── Actions ────────────────────────────────────────────────────────────────

func (p *PolsVoice) idle(f *actor.Frame) {
	p.Skel.Update()
	if p.XYZDistToTargetSq < sq(polsAggroRange) && p.OnGround() && !f.Target.Grabbed {
		p.setupHop()
	}
}

func (p *PolsVoice) hop(f *actor.Frame) {
	readyToGrab := system.IsFacingAndNearTarget(p.Actor, polsGrabRange, deg35) &&
		p.OnGround() && !f.Target.Grabbed

	p.Skel.Update()
	vmath.SmoothStepToF(&p.Speed, 0, 0.1, 1, 0)
	decr(&p.aggroTimer)

	switch {
	case p.Skel.IsFrame(3):
		f.PlaySfx(p.Actor, audio.CuePolsJump)
		p.Speed += polsHopBoost
	case p.Skel.IsFrame(0):
		if (p.aggroTimer == 0 && p.XYZDistToTargetSq > sq(polsAggroRange)) || !p.OnGround() || f.Target.Grabbed {
			p.setupIdle()
			return
		}
		if readyToGrab {
			p.aggroTimer = 0
			p.setupStartGrab()
		}
	}
	system.RotateTowardPoint(p.Actor, f.Target.Pos, deg10)
}

func (p *PolsVoice) startGrab(f *actor.Frame) {
	p.Skel.Update()
	if p.Skel.IsFrame(12) {
		p.setupGrab(f)
	}
}

func (p *PolsVoice) grab(f *actor.Frame) {
	p.Skel.Update()
	if (p.Skel.CurFrame >= 20 && p.OnGround()) || f.Target.Grabbed {
		p.setupIdle()
		return
	}
	if vmath.DistXYZ(p.World.Pos, f.Target.Collar()) < polsLatchRange && f.Arbiter.Grab(p.ID) {
		p.gnawing = true
		p.setupGnaw()
	}
}

func (p *PolsVoice) gnaw(f *actor.Frame) {
	head := f.Target.Head()
	head.Y -= polsHeadOffset
	p.World.Pos = head

	if p.Skel.Update() {
		p.Skel.Change(polsGrabClip, 1, 0, 12, anim.Once, 0)
	}
	if !p.holding(f.Target) {
		p.setupEndGnaw(f)
		return
	}
	if decr(&p.gnawTimer) == 0 {
		cue := audio.CueTargetHurt
		if !f.Target.Adult {
			cue = audio.CueTargetHurtKid
		}
		if f.Sound != nil {
			f.Sound.Play(cue, f.Target.Pos)
		}
		f.Arbiter.DamageTarget(polsGnawDamage)
		p.gnawTimer = polsGnawPeriod
	}
	if p.gnawTimer == polsGnawPeriod/2 {
		f.PlaySfx(p.Actor, audio.CuePolsBite)
	}
}

func (p *PolsVoice) endGnaw(*actor.Frame) {
	p.Skel.Update()
	vmath.SmoothStepToF(&p.Speed, 0, 0.1, 1, 0)
	if p.OnGround() {
		p.gnawing = false
		p.setupHop()
		return
	}
	if p.XZDistToTarget > polsReleaseRange {
		p.gnawing = false
	}
}

func (p *PolsVoice) damaged(*actor.Frame) {
	vmath.SmoothStepToF(&p.Speed, 0, 3, 0.5, 0)
	if p.Skel.Update() {
		p.aggroTimer = polsAggroTicks
		p.setupHop()
	}
}

func (p *PolsVoice) stunned(*actor.Frame) {
	p.Skel.Update()
	if p.ColorFilter.Timer != 0 {
		return
	}
	if p.Health.Current == 0 {
		p.setupDie()
	} else {
		p.setupHop()
	}
}

func (p *PolsVoice) die(f *actor.Frame) {
	if p.shrinkAway(f) {
		f.Shared.ConsumeSong()
	}
}
