// Package platform implements the jump-toggle platform, which flips half a
// turn every time the target leaves the ground, and its coloured border.
package platform

import (
	"hmactors/internal/actor"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/render"
	"hmactors/internal/vmath"
)

// Variant is carried in the actor params.
type Variant int16

const (
	VariantStartRed Variant = iota
	VariantStartBlue
	VariantBorder
)

type toggleState uint8

const (
	toggleRotate toggleState = iota
	toggleBorder
)

const (
	// toggleStep is the per-tick turn; a half turn takes 16 ticks.
	toggleStep   int16 = 0x800
	earshotRange       = 1000.0
)

// Rotation is what a platform publishes for its border.
type Rotation struct {
	Target  int16
	Current int16
}

// JumpToggle is either the platform itself or, with VariantBorder, the
// decorative border the platform spawns as its child.
type JumpToggle struct {
	*actor.Actor
	Variant Variant

	m            actor.Machine[toggleState]
	currentRot   int16
	targetRot    int16
	prevGrounded bool
}

// NewJumpToggle builds the platform or border behaviour around a.
func NewJumpToggle(a *actor.Actor) actor.Behavior {
	j := &JumpToggle{Actor: a, Variant: Variant(a.Params)}
	j.m = actor.NewMachine(toggleRotate, map[toggleState]func(*actor.Frame){
		toggleRotate: j.rotateToTarget,
		toggleBorder: j.border,
	})
	return j
}

// Base implements actor.Behavior.
func (j *JumpToggle) Base() *actor.Actor { return j.Actor }

// CurrentRot is the roll the platform is drawn at.
func (j *JumpToggle) CurrentRot() int16 { return j.currentRot }

// TargetRot is the roll the platform is heading for.
func (j *JumpToggle) TargetRot() int16 { return j.targetRot }

// AtHome reports whether the platform, or the border's view of it, is at
// the home roll. The border is red at home and blue otherwise.
func (j *JumpToggle) AtHome() bool { return j.currentRot == j.Home.Rot.Z }

// Publish implements actor.Publisher.
func (j *JumpToggle) Publish() any {
	return Rotation{Target: j.targetRot, Current: j.currentRot}
}

// Init implements actor.Behavior.
func (j *JumpToggle) Init(f *actor.Frame) {
	j.Scale = 0.1
	// The target is assumed airborne at first so arriving mid-fall does not
	// toggle.
	j.prevGrounded = false

	if j.Variant == VariantBorder {
		j.Flags |= component.TagDecoration
		j.currentRot = j.Home.Rot.Z
		j.m.Set(toggleBorder)
		j.m.Settle()
		return
	}

	child, ok := f.Spawner.Spawn(actor.SpawnRequest{
		Kind:   actor.KindJumptoggle,
		Pos:    j.Home.Pos,
		Rot:    j.Home.Rot,
		Params: int16(VariantBorder),
		Parent: j.ID,
	})
	if ok {
		j.Child = child
	} else {
		f.Log.Warn("platform border not spawned", "id", j.ID)
	}

	j.targetRot = j.Home.Rot.Z
	if j.Variant == VariantStartBlue {
		j.targetRot += vmath.HalfTurn
	}
	j.currentRot = j.targetRot
	j.World.Rot.Z = j.currentRot
	j.Shape.Rot.Z = j.currentRot
	j.m.Settle()
}

// Update implements actor.Behavior.
func (j *JumpToggle) Update(f *actor.Frame) {
	j.m.Update(f)
}

// Draw implements actor.Behavior.
func (j *JumpToggle) Draw(_ *actor.Frame, dl *render.DrawList) {
	if j.Variant == VariantBorder {
		fg := render.BorderBlue
		if j.AtHome() {
			fg = render.BorderRed
		}
		dl.Add(render.Sprite{Pos: j.World.Pos, Glyph: "▢", FG: fg, Scale: j.Scale, Alpha: 255, Order: 1})
		return
	}
	glyph := j.Renderable.Glyph
	if vmath.AbsS(j.currentRot-j.Home.Rot.Z) > 0x4000 {
		glyph = "🔳"
	}
	dl.Add(render.Sprite{Pos: j.World.Pos, Glyph: glyph, FG: j.Renderable.FGColor, Scale: j.Scale, Alpha: 255, Order: j.Renderable.RenderOrder})
}

// Destroy implements actor.Behavior.
func (j *JumpToggle) Destroy(*actor.Frame) {}

func (j *JumpToggle) inEarshot() bool {
	return j.XYZDistToTargetSq < earshotRange*earshotRange
}

func (j *JumpToggle) rotateToTarget(f *actor.Frame) {
	j.checkForJump(f)

	settled := j.currentRot == j.targetRot
	vmath.ApproachS(&j.currentRot, j.targetRot, 1, toggleStep)
	if !settled && j.currentRot == j.targetRot && j.inEarshot() {
		f.PlaySfx(j.Actor, audio.CueBlockBound)
	}

	j.World.Rot.Z = j.currentRot
	j.Shape.Rot.Z = j.currentRot
}

// checkForJump flips the target roll on the tick the target leaves the
// ground.
func (j *JumpToggle) checkForJump(f *actor.Frame) {
	grounded := f.Target.Grounded
	if j.prevGrounded && !grounded {
		if j.targetRot == j.Home.Rot.Z {
			j.targetRot += vmath.HalfTurn
		} else {
			j.targetRot = j.Home.Rot.Z
		}
		if j.inEarshot() {
			f.PlaySfx(j.Actor, audio.CueBombBound)
		}
	}
	j.prevGrounded = grounded
}

// border copies the parent's target roll as of the last tick.
func (j *JumpToggle) border(f *actor.Frame) {
	s, ok := f.Actors.Peek(j.Parent)
	if !ok {
		return
	}
	if r, ok := s.Published.(Rotation); ok {
		j.currentRot = r.Target
	}
}
