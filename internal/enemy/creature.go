// Package enemy implements the creature behaviours: the rat, which darts
// between its nest and the target, and Pols Voice, which hops toward the
// target and latches onto its head.
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

const (
	drownDepth       = 5.0
	wallCheckRadius  = 35.0
	ceilingHeight    = 60.0
	deathScaleFactor = 0.8
	deathMinScale    = 0.001
)

// Creature is the plumbing the creature behaviours share: animation,
// collider, damage table, drowning and the death fade.
type Creature struct {
	*actor.Actor
	Skel    anim.SkelAnime
	Col     component.Collider
	Table   *component.DamageTable
	Drowned bool
}

// Base implements actor.Behavior.
func (c *Creature) Base() *actor.Actor { return c.Actor }

// Collider implements actor.Collidable.
func (c *Creature) Collider() *component.Collider { return &c.Col }

// Destroy implements actor.Behavior.
func (c *Creature) Destroy(*actor.Frame) {}

func (c *Creature) initBody(health int, scale, radius, height float64) {
	c.Scale = scale
	c.Health = component.Health{Current: health, Max: health}
	c.Gravity = -1
	c.Flags |= component.TagHostile | component.TagTargetable
	c.Col.SetDim(radius, height, 0)
	c.Col.Side = component.SideEnemy
	c.Col.AT = component.DmgInfo{DmgFlags: 0xFFCFFFFF, Damage: 8, Effect: 8}
	c.Col.UpdateCylinder(c.World.Pos)
}

// checkDrowned reports whether the creature just sank past drownDepth. It
// plays cue and lands the finishing blow; the caller starts the death.
func (c *Creature) checkDrowned(f *actor.Frame, cue audio.Cue) bool {
	if c.Drowned || !c.InWater() || c.DepthInWater <= drownDepth {
		return false
	}
	c.DropFlag = true
	f.PlaySfx(c.Actor, cue)
	f.Effects.FinishingBlow(c.Actor)
	c.Drowned = true
	c.Gravity = -0.1
	return true
}

// takeHit consumes a pending AC hit.
func (c *Creature) takeHit() (component.Hit, bool) {
	if c.Drowned {
		return component.Hit{}, false
	}
	h, ok := c.Col.ConsumeACHit()
	if ok {
		c.DropFlag = true
	}
	return h, ok
}

// shrinkAway runs one tick of the death fade once the death animation has
// finished, and reports whether the creature was removed.
func (c *Creature) shrinkAway(f *actor.Frame) bool {
	if !c.Skel.Update() && !c.Drowned {
		return false
	}
	c.Scale *= deathScaleFactor
	if c.Scale > deathMinScale {
		return false
	}
	burst := c.World.Pos
	burst.Y += 10
	f.Effects.DeathBurst(burst)
	f.Effects.DropItem(c.World.Pos, actor.ItemRecoveryHeart)
	c.Kill()
	return true
}

func (c *Creature) faceTarget() { system.FaceTarget(c.Actor) }

// move runs the shared physics tail of an update.
func (c *Creature) move(f *actor.Frame) {
	c.Col.UpdateCylinder(c.World.Pos)
	system.MoveXZGravity(c.Actor)
	f.Collision.BgCheck(c.Actor, wallCheckRadius, ceilingHeight)
}

// draw shows the creature with its profile glyph, tinted while a colour
// filter runs.
func (c *Creature) draw(dl *render.DrawList) {
	fg := c.Renderable.FGColor
	switch c.ColorFilter.Color {
	case actor.FilterRed:
		fg = render.FilterRed
	case actor.FilterBlue:
		fg = render.FilterBlue
	}
	dl.Add(render.Sprite{Pos: c.World.Pos, Glyph: c.Renderable.Glyph, FG: fg, Scale: c.Scale, Alpha: 255, Order: c.Renderable.RenderOrder})
}

func decr(v *int) int {
	if *v > 0 {
		*v--
	}
	return *v
}

func sq(v float64) float64 { return v * v }

var (
	deg10  = vmath.DegToBinAng(10)
	deg15  = vmath.DegToBinAng(15)
	deg20  = vmath.DegToBinAng(20)
	deg35  = vmath.DegToBinAng(35)
	deg75  = vmath.DegToBinAng(75)
	deg180 = vmath.DegToBinAng(180)
)
