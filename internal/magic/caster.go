package magic

import (
	"math"

	"hmactors/internal/actor"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/render"
	"hmactors/internal/system"
	"hmactors/internal/vmath"
)

type casterState uint8

const (
	casterWait casterState = iota
	casterAim
	casterDie
)

var casterStateNames = [...]string{"wait", "aim", "die"}

func (s casterState) String() string { return casterStateNames[s] }

const (
	casterHealth     = 3
	casterSightRange = 600.0
	casterAimTicks   = 20
	casterCooldown   = 60
	casterDeathTicks = 20
	casterHandHeight = 40.0
)

var casterTurn = vmath.DegToBinAng(15)

// CasterDamageTable lets every weapon chip the caster for one point. Shields,
// nuts and reflected light do nothing.
var CasterDamageTable = func() component.DamageTable {
	var t component.DamageTable
	for src := range component.NumAttackSources {
		t[src] = component.DamageEntry{Damage: 1, Effect: component.EffectDefault}
	}
	for _, src := range []component.AttackSource{
		component.SourceDekuNut, component.SourceShield, component.SourceMirrorRay,
		component.SourceUnknown1, component.SourceUnknown2,
	} {
		t[src] = component.DamageEntry{}
	}
	return t
}()

// Caster params.
const (
	CasterFire int16 = iota
	CasterIce
)

// Caster stands still and throws one projectile at a time at a target in
// sight.
type Caster struct {
	*actor.Actor
	Col     component.Collider
	Element ProjectileType

	m        actor.Machine[casterState]
	cooldown int
	aimTimer int
	dieTimer int
}

// NewCaster builds the caster behaviour around a.
func NewCaster(a *actor.Actor) actor.Behavior {
	c := &Caster{Actor: a, Element: TypeMagic}
	if a.Params == CasterIce {
		c.Element = TypeIce
	}
	c.m = actor.NewMachine(casterWait, map[casterState]func(*actor.Frame){
		casterWait: c.wait,
		casterAim:  c.aim,
		casterDie:  c.die,
	})
	return c
}

// Base implements actor.Behavior.
func (c *Caster) Base() *actor.Actor { return c.Actor }

// Collider implements actor.Collidable.
func (c *Caster) Collider() *component.Collider { return &c.Col }

// State names the current action.
func (c *Caster) State() string { return c.m.State().String() }

// Init implements actor.Behavior.
func (c *Caster) Init(*actor.Frame) {
	c.Health = component.Health{Current: casterHealth, Max: casterHealth}
	c.Gravity = -1
	c.Flags |= component.TagHostile | component.TagTargetable
	c.Col.SetDim(30, 90, 0)
	c.Col.Side = component.SideEnemy
	c.cooldown = casterCooldown / 2
	c.m.Settle()
}

// Update implements actor.Behavior.
func (c *Caster) Update(f *actor.Frame) {
	c.m.Interrupt(func() { c.checkDamage(f) })
	c.m.Update(f)
	if c.Killed() {
		return
	}
	system.MoveXZGravity(c.Actor)
	f.Collision.BgCheck(c.Actor, 30, 90)
	c.Col.UpdateCylinder(c.World.Pos)
	f.Collision.SetOC(c.Actor, &c.Col)
	if !c.m.Is(casterDie) {
		f.Collision.SetAC(c.Actor, &c.Col)
	}
}

// Draw implements actor.Behavior.
func (c *Caster) Draw(_ *actor.Frame, dl *render.DrawList) {
	fg := c.Renderable.FGColor
	if c.ColorFilter.Color == actor.FilterRed {
		fg = render.FilterRed
	}
	dl.Add(render.Sprite{Pos: c.World.Pos, Glyph: c.Renderable.Glyph, FG: fg, Scale: c.Scale, Alpha: 255, Order: c.Renderable.RenderOrder})
}

// Destroy implements actor.Behavior.
func (c *Caster) Destroy(f *actor.Frame) {
	f.Shared.ClearActiveProjectile(c.ID)
}

func (c *Caster) checkDamage(f *actor.Frame) {
	hit, ok := c.Col.ConsumeACHit()
	if !ok || c.m.Is(casterDie) {
		return
	}
	if system.ResolveHit(c.Actor, &CasterDamageTable, hit) == system.ReactDeath {
		f.Effects.FinishingBlow(c.Actor)
		c.Flags &^= component.TagTargetable
		c.dieTimer = casterDeathTicks
		c.m.Set(casterDie)
	}
}

func (c *Caster) wait(f *actor.Frame) {
	if decr(&c.cooldown) != 0 {
		return
	}
	if c.XZDistToTarget >= casterSightRange || f.Shared.HasActiveProjectile(c.ID) {
		return
	}
	if f.Collision.LineOfSight(c.World.Pos, f.Target.Pos) {
		c.aimTimer = casterAimTicks
		c.m.Set(casterAim)
	}
}

func (c *Caster) aim(f *actor.Frame) {
	system.RotateTowardPoint(c.Actor, f.Target.Pos, casterTurn)
	c.Shape.Rot.Y = c.World.Rot.Y
	if decr(&c.aimTimer) != 0 {
		return
	}
	c.cast(f)
	c.cooldown = casterCooldown
	c.m.Set(casterWait)
}

// cast throws a projectile from the caster's hand at the target's feet.
func (c *Caster) cast(f *actor.Frame) {
	hand := c.World.Pos
	hand.Y += casterHandHeight
	pitch := vmath.RadToBinAng(-math.Atan2(hand.Y-f.Target.Pos.Y, vmath.DistXZ(hand, f.Target.Pos)))

	_, ok := f.Spawner.Spawn(actor.SpawnRequest{
		Kind:   actor.KindWizFire,
		Pos:    hand,
		Rot:    vmath.Vec3s{X: pitch, Y: vmath.YawTowardPoint(hand, f.Target.Pos)},
		Params: int16(c.Element),
		Parent: c.ID,
	})
	if !ok {
		f.Log.Debug("cast refused", "caster", c.ID, "element", c.Element)
		return
	}
	f.Shared.SetActiveProjectile(c.ID, true)
	f.PlaySfx(c.Actor, audio.CueCasterShoot)
}

func (c *Caster) die(f *actor.Frame) {
	c.Scale *= 0.8
	if decr(&c.dieTimer) != 0 {
		return
	}
	burst := c.World.Pos
	burst.Y += 10
	f.Effects.DeathBurst(burst)
	f.Effects.DropItem(c.World.Pos, actor.ItemRecoveryHeart)
	c.Kill()
}
