// Package magic implements the wizrobe's spells: the fire and ice projectile
// with its pools, arcing embers and small flames, and the caster that throws
// them.
package magic

import (
	"hmactors/internal/actor"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/render"
	"hmactors/internal/system"
	"hmactors/internal/vmath"

	"github.com/gdamore/tcell/v2"
)

// ProjectileType is carried in the actor params and picks the sub-type.
type ProjectileType int16

const (
	TypeMagic ProjectileType = iota
	TypeArcing
	TypeReflected
	TypeSmallFlame
	TypeIce
)

var projectileTypeNames = [...]string{"magic", "arcing", "reflected", "small_flame", "ice"}

func (t ProjectileType) String() string {
	if t >= 0 && int(t) < len(projectileTypeNames) {
		return projectileTypeNames[t]
	}
	return "unknown"
}

type projState uint8

const (
	projSetupMove projState = iota
	projMove
	projSetupSmallFlame
	projSmallFlame
	projPool
	projKill
)

var projStateNames = [...]string{"setup_move", "move", "setup_small_flame", "small_flame", "pool", "kill"}

func (s projState) String() string { return projStateNames[s] }

const (
	fireDmgFlags  uint32 = 0xF7CFFFFF
	iceDmgFlags   uint32 = 0x1000000 | 0x800 | 0x200 | 0x2
	reflectedDmg  uint32 = 0x20
	magicSpeed           = 20.0
	poolTicks            = 100
	arcingChildren       = 3
	arcingSpread  int16  = 0x3333
	killCursor           = 6
	killDebounce         = 2
	wallCheckTicks       = 10
	rollPerTick   int16  = 5000
	trailYOffset         = 10.0
)

// Projectile is one wizrobe spell actor. A magic or ice projectile flies
// straight until it hits the floor and becomes a pool; a fire pool throws
// three arcing embers that each leave a small flame where they land.
type Projectile struct {
	*actor.Actor
	Type    ProjectileType
	Col     component.Collider
	Trail   component.Trail
	Effects component.EffectPool

	m actor.Machine[projState]

	isIce       bool
	scale       float64
	targetScale float64
	alpha       float64

	timer          int
	wallCheckTimer int
	poolTimer      int
	debounce       int

	blend      float64
	blendFrac  float64
	poolScale  float64
	smokeScale float64
	flameScale float64
	flicker    vmath.Vec3f

	spawnedSmallFlame bool
	hitByIceArrow     bool
	fadingOut         bool
}

// NewProjectile builds the spell behaviour around a. a.Params holds the
// ProjectileType.
func NewProjectile(a *actor.Actor) actor.Behavior {
	p := &Projectile{Actor: a, Type: ProjectileType(a.Params)}
	p.m = actor.NewMachine(projSetupMove, map[projState]func(*actor.Frame){
		projSetupMove:       p.setupMove,
		projMove:            p.move,
		projSetupSmallFlame: p.setupSmallFlame,
		projSmallFlame:      p.smallFlame,
		projPool:            p.pool,
		projKill:            p.kill,
	})
	return p
}

// Base implements actor.Behavior.
func (p *Projectile) Base() *actor.Actor { return p.Actor }

// Collider implements actor.Collidable.
func (p *Projectile) Collider() *component.Collider { return &p.Col }

// State names the current action.
func (p *Projectile) State() string { return p.m.State().String() }

// IsIce reports whether the spell freezes rather than burns.
func (p *Projectile) IsIce() bool { return p.isIce }

// Init implements actor.Behavior.
func (p *Projectile) Init(f *actor.Frame) {
	p.wallCheckTimer = wallCheckTicks
	p.alpha = 255
	p.Flags |= component.TagHostile | component.TagProjectile
	p.Col.Side = component.SideEnemy
	p.Col.AT = component.DmgInfo{DmgFlags: fireDmgFlags, Effect: 9, Damage: 16}
	if !f.Target.MirrorShield {
		p.Col.AT.DmgFlags = component.SourceUnblockable.Flag()
	}

	switch p.Type {
	case TypeIce:
		p.initIce()
	case TypeMagic, TypeArcing, TypeReflected:
	case TypeSmallFlame:
		p.Col.AT.Damage = 2
		p.m.Set(projSetupSmallFlame)
	default:
		f.Log.Warn("unknown projectile type", "id", p.ID, "params", p.Params)
		p.Kill()
	}
	p.m.Settle()
}

// initIce turns the spell into an ice projectile that otherwise flies like
// a magic one.
func (p *Projectile) initIce() {
	p.isIce = true
	p.Col.AT.Damage = 8
	p.Col.AT.Effect = 2
	p.Col.AT.DmgFlags = iceDmgFlags
	p.Type = TypeMagic
}

// Update implements actor.Behavior.
func (p *Projectile) Update(f *actor.Frame) {
	p.Scale = p.scale
	p.Effects.Update()
	p.blendFrac = p.blend / 60

	p.m.Update(f)
	if p.Killed() {
		return
	}

	if p.Type == TypeMagic && !p.m.Is(projPool) {
		p.Speed = magicSpeed
		system.UpdateVelocityXYZ(p.Actor)
	}
	system.UpdatePos(p.Actor)
	p.Trail.Push(p.World.Pos)
	p.Velocity.Y += p.Gravity

	decr(&p.wallCheckTimer)
	decr(&p.timer)
	decr(&p.poolTimer)
	decr(&p.debounce)

	f.Collision.BgCheck(p.Actor, 20, 5)

	switch {
	case p.Type == TypeSmallFlame:
		p.Col.SetDim(10, p.scale*5000, 0)
	case p.m.Is(projSetupMove) || p.m.Is(projMove):
		d := p.scale*15 + 25
		p.Col.SetDim(d, d, p.scale*-0.75-5)
	}

	if p.Col.ConsumeATHit() && p.Type == TypeMagic && f.Target.InvincibilityTimer > 0 {
		f.Arbiter.ExtendInvincibility(40)
		if p.isIce {
			f.Arbiter.ExtendInvincibility(50)
		}
	}

	if !p.hitByIceArrow && !f.Shared.PoolHitByIceArrow && (p.Type != TypeMagic || p.alpha > 200) {
		p.Col.UpdateCylinder(p.World.Pos)
		f.Collision.SetAC(p.Actor, &p.Col)
		if f.Target.InvincibilityTimer == 0 {
			f.Collision.SetAT(p.Actor, &p.Col)
		}
	}
}

// Destroy implements actor.Behavior.
func (p *Projectile) Destroy(*actor.Frame) {}

var (
	iceColor   = tcell.NewRGBColor(150, 220, 255)
	smokeColor = tcell.NewRGBColor(90, 90, 90)
)

// Draw implements actor.Behavior.
func (p *Projectile) Draw(_ *actor.Frame, dl *render.DrawList) {
	flame, fire := p.Renderable.Glyph, p.Renderable.FGColor
	glyph, fg := flame, fire
	if p.isIce {
		glyph, fg = "❄", iceColor
	}

	if p.Type == TypeSmallFlame {
		pos := p.World.Pos
		pos.Y = p.FloorHeight + 20
		dl.Add(render.Sprite{Pos: pos, Glyph: flame, FG: fire, Scale: p.scale + p.flicker.X, Alpha: int(p.alpha), Order: 3})
		return
	}

	switch {
	case p.m.Is(projPool):
		pos := p.World.Pos
		pos.Y = p.FloorHeight
		if p.isIce {
			dl.Add(render.Sprite{Pos: pos, Glyph: "🧊", FG: iceColor, Scale: p.poolScale, Alpha: int(p.alpha), Order: 1})
		} else {
			dl.Add(render.Sprite{Pos: pos, Glyph: "🟠", FG: fire, Scale: p.poolScale, Alpha: int(p.alpha), Order: 1})
			dl.Add(render.Sprite{Pos: pos, Glyph: flame, FG: fire, Scale: p.flameScale, Alpha: int(p.alpha), Order: 3})
			dl.Add(render.Sprite{Pos: pos, Glyph: "💨", FG: smokeColor, Scale: p.smokeScale, Alpha: int(p.alpha * p.blendFrac), Order: 4})
		}
	default:
		p.Trail.Visible(func(i int, pos vmath.Vec3f) {
			s := p.Scale + float64(i)*0.0019
			if s <= 0 {
				return
			}
			pos.Y += trailYOffset
			dl.Add(render.Sprite{Pos: pos, Glyph: glyph, FG: fg, Scale: s, Alpha: 255 - 20*i, Order: 3})
		})
	}

	for i := range p.Effects.Particles {
		e := &p.Effects.Particles[i]
		if e.Enabled {
			dl.Add(render.Sprite{Pos: e.Pos, Glyph: "·", FG: iceColor, Scale: e.Scale, Alpha: e.Alpha, Order: 4})
		}
	}
}

// liveCaster reports whether the spell's caster is still in the scene, and
// its state as of the last tick.
func (p *Projectile) liveCaster(f *actor.Frame) (actor.Snapshot, bool) {
	if p.Parent == ecs.NilEntity {
		return actor.Snapshot{}, false
	}
	s, ok := f.Actors.Peek(p.Parent)
	if !ok || s.Actor.Kind != actor.KindCaster {
		return actor.Snapshot{}, false
	}
	return s, true
}

// ─── Flight ─────────────────────────────────────────────────────────────────

func (p *Projectile) setupMove(f *actor.Frame) {
	p.Trail.Reset(p.World.Pos)

	if p.Type != TypeMagic {
		p.Velocity = system.VelocityFromAngles(p.World.Rot.Y, p.World.Rot.X, vmath.RandCentered(f.Rand, 2)+8)
		p.Velocity.Y = 10
		p.Gravity = -1
		p.targetScale = 0.01
		p.timer = 50
	} else {
		p.Velocity = system.VelocityFromAngles(p.World.Rot.Y, p.World.Rot.X, 12)
		p.targetScale = 0.02
		p.timer = 100
	}
	p.m.Set(projMove)
}

func (p *Projectile) move(f *actor.Frame) {
	p.World.Rot.Z += rollPerTick

	p.targetScale = 0.01
	if p.Type == TypeMagic {
		p.targetScale = 0.02
	}
	if p.timer == 0 && p.scale < 0.001 {
		p.setupKill()
		return
	}
	if p.timer == 0 {
		p.targetScale = 0
	}
	vmath.ApproachF(&p.scale, p.targetScale, 0.2, 0.01)

	if p.wallCheckTimer == 0 && p.TouchedWall() && p.Type == TypeMagic && p.timer != 0 {
		f.Shared.PoolHitByIceArrow = false
		p.timer = 0
		p.targetScale = 0
	}

	if p.OnGround() {
		switch p.Type {
		case TypeArcing:
			p.landEmber(f)
			return
		case TypeMagic:
			if p.FloorBgID == actor.BgScene {
				p.landPool(f)
			}
			return
		}
	}

	if p.Type == TypeReflected || p.timer == 0 {
		return
	}
	if hit, ok := p.Col.ConsumeACHit(); ok && hit.Source == component.SourceIceArrow {
		p.timer = 0
		p.hitByIceArrow = true
		f.PlaySfx(p.Actor, audio.CueIceMelt)
	}
	if f.Target.MirrorShield && p.Col.ConsumeBounce() {
		p.reflect(f)
	}
}

// landEmber drops one small flame where an arcing ember lands.
func (p *Projectile) landEmber(f *actor.Frame) {
	if !p.spawnedSmallFlame {
		pos := p.World.Pos
		pos.Y -= 10
		f.Spawner.Spawn(actor.SpawnRequest{Kind: actor.KindWizFire, Pos: pos, Params: int16(TypeSmallFlame)})
		p.spawnedSmallFlame = true
	}
	p.timer = 0
	p.scale = 0
	p.setupKill()
}

// landPool turns a magic projectile that reached static ground into a pool.
// Fire pools throw three embers fanned around the bearing.
func (p *Projectile) landPool(f *actor.Frame) {
	p.poolTimer = poolTicks
	if !p.isIce {
		var yaw int16
		for range arcingChildren {
			f.Spawner.Spawn(actor.SpawnRequest{
				Kind:   actor.KindWizFire,
				Pos:    p.World.Pos,
				Rot:    vmath.Vec3s{Y: yaw},
				Params: int16(TypeArcing),
			})
			yaw += int16(int(vmath.RandCentered(f.Rand, 0x1000)) + int(arcingSpread))
		}
		f.PlaySfx(p.Actor, audio.CueBombExplosion)
		p.poolTimer = int(vmath.RandS16Offset(f.Rand, 70, 30))
	} else if p.poolTimer != 0 {
		f.PlaySfx(p.Actor, audio.CueIceFreeze)
	}
	p.Velocity = vmath.Vec3f{}
	p.timer = 0
	p.scale = 0
	p.m.Set(projPool)
}

// reflect sends the projectile back the way it came as a player attack.
func (p *Projectile) reflect(f *actor.Frame) {
	f.PlaySfx(p.Actor, audio.CueShieldReflect)
	p.Col.ConsumeATHit()
	p.Col.Side = component.SidePlayer
	p.Col.AT.DmgFlags = reflectedDmg
	p.Col.AT.Damage = 2
	p.timer = 100
	p.Type = TypeReflected
	p.Velocity.X *= -1
	p.Velocity.Y *= -0.5
	p.Velocity.Z *= -1
	if _, ok := p.liveCaster(f); ok {
		f.Shared.ClearActiveProjectile(p.Parent)
	}
}

// ─── Pool ───────────────────────────────────────────────────────────────────

const (
	poolBlendMax   = 60.0
	poolHeightLift = 10.0
)

// pool grows the pool while poolTimer runs, then fades it out. A fire pool
// that an ice arrow lands in goes out at once.
func (p *Projectile) pool(f *actor.Frame) {
	if s, ok := p.liveCaster(f); ok && s.Actor.Health.Current == 0 {
		p.poolTimer = 0
	}
	p.Trail.Advance()

	if p.poolTimer != 0 {
		vmath.ApproachF(&p.blend, poolBlendMax, 0.5, 10)
		if p.isIce {
			p.growIcePool(f)
			return
		}
		vmath.ApproachF(&p.poolScale, 0.02, 0.3, 0.002)
		vmath.ApproachF(&p.smokeScale, 0.02, 0.3, 0.002)
		vmath.ApproachF(&p.flameScale, 0.02, 0.3, 0.2)
		p.Col.SetDim(p.poolScale*4000, max(2, p.flameScale*1850), -15)

		if hit, ok := p.Col.ConsumeACHit(); ok && !f.Shared.PoolHitByIceArrow && hit.Source == component.SourceIceArrow {
			f.Shared.PoolHitByIceArrow = true
			p.hitByIceArrow = true
			p.poolTimer = 0
			f.PlaySfx(p.Actor, audio.CueIceMelt)
		}
		p.World.Pos.Y = p.FloorHeight + poolHeightLift
		return
	}

	vmath.ApproachZeroF(&p.blend, 0.2, 3)
	if p.isIce {
		p.fadeIcePool(f)
		return
	}

	vmath.ApproachZeroF(&p.flameScale, 0.1, 0.01)
	if p.flameScale >= 0.01 {
		return
	}
	vmath.ApproachZeroF(&p.alpha, 1, 10)
	if p.alpha < 10 && p.blendFrac < 0.001 {
		f.Shared.PoolHitByIceArrow = false
		if _, ok := p.liveCaster(f); ok && p.Type == TypeMagic {
			f.Shared.ClearActiveProjectile(p.Parent)
		}
		p.Kill()
	}
}

func (p *Projectile) growIcePool(f *actor.Frame) {
	pos := p.World.Pos
	pos.X += vmath.RandCentered(f.Rand, 150)
	pos.Z += vmath.RandCentered(f.Rand, 150)
	accel := vmath.Vec3f{
		X: vmath.RandCentered(f.Rand, 3) / 10,
		Y: 0.23,
		Z: vmath.RandCentered(f.Rand, 3) / 10,
	}
	p.Effects.Spawn(pos, accel, f.Rand)

	vmath.ApproachF(&p.poolScale, 0.022, 0.3, 0.01)
	p.Col.SetDim(p.poolScale*4300, 30, 15)
	f.PlaySfx(p.Actor, audio.CueIceFreeze)
}

func (p *Projectile) fadeIcePool(f *actor.Frame) {
	vmath.ApproachZeroF(&p.poolScale, 0.046, 0.001)
	f.PlaySfx(p.Actor, audio.CueIceFreeze)

	if !p.fadingOut && p.Parent != ecs.NilEntity && p.poolScale < 0.05 {
		p.Col.Dim.YShift = -15
		p.fadingOut = true
		f.Shared.ClearActiveProjectile(p.Parent)
	}
	if p.fadingOut && p.poolScale < 0.05 {
		vmath.ApproachZeroF(&p.alpha, 1, 5)
	}
	if p.poolScale < 0.001 && p.blendFrac < 0.001 {
		f.Shared.PoolHitByIceArrow = false
		p.Kill()
	}
}

// ─── Kill ───────────────────────────────────────────────────────────────────

func (p *Projectile) setupKill() {
	p.Velocity = vmath.Vec3f{}
	p.debounce = 0
	p.m.Set(projKill)
}

// kill lets the trail drain two ticks per entry before removal.
func (p *Projectile) kill(f *actor.Frame) {
	if p.debounce != 0 {
		return
	}
	p.debounce = killDebounce
	p.Trail.Advance()
	if p.Trail.LowestUsed < killCursor {
		return
	}
	if p.Type == TypeMagic && p.Parent != ecs.NilEntity {
		f.Shared.PoolHitByIceArrow = false
		if _, ok := p.liveCaster(f); ok {
			f.Shared.ClearActiveProjectile(p.Parent)
		}
	}
	p.Kill()
}

// ─── Small flame ────────────────────────────────────────────────────────────

func (p *Projectile) setupSmallFlame(f *actor.Frame) {
	p.targetScale = 0.02
	p.timer = int(vmath.RandS16Offset(f.Rand, 50, 50))
	p.flicker = vmath.Vec3f{
		X: vmath.RandCentered(f.Rand, 1) * 0.007,
		Y: vmath.RandCentered(f.Rand, 1) * 0.005,
		Z: vmath.RandCentered(f.Rand, 1) * 0.007,
	}
	p.m.Set(projSmallFlame)
}

func (p *Projectile) smallFlame(f *actor.Frame) {
	if p.timer <= 10 {
		vmath.ApproachF(&p.scale, 2*p.targetScale, 0.2, 0.002)
		vmath.ApproachZeroF(&p.alpha, 1, 35)
		if p.timer == 0 && p.alpha < 2 {
			p.Kill()
		}
		return
	}
	vmath.ApproachF(&p.scale, p.targetScale, 0.3, 0.01)

	if hit, ok := p.Col.ConsumeACHit(); ok {
		if p.timer > 10 {
			p.timer -= 10
		}
		if hit.Source == component.SourceIceArrow {
			p.timer = 0
			p.hitByIceArrow = true
			f.PlaySfx(p.Actor, audio.CueIceMelt)
		}
	}
	if p.timer != 0 {
		f.PlaySfx(p.Actor, audio.CueBurnOut)
	}
}

func decr(v *int) int {
	if *v > 0 {
		*v--
	}
	return *v
}
