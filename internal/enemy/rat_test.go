package enemy

import (
	"testing"

	"hmactors/internal/actor"
	"hmactors/internal/actor/actortest"
	"hmactors/internal/audio"
	"hmactors/internal/component"
	"hmactors/internal/gamemap"
	"hmactors/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeRat(t *testing.T, h *actortest.Harness, cx, cz int) *Rat {
	t.Helper()
	r := NewRat(actor.New(actor.KindRat, 0, actor.PosRot{Pos: gamemap.CellCenter(cx, cz)})).(*Rat)
	h.Place(r)
	return r
}

func TestRatIdlesWhileTargetIsFar(t *testing.T) {
	h := actortest.New(1)
	r := placeRat(t, h, 2, 2)

	h.StepN(r, 30)
	assert.Equal(t, "idle", r.State())
	assert.True(t, r.OnGround())
	assert.Contains(t, h.AC, r.ID)
	assert.Contains(t, h.OC, r.ID)
	assert.NotContains(t, h.AT, r.ID)
}

func TestRatNoticesAndLunges(t *testing.T) {
	h := actortest.New(1)
	r := placeRat(t, h, 10, 8)

	h.Step(r)
	assert.Equal(t, "notice", r.State())

	_, ok := h.StepUntil(r, 30, func() bool { return r.State() == "attack" })
	require.True(t, ok)
	assert.Equal(t, 1, h.Sound.Count(audio.CueRatCry))
	assert.Contains(t, h.AT, r.ID, "the lunge carries an attack collider")

	_, ok = h.StepUntil(r, 30, func() bool { return r.State() == "run" })
	require.True(t, ok)
	assert.Equal(t, ratAttackFlee, r.fleeTimer)
	assert.NotContains(t, h.AT, r.ID)
}

func TestRatTwoHitsToDie(t *testing.T) {
	h := actortest.New(7)
	r := placeRat(t, h, 2, 2)
	h.Step(r)

	h.Strike(r, component.SourceDekuStick)
	h.Step(r)
	assert.Equal(t, "damaged", r.State())
	assert.Equal(t, 2, r.Health.Current)
	assert.Equal(t, actor.FilterRed, r.ColorFilter.Color)
	assert.Equal(t, 1, h.Sound.Count(audio.CueRatDamage))
	assert.NotContains(t, h.AC, r.ID, "no hurtbox while reeling")

	n, ok := h.StepUntil(r, 20, func() bool { return r.State() == "run" })
	require.True(t, ok)
	assert.Equal(t, 10, n)
	assert.Equal(t, ratDamagedFlee, r.fleeTimer)

	h.Strike(r, component.SourceDekuStick)
	h.Step(r)
	assert.Equal(t, "die", r.State())
	assert.Equal(t, 0, r.Health.Current)
	assert.Equal(t, 1, h.FinishingBlows)
	assert.Equal(t, 1, h.Sound.Count(audio.CueRatDeath))
	assert.False(t, r.Flags.Has(component.TagTargetable))

	n, ok = h.StepUntil(r, 60, r.Killed)
	require.True(t, ok)
	// 15 ticks of death animation, then 11 ticks of shrinking.
	assert.Equal(t, 26, n)
	require.Len(t, h.Drops, 1)
	assert.Equal(t, actor.ItemRecoveryHeart, h.Drops[0].Item)
	require.Len(t, h.Bursts, 1)
	assert.InDelta(t, r.World.Pos.Y+10, h.Bursts[0].Y, 1e-9)
	assert.True(t, r.DropFlag)
}

func TestRatIgnoresHitsWhileReeling(t *testing.T) {
	h := actortest.New(3)
	r := placeRat(t, h, 2, 2)
	h.Step(r)

	h.Strike(r, component.SourceDekuStick)
	h.Step(r)
	h.Strike(r, component.SourceDekuStick)
	h.Step(r)

	assert.Equal(t, "damaged", r.State())
	assert.Equal(t, 2, r.Health.Current)
}

func TestRatStunWearsOff(t *testing.T) {
	h := actortest.New(1)
	r := placeRat(t, h, 2, 2)
	h.Step(r)

	h.Strike(r, component.SourceDekuNut)
	h.Step(r)
	assert.Equal(t, "stunned", r.State())
	assert.Equal(t, actor.FilterBlue, r.ColorFilter.Color)
	assert.Equal(t, ratHealth, r.Health.Current)
	assert.Equal(t, 1, h.Sound.Count(audio.CueStunFreeze))

	n, ok := h.StepUntil(r, 100, func() bool { return r.State() != "stunned" })
	require.True(t, ok)
	assert.Equal(t, 80, n)
	assert.Equal(t, "run", r.State())
	assert.Equal(t, actor.FilterNone, r.ColorFilter.Color)
}

func TestRatShieldHitDoesNothing(t *testing.T) {
	h := actortest.New(1)
	r := placeRat(t, h, 2, 2)
	h.Step(r)

	h.Strike(r, component.SourceShield)
	h.Step(r)
	assert.Equal(t, "idle", r.State())
	assert.Equal(t, ratHealth, r.Health.Current)
	assert.True(t, r.DropFlag)
}

func TestRatDrowns(t *testing.T) {
	h := actortest.New(1)
	for z := 1; z <= 4; z++ {
		for x := 1; x <= 4; x++ {
			h.Arena.Set(x, z, gamemap.MakeWater(40))
		}
	}
	r := placeRat(t, h, 2, 2)

	_, ok := h.StepUntil(r, 20, func() bool { return r.State() == "die" })
	require.True(t, ok)
	assert.True(t, r.Drowned)
	assert.Equal(t, -0.1, r.Gravity)
	assert.Equal(t, 1, h.FinishingBlows)
	assert.Equal(t, 1, h.Sound.Count(audio.CueRatDeath))

	// Drowned creatures shrink straight away.
	n, ok := h.StepUntil(r, 20, r.Killed)
	require.True(t, ok)
	assert.Equal(t, 11, n)
	assert.Len(t, h.Drops, 1)
	assert.Equal(t, 1, h.FinishingBlows)
}

// midRand always returns the middle of the range.
type midRand struct{}

func (midRand) Float64() float64 { return 0.5 }

// TestRatFleesAwayFromTarget checks the flee point is placed opposite the
// target's bearing from the nest, whatever way the rat happens to face.
func TestRatFleesAwayFromTarget(t *testing.T) {
	h := actortest.New(1)
	f := *h.Frame
	f.Rand = midRand{}

	flee := func(facing, bearing int16) vmath.Vec3f {
		r := placeRat(t, h, 2, 2)
		r.World.Rot.Y = facing
		r.YawTowardsTarget = bearing
		r.fleeTimer = ratDamagedFlee
		r.setupRun(&f)
		return r.fleePos.Sub(r.Home.Pos)
	}

	// Target bearing 0x4000: the point lies at bearing + 180°, which is -0x4000.
	east := flee(0, 0x4000)
	assert.InDelta(t, 0, east.X, 1e-6)
	assert.InDelta(t, -ratFleeDistance, east.Z, 1e-6)

	turned := flee(0x4000, 0x4000)
	assert.InDelta(t, east.X, turned.X, 1e-6, "facing does not move the flee point")
	assert.InDelta(t, east.Z, turned.Z, 1e-6)

	north := flee(0x4000, 0)
	assert.InDelta(t, -ratFleeDistance, north.X, 1e-6)
	assert.InDelta(t, 0, north.Z, 1e-6)
}
