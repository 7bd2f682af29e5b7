package platform

import (
	"testing"

	"hmactors/internal/actor"
	"hmactors/internal/actor/actortest"
	"hmactors/internal/audio"
	"hmactors/internal/audio/mock_audio"
	"hmactors/internal/gamemap"
	"hmactors/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func placeToggle(t interface{ Helper() }, h *actortest.Harness, v Variant, cx, cz int, roll int16) *JumpToggle {
	t.Helper()
	home := actor.PosRot{Pos: gamemap.CellCenter(cx, cz), Rot: vmath.Vec3s{Z: roll}}
	j := NewJumpToggle(actor.New(actor.KindJumptoggle, int16(v), home)).(*JumpToggle)
	h.Place(j)
	return j
}

func TestJumpFlipsPlatformOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock_audio.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Play(audio.CueBombBound, gomock.Any()).Times(1),
		sink.EXPECT().Play(audio.CueBlockBound, gomock.Any()).Times(1),
	)

	h := actortest.New(1)
	h.Frame.Sound = sink
	p := placeToggle(t, h, VariantStartRed, 10, 9, 0)
	h.Step(p)
	require.Equal(t, int16(0), p.TargetRot())

	h.Target.Grounded = false
	h.Step(p)
	assert.Equal(t, vmath.HalfTurn, p.TargetRot(), "flips by exactly a half turn")

	n, ok := h.StepUntil(p, 40, func() bool { return p.CurrentRot() == p.TargetRot() })
	require.True(t, ok)
	// ceil(0x7FFF / 0x800) ticks, counting the flip tick.
	assert.Equal(t, 16, n+1)
	assert.Equal(t, vmath.HalfTurn, p.World.Rot.Z)
	assert.Equal(t, vmath.HalfTurn, p.Shape.Rot.Z)

	h.StepN(p, 20)
}

func TestLandingDoesNotToggle(t *testing.T) {
	h := actortest.New(1)
	h.Target.Grounded = false
	p := placeToggle(t, h, VariantStartRed, 10, 9, 0)

	h.StepN(p, 3)
	h.Target.Grounded = true
	h.StepN(p, 3)
	assert.Equal(t, int16(0), p.TargetRot())
	assert.Empty(t, h.Sound.Events)
}

func TestSecondJumpReturnsHome(t *testing.T) {
	h := actortest.New(1)
	home := int16(0x1000)
	p := placeToggle(t, h, VariantStartBlue, 10, 9, home)
	assert.Equal(t, home+vmath.HalfTurn, p.TargetRot())
	assert.Equal(t, p.TargetRot(), p.CurrentRot())
	assert.False(t, p.AtHome())

	h.Step(p)
	h.Target.Grounded = false
	h.Step(p)
	assert.Equal(t, home, p.TargetRot())

	h.Target.Grounded = true
	h.Step(p)
	h.Target.Grounded = false
	h.Step(p)
	assert.Equal(t, home+vmath.HalfTurn, p.TargetRot())
	assert.Equal(t, 2, h.Sound.Count(audio.CueBombBound))
	assert.Zero(t, h.Sound.Count(audio.CueBlockBound), "never arrived")
}

func TestFarTargetIsSilent(t *testing.T) {
	h := actortest.New(1)
	h.Target.Pos = vmath.Vec3f{X: 740, Y: 500, Z: 740}
	p := placeToggle(t, h, VariantStartRed, 1, 1, 0)

	h.Step(p)
	h.Target.Grounded = false
	h.StepN(p, 20)
	assert.Equal(t, vmath.HalfTurn, p.CurrentRot())
	assert.Empty(t, h.Sound.Events)
}

func TestPlatformSpawnsBorder(t *testing.T) {
	h := actortest.New(1)
	p := placeToggle(t, h, VariantStartRed, 10, 9, 0)

	borders := h.SpawnsOf(actor.KindJumptoggle)
	require.Len(t, borders, 1)
	assert.Equal(t, int16(VariantBorder), borders[0].Params)
	assert.Equal(t, p.ID, borders[0].Parent)
	assert.Equal(t, p.Home.Pos, borders[0].Pos)
	assert.NotEqual(t, p.ID, p.Child)
}

func TestBorderMirrorsParentTarget(t *testing.T) {
	h := actortest.New(1)
	p := placeToggle(t, h, VariantStartRed, 10, 9, 0)

	a := actor.New(actor.KindJumptoggle, int16(VariantBorder), p.Home)
	a.Parent = p.ID
	b := NewJumpToggle(a).(*JumpToggle)
	h.Place(b)
	assert.True(t, b.AtHome())
	assert.Empty(t, h.SpawnsOf(actor.KindJumptoggle)[1:], "borders spawn nothing")

	h.Step(p)
	h.Target.Grounded = false
	h.Step(p)
	h.Step(b)
	assert.Equal(t, vmath.HalfTurn, b.CurrentRot(), "no easing on the border")
	assert.False(t, b.AtHome())
	assert.NotEqual(t, p.TargetRot(), p.CurrentRot())

	// Once the parent is gone the border keeps its last colour.
	h.Remove(p.ID)
	h.Step(b)
	assert.False(t, b.AtHome())
}

// The target roll only ever takes the two endpoint values, each falling edge
// of ground contact plays exactly one bounce cue, and the platform comes to
// rest within 16 ticks of the last flip.
func TestToggleEndpoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := actortest.New(1)
		home := int16(rapid.IntRange(-0x8000, 0x7FFF).Draw(t, "home"))
		p := placeToggle(t, h, Variant(rapid.IntRange(0, 1).Draw(t, "variant")), 10, 9, home)

		edges := 0
		prev := false
		for _, g := range rapid.SliceOfN(rapid.Bool(), 1, 100).Draw(t, "grounded") {
			h.Target.Grounded = g
			if prev && !g {
				edges++
			}
			prev = g
			h.Step(p)
			if r := p.TargetRot(); r != home && r != home+vmath.HalfTurn {
				t.Fatalf("target roll %#x is not an endpoint of %#x", r, home)
			}
		}
		if got := h.Sound.Count(audio.CueBombBound); got != edges {
			t.Fatalf("%d bounce cues for %d falling edges", got, edges)
		}
		h.Target.Grounded = prev
		h.StepN(p, 16)
		if p.CurrentRot() != p.TargetRot() {
			t.Fatalf("still turning: %#x -> %#x", p.CurrentRot(), p.TargetRot())
		}
	})
}
