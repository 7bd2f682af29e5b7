package game

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"hmactors/internal/actor"
	"hmactors/internal/config"
	"hmactors/internal/magic"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	g, err := NewWithScreen(s, config.Default(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return g, s
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveW},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"vi right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionMoveE},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionJump},
		{"sword", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionSword},
		{"ice arrow", tcell.NewEventKey(tcell.KeyRune, 'I', tcell.ModNone), ActionIceArrow},
		{"song", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionSong},
		{"spawn platform", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), ActionSpawnPlatform},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keyToAction(tc.ev))
		})
	}
}

func TestActionToDelta(t *testing.T) {
	dx, dz := actionToDelta(ActionMoveN)
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dz})
	dx, dz = actionToDelta(ActionJump)
	assert.Equal(t, [2]int{0, 0}, [2]int{dx, dz})
}

func TestMoveTarget(t *testing.T) {
	g, _ := newTestGame(t)
	g.step()
	start := g.Scene().Target.Pos

	require.True(t, g.processAction(ActionMoveE))
	g.step()
	assert.InDelta(t, start.X+moveStep, g.Scene().Target.Pos.X, 1e-9)
	assert.Equal(t, int16(0x4000), g.Scene().Target.Yaw, "faces east")
}

func TestSpawnKeysPlaceActors(t *testing.T) {
	g, _ := newTestGame(t)
	for _, a := range []Action{ActionSpawnCaster, ActionSpawnIceCaster, ActionSpawnRat, ActionSpawnPolsVoice} {
		require.True(t, g.processAction(a))
	}
	assert.Equal(t, 4, g.Scene().Len())

	require.True(t, g.processAction(ActionSpawnPlatform))
	assert.Equal(t, 6, g.Scene().Len(), "platform brings its border")
	assert.Contains(t, g.messages[len(g.messages)-1], "jumptoggle")
}

func TestSwordStrikesActorInFront(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.Scene()
	id, ok := s.SpawnAt(actor.KindCaster, magic.CasterFire, g.ahead(swordReach, 0), 0)
	require.True(t, ok)
	b, _ := s.Behavior(id)
	c := b.(*magic.Caster)

	g.step()
	g.processAction(ActionSword)
	g.step()
	g.step()
	assert.Equal(t, 2, c.Health.Current)
}

func TestPauseAndSingleStep(t *testing.T) {
	g, _ := newTestGame(t)
	g.processAction(ActionPause)
	require.True(t, g.paused)

	before := g.Scene().Ticks()
	g.processAction(ActionStep)
	assert.Equal(t, before+1, g.Scene().Ticks())

	g.processAction(ActionPause)
	g.processAction(ActionStep)
	assert.Equal(t, before+1, g.Scene().Ticks(), "step only while paused")
}

func TestShieldAndSong(t *testing.T) {
	g, _ := newTestGame(t)
	g.processAction(ActionShield)
	assert.True(t, g.Scene().Target.MirrorShield)
	g.processAction(ActionShield)
	assert.False(t, g.Scene().Target.MirrorShield)

	g.processAction(ActionSong)
	assert.True(t, g.Scene().Shared.SongPlayed)
}

func TestQuitAction(t *testing.T) {
	g, _ := newTestGame(t)
	assert.False(t, g.processAction(ActionQuit))
}

func TestMessagesAreCapped(t *testing.T) {
	g, _ := newTestGame(t)
	for range maxMessages * 2 {
		g.processAction(ActionSong)
	}
	assert.Len(t, g.messages, maxMessages)
}

func TestRunStopsOnQuitKey(t *testing.T) {
	g, s := newTestGame(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		g.Run(ctx)
		close(done)
	}()
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("Run did not return after q")
	}
	assert.Nil(t, ctx.Err())
}

func TestLegendComesFromProfiles(t *testing.T) {
	g, s := newTestGame(t)
	require.Len(t, g.legend, 5)
	assert.Equal(t, "wiz_fire", g.legend[0].Name)
	assert.Equal(t, "🐀", g.legend[2].Glyph)

	g.draw()
	_, h := s.Size()
	mainc, _, _, _ := s.GetContent(2, h-5)
	assert.Equal(t, '🔥', mainc)
}
