package render

import (
	"testing"

	"hmactors/internal/gamemap"
	"hmactors/internal/vmath"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(10, 10, 40, 20, 40)
	cases := []struct {
		name    string
		pos     vmath.Vec3f
		sx, sy  int
		visible bool
	}{
		{"center cell", vmath.Vec3f{X: 410, Z: 410}, 20, 10, true},
		{"origin", vmath.Vec3f{}, 0, 0, true},
		{"left of view", vmath.Vec3f{X: -40}, -2, 0, false},
		{"below view", vmath.Vec3f{Z: 20 * 40}, 0, 20, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy, vis := c.WorldToScreen(tc.pos)
			assert.Equal(t, tc.sx, sx)
			assert.Equal(t, tc.sy, sy)
			assert.Equal(t, tc.visible, vis)
		})
	}
	cx, cz := c.ScreenToCell(20, 10)
	assert.Equal(t, 10, cx)
	assert.Equal(t, 10, cz)
}

func TestDrawListSortedIsStable(t *testing.T) {
	var dl DrawList
	dl.Add(Sprite{Glyph: "b", Order: 2})
	dl.Add(Sprite{Glyph: "a1", Order: 1})
	dl.Add(Sprite{Glyph: "a2", Order: 1})

	got := dl.Sorted()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a1", "a2", "b"}, []string{got[0].Glyph, got[1].Glyph, got[2].Glyph})
	assert.Equal(t, "b", dl.Sprites[0].Glyph, "Sorted must not reorder the list")
	dl.Reset()
	assert.Zero(t, dl.Len())
}

func TestDrawFrameSkipsTransparentSprites(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 30)

	r := NewRenderer(s, "no-such-theme")
	m := gamemap.NewArena(10, 10)
	var dl DrawList
	dl.Add(Sprite{Pos: gamemap.CellCenter(3, 3), Glyph: "R", Alpha: 255})
	dl.Add(Sprite{Pos: gamemap.CellCenter(4, 3), Glyph: "X", Alpha: 0})
	r.DrawFrame(m, &dl)

	// Camera starts centred on cell (0,0): offset (-20,-12).
	mainc, _, _, _ := s.GetContent(46, 15)
	assert.Equal(t, 'R', mainc)
	mainc, _, _, _ = s.GetContent(48, 15)
	assert.NotEqual(t, 'X', mainc)
}

func TestStatusLine(t *testing.T) {
	s := Status{Tick: 7, Health: 12, MaxHealth: 16, Actors: 3, Grabbed: true, Invincible: 40}
	assert.Equal(t, "HP: 12/16  Actors: 3  Tick: 7  [GRABBED]  inv:40", s.StatusLine())
}

func TestDrawHUDShowsLegend(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 30)

	r := NewRenderer(s, DefaultTheme)
	r.DrawHUD(Status{Legend: []LegendEntry{
		{Name: "rat", Glyph: "R", FG: tcell.ColorWhite},
		{Name: "caster", Glyph: "C", FG: tcell.ColorWhite},
	}}, nil)

	y := 30 - hudRows
	var row []rune
	for x := range 19 {
		mainc, _, _, _ := s.GetContent(x, y)
		row = append(row, mainc)
	}
	assert.Equal(t, "─ R rat  C caster ─", string(row))
}
