package render

import (
	"hmactors/internal/gamemap"
	"hmactors/internal/vmath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the height reserved at the bottom of the screen for the HUD.
const hudRows = 5

// Renderer draws the arena and sprites onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  ArenaTiles
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme string) *Renderer {
	w, h := screen.Size()
	t, ok := Themes[theme]
	if !ok {
		t = Themes[DefaultTheme]
	}
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows, gamemap.TileSize),
		theme:  t,
	}
}

// Resize refits the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
}

// CenterOn recenters the camera on a world position.
func (r *Renderer) CenterOn(p vmath.Vec3f) { r.camera.CenterOnPos(p) }

// DrawFrame renders terrain and then the sprites in draw order.
func (r *Renderer) DrawFrame(m *gamemap.GameMap, dl *DrawList) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawSprites(dl)
}

func (r *Renderer) drawMap(m *gamemap.GameMap) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for z := 0; z < m.Depth; z++ {
		for x := 0; x < m.Width; x++ {
			sx, sy, onScreen := r.camera.CellToScreen(x, z)
			if !onScreen {
				continue
			}
			var glyph string
			switch m.At(x, z).Kind {
			case gamemap.TileWall:
				glyph = r.theme.Wall
			case gamemap.TileWater:
				glyph = r.theme.Water
			case gamemap.TilePlatform:
				glyph = r.theme.Platform
			default:
				glyph = r.theme.Floor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

func (r *Renderer) drawSprites(dl *DrawList) {
	for _, s := range dl.Sorted() {
		if s.Alpha <= 0 {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(s.Pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(s.FG).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, s.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
