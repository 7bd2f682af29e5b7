package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows about the running scene.
type Status struct {
	Tick       uint64
	Health     int
	MaxHealth  int
	Actors     int
	Grabbed    bool
	Invincible int
	Shield     bool
	Paused     bool
	Legend     []LegendEntry
}

// LegendEntry is one actor kind shown along the HUD separator.
type LegendEntry struct {
	Name  string
	Glyph string
	FG    tcell.Color
}

// StatusLine formats the first HUD row.
func (s Status) StatusLine() string {
	line := fmt.Sprintf("HP: %d/%d  Actors: %d  Tick: %d", s.Health, s.MaxHealth, s.Actors, s.Tick)
	if s.Shield {
		line += "  [SHIELD]"
	}
	if s.Grabbed {
		line += "  [GRABBED]"
	}
	if s.Invincible > 0 {
		line += fmt.Sprintf("  inv:%d", s.Invincible)
	}
	if s.Paused {
		line += "  PAUSED"
	}
	return line
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawLegend(hudY, s.Legend)
	r.drawText(0, hudY+1, s.StatusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawLegend(y int, legend []LegendEntry) {
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := 1
	for _, e := range legend {
		x = r.drawText(x, y, " ", gray)
		x = r.drawText(x, y, e.Glyph, tcell.StyleDefault.Foreground(e.FG))
		x = r.drawText(x, y, " "+e.Name+" ", gray)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
