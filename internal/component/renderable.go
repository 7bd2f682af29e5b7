package component

import "github.com/gdamore/tcell/v2"

// Renderable is how the terminal viewer shows a sprite.
type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}
