package render

import "github.com/gdamore/tcell/v2"

// ArenaTiles holds the glyphs used to draw the arena's terrain.
// Emoji are rendered by the terminal with their own colors, so terrain is
// told apart by glyph rather than by tinting.
type ArenaTiles struct {
	Wall     string
	Floor    string
	Water    string
	Platform string
}

// Themes maps a theme name to its tile set.
var Themes = map[string]ArenaTiles{
	"temple": {
		Wall:     "🧱",
		Floor:    "🟫",
		Water:    "🟦",
		Platform: "🔲",
	},
	"ice": {
		Wall:     "🧊",
		Floor:    "⬜",
		Water:    "🌊",
		Platform: "🔳",
	},
}

// DefaultTheme is used when a theme name is unknown.
const DefaultTheme = "temple"

// Platform border tints.
var (
	BorderRed  = tcell.NewRGBColor(255, 68, 69)
	BorderBlue = tcell.NewRGBColor(85, 92, 255)
)

// Filter tints for damaged and stunned actors.
var (
	FilterRed  = tcell.NewRGBColor(220, 40, 40)
	FilterBlue = tcell.NewRGBColor(60, 120, 255)
)
