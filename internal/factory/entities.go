// Package factory maps actor kinds to their behaviours, the way an actor
// profile table does: one row per kind with its constructor and the glyph the
// viewer shows for it in the legend.
package factory

import (
	"fmt"

	"hmactors/internal/actor"
	"hmactors/internal/component"
	"hmactors/internal/enemy"
	"hmactors/internal/magic"
	"hmactors/internal/platform"

	"github.com/gdamore/tcell/v2"
)

// Profile describes one actor kind.
type Profile struct {
	Kind       actor.Kind
	Construct  actor.Constructor
	Renderable component.Renderable
}

var profiles = map[actor.Kind]Profile{
	actor.KindWizFire: {
		Kind:      actor.KindWizFire,
		Construct: magic.NewProjectile,
		Renderable: component.Renderable{
			Glyph: "🔥", FGColor: tcell.NewRGBColor(255, 120, 30), BGColor: tcell.ColorDefault, RenderOrder: 3,
		},
	},
	actor.KindCaster: {
		Kind:      actor.KindCaster,
		Construct: magic.NewCaster,
		Renderable: component.Renderable{
			Glyph: "🧙", FGColor: tcell.NewRGBColor(170, 80, 200), BGColor: tcell.ColorDefault, RenderOrder: 2,
		},
	},
	actor.KindRat: {
		Kind:      actor.KindRat,
		Construct: enemy.NewRat,
		Renderable: component.Renderable{
			Glyph: "🐀", FGColor: tcell.NewRGBColor(160, 110, 70), BGColor: tcell.ColorDefault, RenderOrder: 2,
		},
	},
	actor.KindPolsVoice: {
		Kind:      actor.KindPolsVoice,
		Construct: enemy.NewPolsVoice,
		Renderable: component.Renderable{
			Glyph: "🐰", FGColor: tcell.NewRGBColor(240, 235, 225), BGColor: tcell.ColorDefault, RenderOrder: 2,
		},
	},
	actor.KindJumptoggle: {
		Kind:      actor.KindJumptoggle,
		Construct: platform.NewJumpToggle,
		Renderable: component.Renderable{
			Glyph: "🔲", FGColor: tcell.NewRGBColor(200, 200, 200), BGColor: tcell.ColorDefault, RenderOrder: 0,
		},
	},
}

// Lookup returns the profile for kind.
func Lookup(kind actor.Kind) (Profile, bool) {
	p, ok := profiles[kind]
	return p, ok
}

// Kinds returns every kind with a profile, in kind order.
func Kinds() []actor.Kind {
	var out []actor.Kind
	for k := actor.KindNone + 1; k.String() != "unknown"; k++ {
		if _, ok := profiles[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// New places a fresh actor of kind at home and wraps it in its behaviour.
// The actor has no handle yet; the scene assigns one.
func New(kind actor.Kind, params int16, home actor.PosRot) (actor.Behavior, error) {
	p, ok := profiles[kind]
	if !ok {
		return nil, fmt.Errorf("factory: no profile for kind %q", kind)
	}
	a := actor.New(kind, params, home)
	a.Renderable = p.Renderable
	return p.Construct(a), nil
}
