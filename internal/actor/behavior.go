package actor

import (
	"hmactors/internal/component"
	"hmactors/internal/render"
)

// Behavior is one actor type's lifecycle.
type Behavior interface {
	// Base returns the engine-facing state the behaviour drives.
	Base() *Actor
	Init(f *Frame)
	Update(f *Frame)
	// Draw appends sprites and must not change simulation state.
	Draw(f *Frame, dl *render.DrawList)
	Destroy(f *Frame)
}

// Publisher is implemented by behaviours that expose extra state to other
// actors through snapshots.
type Publisher interface {
	Publish() any
}

// Collidable is implemented by behaviours whose collider the scene's
// collision pass inspects.
type Collidable interface {
	Collider() *component.Collider
}

// Constructor builds a behaviour around a freshly placed actor.
type Constructor func(a *Actor) Behavior
