// Package actor holds the per-actor data, the action-function state machine
// and the narrow interfaces behaviours use to reach the rest of the scene.
package actor

import (
	"hmactors/internal/component"
	"hmactors/internal/ecs"
	"hmactors/internal/vmath"
)

// PosRot is a position and binary-angle rotation.
type PosRot struct {
	Pos vmath.Vec3f
	Rot vmath.Vec3s
}

// Shape is the drawn orientation, which may lag the movement rotation.
type Shape struct {
	Rot vmath.Vec3s
}

// BgCheckFlags report what the last background check touched.
type BgCheckFlags uint8

const (
	BgGround BgCheckFlags = 1 << iota
	BgGroundTouch
	BgGroundLeave
	BgWall
	BgWater
)

// BgID identifies the collision mesh under an actor. Values below BgScene are
// dynamic meshes carried by actors.
type BgID uint8

const BgScene BgID = 50

// FilterColor is the tint of a colour filter.
type FilterColor uint8

const (
	FilterNone FilterColor = iota
	FilterRed
	FilterBlue
)

// ColorFilter tints an actor for Timer ticks.
type ColorFilter struct {
	Color     FilterColor
	Intensity uint8
	Timer     int
}

// DefaultMinVelocityY is the terminal falling speed new actors start with.
const DefaultMinVelocityY = -20.0

// Actor is the engine-facing state shared by every behaviour.
type Actor struct {
	ID     ecs.EntityID
	Kind   Kind
	Params int16
	Flags  component.Tags

	Home  PosRot
	World PosRot
	Shape Shape
	Scale float64

	Velocity     vmath.Vec3f
	Speed        float64
	Gravity      float64
	MinVelocityY float64

	Health      component.Health
	ColorFilter ColorFilter
	DropFlag    bool

	Parent ecs.EntityID
	Child  ecs.EntityID

	BgCheckFlags BgCheckFlags
	FloorHeight  float64
	FloorBgID    BgID
	DepthInWater float64

	XZDistToTarget    float64
	XYZDistToTargetSq float64
	YawTowardsTarget  int16

	Renderable component.Renderable

	killed bool
}

// New returns an actor placed at home with default physics.
func New(kind Kind, params int16, home PosRot) *Actor {
	return &Actor{
		Kind:         kind,
		Params:       params,
		Home:         home,
		World:        home,
		Shape:        Shape{Rot: home.Rot},
		Scale:        0.01,
		MinVelocityY: DefaultMinVelocityY,
	}
}

// Kill asks the scene to remove the actor after this tick.
func (a *Actor) Kill() { a.killed = true }

// Killed reports whether removal has been requested.
func (a *Actor) Killed() bool { return a.killed }

// OnGround reports ground contact from the last background check.
func (a *Actor) OnGround() bool { return a.BgCheckFlags&BgGround != 0 }

// InWater reports water contact from the last background check.
func (a *Actor) InWater() bool { return a.BgCheckFlags&BgWater != 0 }

// TouchedWall reports wall contact from the last background check.
func (a *Actor) TouchedWall() bool { return a.BgCheckFlags&BgWall != 0 }
