package core

import "image/color"

type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

type Role int

const (
	RolePaddle1 Role = iota
	RolePaddle2
	RoleBall
)

func (r Role) String() string {
	switch r {
	case RolePaddle1:
		return "Paddle1"
	case RolePaddle2:
		return "Paddle2"
	case RoleBall:
		return "Ball"
	}
	return "Unknown"
}

// Entity is shared by both paddles and the ball. Its role never changes once created.
type Entity struct {
	role       Role
	Position   Vector2
	Velocity   Vector2
	Dimensions Vector2
	Color      color.RGBA
}

func NewEntity(role Role, position, dimensions Vector2, c color.RGBA) Entity {
	return Entity{role: role, Position: position, Dimensions: dimensions, Color: c}
}

func (e *Entity) Role() Role {
	return e.role
}

func (e *Entity) Left() float64 {
	return e.Position.X
}

func (e *Entity) Right() float64 {
	return e.Position.X + e.Dimensions.X
}

func (e *Entity) Top() float64 {
	return e.Position.Y
}

func (e *Entity) Bottom() float64 {
	return e.Position.Y + e.Dimensions.Y
}

func (e *Entity) CenterY() float64 {
	return e.Position.Y + e.Dimensions.Y/2
}

// OverlapsVertically reports whether the vertical spans of e and o intersect (edges inclusive).
// A ball whose top is above a paddle but whose body reaches it counts as a hit, unlike a
// test on the ball's top edge alone.
func (e *Entity) OverlapsVertically(o *Entity) bool {
	return e.Bottom() >= o.Top() && e.Top() <= o.Bottom()
}

func (e *Entity) MoveUp(step float64) {
	e.Position.Y -= step
}

func (e *Entity) MoveDown(step float64) {
	e.Position.Y += step
}
