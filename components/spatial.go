// Package components defines the game's ECS components and the player model.
package components

import "math"

// Position represents an entity's position in screen coordinates.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in units per second.
type Velocity struct {
	X, Y float32
}

// Len returns the velocity magnitude.
func (v Velocity) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Direction is a per-frame movement request. Each axis is -1, 0 or 1.
type Direction struct {
	X, Y float32
}

// IsZero reports whether the direction requests no movement.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Normalized returns d scaled to unit length. The zero direction is returned unchanged.
func (d Direction) Normalized() Direction {
	if d.IsZero() {
		return d
	}
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	return Direction{X: d.X / l, Y: d.Y / l}
}
