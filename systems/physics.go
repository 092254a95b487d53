// Package systems contains the per-frame movement, steering and collision
// rules for objects.
package systems

import (
	"github.com/pthm-cable/absorb/components"
)

// Bounds represents the play field. Objects are kept inside it; the player is not.
type Bounds struct {
	Width, Height float32
}

// Integrate advances pos by vel over dt seconds.
func Integrate(pos *components.Position, vel components.Velocity, dt float32) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// BounceEdges keeps a circle of the given radius inside b. Each axis is
// handled independently: a circle crossing an edge is clamped to touch it and
// its velocity component on that axis is forced to point back inward,
// whatever its previous sign. Reports whether any edge was hit.
func BounceEdges(pos *components.Position, vel *components.Velocity, radius float32, b Bounds) bool {
	hit := false

	if pos.X-radius < 0 {
		pos.X = radius
		vel.X = absf(vel.X)
		hit = true
	} else if pos.X+radius > b.Width {
		pos.X = b.Width - radius
		vel.X = -absf(vel.X)
		hit = true
	}

	if pos.Y-radius < 0 {
		pos.Y = radius
		vel.Y = absf(vel.Y)
		hit = true
	} else if pos.Y+radius > b.Height {
		pos.Y = b.Height - radius
		vel.Y = -absf(vel.Y)
		hit = true
	}

	return hit
}

// MoveObject runs one frame of object motion: steer, integrate, bounce.
func MoveObject(pos *components.Position, vel *components.Velocity, body components.Body, wander components.Wander, player *components.Player, p SteeringParams, b Bounds, dt float32) {
	*vel = Steer(*pos, *vel, body, wander, player, p)
	Integrate(pos, *vel, dt)
	BounceEdges(pos, vel, body.Radius, b)
}
