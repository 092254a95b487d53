package systems

import (
	"github.com/pthm-cable/absorb/components"
	"github.com/pthm-cable/absorb/config"
)

// Mode is the steering behaviour an object uses for one frame.
type Mode uint8

const (
	ModeEscape Mode = iota // object is not larger than the player
	ModeChase              // object is strictly larger than the player
)

func (m Mode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "escape"
}

// ModeFor selects chase or escape from the current radii. It is recomputed
// every frame and never stored on the object.
func ModeFor(objectRadius, playerRadius float32) Mode {
	if objectRadius > playerRadius {
		return ModeChase
	}
	return ModeEscape
}

// SteeringParams holds the steering constants.
type SteeringParams struct {
	Threshold   float32 // react to the player when closer than this
	ChaseSpeed  float32
	EscapeSpeed float32
	Cruise      bool // rescale instead of compounding outside the threshold
}

// SteeringParamsFromConfig builds steering parameters from cfg.
func SteeringParamsFromConfig(cfg *config.Config) SteeringParams {
	return SteeringParams{
		Threshold:   float32(cfg.Steering.Threshold),
		ChaseSpeed:  float32(cfg.Steering.ChaseSpeed),
		EscapeSpeed: float32(cfg.Steering.EscapeSpeed),
		Cruise:      cfg.Steering.WanderMode == config.WanderCruise,
	}
}

// Steer returns the object's velocity for this frame.
//
// Within the threshold the velocity snaps to the unit vector toward (chase)
// or away from (escape) the player, scaled by the mode's fixed speed. When the
// object sits exactly on the player the velocity is left unchanged. Outside the
// threshold the current velocity is multiplied by the wander speed, which
// compounds frame over frame; in cruise mode it is rescaled to the wander speed
// instead.
func Steer(pos components.Position, vel components.Velocity, body components.Body, wander components.Wander, player *components.Player, p SteeringParams) components.Velocity {
	dx := player.Pos.X - pos.X
	dy := player.Pos.Y - pos.Y
	dist := distance(pos.X, pos.Y, player.Pos.X, player.Pos.Y)

	if dist >= p.Threshold {
		return wanderVelocity(vel, wander, p.Cruise)
	}
	if dist == 0 {
		return vel
	}

	ux, uy := dx/dist, dy/dist
	if ModeFor(body.Radius, player.Radius) == ModeChase {
		return components.Velocity{X: ux * p.ChaseSpeed, Y: uy * p.ChaseSpeed}
	}
	return components.Velocity{X: -ux * p.EscapeSpeed, Y: -uy * p.EscapeSpeed}
}

func wanderVelocity(vel components.Velocity, wander components.Wander, cruise bool) components.Velocity {
	if !cruise {
		return components.Velocity{X: vel.X * wander.Speed, Y: vel.Y * wander.Speed}
	}
	l := vel.Len()
	if l == 0 {
		return vel
	}
	s := wander.Speed / l
	return components.Velocity{X: vel.X * s, Y: vel.Y * s}
}
