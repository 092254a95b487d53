package components

import "github.com/pthm-cable/absorb/config"

// Player is the user-controlled circle. It is created once and reset in place
// at the start of every round.
type Player struct {
	Pos          Position
	Radius       float32 // current drawn radius
	TargetRadius float32 // radius the player is growing toward; never below Radius
	GrowthRate   float32 // radius units added per frame while growing
	Speed        float32 // units per frame per axis

	NormalizeDiagonal bool

	spawn       Position
	spawnRadius float32
}

// NewPlayer creates a player that spawns, and respawns, at (spawnX, spawnY).
func NewPlayer(radius, speed, growthRate, spawnX, spawnY float32) *Player {
	p := &Player{
		GrowthRate:  growthRate,
		Speed:       speed,
		spawn:       Position{X: spawnX, Y: spawnY},
		spawnRadius: radius,
	}
	p.Reset()
	return p
}

// PlayerFromConfig creates a player centred on the configured screen.
func PlayerFromConfig(cfg *config.Config) *Player {
	p := NewPlayer(
		float32(cfg.Player.Radius),
		float32(cfg.Player.Speed),
		float32(cfg.Player.GrowthRate),
		float32(cfg.Screen.Width/2),
		float32(cfg.Screen.Height/2),
	)
	p.NormalizeDiagonal = cfg.Player.NormalizeDiagonal
	return p
}

// Move displaces the player by dir * Speed. Position is not clamped; the
// player may leave the visible area.
func (p *Player) Move(dir Direction) {
	if p.NormalizeDiagonal {
		dir = dir.Normalized()
	}
	p.Pos.X += dir.X * p.Speed
	p.Pos.Y += dir.Y * p.Speed
}

// GrowToward extends the growth target to at least Radius+amount.
// Stacked absorptions extend the target; the target never shrinks.
func (p *Player) GrowToward(amount float32) {
	if t := p.Radius + amount; t > p.TargetRadius {
		p.TargetRadius = t
	}
}

// AdvanceGrowth moves Radius one GrowthRate step toward TargetRadius
// without overshooting.
func (p *Player) AdvanceGrowth() {
	if p.Radius >= p.TargetRadius {
		return
	}
	p.Radius += p.GrowthRate
	if p.Radius > p.TargetRadius {
		p.Radius = p.TargetRadius
	}
}

// Growing reports whether the player has not yet reached its target radius.
func (p *Player) Growing() bool {
	return p.Radius < p.TargetRadius
}

// Reset restores position, radius and target to their initial values.
func (p *Player) Reset() {
	p.Pos = p.spawn
	p.Radius = p.spawnRadius
	p.TargetRadius = p.spawnRadius
}
