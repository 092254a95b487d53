package game

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/absorb/components"
	"github.com/pthm-cable/absorb/config"
	"github.com/pthm-cable/absorb/telemetry"
)

// spawnObjects creates a fresh collection of objects.
func (g *Game) spawnObjects() {
	for i := 0; i < g.cfg.Objects.Count; i++ {
		g.spawnObject()
	}
}

// spawnObject creates one object fully inside the play field.
func (g *Game) spawnObject() ecs.Entity {
	o := g.cfg.Objects

	r := g.rng.Intn(o.MaxRadius-o.MinRadius+1) + o.MinRadius
	radius := float32(r)

	pos := components.Position{
		X: float32(r + g.rng.Intn(g.cfg.Screen.Width-2*r+1)),
		Y: float32(r + g.rng.Intn(g.cfg.Screen.Height-2*r+1)),
	}
	wander := components.Wander{
		Speed: float32(o.MinWander + g.rng.Float64()*(o.MaxWander-o.MinWander)),
	}

	// Objects start at rest; in cruise mode they get a heading so wandering
	// has a direction to keep.
	vel := components.Velocity{}
	if g.cfg.Steering.WanderMode == config.WanderCruise {
		heading := g.rng.Float64() * 2 * math.Pi
		vel.X = float32(math.Cos(heading)) * wander.Speed
		vel.Y = float32(math.Sin(heading)) * wander.Speed
	}

	body := components.Body{Radius: radius}
	tint := components.Tint{Color: color.RGBA{
		R: uint8(g.rng.Intn(256)),
		G: uint8(g.rng.Intn(256)),
		B: uint8(g.rng.Intn(256)),
		A: 255,
	}}

	entity := g.objectMapper.NewEntity(&pos, &vel, &body, &wander, &tint)
	g.objectCount++
	return entity
}

// removeAbsorbed removes objects queued during the object pass from the world.
// An entity queued twice is removed once.
func (g *Game) removeAbsorbed() {
	for _, e := range g.toRemove {
		if !g.world.Alive(e) {
			continue
		}
		g.world.RemoveEntity(e)
		g.objectCount--
	}
	g.toRemove = g.toRemove[:0]
}

// clearObjects removes every remaining object.
func (g *Game) clearObjects() {
	query := g.objectFilter.Query()
	for query.Next() {
		g.toRemove = append(g.toRemove, query.Entity())
	}
	g.removeAbsorbed()
}

// resetRound closes a cleared round and starts the next: player reset and a
// full new collection.
func (g *Game) resetRound() {
	g.recordEvent(telemetry.NewRoundResetEvent(g.tick, g.player.Radius))
	g.closeRound(telemetry.OutcomeCleared)

	g.clearObjects()
	g.player.Reset()
	g.spawnObjects()

	slog.Info("round reset", "round", g.collector.Round(), "objects", g.objectCount)

	if g.sounds != nil {
		g.sounds.RoundCleared()
	}
}

// endGame closes the final round after a fatal contact.
func (g *Game) endGame(objectRadius float32) {
	g.over = true
	g.lost = true
	g.recordEvent(telemetry.NewGameOverEvent(g.tick, g.player.Radius, objectRadius, g.objectCount))
	g.closeRound(telemetry.OutcomeGameOver)

	slog.Info("game over",
		"tick", g.tick,
		"player_radius", g.player.Radius,
		"object_radius", objectRadius,
		"remaining", g.objectCount,
	)

	if g.sounds != nil {
		g.sounds.GameOver()
	}
}
