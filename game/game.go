// Package game owns the round: the player, the object collection and the
// per-frame update that moves, steers and resolves collisions.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/absorb/camera"
	"github.com/pthm-cable/absorb/components"
	"github.com/pthm-cable/absorb/config"
	"github.com/pthm-cable/absorb/systems"
	"github.com/pthm-cable/absorb/telemetry"
	"github.com/pthm-cable/absorb/ui"
)

// Sounds receives gameplay cues. *audio.SoundManager implements it.
type Sounds interface {
	Absorb(radius float32)
	RoundCleared()
	GameOver()
}

// Outcome is the result of a single frame.
type Outcome uint8

const (
	Continue   Outcome = iota // keep playing
	RoundReset                // collection emptied; a fresh round was spawned
	GameOver                  // player touched a larger object
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case RoundReset:
		return "round_reset"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures game creation.
type Options struct {
	Seed        int64
	LogStats    bool   // log round and perf stats via slog
	OutputDir   string // directory for CSV output (empty = disabled)
	SnapshotDir string // directory for PNG snapshots (empty = working directory)
	Headless    bool   // no window; fixed delta time
	Autopilot   bool   // headless frames are driven by AutopilotDirection
	Sounds      Sounds // nil = silent
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	objectMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Wander,
		components.Tint,
	]
	objectFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Wander,
		components.Tint,
	]

	player   *components.Player
	bounds   systems.Bounds
	steering systems.SteeringParams

	// Pending removals; the world is locked while a query is open
	toRemove []ecs.Entity

	objectCount int

	// Rendering (nil in headless mode)
	camera *camera.Camera
	hud    *ui.HUD

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	snapshotDir   string
	lastPerfFlush int32

	sounds Sounds

	// State
	tick      int32
	paused    bool
	over      bool // no more frames will run
	lost      bool // ended by a fatal contact
	headless  bool
	autopilot bool
}

// NewGame creates a game with default options and a fixed seed.
func NewGame() *Game {
	return NewGameWithOptions(Options{Seed: 42, Headless: true})
}

// NewGameWithOptions creates a new game using the global configuration.
func NewGameWithOptions(opts Options) *Game {
	return newGame(config.Cfg(), opts)
}

// NewGameWithConfig creates a new game from an explicit configuration.
func NewGameWithConfig(cfg *config.Config, opts Options) *Game {
	return newGame(cfg, opts)
}

func newGame(cfg *config.Config, opts Options) *Game {
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		objectMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Wander,
			components.Tint,
		](world),
		objectFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Wander,
			components.Tint,
		](world),
		player:      components.PlayerFromConfig(cfg),
		bounds:      systems.Bounds{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32},
		steering:    systems.SteeringParamsFromConfig(cfg),
		collector:   telemetry.NewCollector(cfg.Derived.DT32),
		perf:        telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:    opts.LogStats,
		snapshotDir: opts.SnapshotDir,
		sounds:      opts.Sounds,
		headless:    opts.Headless,
		autopilot:   opts.Autopilot,
	}

	if !opts.Headless {
		g.camera = camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
		g.hud = ui.NewHUD()
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.spawnObjects()

	slog.Info("game created",
		"seed", opts.Seed,
		"objects", g.objectCount,
		"wander_mode", cfg.Steering.WanderMode,
		"headless", opts.Headless,
	)

	return g
}

// Step runs one frame of the round with the given input direction and
// delta time in seconds.
//
// Order: move player, advance growth, then for each object move it and test
// the collision. A fatal contact ends the pass immediately. Absorbed objects
// are removed after the pass; an empty collection resets the round.
func (g *Game) Step(dir components.Direction, dt float32) Outcome {
	if g.over {
		return GameOver
	}

	g.perf.StartPhase(telemetry.PhasePlayer)
	g.player.Move(dir)
	g.player.AdvanceGrowth()

	g.perf.StartPhase(telemetry.PhaseObjects)
	fatal, fatalRadius := g.updateObjects(dt)

	g.perf.StartPhase(telemetry.PhaseCleanup)
	g.removeAbsorbed()

	g.tick++

	if fatal {
		g.endGame(fatalRadius)
		return GameOver
	}

	if g.objectCount == 0 {
		g.resetRound()
		return RoundReset
	}

	return Continue
}

// updateObjects moves every object and resolves its contact with the player.
// Returns true and the object's radius on a fatal contact.
func (g *Game) updateObjects(dt float32) (bool, float32) {
	query := g.objectFilter.Query()
	for query.Next() {
		pos, vel, body, wander, _ := query.Get()

		systems.MoveObject(pos, vel, *body, *wander, g.player, g.steering, g.bounds, dt)

		switch systems.Resolve(g.player, *pos, *body) {
		case systems.ContactFatal:
			query.Close()
			return true, body.Radius
		case systems.ContactAbsorb:
			g.absorb(query.Entity(), body.Radius)
		}
	}
	return false, 0
}

// absorb queues the object for removal and grows the player.
func (g *Game) absorb(e ecs.Entity, radius float32) {
	g.toRemove = append(g.toRemove, e)
	g.player.GrowToward(components.Body{Radius: radius}.AbsorbAmount())

	remaining := g.objectCount - len(g.toRemove)
	g.recordEvent(telemetry.NewAbsorbEvent(g.tick, g.player.Radius, radius, remaining))
	slog.Debug("absorbed",
		"tick", g.tick,
		"object_radius", radius,
		"target_radius", g.player.TargetRadius,
		"remaining", remaining,
	)

	if g.sounds != nil {
		g.sounds.Absorb(radius)
	}
}

// Update runs the input and simulation half of a windowed frame.
// Draw finishes the frame.
func (g *Game) Update() Outcome {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)
	dir := g.handleInput()

	if g.paused || g.over {
		return Continue
	}
	return g.Step(dir, frameTime())
}

// UpdateHeadless runs one frame with a fixed delta time. The player stands
// still unless the autopilot is enabled.
func (g *Game) UpdateHeadless() Outcome {
	g.perf.StartFrame()

	var dir components.Direction
	if g.autopilot {
		g.perf.StartPhase(telemetry.PhaseInput)
		dir = g.AutopilotDirection()
	}
	outcome := g.Step(dir, g.cfg.Derived.DT32)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushPerf()
	g.perf.EndFrame()

	return outcome
}

// Quit closes the round in progress as quit and flushes output.
// Does nothing after game over; that round is already closed.
func (g *Game) Quit() {
	if g.over {
		return
	}
	g.over = true
	g.recordEvent(telemetry.NewQuitEvent(g.tick, g.player.Radius, g.objectCount))
	g.closeRound(telemetry.OutcomeQuit)
}

// Summary returns the aggregate statistics of every finished round.
func (g *Game) Summary() telemetry.SessionSummary {
	return g.collector.Summary()
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of frames simulated so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Lost reports whether the game ended by touching a larger object.
func (g *Game) Lost() bool {
	return g.lost
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Player returns the player.
func (g *Game) Player() *components.Player {
	return g.player
}

// ObjectCount returns the number of objects in the current round.
func (g *Game) ObjectCount() int {
	return g.objectCount
}

// Round returns the 1-based number of the round in progress.
func (g *Game) Round() int {
	return g.collector.Round()
}
