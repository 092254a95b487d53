package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/absorb/audio"
	"github.com/pthm-cable/absorb/config"
	"github.com/pthm-cable/absorb/game"
	"github.com/pthm-cable/absorb/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output round and perf stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for PNG snapshots (F12, and final frame in headless mode)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	autopilot := flag.Bool("autopilot", false, "Drive the player with the built-in autopilot (headless only)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	var sounds *audio.SoundManager
	if cfg.Audio.Enabled && !*mute && !*headless {
		sounds = audio.NewSoundManager(cfg.Audio)
		if err := sounds.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	// Build game options
	opts := game.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		SnapshotDir: *snapshotDir,
		OutputDir:   *outputDir,
		Headless:    *headless,
		Autopilot:   *autopilot,
	}
	if sounds != nil {
		opts.Sounds = sounds
	}

	var g *game.Game
	if *headless {
		g = runHeadless(opts, *maxTicks, *snapshotDir)
	} else {
		g = runWindowed(cfg, opts, *maxTicks)
	}

	printSummary(g.Summary())

	if g.Lost() {
		color.New(color.FgRed, color.Bold).Println("Game Over!")
		if sounds != nil {
			sounds.Wait(audio.GameOverDuration() + 200*time.Millisecond)
		}
	}
}

// runHeadless steps the game with a fixed delta time until game over or the
// tick limit.
func runHeadless(opts game.Options, maxTicks int, snapshotDir string) *game.Game {
	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("starting headless game",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"autopilot", opts.Autopilot,
	)

	for {
		if g.UpdateHeadless() == game.GameOver {
			break
		}

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			g.Quit()
			break
		}
	}

	if snapshotDir != "" {
		if path, err := g.SaveSnapshot(snapshotDir); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path)
		}
	}

	return g
}

// runWindowed opens the window and runs the frame loop until the window is
// closed, the game ends, or the tick limit is reached.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) *game.Game {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		outcome := g.Update()
		g.Draw()

		if outcome == game.GameOver {
			return g
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}

	g.Quit()
	return g
}

// printSummary writes a one-line session summary to the terminal.
func printSummary(s telemetry.SessionSummary) {
	slog.Info("session summary", "summary", s)
	color.New(color.FgCyan).Printf("Rounds: %d  Cleared: %d  Absorbed: %d  Best radius: %.1f\n",
		s.Rounds, s.Cleared, s.TotalAbsorbed, s.LargestRadius)
}
