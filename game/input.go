package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/absorb/components"
)

// handleInput processes keyboard input and returns the movement direction
// for this frame.
func (g *Game) handleInput() components.Direction {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyF12) {
		if path, err := g.SaveSnapshot(g.snapshotDir); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path)
		}
	}

	return directionFromKeys(
		rl.IsKeyDown(rl.KeyLeft),
		rl.IsKeyDown(rl.KeyRight),
		rl.IsKeyDown(rl.KeyUp),
		rl.IsKeyDown(rl.KeyDown),
	)
}

// directionFromKeys maps arrow key state to a direction. When both keys of
// an axis are held, right and down win.
func directionFromKeys(left, right, up, down bool) components.Direction {
	var d components.Direction
	if left {
		d.X = -1
	}
	if right {
		d.X = 1
	}
	if up {
		d.Y = -1
	}
	if down {
		d.Y = 1
	}
	return d
}

// handleResize refits the play field when the window size changes.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// frameTime returns the duration of the last frame in seconds.
func frameTime() float32 {
	return rl.GetFrameTime()
}
