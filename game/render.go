package game

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/absorb/telemetry"
	"github.com/pthm-cable/absorb/ui"
)

// letterbox fills the window outside the play field.
var letterbox = rl.NewColor(24, 24, 28, 255)

// Draw renders the frame and closes its perf sample.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(letterbox)

	x, y, w, h := g.camera.FieldRect()
	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: w, Y: h}, toRaylib(g.cfg.Screen.Background.RGBA()))

	rl.BeginMode2D(g.camera2D())
	g.drawObjects()
	g.drawPlayer()
	rl.EndMode2D()

	rl.EndScissorMode()

	if g.hud.Draw(g.hudData()) {
		g.paused = false
	}

	rl.EndDrawing()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushPerf()
	g.perf.EndFrame()
	g.perf.MarkPresented()
}

// camera2D converts the field mapping into raylib's camera.
func (g *Game) camera2D() rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: g.camera.OffsetX, Y: g.camera.OffsetY},
		Target: rl.Vector2{},
		Zoom:   g.camera.Zoom,
	}
}

// drawObjects renders every object as a filled circle in its own colour.
func (g *Game) drawObjects() {
	query := g.objectFilter.Query()
	for query.Next() {
		pos, _, body, _, tint := query.Get()
		rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, body.Radius, toRaylib(tint.Color))
	}
}

// drawPlayer renders the player. Off-field parts are clipped by the scissor.
func (g *Game) drawPlayer() {
	p := g.player
	if !g.camera.IsVisible(p.Pos.X, p.Pos.Y, p.Radius) {
		return
	}
	rl.DrawCircleV(rl.Vector2{X: p.Pos.X, Y: p.Pos.Y}, p.Radius, toRaylib(g.cfg.Player.Color.RGBA()))
}

// hudData collects the values shown by the HUD.
func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Radius:       g.player.Radius,
		TargetRadius: g.player.TargetRadius,
		Objects:      g.objectCount,
		Round:        g.collector.Round(),
		Absorbed:     g.collector.Absorbed(),
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  int32(rl.GetScreenWidth()),
		ScreenHeight: int32(rl.GetScreenHeight()),
	}
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
