// Package ui draws the heads-up display over the play field.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layout
const (
	statusBarHeight = 24
	pausePanelW     = 220
	pausePanelH     = 110
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Radius       float32
	TargetRadius float32
	Objects      int
	Round        int
	Absorbed     int
	Tick         int32
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the status bar and the pause panel.
type HUD struct {
	visible bool
}

// NewHUD creates a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	if h == nil {
		return false
	}
	h.visible = !h.visible
	return h.visible
}

// IsVisible returns whether the status bar is shown.
func (h *HUD) IsVisible() bool {
	return h != nil && h.visible
}

// Draw renders the HUD. The pause panel is shown even when the status bar is
// hidden. Returns true if the player pressed Resume.
func (h *HUD) Draw(data HUDData) bool {
	if h == nil {
		return false
	}

	w := float32(data.ScreenWidth)
	hgt := float32(data.ScreenHeight)

	if h.visible {
		gui.StatusBar(rl.Rectangle{X: 0, Y: hgt - statusBarHeight, Width: w, Height: statusBarHeight}, StatusText(data))
	}

	if !data.Paused {
		return false
	}

	x := (w - pausePanelW) / 2
	y := (hgt - pausePanelH) / 2
	gui.Panel(rl.Rectangle{X: x, Y: y, Width: pausePanelW, Height: pausePanelH}, "Paused")
	gui.Label(rl.Rectangle{X: x + 20, Y: y + 32, Width: pausePanelW - 40, Height: 20}, "Space to resume, H hides the HUD")
	return gui.Button(rl.Rectangle{X: x + 60, Y: y + 64, Width: pausePanelW - 120, Height: 30}, "Resume")
}

// StatusText formats the status bar line.
func StatusText(data HUDData) string {
	size := fmt.Sprintf("Radius: %.1f", data.Radius)
	if data.TargetRadius > data.Radius {
		size = fmt.Sprintf("Radius: %.1f -> %.0f", data.Radius, data.TargetRadius)
	}
	return fmt.Sprintf("%s | Objects: %d | Absorbed: %d | Round: %d | FPS: %d",
		size, data.Objects, data.Absorbed, data.Round, data.FPS)
}
