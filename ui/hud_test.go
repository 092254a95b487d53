package ui

import (
	"strings"
	"testing"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		data HUDData
		want []string
	}{
		{
			name: "settled",
			data: HUDData{Radius: 30, TargetRadius: 30, Objects: 20, Round: 1, FPS: 60},
			want: []string{"Radius: 30.0 |", "Objects: 20", "Round: 1", "FPS: 60"},
		},
		{
			name: "growing",
			data: HUDData{Radius: 31.5, TargetRadius: 40, Objects: 19, Absorbed: 1, Round: 2},
			want: []string{"Radius: 31.5 -> 40", "Objects: 19", "Absorbed: 1", "Round: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusText(tt.data)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("StatusText() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestHUDToggle(t *testing.T) {
	h := NewHUD()
	if !h.IsVisible() {
		t.Fatal("new HUD should be visible")
	}
	if h.Toggle() {
		t.Error("Toggle() should hide the HUD")
	}
	if !h.Toggle() {
		t.Error("second Toggle() should show the HUD")
	}
}

func TestNilHUD(t *testing.T) {
	var h *HUD
	if h.IsVisible() || h.Toggle() || h.Draw(HUDData{Paused: true}) {
		t.Error("nil HUD must be inert")
	}
}
