package systems

import (
	"testing"

	"github.com/pthm-cable/absorb/components"
)

var screen = Bounds{Width: 800, Height: 600}

func TestIntegrate(t *testing.T) {
	pos := components.Position{X: 100, Y: 100}
	Integrate(&pos, components.Velocity{X: 2, Y: -4}, 0.5)

	if pos.X != 101 || pos.Y != 98 {
		t.Errorf("position = (%v, %v), want (101, 98)", pos.X, pos.Y)
	}
}

func TestBounceEdges(t *testing.T) {
	tests := []struct {
		name    string
		pos     components.Position
		vel     components.Velocity
		wantPos components.Position
		wantVel components.Velocity
		wantHit bool
	}{
		{
			name:    "inside",
			pos:     components.Position{X: 400, Y: 300},
			vel:     components.Velocity{X: -1, Y: 1},
			wantPos: components.Position{X: 400, Y: 300},
			wantVel: components.Velocity{X: -1, Y: 1},
		},
		{
			name:    "left edge",
			pos:     components.Position{X: 5, Y: 300},
			vel:     components.Velocity{X: -3, Y: 1},
			wantPos: components.Position{X: 20, Y: 300},
			wantVel: components.Velocity{X: 3, Y: 1},
			wantHit: true,
		},
		{
			name:    "left edge already moving inward keeps sign",
			pos:     components.Position{X: 5, Y: 300},
			vel:     components.Velocity{X: 3, Y: 1},
			wantPos: components.Position{X: 20, Y: 300},
			wantVel: components.Velocity{X: 3, Y: 1},
			wantHit: true,
		},
		{
			name:    "right edge",
			pos:     components.Position{X: 790, Y: 300},
			vel:     components.Velocity{X: 2, Y: 0},
			wantPos: components.Position{X: 780, Y: 300},
			wantVel: components.Velocity{X: -2, Y: 0},
			wantHit: true,
		},
		{
			name:    "top edge",
			pos:     components.Position{X: 400, Y: -10},
			vel:     components.Velocity{X: 0, Y: -7},
			wantPos: components.Position{X: 400, Y: 20},
			wantVel: components.Velocity{X: 0, Y: 7},
			wantHit: true,
		},
		{
			name:    "bottom right corner",
			pos:     components.Position{X: 799, Y: 599},
			vel:     components.Velocity{X: 1, Y: 1},
			wantPos: components.Position{X: 780, Y: 580},
			wantVel: components.Velocity{X: -1, Y: -1},
			wantHit: true,
		},
		{
			name:    "touching edge exactly is inside",
			pos:     components.Position{X: 20, Y: 580},
			vel:     components.Velocity{X: -1, Y: 1},
			wantPos: components.Position{X: 20, Y: 580},
			wantVel: components.Velocity{X: -1, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			hit := BounceEdges(&pos, &vel, 20, screen)

			if pos != tt.wantPos {
				t.Errorf("position = %v, want %v", pos, tt.wantPos)
			}
			if vel != tt.wantVel {
				t.Errorf("velocity = %v, want %v", vel, tt.wantVel)
			}
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
		})
	}
}

// Objects stay on screen however large their compounded velocity gets.
func TestMoveObjectStaysInBounds(t *testing.T) {
	player := playerAt(-5000, -5000, 30)
	pos := components.Position{X: 400, Y: 300}
	vel := components.Velocity{X: 1, Y: 1}
	body := components.Body{Radius: 35}
	wander := components.Wander{Speed: 1.9}

	for i := 0; i < 100; i++ {
		MoveObject(&pos, &vel, body, wander, player, defaultSteering, screen, 1.0/60)
		if pos.X < body.Radius || pos.X > screen.Width-body.Radius ||
			pos.Y < body.Radius || pos.Y > screen.Height-body.Radius {
			t.Fatalf("frame %d: position %v out of bounds", i, pos)
		}
	}
}

func TestMoveObjectChasesPlayer(t *testing.T) {
	player := playerAt(400, 300, 30)
	pos := components.Position{X: 300, Y: 300}
	var vel components.Velocity
	body := components.Body{Radius: 45}

	MoveObject(&pos, &vel, body, components.Wander{Speed: 1}, player, defaultSteering, screen, 0.5)

	if pos.X != 301 || pos.Y != 300 {
		t.Errorf("position = %v, want (301, 300)", pos)
	}
}
