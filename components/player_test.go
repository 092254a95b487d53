package components

import (
	"math"
	"testing"

	"github.com/pthm-cable/absorb/config"
)

func newTestPlayer() *Player {
	return NewPlayer(30, 5, 0.1, 400, 300)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.Pos.X != 400 || p.Pos.Y != 300 {
		t.Errorf("position = (%v, %v), want (400, 300)", p.Pos.X, p.Pos.Y)
	}
	if p.Radius != 30 || p.TargetRadius != 30 {
		t.Errorf("radius/target = %v/%v, want 30/30", p.Radius, p.TargetRadius)
	}
}

func TestPlayerFromConfig(t *testing.T) {
	p := PlayerFromConfig(config.Default())

	if p.Pos.X != 400 || p.Pos.Y != 300 {
		t.Errorf("position = (%v, %v), want screen centre (400, 300)", p.Pos.X, p.Pos.Y)
	}
	if p.Speed != 5 {
		t.Errorf("speed = %v, want 5", p.Speed)
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		normalize bool
		wantX     float32
		wantY     float32
	}{
		{"none", Direction{}, false, 400, 300},
		{"left", Direction{X: -1}, false, 395, 300},
		{"down", Direction{Y: 1}, false, 400, 305},
		{"diagonal raw", Direction{X: 1, Y: -1}, false, 405, 295},
		{"diagonal normalized", Direction{X: 1, Y: -1}, true, 400 + 5/math.Sqrt2, 300 - 5/math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.NormalizeDiagonal = tt.normalize
			p.Move(tt.dir)
			if math.Abs(float64(p.Pos.X-tt.wantX)) > 1e-4 || math.Abs(float64(p.Pos.Y-tt.wantY)) > 1e-4 {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.Pos.X, p.Pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerMoveUnbounded(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 200; i++ {
		p.Move(Direction{X: -1})
	}
	if p.Pos.X != 400-1000 {
		t.Errorf("x = %v, want -600 (no clamping)", p.Pos.X)
	}
}

func TestGrowTowardNeverShrinksTarget(t *testing.T) {
	p := newTestPlayer()

	p.GrowToward(10)
	if p.TargetRadius != 40 {
		t.Fatalf("target = %v, want 40", p.TargetRadius)
	}

	// A smaller absorption while still growing must not lower the target.
	p.GrowToward(5)
	if p.TargetRadius != 40 {
		t.Errorf("target = %v, want 40 after smaller grow", p.TargetRadius)
	}

	// Stacking: target extends from the current radius, not the old target.
	p.Radius = 38
	p.GrowToward(5)
	if p.TargetRadius != 43 {
		t.Errorf("target = %v, want 43", p.TargetRadius)
	}
}

func TestAdvanceGrowth(t *testing.T) {
	p := newTestPlayer()
	p.GrowToward(1)

	prev := p.Radius
	for i := 0; i < 50; i++ {
		p.AdvanceGrowth()
		if p.Radius < prev {
			t.Fatalf("frame %d: radius decreased %v -> %v", i, prev, p.Radius)
		}
		if p.Radius > p.TargetRadius {
			t.Fatalf("frame %d: radius %v overshoots target %v", i, p.Radius, p.TargetRadius)
		}
		prev = p.Radius
	}

	if p.Radius != p.TargetRadius {
		t.Errorf("radius = %v, want target %v after enough frames", p.Radius, p.TargetRadius)
	}
	if p.Growing() {
		t.Error("Growing() = true after reaching target")
	}
}

func TestAdvanceGrowthStep(t *testing.T) {
	p := newTestPlayer()
	p.GrowToward(5)
	p.AdvanceGrowth()

	if math.Abs(float64(p.Radius-30.1)) > 1e-5 {
		t.Errorf("radius = %v, want 30.1 after one frame", p.Radius)
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	p.Move(Direction{X: 1, Y: 1})
	p.GrowToward(20)
	p.AdvanceGrowth()

	p.Reset()

	if p.Pos.X != 400 || p.Pos.Y != 300 || p.Radius != 30 || p.TargetRadius != 30 {
		t.Errorf("after reset: pos=(%v,%v) r=%v target=%v", p.Pos.X, p.Pos.Y, p.Radius, p.TargetRadius)
	}
}

func TestAbsorbAmount(t *testing.T) {
	tests := []struct {
		radius float32
		want   float32
	}{
		{10, 5},
		{21, 10},
		{50, 25},
		{20, 10},
	}
	for _, tt := range tests {
		if got := (Body{Radius: tt.radius}).AbsorbAmount(); got != tt.want {
			t.Errorf("AbsorbAmount(%v) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}
