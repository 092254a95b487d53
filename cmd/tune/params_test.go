package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/absorb/config"
)

func TestNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	want := pv.DefaultVector()

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: config has %v, spec default %v", pv.Specs[i].Path, got[i], want[i])
		}
	}
}

func TestApplyClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	pv.ApplyToConfig(cfg, []float64{-5, 1000, 3, 200})

	if cfg.Steering.Threshold != 50 {
		t.Errorf("threshold = %v, want clamped to 50", cfg.Steering.Threshold)
	}
	if cfg.Steering.ChaseSpeed != 240 {
		t.Errorf("chase speed = %v, want clamped to 240", cfg.Steering.ChaseSpeed)
	}
	if cfg.Steering.EscapeSpeed != 3 {
		t.Errorf("escape speed = %v, want 3", cfg.Steering.EscapeSpeed)
	}
	if cfg.Objects.MaxRadius != 80 {
		t.Errorf("max radius = %d, want clamped to 80", cfg.Objects.MaxRadius)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("clamped config invalid: %v", err)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), 600, []int64{1}, config.Default(), 10)

	onTarget := fe.computeFitness(runResult{survivalTicks: 600, valid: true})
	short := fe.computeFitness(runResult{survivalTicks: 60, valid: true})
	invalid := fe.computeFitness(runResult{})

	if math.Abs(onTarget) > 1e-6 {
		t.Errorf("on-target fitness = %v, want 0", onTarget)
	}
	if short <= onTarget {
		t.Errorf("short game fitness %v should be worse than %v", short, onTarget)
	}
	if invalid <= short {
		t.Errorf("invalid config fitness %v should be worst", invalid)
	}
	if bonus := fe.computeFitness(runResult{survivalTicks: 600, rounds: 2, valid: true}); bonus >= onTarget {
		t.Errorf("cleared rounds should improve fitness: %v vs %v", bonus, onTarget)
	}
}

func TestEvaluateRunsGames(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games")
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 120, []int64{1, 2}, config.Default(), 2)

	f := fe.Evaluate(pv.DefaultVector())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		t.Fatalf("fitness = %v", f)
	}
	if s := fe.LastSurvival(); s <= 0 || s > 2+1e-6 {
		t.Errorf("mean survival = %v, want in (0, 2]", s)
	}
}
