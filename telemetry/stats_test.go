package telemetry

import (
	"math"
	"testing"
)

func TestComputeRadiusStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantP50  float64
		wantMax  float64
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []float64{20}, 20, 20, 20},
		{"odd unsorted", []float64{50, 20, 30, 40, 25}, 33, 30, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p50, maxV := ComputeRadiusStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(p50-tt.wantP50) > 1e-9 {
				t.Errorf("p50 = %v, want %v", p50, tt.wantP50)
			}
			if math.Abs(maxV-tt.wantMax) > 1e-9 {
				t.Errorf("max = %v, want %v", maxV, tt.wantMax)
			}
		})
	}
}

func TestComputeRadiusStatsDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeRadiusStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input was modified: %v", values)
	}
}

func TestSummarize(t *testing.T) {
	rounds := []RoundStats{
		{Round: 1, Outcome: OutcomeCleared, Absorbed: 20, DurationSec: 30, FinalRadius: 40, FinalTarget: 45},
		{Round: 2, Outcome: OutcomeCleared, Absorbed: 20, DurationSec: 20, FinalRadius: 50, FinalTarget: 62},
		{Round: 3, Outcome: OutcomeGameOver, Absorbed: 2, DurationSec: 10, FinalRadius: 36, FinalTarget: 36},
	}

	s := Summarize(rounds)

	if s.Rounds != 3 || s.Cleared != 2 {
		t.Errorf("rounds/cleared = %d/%d, want 3/2", s.Rounds, s.Cleared)
	}
	if s.TotalAbsorbed != 42 {
		t.Errorf("total absorbed = %d, want 42", s.TotalAbsorbed)
	}
	if math.Abs(s.TotalSec-60) > 1e-9 {
		t.Errorf("total sec = %v, want 60", s.TotalSec)
	}
	if math.Abs(s.MeanAbsorbed-14) > 1e-9 {
		t.Errorf("mean absorbed = %v, want 14", s.MeanAbsorbed)
	}
	if math.Abs(s.FinalRadiusAvg-42) > 1e-9 {
		t.Errorf("final radius avg = %v, want 42", s.FinalRadiusAvg)
	}
	// Drawn radius, not the pending growth target
	if s.LargestRadius != 50 {
		t.Errorf("largest = %v, want 50", s.LargestRadius)
	}
	if s.FinalRadiusStd <= 0 {
		t.Errorf("std = %v, want positive", s.FinalRadiusStd)
	}
}

func TestSummarizeEmptyAndSingle(t *testing.T) {
	if s := Summarize(nil); s.Rounds != 0 || s.MeanAbsorbed != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	s := Summarize([]RoundStats{{Absorbed: 3, FinalRadius: 35, FinalTarget: 55}})
	if s.FinalRadiusStd != 0 {
		t.Errorf("single-round std = %v, want 0", s.FinalRadiusStd)
	}
	if s.LargestRadius != 35 {
		t.Errorf("largest = %v, want 35", s.LargestRadius)
	}
}
