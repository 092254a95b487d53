package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RoundStats holds aggregated statistics for one round.
type RoundStats struct {
	Round       int     `csv:"round"`
	StartTick   int32   `csv:"start_tick"`
	EndTick     int32   `csv:"end_tick"`
	DurationSec float64 `csv:"duration_sec"`
	Outcome     Outcome `csv:"outcome"`

	Absorbed  int `csv:"absorbed"`
	Remaining int `csv:"remaining"`

	FinalRadius float64 `csv:"final_radius"`
	FinalTarget float64 `csv:"final_target"`

	// Radii of absorbed objects
	AbsorbedMean float64 `csv:"absorbed_mean"`
	AbsorbedP50  float64 `csv:"absorbed_p50"`
	AbsorbedMax  float64 `csv:"absorbed_max"`
}

// ComputeRadiusStats returns the mean, median and maximum of the given radii.
// All are zero for an empty slice.
func ComputeRadiusStats(values []float64) (mean, p50, maxV float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	maxV = floats.Max(sorted)
	return mean, p50, maxV
}

// LogValue implements slog.LogValuer for structured logging.
func (s RoundStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", s.Round),
		slog.Int("start_tick", int(s.StartTick)),
		slog.Int("end_tick", int(s.EndTick)),
		slog.Float64("duration_sec", s.DurationSec),
		slog.String("outcome", string(s.Outcome)),
		slog.Int("absorbed", s.Absorbed),
		slog.Int("remaining", s.Remaining),
		slog.Float64("final_radius", s.FinalRadius),
		slog.Float64("final_target", s.FinalTarget),
		slog.Float64("absorbed_mean", s.AbsorbedMean),
		slog.Float64("absorbed_p50", s.AbsorbedP50),
		slog.Float64("absorbed_max", s.AbsorbedMax),
	)
}

// LogStats logs the round stats using slog.
func (s RoundStats) LogStats() {
	slog.Info("round", "stats", s)
}

// SessionSummary aggregates every round of a session.
type SessionSummary struct {
	Rounds         int
	Cleared        int
	TotalAbsorbed  int
	TotalSec       float64
	MeanAbsorbed   float64 // absorptions per round
	FinalRadiusAvg float64 // drawn radius when each round ended
	FinalRadiusStd float64
	LargestRadius  float64
}

// Summarize computes a SessionSummary from round stats.
func Summarize(rounds []RoundStats) SessionSummary {
	s := SessionSummary{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return s
	}

	absorbed := make([]float64, len(rounds))
	radii := make([]float64, len(rounds))
	for i, r := range rounds {
		if r.Outcome == OutcomeCleared {
			s.Cleared++
		}
		s.TotalAbsorbed += r.Absorbed
		s.TotalSec += r.DurationSec
		absorbed[i] = float64(r.Absorbed)
		radii[i] = r.FinalRadius
	}

	s.MeanAbsorbed = stat.Mean(absorbed, nil)
	s.FinalRadiusAvg = stat.Mean(radii, nil)
	if len(radii) > 1 {
		s.FinalRadiusStd = stat.StdDev(radii, nil)
	}
	s.LargestRadius = floats.Max(radii)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("cleared", s.Cleared),
		slog.Int("total_absorbed", s.TotalAbsorbed),
		slog.Float64("total_sec", s.TotalSec),
		slog.Float64("mean_absorbed", s.MeanAbsorbed),
		slog.Float64("final_radius_avg", s.FinalRadiusAvg),
		slog.Float64("final_radius_std", s.FinalRadiusStd),
		slog.Float64("largest_radius", s.LargestRadius),
	)
}
