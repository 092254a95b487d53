package game

import (
	"log/slog"

	"github.com/pthm-cable/absorb/telemetry"
)

// recordEvent feeds an event to the round collector.
func (g *Game) recordEvent(e telemetry.Event) {
	g.collector.Record(e)
}

// closeRound ends the round in the collector, then logs and writes its stats.
func (g *Game) closeRound(outcome telemetry.Outcome) {
	g.collector.SetPlayer(g.player.Radius, g.player.TargetRadius)
	stats := g.collector.EndRound(outcome, g.tick)

	if g.logStats {
		stats.LogStats()
	}

	if err := g.outputManager.WriteRound(stats); err != nil {
		slog.Error("failed to write round", "error", err)
	}
}

// flushPerf writes a perf record every full window of frames.
func (g *Game) flushPerf() {
	if g.tick == g.lastPerfFlush || !g.perf.Due(g.tick) {
		return
	}
	g.lastPerfFlush = g.tick

	perfStats := g.perf.Stats()

	if g.logStats {
		perfStats.LogStats()
	}

	if err := g.outputManager.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
