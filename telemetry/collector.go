package telemetry

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeCleared  Outcome = "cleared"   // every object absorbed; round reset
	OutcomeGameOver Outcome = "game_over" // touched a larger object
	OutcomeQuit     Outcome = "quit"      // window closed or tick limit reached
)

// Collector accumulates events within a round and produces RoundStats.
type Collector struct {
	dt float32

	round           int
	roundStartTick  int32
	absorbedRadii   []float64
	finalRadius     float32
	finalTarget     float32
	objectsRemained int

	history []RoundStats
}

// NewCollector creates a new round collector.
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(dt float32) *Collector {
	return &Collector{
		dt:    dt,
		round: 1,
	}
}

// Record feeds an event into the current round.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventAbsorb:
		c.absorbedRadii = append(c.absorbedRadii, float64(e.ObjectRadius))
		c.objectsRemained = e.Remaining
	case EventGameOver, EventQuit:
		c.objectsRemained = e.Remaining
	}
	c.finalRadius = e.PlayerRadius
}

// SetPlayer records the player's size at the end of the round.
func (c *Collector) SetPlayer(radius, target float32) {
	c.finalRadius = radius
	c.finalTarget = target
}

// Round returns the 1-based number of the round in progress.
func (c *Collector) Round() int {
	return c.round
}

// Absorbed returns the number of absorptions in the current round.
func (c *Collector) Absorbed() int {
	return len(c.absorbedRadii)
}

// EndRound closes the current round and starts the next one at tick.
func (c *Collector) EndRound(outcome Outcome, tick int32) RoundStats {
	mean, p50, maxR := ComputeRadiusStats(c.absorbedRadii)

	stats := RoundStats{
		Round:        c.round,
		StartTick:    c.roundStartTick,
		EndTick:      tick,
		DurationSec:  float64(tick-c.roundStartTick) * float64(c.dt),
		Outcome:      outcome,
		Absorbed:     len(c.absorbedRadii),
		Remaining:    c.objectsRemained,
		FinalRadius:  float64(c.finalRadius),
		FinalTarget:  float64(c.finalTarget),
		AbsorbedMean: mean,
		AbsorbedP50:  p50,
		AbsorbedMax:  maxR,
	}
	if outcome == OutcomeCleared {
		stats.Remaining = 0
	}

	c.history = append(c.history, stats)

	c.round++
	c.roundStartTick = tick
	c.absorbedRadii = c.absorbedRadii[:0]
	c.objectsRemained = 0

	return stats
}

// History returns the stats of every completed round, oldest first.
func (c *Collector) History() []RoundStats {
	return c.history
}

// Summary aggregates all completed rounds.
func (c *Collector) Summary() SessionSummary {
	return Summarize(c.history)
}
