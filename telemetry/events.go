// Package telemetry provides per-round statistics, performance sampling and
// CSV output for a play session.
package telemetry

import "log/slog"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventAbsorb EventType = iota
	EventRoundReset
	EventGameOver
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventAbsorb:
		return "absorb"
	case EventRoundReset:
		return "round_reset"
	case EventGameOver:
		return "game_over"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type         EventType
	Tick         int32
	PlayerRadius float32

	// Optional fields depending on event type
	ObjectRadius float32 // absorbed or fatal object
	Remaining    int     // objects left after the event
}

// NewAbsorbEvent creates an absorption event.
func NewAbsorbEvent(tick int32, playerRadius, objectRadius float32, remaining int) Event {
	return Event{
		Type:         EventAbsorb,
		Tick:         tick,
		PlayerRadius: playerRadius,
		ObjectRadius: objectRadius,
		Remaining:    remaining,
	}
}

// NewRoundResetEvent creates an event for a cleared round.
func NewRoundResetEvent(tick int32, playerRadius float32) Event {
	return Event{
		Type:         EventRoundReset,
		Tick:         tick,
		PlayerRadius: playerRadius,
	}
}

// NewGameOverEvent creates an event for contact with a larger object.
func NewGameOverEvent(tick int32, playerRadius, objectRadius float32, remaining int) Event {
	return Event{
		Type:         EventGameOver,
		Tick:         tick,
		PlayerRadius: playerRadius,
		ObjectRadius: objectRadius,
		Remaining:    remaining,
	}
}

// NewQuitEvent creates an event for a session closed by the user.
func NewQuitEvent(tick int32, playerRadius float32, remaining int) Event {
	return Event{
		Type:         EventQuit,
		Tick:         tick,
		PlayerRadius: playerRadius,
		Remaining:    remaining,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Int("tick", int(e.Tick)),
		slog.Float64("player_radius", float64(e.PlayerRadius)),
	}
	if e.Type == EventAbsorb || e.Type == EventGameOver {
		attrs = append(attrs, slog.Float64("object_radius", float64(e.ObjectRadius)))
	}
	if e.Type != EventRoundReset {
		attrs = append(attrs, slog.Int("remaining", e.Remaining))
	}
	return slog.GroupValue(attrs...)
}
