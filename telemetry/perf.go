package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one stage of a frame, in execution order.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhasePlayer
	PhaseObjects
	PhaseCleanup
	PhaseRender
	PhaseTelemetry

	numPhases
)

var phaseNames = [numPhases]string{"input", "player", "objects", "cleanup", "render", "telemetry"}

func (p Phase) String() string {
	if p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// frameSample is the timing of one frame.
type frameSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times frame phases over a rolling window of frames.
type PerfCollector struct {
	window  []frameSample
	next    int
	filled  int
	current frameSample

	frameStart time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	// Wall-clock gap between presented frames (windowed mode)
	lastPresent time.Time
	presentGap  time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{window: make([]frameSample, windowSize)}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.current = frameSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndFrame closes the frame and stores it in the window.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	p.closePhase(now)
	p.inPhase = false
	p.current.total = now.Sub(p.frameStart)

	p.window[p.next] = p.current
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

// Due reports whether frame closes a full window, i.e. whether a perf record
// should be flushed.
func (p *PerfCollector) Due(frame int32) bool {
	return frame > 0 && int(frame)%len(p.window) == 0
}

// MarkPresented records that a frame reached the screen.
func (p *PerfCollector) MarkPresented() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats is the window average.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	// Share of the average frame spent in each phase, in percent
	PhasePct [numPhases]float64

	// Frames the update could sustain per second
	FramesPerSec float64

	// Presented frames per second; zero when headless
	FPS float64
}

// Stats averages the frames currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.presentGap > 0 {
		s.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phases [numPhases]time.Duration
	for i, f := range p.window[:p.filled] {
		total += f.total
		if i == 0 || f.total < s.MinFrame {
			s.MinFrame = f.total
		}
		s.MaxFrame = max(s.MaxFrame, f.total)
		for ph, d := range f.phases {
			phases[ph] += d
		}
	}

	s.AvgFrame = total / time.Duration(p.filled)
	if total > 0 {
		for ph, d := range phases {
			s.PhasePct[ph] = float64(d) / float64(total) * 100
		}
	}
	if s.AvgFrame > 0 {
		s.FramesPerSec = float64(time.Second) / float64(s.AvgFrame)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int("frames_per_sec", int(s.FramesPerSec)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the window average using slog.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgFrameUS   int64   `csv:"avg_frame_us"`
	MinFrameUS   int64   `csv:"min_frame_us"`
	MaxFrameUS   int64   `csv:"max_frame_us"`
	FramesPerSec float64 `csv:"frames_per_sec"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	PlayerPct    float64 `csv:"player_pct"`
	ObjectsPct   float64 `csv:"objects_pct"`
	CleanupPct   float64 `csv:"cleanup_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at frame windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgFrameUS:   s.AvgFrame.Microseconds(),
		MinFrameUS:   s.MinFrame.Microseconds(),
		MaxFrameUS:   s.MaxFrame.Microseconds(),
		FramesPerSec: s.FramesPerSec,
		FPS:          s.FPS,
		InputPct:     s.PhasePct[PhaseInput],
		PlayerPct:    s.PhasePct[PhasePlayer],
		ObjectsPct:   s.PhasePct[PhaseObjects],
		CleanupPct:   s.PhasePct[PhaseCleanup],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
