package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of a game step.
type Phase uint8

// Step phases in execution order.
const (
	PhaseSpawn Phase = iota
	PhaseInput
	PhaseMove
	PhaseCollide
	PhaseCull
	PhaseTelemetry
	PhaseCount
)

var phaseNames = [PhaseCount]string{"spawn", "input", "move", "collide", "cull", "telemetry"}

func (p Phase) String() string {
	if p < PhaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// noPhase marks that no phase is being timed.
const noPhase = PhaseCount

// tickSample is the timing of one tick.
type tickSample struct {
	total  time.Duration
	phases [PhaseCount]time.Duration
}

// PerfCollector times step phases over a rolling window of ticks. It keeps
// fixed-size arrays so timing a tick allocates nothing.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase

	lastFrame time.Time
	frameDur  time.Duration

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over window ticks
// (60 when window < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		ring:  make([]tickSample, window),
		phase: noPhase,
		now:   time.Now,
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = tickSample{}
	p.phase = noPhase
}

// StartPhase closes the running phase, if any, and starts timing ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = ph
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase < PhaseCount {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick in the window.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.phase = noPhase
	p.current.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame marks a displayed frame; frontends call it once per frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frameDur = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarises the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Average time per phase and its share of the average tick in percent.
	PhaseAvg [PhaseCount]time.Duration
	PhasePct [PhaseCount]float64

	TicksPerSecond float64

	// Last frame interval; zero when no frontend records frames.
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frameDur}
	if p.frameDur > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDur)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [PhaseCount]time.Duration
	for i, sample := range p.ring[:p.count] {
		total += sample.total
		if i == 0 || sample.total < s.MinTickDuration {
			s.MinTickDuration = sample.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, sample.total)
		for ph, d := range sample.phases {
			phaseSum[ph] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogStats logs the summary as a "perf" event.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// LogValue implements slog.LogValuer. Phases under 0.1% are left out.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph := Phase(0); ph < PhaseCount; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRecord is one row of perf.csv.
type PerfRecord struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	SpawnPct     float64 `csv:"spawn_pct"`
	InputPct     float64 `csv:"input_pct"`
	MovePct      float64 `csv:"move_pct"`
	CollidePct   float64 `csv:"collide_pct"`
	CullPct      float64 `csv:"cull_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// Record flattens the summary into a perf.csv row.
func (s PerfStats) Record(windowEnd int32) PerfRecord {
	return PerfRecord{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		SpawnPct:     s.PhasePct[PhaseSpawn],
		InputPct:     s.PhasePct[PhaseInput],
		MovePct:      s.PhasePct[PhaseMove],
		CollidePct:   s.PhasePct[PhaseCollide],
		CullPct:      s.PhasePct[PhaseCull],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
