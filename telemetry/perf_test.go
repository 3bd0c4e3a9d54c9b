package telemetry

import (
	"math"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPerf(window int) (*PerfCollector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(window)
	pc.now = clock.now
	return pc, clock
}

func TestPerfCollectorTracksPhases(t *testing.T) {
	pc, clock := newTestPerf(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSpawn)
		clock.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseMove)
		clock.advance(300 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 400*time.Microsecond {
		t.Errorf("avg tick = %v, want 400µs", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseSpawn] != 100*time.Microsecond {
		t.Errorf("spawn avg = %v, want 100µs", stats.PhaseAvg[PhaseSpawn])
	}
	if math.Abs(stats.PhasePct[PhaseMove]-75) > 1e-9 {
		t.Errorf("move pct = %v, want 75", stats.PhasePct[PhaseMove])
	}
	if stats.PhasePct[PhaseCull] != 0 {
		t.Errorf("cull pct = %v, want 0 for an untimed phase", stats.PhasePct[PhaseCull])
	}
	if math.Abs(stats.TicksPerSecond-2500) > 1e-6 {
		t.Errorf("ticks/sec = %v, want 2500", stats.TicksPerSecond)
	}
}

func TestPerfCollectorMinMax(t *testing.T) {
	pc, clock := newTestPerf(10)

	for _, d := range []time.Duration{300, 100, 200} {
		pc.StartTick()
		pc.StartPhase(PhaseCollide)
		clock.advance(d * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.MinTickDuration != 100*time.Microsecond || stats.MaxTickDuration != 300*time.Microsecond {
		t.Errorf("min/max = %v/%v, want 100µs/300µs", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	pc, clock := newTestPerf(3)

	for i := 1; i <= 8; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseCull)
		clock.advance(time.Duration(i) * time.Millisecond)
		pc.EndTick()
	}

	if pc.count != 3 {
		t.Errorf("count = %d, want 3", pc.count)
	}
	// Only ticks 6, 7 and 8 remain.
	if got := pc.Stats().AvgTickDuration; got != 7*time.Millisecond {
		t.Errorf("avg tick = %v, want 7ms", got)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()

	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats for an empty collector, got %+v", stats)
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc, clock := newTestPerf(10)

	pc.RecordFrame()
	if pc.Stats().FPS != 0 {
		t.Error("FPS should be zero after a single frame")
	}
	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("frame duration = %v, want 20ms", stats.FrameDuration)
	}
	if math.Abs(stats.FPS-50) > 1e-9 {
		t.Errorf("FPS = %v, want 50", stats.FPS)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseCollide.String() != "collide" {
		t.Errorf("PhaseCollide = %q", PhaseCollide.String())
	}
	if PhaseCount.String() != "unknown" {
		t.Errorf("PhaseCount = %q, want unknown", PhaseCount.String())
	}
}

func TestPerfStatsRecord(t *testing.T) {
	var s PerfStats
	s.AvgTickDuration = 250 * time.Microsecond
	s.PhasePct[PhaseCollide] = 40
	s.PhasePct[PhaseCull] = 5

	rec := s.Record(600)
	if rec.WindowEnd != 600 || rec.AvgTickUS != 250 {
		t.Errorf("unexpected header fields: %+v", rec)
	}
	if rec.CollidePct != 40 || rec.CullPct != 5 || rec.SpawnPct != 0 {
		t.Errorf("unexpected phase pcts: %+v", rec)
	}
}
