package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
)

// Session outcomes.
const (
	OutcomeEaten     = "eaten"     // ended by a lethal collision
	OutcomeAbandoned = "abandoned" // reset or quit before game over
)

// SessionRecord summarizes one play-through from Start to its end.
type SessionRecord struct {
	SessionID    string  `csv:"session_id"`
	Seed         int64   `csv:"seed"`
	StartTick    int32   `csv:"start_tick"`
	EndTick      int32   `csv:"end_tick"`
	DurationSec  float64 `csv:"duration_sec"`
	Outcome      string  `csv:"outcome"`
	Score        int     `csv:"score"`
	FinalSize    float64 `csv:"final_size"`
	SizeLevel    int     `csv:"size_level"`
	FishEaten    int     `csv:"fish_eaten"`
	LargestEaten float64 `csv:"largest_eaten"`
	KillerSize   float64 `csv:"killer_size"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r SessionRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.SessionID),
		slog.String("outcome", r.Outcome),
		slog.Int("score", r.Score),
		slog.Float64("duration_sec", r.DurationSec),
		slog.Int("fish_eaten", r.FishEaten),
		slog.Float64("final_size", r.FinalSize),
	)
}

// SessionTracker follows the active session. Ticks keep counting across
// sessions, so a record's duration is measured from its start tick.
type SessionTracker struct {
	seed    int64
	dt      float32
	current *SessionRecord
	newID   func() string
}

// NewSessionTracker creates a tracker for a game seeded with seed.
func NewSessionTracker(seed int64, dt float32) *SessionTracker {
	return &SessionTracker{
		seed:  seed,
		dt:    dt,
		newID: uuid.NewString,
	}
}

// Begin opens a new session at tick and returns its ID.
// Any session still open is discarded.
func (st *SessionTracker) Begin(tick int32) string {
	st.current = &SessionRecord{
		SessionID: st.newID(),
		Seed:      st.seed,
		StartTick: tick,
	}
	return st.current.SessionID
}

// Active reports whether a session is open.
func (st *SessionTracker) Active() bool {
	return st.current != nil
}

// Current returns the open session, or nil.
func (st *SessionTracker) Current() *SessionRecord {
	return st.current
}

// RecordEat notes a fish of the given size eaten in the open session.
func (st *SessionTracker) RecordEat(size float32) {
	if st.current == nil {
		return
	}
	st.current.FishEaten++
	if float64(size) > st.current.LargestEaten {
		st.current.LargestEaten = float64(size)
	}
}

// End closes the open session and returns its record.
// killerSize is only meaningful for OutcomeEaten.
// Returns false if no session was open.
func (st *SessionTracker) End(tick int32, outcome string, score int, size float32, level int, killerSize float32) (SessionRecord, bool) {
	if st.current == nil {
		return SessionRecord{}, false
	}
	rec := *st.current
	st.current = nil

	rec.EndTick = tick
	rec.DurationSec = float64(tick-rec.StartTick) * float64(st.dt)
	rec.Outcome = outcome
	rec.Score = score
	rec.FinalSize = float64(size)
	rec.SizeLevel = level
	if outcome == OutcomeEaten {
		rec.KillerSize = float64(killerSize)
	}
	return rec, true
}
