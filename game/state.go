package game

import (
	"log/slog"

	"github.com/parry-123/fish-eating-game/telemetry"
)

// State is the session state.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Start begins ticking. Only valid from Idle; a finished game needs Reset first.
func (g *Game) Start() {
	if g.state != Idle {
		return
	}
	g.state = Running
	g.clock.Reset()

	id := g.sessions.Begin(g.tick)
	slog.Info("session_started", "session", id, "seed", g.seed, "tick", g.tick)
}

// TogglePause switches between Running and Paused.
func (g *Game) TogglePause() {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
		g.clock.Reset()
	default:
		return
	}
	g.sink.PauseChanged(g.state == Paused)
}

// Reset returns to Idle with an empty world, a fresh player and zero score.
func (g *Game) Reset() {
	if g.sessions.Active() {
		g.endSession(telemetry.OutcomeAbandoned, 0)
	}

	g.resetWorld()
	g.player = g.newPlayer()
	g.score = 0
	g.state = Idle
	g.clock.Reset()

	g.renderer.Clear(g.width, g.height)
	g.present()

	g.sink.SessionReset()
	g.sink.ScoreChanged(g.score, g.SizeLevel())
}

// Restart is Reset followed by Start.
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}
