package game

import "fmt"

// Scoreboard is a Sink that keeps what the HUD shows: score line, pause flag
// and game-over overlay.
type Scoreboard struct {
	Score      int
	SizeLevel  int
	Paused     bool
	Over       bool
	FinalScore int
}

// NewScoreboard creates a scoreboard showing a fresh session.
func NewScoreboard(sizeLevel int) *Scoreboard {
	return &Scoreboard{SizeLevel: sizeLevel}
}

func (s *Scoreboard) ScoreChanged(score, sizeLevel int) {
	s.Score = score
	s.SizeLevel = sizeLevel
}

func (s *Scoreboard) GameOver(finalScore int) {
	s.Over = true
	s.FinalScore = finalScore
}

func (s *Scoreboard) PauseChanged(paused bool) {
	s.Paused = paused
}

func (s *Scoreboard) SessionReset() {
	s.Over = false
	s.Paused = false
	s.FinalScore = 0
}

// Line returns the score line.
func (s *Scoreboard) Line() string {
	return fmt.Sprintf("Score: %d   Size: %d", s.Score, s.SizeLevel)
}
