package game

import (
	"fmt"
	"testing"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/systems"
)

// recordingSink records sink events as strings.
type recordingSink struct {
	events []string
}

func (s *recordingSink) ScoreChanged(score, sizeLevel int) {
	s.events = append(s.events, fmt.Sprintf("score %d %d", score, sizeLevel))
}
func (s *recordingSink) GameOver(finalScore int) {
	s.events = append(s.events, fmt.Sprintf("game_over %d", finalScore))
}
func (s *recordingSink) PauseChanged(paused bool) {
	s.events = append(s.events, fmt.Sprintf("paused %v", paused))
}
func (s *recordingSink) SessionReset() {
	s.events = append(s.events, "reset")
}

func (s *recordingSink) last() string {
	if len(s.events) == 0 {
		return ""
	}
	return s.events[len(s.events)-1]
}

// scriptedInput is an InputSource with fixed keys and pointer.
type scriptedInput struct {
	keys    map[systems.Key]bool
	pointer *components.Position
}

func (in *scriptedInput) KeyDown(k systems.Key) bool { return in.keys[k] }
func (in *scriptedInput) Pointer() (components.Position, bool) {
	if in.pointer == nil {
		return components.Position{}, false
	}
	return *in.pointer, true
}

// quietConfig returns defaults with random spawning disabled.
func quietConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Spawn.Chance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, sink Sink) *Game {
	t.Helper()
	if cfg == nil {
		cfg = quietConfig()
	}
	g, err := NewGameWithOptions(Options{
		Config: cfg,
		Seed:   1,
		Width:  800,
		Height: 600,
		Sink:   sink,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

// placeFish adds a stationary fish.
func placeFish(g *Game, x, y, size float32) {
	g.addFish(systems.SpawnedFish{
		Pos:  components.Position{X: x, Y: y},
		Body: components.Body{Size: size},
		Swim: components.Swim{Speed: 0},
	})
}
