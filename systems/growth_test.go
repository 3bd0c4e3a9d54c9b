package systems

import (
	"testing"

	"github.com/parry-123/fish-eating-game/components"
)

var defaultGrowth = GrowthParams{Increment: 0.5, LevelDivisor: 10}

func TestResolveGrowthEatsSmallerFish(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 110, Y: 100}, Size: 15}}

	res := ResolveGrowth(&p, prey, defaultGrowth)

	if res.Lethal {
		t.Fatal("eating a smaller fish must not be lethal")
	}
	if res.ScoreGained != 15 {
		t.Errorf("score gained = %d, want 15", res.ScoreGained)
	}
	if p.Size != 20.5 {
		t.Errorf("player size = %v, want 20.5", p.Size)
	}
	if len(res.Eaten) != 1 || res.Eaten[0].ID != 1 {
		t.Errorf("eaten = %+v, want fish 1", res.Eaten)
	}
}

func TestResolveGrowthScoreIsFloorOfSize(t *testing.T) {
	p := components.NewPlayer(100, 100, 30, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 100, Y: 100}, Size: 17.9}}

	res := ResolveGrowth(&p, prey, defaultGrowth)
	if res.ScoreGained != 17 {
		t.Errorf("score gained = %d, want 17", res.ScoreGained)
	}
}

func TestResolveGrowthLargerFishIsLethal(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 120, Y: 100}, Size: 25}}

	res := ResolveGrowth(&p, prey, defaultGrowth)

	if !res.Lethal {
		t.Fatal("expected lethal collision")
	}
	if res.ScoreGained != 0 || len(res.Eaten) != 0 {
		t.Errorf("no score change expected, got %+v", res)
	}
	if p.Size != 20 {
		t.Errorf("player size = %v, want 20", p.Size)
	}
	if res.Killer.ID != 1 {
		t.Errorf("killer = %d, want 1", res.Killer.ID)
	}
}

func TestResolveGrowthEqualSizeIsLethal(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 100, Y: 100}, Size: 20}}

	if res := ResolveGrowth(&p, prey, defaultGrowth); !res.Lethal {
		t.Error("equal size must be lethal")
	}
}

func TestResolveGrowthNewestFirstAndShortCircuit(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{
		{ID: 1, Pos: components.Position{X: 100, Y: 100}, Size: 10}, // oldest, never reached
		{ID: 2, Pos: components.Position{X: 100, Y: 110}, Size: 30}, // lethal
		{ID: 3, Pos: components.Position{X: 105, Y: 100}, Size: 12}, // newest, eaten first
	}

	res := ResolveGrowth(&p, prey, defaultGrowth)

	if !res.Lethal || res.Killer.ID != 2 {
		t.Fatalf("expected fish 2 to be lethal, got %+v", res)
	}
	if len(res.Eaten) != 1 || res.Eaten[0].ID != 3 {
		t.Errorf("eaten = %+v, want only fish 3", res.Eaten)
	}
	if res.ScoreGained != 12 {
		t.Errorf("score gained = %d, want 12", res.ScoreGained)
	}
	if p.Size != 20.5 {
		t.Errorf("player size = %v, want 20.5", p.Size)
	}
}

func TestResolveGrowthUsesGrownSize(t *testing.T) {
	// The newest fish is eaten first; the growth lets the player beat the
	// next fish, which would otherwise be equal in size.
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{
		{ID: 1, Pos: components.Position{X: 100, Y: 100}, Size: 20.25},
		{ID: 2, Pos: components.Position{X: 100, Y: 100}, Size: 10},
	}

	res := ResolveGrowth(&p, prey, defaultGrowth)

	if res.Lethal {
		t.Fatal("grown player should survive")
	}
	if len(res.Eaten) != 2 {
		t.Fatalf("eaten %d fish, want 2", len(res.Eaten))
	}
	if res.ScoreGained != 30 {
		t.Errorf("score gained = %d, want 30", res.ScoreGained)
	}
	if p.Size != 21 {
		t.Errorf("player size = %v, want 21", p.Size)
	}
}

func TestResolveGrowthIgnoresDistantFish(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 500, Y: 500}, Size: 35}}

	res := ResolveGrowth(&p, prey, defaultGrowth)
	if res.Lethal || len(res.Eaten) != 0 {
		t.Errorf("distant fish should be ignored, got %+v", res)
	}
}

func TestSizeLevel(t *testing.T) {
	tests := []struct {
		size float32
		want int
	}{
		{20, 2},
		{20.5, 2},
		{29.5, 2},
		{30, 3},
		{9.5, 0},
	}
	for _, tt := range tests {
		if got := SizeLevel(tt.size, 10); got != tt.want {
			t.Errorf("SizeLevel(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
