package systems

import (
	"testing"

	"github.com/parry-123/fish-eating-game/components"
)

func TestSteerChasesNearestFood(t *testing.T) {
	p := components.NewPlayer(400, 300, 20, 5)
	prey := []Prey{
		{ID: 1, Pos: components.Position{X: 700, Y: 300}, Size: 10},
		{ID: 2, Pos: components.Position{X: 450, Y: 350}, Size: 12},
	}

	target, ok := Steer(p, prey, SteerParams{DangerRadius: 80, Width: 800, Height: 600})
	if !ok {
		t.Fatal("expected a target")
	}
	if target != prey[1].Pos {
		t.Errorf("target = %+v, want fish 2 at %+v", target, prey[1].Pos)
	}
}

func TestSteerFleesThreat(t *testing.T) {
	p := components.NewPlayer(400, 300, 20, 5)
	prey := []Prey{
		{ID: 1, Pos: components.Position{X: 300, Y: 300}, Size: 10}, // food to the left
		{ID: 2, Pos: components.Position{X: 460, Y: 300}, Size: 30}, // threat to the right
	}

	target, ok := Steer(p, prey, SteerParams{DangerRadius: 80, Width: 800, Height: 600})
	if !ok {
		t.Fatal("expected a target")
	}
	if target.X >= p.X {
		t.Errorf("flee target x = %v, want left of player (%v)", target.X, p.X)
	}
	if !approx(target.Y, 300) {
		t.Errorf("flee target y = %v, want 300", target.Y)
	}
}

func TestSteerIgnoresDistantThreat(t *testing.T) {
	p := components.NewPlayer(400, 300, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 700, Y: 300}, Size: 30}}

	if _, ok := Steer(p, prey, SteerParams{DangerRadius: 80, Width: 800, Height: 600}); ok {
		t.Error("no food and no close threat should yield no target")
	}
}

func TestSteerFleeTargetStaysOnCanvas(t *testing.T) {
	p := components.NewPlayer(25, 25, 20, 5)
	prey := []Prey{{ID: 1, Pos: components.Position{X: 60, Y: 60}, Size: 25}}

	target, ok := Steer(p, prey, SteerParams{DangerRadius: 80, Width: 800, Height: 600})
	if !ok {
		t.Fatal("expected a target")
	}
	if target.X < 0 || target.Y < 0 {
		t.Errorf("flee target (%v, %v) left the canvas", target.X, target.Y)
	}
}
