package systems

import (
	"math"
	"testing"

	"github.com/parry-123/fish-eating-game/components"
)

func TestKeyVector(t *testing.T) {
	tests := []struct {
		name   string
		keys   keySet
		dx, dy float32
	}{
		{"none", keySet{}, 0, 0},
		{"arrow left", keySet{KeyArrowLeft: true}, -5, 0},
		{"letter d", keySet{KeyD: true}, 5, 0},
		{"arrow and letter same direction count once", keySet{KeyArrowUp: true, KeyW: true}, 0, -5},
		{"opposites cancel", keySet{KeyArrowLeft: true, KeyArrowRight: true}, 0, 0},
		{"diagonal not normalised", keySet{KeyArrowRight: true, KeyS: true}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := KeyVector(tt.keys, 5)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("KeyVector = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestResolveInputKeys(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)

	moved := ResolveInput(&p, keySet{KeyArrowRight: true, KeyArrowDown: true}, Pointer{}, 800, 600)
	if !moved {
		t.Fatal("expected player to move")
	}
	if p.X != 105 || p.Y != 105 {
		t.Errorf("position = (%v, %v), want (105, 105)", p.X, p.Y)
	}
	if !approx(p.Heading, math.Pi/4) {
		t.Errorf("heading = %v, want pi/4", p.Heading)
	}
}

func TestResolveInputNoInputKeepsState(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)
	p.Heading = 1.25

	if ResolveInput(&p, keySet{}, Pointer{}, 800, 600) {
		t.Error("expected no movement")
	}
	if p.X != 100 || p.Y != 100 || p.Heading != 1.25 {
		t.Errorf("player changed without input: %+v", p)
	}

	if ResolveInput(&p, nil, Pointer{}, 800, 600) {
		t.Error("nil key state should not move the player")
	}
}

func TestResolveInputPointerOverridesKeys(t *testing.T) {
	p := components.NewPlayer(100, 100, 20, 5)

	// Keys say left, pointer is straight below.
	ResolveInput(&p, keySet{KeyArrowLeft: true}, Pointer{X: 100, Y: 300, Active: true}, 800, 600)

	if !approx(p.X, 100) || !approx(p.Y, 105) {
		t.Errorf("position = (%v, %v), want (100, 105)", p.X, p.Y)
	}
	if !approx(p.Heading, math.Pi/2) {
		t.Errorf("heading = %v, want pi/2", p.Heading)
	}
}

func TestResolveInputPointerStepHasFullSpeed(t *testing.T) {
	p := components.NewPlayer(400, 300, 20, 5)
	ResolveInput(&p, nil, Pointer{X: 700, Y: 700, Active: true}, 800, 600)

	step := math.Hypot(float64(p.X-400), float64(p.Y-300))
	if math.Abs(step-5) > 1e-3 {
		t.Errorf("pointer step length = %v, want 5", step)
	}
}

func TestResolveInputClampsToCanvas(t *testing.T) {
	const w, h = 400, 300
	dirs := []keySet{
		{KeyArrowLeft: true, KeyArrowUp: true},
		{KeyArrowRight: true, KeyArrowDown: true},
		{KeyA: true, KeyS: true},
		{KeyD: true, KeyW: true},
	}

	for _, keys := range dirs {
		p := components.NewPlayer(200, 150, 20, 5)
		for i := 0; i < 200; i++ {
			ResolveInput(&p, keys, Pointer{}, w, h)
			if p.X < p.Size || p.X > w-p.Size || p.Y < p.Size || p.Y > h-p.Size {
				t.Fatalf("player at (%v, %v) escaped [size, dim-size]", p.X, p.Y)
			}
		}
	}

	p := components.NewPlayer(25, 25, 20, 5)
	ResolveInput(&p, keySet{KeyArrowLeft: true, KeyArrowUp: true}, Pointer{}, w, h)
	if p.X != 20 || p.Y != 20 {
		t.Errorf("clamped position = (%v, %v), want (20, 20)", p.X, p.Y)
	}
}

func TestKeyString(t *testing.T) {
	if KeyArrowLeft.String() != "ArrowLeft" || KeyS.String() != "s" {
		t.Error("unexpected key names")
	}
	if Key(200).String() != "Unknown" {
		t.Error("out of range key should be Unknown")
	}
}
