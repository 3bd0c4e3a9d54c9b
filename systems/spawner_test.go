package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/parry-123/fish-eating-game/config"
)

func defaultSpawnParams() SpawnParams {
	return SpawnParamsFromConfig(config.Defaults().Spawn)
}

func TestRollSpawn(t *testing.T) {
	p := defaultSpawnParams()
	if !RollSpawn(newSeqRand(t, 0.019), p) {
		t.Error("draw 0.019 should spawn at chance 0.02")
	}
	if RollSpawn(newSeqRand(t, 0.02), p) {
		t.Error("draw 0.02 should not spawn at chance 0.02")
	}
}

func TestFishSpeed(t *testing.T) {
	p := defaultSpawnParams()
	tests := []struct {
		size, want float32
	}{
		{10, 6},
		{25, 4.5},
		{39.9, 3.01},
		{60, 2}, // floor
	}
	for _, tt := range tests {
		if got := FishSpeed(tt.size, p); !approx(got, tt.want) {
			t.Errorf("FishSpeed(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestNewFishVerticalEdges(t *testing.T) {
	p := defaultSpawnParams()

	// size, axis(vertical), side(left), y, color, heading
	r := newSeqRand(t, 0.5, 0.1, 0.2, 0.25, 0.0, 0.5)
	f := NewFish(r, p, 800, 600)

	if !approx(f.Body.Size, 25) {
		t.Errorf("size = %v, want 25", f.Body.Size)
	}
	if !approx(f.Pos.X, -25) || !approx(f.Pos.Y, 150) {
		t.Errorf("pos = (%v, %v), want (-25, 150)", f.Pos.X, f.Pos.Y)
	}
	if !approx(f.Swim.Speed, 4.5) {
		t.Errorf("speed = %v, want 4.5", f.Swim.Speed)
	}
	if f.Color != 0 {
		t.Errorf("color = %d, want 0", f.Color)
	}
	if !approx(f.Rot.Heading, math.Pi) {
		t.Errorf("heading = %v, want pi", f.Rot.Heading)
	}

	// right edge
	r = newSeqRand(t, 0, 0.4, 0.9, 0.5, 0.99, 0)
	f = NewFish(r, p, 800, 600)
	if !approx(f.Pos.X, 810) || !approx(f.Pos.Y, 300) {
		t.Errorf("pos = (%v, %v), want (810, 300)", f.Pos.X, f.Pos.Y)
	}
	if f.Color != 4 {
		t.Errorf("color = %d, want 4", f.Color)
	}
}

func TestNewFishHorizontalEdges(t *testing.T) {
	p := defaultSpawnParams()

	// size, axis(horizontal), x, side(bottom), color, heading
	r := newSeqRand(t, 1.0/3, 0.7, 0.5, 0.6, 0.45, 0.25)
	f := NewFish(r, p, 800, 600)

	if !approx(f.Body.Size, 20) {
		t.Errorf("size = %v, want 20", f.Body.Size)
	}
	if !approx(f.Pos.X, 400) || !approx(f.Pos.Y, 620) {
		t.Errorf("pos = (%v, %v), want (400, 620)", f.Pos.X, f.Pos.Y)
	}
	if f.Color != 2 {
		t.Errorf("color = %d, want 2", f.Color)
	}
	if !approx(f.Rot.Heading, math.Pi/2) {
		t.Errorf("heading = %v, want pi/2", f.Rot.Heading)
	}

	// top edge
	r = newSeqRand(t, 0, 0.5, 0.25, 0.3, 0.2, 0)
	f = NewFish(r, p, 800, 600)
	if !approx(f.Pos.X, 200) || !approx(f.Pos.Y, -10) {
		t.Errorf("pos = (%v, %v), want (200, -10)", f.Pos.X, f.Pos.Y)
	}
}

func TestNewFishInvariants(t *testing.T) {
	p := defaultSpawnParams()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		f := NewFish(rng, p, 800, 600)
		if f.Body.Size < 10 || f.Body.Size >= 40 {
			t.Fatalf("size %v outside [10, 40)", f.Body.Size)
		}
		if f.Swim.Speed < 2 {
			t.Fatalf("speed %v below floor", f.Swim.Speed)
		}
		if int(f.Color) >= p.PaletteSize {
			t.Fatalf("color %d outside palette", f.Color)
		}
		onEdge := approx(f.Pos.X, -f.Body.Size) || approx(f.Pos.X, 800+f.Body.Size) ||
			approx(f.Pos.Y, -f.Body.Size) || approx(f.Pos.Y, 600+f.Body.Size)
		if !onEdge {
			t.Fatalf("fish at (%v, %v) size %v not on a spawn edge", f.Pos.X, f.Pos.Y, f.Body.Size)
		}
	}
}

func TestNewFishSizeStaysBelowRangeTop(t *testing.T) {
	p := defaultSpawnParams()
	top := math.Nextafter32(1, 0)
	rng := newSeqRand(t, top, 0.2, 0.2, 0.5, 0.1, 0.3)

	f := NewFish(rng, p, 800, 600)
	if f.Body.Size >= p.MinSize+p.SizeRange {
		t.Errorf("size = %v, want below %v", f.Body.Size, p.MinSize+p.SizeRange)
	}
	if f.Body.Size < 39.99 {
		t.Errorf("size = %v, want just below %v", f.Body.Size, p.MinSize+p.SizeRange)
	}
}
