package camera

import (
	"math"
	"testing"
)

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name    string
		windowW float32
		wantW   float32
		wantH   float32
	}{
		{"wide window caps at max", 1920, 800, 600},
		{"narrow window keeps margin", 400, 360, 270},
		{"exactly max plus margin", 840, 800, 600},
		{"degenerate window", 10, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitCanvas(tt.windowW, 800, 40, 0.75)
			if w != tt.wantW || math.Abs(float64(h-tt.wantH)) > 0.001 {
				t.Errorf("FitCanvas(%v) = %vx%v, want %vx%v", tt.windowW, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewCentersCanvas(t *testing.T) {
	cam := New(840, 680, 800, 600)

	if cam.ScaleX != 1 || cam.ScaleY != 1 {
		t.Errorf("expected scale 1, got %v/%v", cam.ScaleX, cam.ScaleY)
	}
	// Canvas center should map to screen center
	sx, sy := cam.WorldToScreen(400, 300)
	if math.Abs(float64(sx-420)) > 0.01 || math.Abs(float64(sy-340)) > 0.01 {
		t.Errorf("expected screen center (420, 340), got (%f, %f)", sx, sy)
	}
}

func TestUniformScaleShrinksToFit(t *testing.T) {
	cam := New(400, 600, 800, 600)

	if cam.ScaleX != 0.5 || cam.ScaleY != 0.5 {
		t.Errorf("expected scale 0.5, got %v/%v", cam.ScaleX, cam.ScaleY)
	}
	x, y, w, h := cam.CanvasRect()
	if x != 0 || y != 150 || w != 400 || h != 300 {
		t.Errorf("canvas rect = (%v, %v, %v, %v)", x, y, w, h)
	}
}

func TestStretchedFillsViewport(t *testing.T) {
	cam := NewStretched(80, 24, 800, 600)

	if math.Abs(float64(cam.ScaleX-0.1)) > 1e-6 || math.Abs(float64(cam.ScaleY-0.04)) > 1e-6 {
		t.Errorf("scale = %v/%v, want 0.1/0.04", cam.ScaleX, cam.ScaleY)
	}
	sx, sy := cam.WorldToScreen(800, 600)
	if math.Abs(float64(sx-80)) > 0.01 || math.Abs(float64(sy-24)) > 0.01 {
		t.Errorf("far corner maps to (%v, %v), want (80, 24)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	for _, cam := range []*Camera{New(1000, 700, 800, 600), NewStretched(120, 40, 800, 600)} {
		for _, tc := range []struct{ sx, sy float32 }{{10, 10}, {60, 20}, {99, 33}} {
			wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
			sx, sy := cam.WorldToScreen(wx, wy)
			if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
				t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
					tc.sx, tc.sy, wx, wy, sx, sy)
			}
		}
	}
}

func TestContains(t *testing.T) {
	cam := New(840, 680, 800, 600)

	if !cam.Contains(420, 340) {
		t.Error("screen center should be on the canvas")
	}
	if cam.Contains(5, 5) {
		t.Error("margin should not be on the canvas")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 800, 600)

	tests := []struct {
		x, y, r float32
		want    bool
	}{
		{400, 300, 10, true},
		{-15, 300, 10, false},
		{-5, 300, 10, true},
		{810, 610, 20, true},
		{400, 650, 20, false},
	}
	for _, tt := range tests {
		if got := cam.IsVisible(tt.x, tt.y, tt.r); got != tt.want {
			t.Errorf("IsVisible(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.r, got, tt.want)
		}
	}
}

func TestResizeRefits(t *testing.T) {
	cam := New(840, 680, 800, 600)
	cam.Resize(400, 680)

	if cam.ScaleX != 0.5 {
		t.Errorf("scale after resize = %v, want 0.5", cam.ScaleX)
	}

	cam.SetCanvas(380, 300)
	if cam.ScaleX != 1 || cam.OffsetX != 10 {
		t.Errorf("after SetCanvas: scale %v offset %v", cam.ScaleX, cam.OffsetX)
	}
}
