package systems

import (
	"testing"

	"github.com/parry-123/fish-eating-game/components"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		a      components.Position
		aSize  float32
		b      components.Position
		bSize  float32
		expect bool
	}{
		{"same center", components.Position{X: 10, Y: 10}, 5, components.Position{X: 10, Y: 10}, 5, true},
		{"overlapping", components.Position{X: 0, Y: 0}, 20, components.Position{X: 30, Y: 0}, 15, true},
		{"touching is not overlap", components.Position{X: 0, Y: 0}, 20, components.Position{X: 35, Y: 0}, 15, false},
		{"apart", components.Position{X: 0, Y: 0}, 10, components.Position{X: 100, Y: 100}, 10, false},
		{"diagonal just inside", components.Position{X: 0, Y: 0}, 5, components.Position{X: 6, Y: 8}, 5.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.aSize, tt.b, tt.bSize); got != tt.expect {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.expect)
			}
			if got := Overlaps(tt.b, tt.bSize, tt.a, tt.aSize); got != tt.expect {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestOverlapsSymmetricGrid(t *testing.T) {
	sizes := []float32{1, 10, 20.5, 39.9}
	for x := float32(-50); x <= 50; x += 12.5 {
		for y := float32(-50); y <= 50; y += 12.5 {
			for _, sa := range sizes {
				for _, sb := range sizes {
					a := components.Position{X: 0, Y: 0}
					b := components.Position{X: x, Y: y}
					if Overlaps(a, sa, b, sb) != Overlaps(b, sb, a, sa) {
						t.Fatalf("asymmetric at b=(%v,%v) sizes %v/%v", x, y, sa, sb)
					}
				}
			}
		}
	}
}
