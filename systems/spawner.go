package systems

import (
	"math"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/config"
)

// Rand is the random source used by the spawner. *math/rand.Rand satisfies it;
// tests supply scripted sequences.
type Rand interface {
	Float32() float32
}

// SpawnParams holds the spawner's tuning in hot-path form.
type SpawnParams struct {
	Chance       float32
	MinSize      float32
	SizeRange    float32
	MinSpeed     float32
	BaseSpeed    float32
	SpeedDivisor float32
	PaletteSize  int
}

// SpawnParamsFromConfig converts the spawn config section.
func SpawnParamsFromConfig(c config.SpawnConfig) SpawnParams {
	return SpawnParams{
		Chance:       float32(c.Chance),
		MinSize:      float32(c.MinSize),
		SizeRange:    float32(c.SizeRange),
		MinSpeed:     float32(c.MinSpeed),
		BaseSpeed:    float32(c.BaseSpeed),
		SpeedDivisor: float32(c.SpeedDivisor),
		PaletteSize:  len(c.Palette),
	}
}

// SpawnedFish is a fully initialised non-player fish ready to enter the world.
type SpawnedFish struct {
	Pos   components.Position
	Rot   components.Rotation
	Body  components.Body
	Swim  components.Swim
	Color uint8
}

// RollSpawn draws the per-tick spawn chance.
func RollSpawn(r Rand, p SpawnParams) bool {
	return r.Float32() < p.Chance
}

// FishSpeed returns the swim speed for a fish of the given size:
// larger fish are slower, never below MinSpeed.
func FishSpeed(size float32, p SpawnParams) float32 {
	speed := p.BaseSpeed - size/p.SpeedDivisor
	if speed < p.MinSpeed {
		speed = p.MinSpeed
	}
	return speed
}

// NewFish creates a fish just outside a random canvas edge.
// Draw order: size, axis, side, coordinate, color, heading.
// The heading is independent of the edge, so a fresh fish may swim away
// from the canvas.
func NewFish(r Rand, p SpawnParams, width, height float32) SpawnedFish {
	size := float32(float64(r.Float32())*float64(p.SizeRange) + float64(p.MinSize))
	if maxSize := p.MinSize + p.SizeRange; p.SizeRange > 0 && size >= maxSize {
		size = math.Nextafter32(maxSize, 0)
	}

	var x, y float32
	if r.Float32() < 0.5 {
		// left or right edge
		if r.Float32() < 0.5 {
			x = -size
		} else {
			x = width + size
		}
		y = r.Float32() * height
	} else {
		// top or bottom edge
		x = r.Float32() * width
		if r.Float32() < 0.5 {
			y = -size
		} else {
			y = height + size
		}
	}

	color := int(r.Float32() * float32(p.PaletteSize))
	if color >= p.PaletteSize {
		color = p.PaletteSize - 1
	}

	heading := r.Float32() * 2 * math.Pi

	return SpawnedFish{
		Pos:   components.Position{X: x, Y: y},
		Rot:   components.Rotation{Heading: heading},
		Body:  components.Body{Size: size},
		Swim:  components.Swim{Speed: FishSpeed(size, p)},
		Color: uint8(color),
	}
}
