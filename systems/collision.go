package systems

import "github.com/parry-123/fish-eating-game/components"

// Overlaps reports whether two fish bodies intersect: the distance between
// centers is strictly less than the sum of their sizes.
func Overlaps(a components.Position, aSize float32, b components.Position, bSize float32) bool {
	return distance(a.X, a.Y, b.X, b.Y) < aSize+bSize
}
