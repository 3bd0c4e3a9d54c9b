package systems

import "github.com/parry-123/fish-eating-game/components"

// OutOfBounds reports whether a fish has drifted more than marginFactor*size
// outside any canvas edge and should be removed.
func OutOfBounds(pos components.Position, size, width, height, marginFactor float32) bool {
	m := size * marginFactor
	inside := pos.X > -m && pos.X < width+m &&
		pos.Y > -m && pos.Y < height+m
	return !inside
}
