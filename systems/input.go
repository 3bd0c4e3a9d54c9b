package systems

import "github.com/parry-123/fish-eating-game/components"

// Key identifies a physical key the game reads as held state.
type Key uint8

const (
	KeyArrowLeft Key = iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyCount
)

var keyNames = [KeyCount]string{
	"ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown", "a", "d", "w", "s",
}

// String returns the browser-style key name.
func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// KeyState answers "is key K currently held".
type KeyState interface {
	KeyDown(k Key) bool
}

// Pointer is the current pointer/touch target, if any.
type Pointer struct {
	X, Y   float32
	Active bool
}

// KeyVector returns the displacement requested by held direction keys.
// Opposite keys cancel; diagonals are not normalised.
func KeyVector(keys KeyState, speed float32) (dx, dy float32) {
	if keys == nil {
		return 0, 0
	}
	if keys.KeyDown(KeyArrowLeft) || keys.KeyDown(KeyA) {
		dx -= speed
	}
	if keys.KeyDown(KeyArrowRight) || keys.KeyDown(KeyD) {
		dx += speed
	}
	if keys.KeyDown(KeyArrowUp) || keys.KeyDown(KeyW) {
		dy -= speed
	}
	if keys.KeyDown(KeyArrowDown) || keys.KeyDown(KeyS) {
		dy += speed
	}
	return dx, dy
}

// ResolveInput moves the player for one tick. An active pointer overrides the
// keys with a full-speed step toward the target. The player stays at least its
// size away from every canvas edge. Returns whether the player moved.
func ResolveInput(p *components.Player, keys KeyState, ptr Pointer, width, height float32) bool {
	dx, dy := KeyVector(keys, p.Speed)

	if ptr.Active {
		angle := atan2(ptr.Y-p.Y, ptr.X-p.X)
		dx, dy = polar(angle, p.Speed)
	}

	if dx == 0 && dy == 0 {
		return false
	}

	p.Heading = atan2(dy, dx)
	p.X = clampFloat(p.X+dx, p.Size, width-p.Size)
	p.Y = clampFloat(p.Y+dy, p.Size, height-p.Size)
	return true
}
