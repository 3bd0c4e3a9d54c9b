package desktop

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/camera"
	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/systems"
)

// keyBindings maps game keys to raylib keys.
var keyBindings = [systems.KeyCount]int32{
	systems.KeyArrowLeft:  rl.KeyLeft,
	systems.KeyArrowRight: rl.KeyRight,
	systems.KeyArrowUp:    rl.KeyUp,
	systems.KeyArrowDown:  rl.KeyDown,
	systems.KeyA:          rl.KeyA,
	systems.KeyD:          rl.KeyD,
	systems.KeyW:          rl.KeyW,
	systems.KeyS:          rl.KeyS,
}

// Input is a game.InputSource reading raylib keyboard, mouse and touch state.
type Input struct {
	cam *camera.Camera

	target components.Position
	active bool
}

// NewInput creates an input source mapping pointer positions through cam.
func NewInput(cam *camera.Camera) *Input {
	return &Input{cam: cam}
}

// KeyDown reports whether a movement key is held.
func (in *Input) KeyDown(k systems.Key) bool {
	if k >= systems.KeyCount {
		return false
	}
	return rl.IsKeyDown(keyBindings[k])
}

// Pointer returns the touch or held-mouse target in canvas coordinates.
func (in *Input) Pointer() (components.Position, bool) {
	return in.target, in.active
}

// Poll samples the pointer once per display frame. A press must start on
// the canvas; a drag keeps steering even when it leaves it.
func (in *Input) Poll() {
	var pos rl.Vector2
	down := false
	if rl.GetTouchPointCount() > 0 {
		pos = rl.GetTouchPosition(0)
		down = true
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		pos = rl.GetMousePosition()
		down = true
	}

	if !down {
		in.active = false
		return
	}
	if !in.active && !in.cam.Contains(pos.X, pos.Y) {
		return
	}

	wx, wy := in.cam.ScreenToWorld(pos.X, pos.Y)
	in.target = components.Position{X: wx, Y: wy}
	in.active = true
}
