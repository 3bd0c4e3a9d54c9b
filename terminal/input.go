package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/parry-123/fish-eating-game/camera"
	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/systems"
)

// Input is a game.InputSource fed from tcell events. Terminals report key
// presses and auto-repeats but no releases, so a key counts as held until
// hold has passed since its last press.
type Input struct {
	cam  *camera.Camera
	hold time.Duration
	now  func() time.Time

	pressed [systems.KeyCount]time.Time

	target components.Position
	active bool
}

// NewInput creates an input source. Mouse cells are mapped through cam.
func NewInput(cam *camera.Camera, hold time.Duration) *Input {
	return &Input{cam: cam, hold: hold, now: time.Now}
}

// KeyDown reports whether k was pressed within the hold window.
func (in *Input) KeyDown(k systems.Key) bool {
	if k >= systems.KeyCount {
		return false
	}
	t := in.pressed[k]
	return !t.IsZero() && in.now().Sub(t) < in.hold
}

// Pointer returns the mouse drag target in canvas coordinates.
func (in *Input) Pointer() (components.Position, bool) {
	return in.target, in.active
}

// Press marks k as held from now.
func (in *Input) Press(k systems.Key) {
	if k < systems.KeyCount {
		in.pressed[k] = in.now()
	}
}

// Mouse updates the pointer from a mouse event at cell (x, y). Like the
// desktop, a drag must start on the canvas.
func (in *Input) Mouse(x, y int, down bool) {
	if !down {
		in.active = false
		return
	}
	sx, sy := float32(x)+0.5, float32(y)+0.5
	if !in.active && !in.cam.Contains(sx, sy) {
		return
	}
	wx, wy := in.cam.ScreenToWorld(sx, sy)
	in.target = components.Position{X: wx, Y: wy}
	in.active = true
}

// Release forgets all held keys and the pointer.
func (in *Input) Release() {
	in.pressed = [systems.KeyCount]time.Time{}
	in.active = false
}

// command is what a key event asks the frontend to do.
type command uint8

const (
	cmdNone command = iota
	cmdMove
	cmdStart
	cmdPause
	cmdAutopilot
	cmdSlower
	cmdFaster
	cmdQuit
)

// decodeKey maps a tcell key (and rune for KeyRune) to a command. For
// cmdMove the movement key is returned too.
func decodeKey(key tcell.Key, r rune) (command, systems.Key) {
	switch key {
	case tcell.KeyLeft:
		return cmdMove, systems.KeyArrowLeft
	case tcell.KeyRight:
		return cmdMove, systems.KeyArrowRight
	case tcell.KeyUp:
		return cmdMove, systems.KeyArrowUp
	case tcell.KeyDown:
		return cmdMove, systems.KeyArrowDown
	case tcell.KeyEnter:
		return cmdStart, 0
	case tcell.KeyTab:
		return cmdAutopilot, 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, 0
	case tcell.KeyRune:
	default:
		return cmdNone, 0
	}

	switch r {
	case 'a', 'A':
		return cmdMove, systems.KeyA
	case 'd', 'D':
		return cmdMove, systems.KeyD
	case 'w', 'W':
		return cmdMove, systems.KeyW
	case 's', 'S':
		return cmdMove, systems.KeyS
	case ' ', 'p', 'P':
		return cmdPause, 0
	case ',', '<':
		return cmdSlower, 0
	case '.', '>':
		return cmdFaster, 0
	case 'q', 'Q':
		return cmdQuit, 0
	}
	return cmdNone, 0
}
