package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/game"
)

// Action is a command requested through the UI.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionTogglePause
	ActionRestart
)

// Controls draws the Start/Pause/Resume/Restart buttons.
type Controls struct {
	theme Theme
}

// NewControls creates the button bar.
func NewControls() *Controls {
	return &Controls{theme: DefaultTheme()}
}

// Draw renders the buttons valid in state below the canvas and returns the
// action clicked this frame, if any.
func (c *Controls) Draw(state game.State, canvasX, canvasY, canvasW, canvasH float32) Action {
	th := c.theme
	cx := canvasX + canvasW/2
	y := canvasY + canvasH + 5

	switch state {
	case game.Idle:
		if gui.Button(rl.Rectangle{X: cx - th.ButtonW/2, Y: y, Width: th.ButtonW, Height: th.ButtonH}, "Start") {
			return ActionStart
		}
	case game.Running, game.Paused:
		label := "Pause"
		if state == game.Paused {
			label = "Resume"
		}
		if gui.Button(rl.Rectangle{X: cx - th.ButtonW - 5, Y: y, Width: th.ButtonW, Height: th.ButtonH}, label) {
			return ActionTogglePause
		}
		if gui.Button(rl.Rectangle{X: cx + 5, Y: y, Width: th.ButtonW, Height: th.ButtonH}, "Restart") {
			return ActionRestart
		}
	case game.GameOver:
		// Inside the game-over panel
		cy := canvasY + canvasH/2
		if gui.Button(rl.Rectangle{X: cx - th.ButtonW/2, Y: cy + 25, Width: th.ButtonW, Height: th.ButtonH}, "Restart") {
			return ActionRestart
		}
	}
	return ActionNone
}

// Apply runs action against g.
func Apply(g *game.Game, action Action) {
	switch action {
	case ActionStart:
		g.Start()
	case ActionTogglePause:
		g.TogglePause()
	case ActionRestart:
		g.Restart()
	}
}
