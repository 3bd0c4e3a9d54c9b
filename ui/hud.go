package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/game"
)

// HUDData holds the per-frame values the HUD shows besides the scoreboard.
type HUDData struct {
	State     game.State
	FPS       int32
	Autopilot bool
	Muted     bool

	// Canvas rectangle in screen coordinates
	CanvasX, CanvasY, CanvasW, CanvasH float32
	ScreenWidth, ScreenHeight          int32
}

// HUD renders the score line and the state overlays.
type HUD struct {
	renderer *Renderer
	board    *game.Scoreboard
}

// NewHUD creates a HUD showing board.
func NewHUD(board *game.Scoreboard) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		board:    board,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme
	x := int32(data.CanvasX)
	top := int32(data.CanvasY) - th.FontSize - 8
	if top < 4 {
		top = 4
	}

	rl.DrawText(h.board.Line(), x, top, th.FontSize, th.TextColor)

	var flags string
	if data.Autopilot {
		flags += "AUTO  "
	}
	if data.Muted {
		flags += "MUTE  "
	}
	status := fmt.Sprintf("%sFPS %d", flags, data.FPS)
	sw := rl.MeasureText(status, th.FontSize-4)
	rl.DrawText(status, int32(data.CanvasX+data.CanvasW)-sw, top+2, th.FontSize-4, th.Muted)

	cx := int32(data.CanvasX + data.CanvasW/2)
	cy := int32(data.CanvasY + data.CanvasH/2)

	switch data.State {
	case game.Idle:
		h.renderer.DrawCenteredText("Eat smaller fish. Avoid bigger ones.", cx, cy-40, th.FontSize, th.TextColor)
		h.renderer.DrawCenteredText("Arrows/WASD or drag to swim  -  Enter to start", cx, cy-12, th.FontSize-4, th.Muted)
	case game.Paused:
		h.renderer.Dim(int32(data.CanvasX), int32(data.CanvasY), int32(data.CanvasW), int32(data.CanvasH))
		h.renderer.DrawCenteredText("PAUSED", cx, cy-th.TitleSize/2, th.TitleSize, th.TextColor)
	case game.GameOver:
		h.drawGameOver(cx, cy)
	}
}

// drawGameOver draws the final score panel. The Restart button is drawn by
// Controls inside it.
func (h *HUD) drawGameOver(cx, cy int32) {
	th := h.renderer.Theme
	w, ht := int32(280), int32(150)
	h.renderer.DrawPanel(cx-w/2, cy-ht/2, w, ht)
	h.renderer.DrawCenteredText("Game Over", cx, cy-ht/2+th.Padding*2, th.TitleSize, th.Danger)
	h.renderer.DrawCenteredText(fmt.Sprintf("Final score: %d", h.board.FinalScore), cx, cy-8, th.FontSize, th.TextColor)
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-20, 12, rl.Gray)
}
