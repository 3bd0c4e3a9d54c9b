package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCenteredText draws text horizontally centred on cx.
func (r *Renderer) DrawCenteredText(text string, cx, y, size int32, col rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, col)
}

// Dim darkens a screen rectangle.
func (r *Renderer) Dim(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, rl.Color{R: 0, G: 0, B: 0, A: 110})
}
