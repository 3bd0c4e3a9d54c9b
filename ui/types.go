// Package ui draws the score line, overlays and control buttons with raylib.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Title       rl.Color
	TextColor   rl.Color
	Muted       rl.Color
	Danger      rl.Color
	Padding     int32
	FontSize    int32
	TitleSize   int32
	ButtonW     float32
	ButtonH     float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		Title:       rl.Color{R: 255, G: 107, B: 107, A: 255},
		TextColor:   rl.RayWhite,
		Muted:       rl.LightGray,
		Danger:      rl.Color{R: 230, G: 80, B: 80, A: 255},
		Padding:     10,
		FontSize:    18,
		TitleSize:   32,
		ButtonW:     110,
		ButtonH:     30,
	}
}
