package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/camera"
)

// WaterBackground fills the canvas with a vertical gradient and slowly
// drifting light bands.
type WaterBackground struct {
	cam     *camera.Camera
	top     rl.Color
	bottom  rl.Color
	band    rl.Color
	border  rl.Color
	nBands  int
	started float64
}

// NewWaterBackground creates a water background for the camera's canvas.
func NewWaterBackground(cam *camera.Camera) *WaterBackground {
	return &WaterBackground{
		cam:     cam,
		top:     rl.Color{R: 135, G: 206, B: 235, A: 255},
		bottom:  rl.Color{R: 30, G: 110, B: 170, A: 255},
		band:    rl.Color{R: 255, G: 255, B: 255, A: 18},
		border:  rl.Color{R: 20, G: 60, B: 90, A: 255},
		nBands:  5,
		started: rl.GetTime(),
	}
}

// Draw renders the background. When animate is false the bands hold still.
func (w *WaterBackground) Draw(animate bool) {
	x, y, width, height := w.cam.CanvasRect()
	ix, iy, iw, ih := int32(x), int32(y), int32(width), int32(height)

	rl.DrawRectangleGradientV(ix, iy, iw, ih, w.top, w.bottom)

	t := float32(0)
	if animate {
		t = float32(rl.GetTime() - w.started)
	}
	bandH := height / float32(w.nBands*4)
	for i := 0; i < w.nBands; i++ {
		phase := float32(i) / float32(w.nBands)
		offset := float32(math.Sin(float64(t*0.3+phase*2*math.Pi))) * bandH
		by := y + (phase+0.1)*height + offset
		rl.DrawRectangle(ix, int32(by), iw, int32(bandH), w.band)
	}

	rl.DrawRectangleLines(ix-1, iy-1, iw+2, ih+2, w.border)
}
