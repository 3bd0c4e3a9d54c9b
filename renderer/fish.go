// Package renderer draws game frames with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/camera"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/shape"
)

// FishRenderer draws the fish of a frame onto the canvas area of the window.
type FishRenderer struct {
	palette []rl.Color
	player  rl.Color
	cam     *camera.Camera

	// Reused vertex buffer for triangle fans
	fan []rl.Vector2
}

// NewFishRenderer creates a renderer for the given palette and player colour.
func NewFishRenderer(cam *camera.Camera, palette []color.RGBA, player color.RGBA) *FishRenderer {
	r := &FishRenderer{
		cam:    cam,
		player: rl.NewColor(player.R, player.G, player.B, player.A),
	}
	for _, c := range palette {
		r.palette = append(r.palette, rl.NewColor(c.R, c.G, c.B, c.A))
	}
	return r
}

// DrawFrame draws every fish of f, clipped to the canvas.
func (r *FishRenderer) DrawFrame(f game.Frame) {
	x, y, w, h := r.cam.CanvasRect()
	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	for _, fish := range f.Fish {
		if !r.cam.IsVisible(fish.X, fish.Y, fish.Size*1.5) {
			continue
		}
		r.drawFish(fish)
	}
	rl.EndScissorMode()
}

func (r *FishRenderer) drawFish(f game.FishView) {
	col := r.player
	if !f.Player {
		col = r.palette[int(f.Color)%len(r.palette)]
	}

	o := shape.Fish(f.X, f.Y, f.Size, f.Heading, shape.DefaultSegments)

	// Body as a fan around the centre
	r.fan = r.fan[:0]
	r.fan = append(r.fan, r.toScreen(o.Center))
	for _, p := range o.Body {
		r.fan = append(r.fan, r.toScreen(p))
	}
	r.fan = append(r.fan, r.toScreen(o.Body[0]))
	rl.DrawTriangleFan(r.fan, col)

	rl.DrawTriangle(r.toScreen(o.Tail[0]), r.toScreen(o.Tail[1]), r.toScreen(o.Tail[2]), col)

	if f.Player {
		eye := r.toScreen(o.Eye)
		rl.DrawCircleV(eye, o.EyeRadius*r.cam.ScaleX, rl.White)
		rl.DrawCircleV(eye, o.PupilRadius*r.cam.ScaleX, rl.Black)
	}
}

func (r *FishRenderer) toScreen(p shape.Point) rl.Vector2 {
	sx, sy := r.cam.WorldToScreen(p.X, p.Y)
	return rl.Vector2{X: sx, Y: sy}
}
