package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/parry-123/fish-eating-game/camera"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/shape"
)

// Fish outlines are coarse on cells; fewer segments cost nothing visible.
const cellSegments = 4

const (
	fishRune  = '█'
	eyeRune   = '•'
	waterRune = ' '
)

var (
	waterStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(12, 42, 66))
	statusStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230)).Background(tcell.NewRGBColor(20, 20, 30))
	alertStyle  = statusStyle.Foreground(tcell.NewRGBColor(255, 90, 90)).Bold(true)
)

// Renderer draws frames onto a tcell screen. The canvas is stretched over
// every row but the last, which holds the status line.
type Renderer struct {
	screen  tcell.Screen
	cam     *camera.Camera
	palette []tcell.Style
	player  tcell.Style
	eye     tcell.Style
}

// NewRenderer creates a renderer for a canvas of canvasW x canvasH.
func NewRenderer(screen tcell.Screen, canvasW, canvasH float32, palette []color.RGBA, player color.RGBA) *Renderer {
	r := &Renderer{
		screen:  screen,
		palette: make([]tcell.Style, len(palette)),
	}
	for i, c := range palette {
		r.palette[i] = waterStyle.Foreground(rgb(c))
	}
	r.player = waterStyle.Foreground(rgb(player))
	r.eye = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(player))

	w, h := screen.Size()
	r.cam = camera.NewStretched(float32(w), float32(playRows(h)), canvasW, canvasH)
	return r
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func playRows(h int) int {
	if h < 2 {
		return 1
	}
	return h - 1
}

// Camera returns the cell mapping, shared with Input.
func (r *Renderer) Camera() *camera.Camera {
	return r.cam
}

// Resize refits the canvas after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.cam.Resize(float32(w), float32(playRows(h)))
}

// SetCanvas updates the canvas size.
func (r *Renderer) SetCanvas(canvasW, canvasH float32) {
	r.cam.SetCanvas(canvasW, canvasH)
}

// Draw renders the frame and the status line. It does not call Show.
func (r *Renderer) Draw(frame game.Frame, board *game.Scoreboard, state game.State) {
	w, h := r.screen.Size()
	rows := playRows(h)
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, waterRune, nil, waterStyle)
		}
	}

	for _, f := range frame.Fish {
		r.drawFish(f, w, rows)
	}
	r.drawStatus(board, state, w, h-1)
}

// drawFish fills every cell whose centre falls inside the fish outline.
func (r *Renderer) drawFish(f game.FishView, w, rows int) {
	o := shape.Fish(f.X, f.Y, f.Size, f.Heading, cellSegments)
	minX, minY, maxX, maxY := o.Bounds()
	x0, y0 := r.cam.WorldToScreen(minX, minY)
	x1, y1 := r.cam.WorldToScreen(maxX, maxY)

	cx0 := clampInt(int(math.Floor(float64(x0))), 0, w-1)
	cx1 := clampInt(int(math.Ceil(float64(x1))), 0, w-1)
	cy0 := clampInt(int(math.Floor(float64(y0))), 0, rows-1)
	cy1 := clampInt(int(math.Ceil(float64(y1))), 0, rows-1)

	style := r.player
	if !f.Player {
		style = r.palette[int(f.Color)%len(r.palette)]
	}

	hit := false
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			wx, wy := r.cam.ScreenToWorld(float32(cx)+0.5, float32(cy)+0.5)
			if o.Contains(wx, wy) {
				r.screen.SetContent(cx, cy, fishRune, nil, style)
				hit = true
			}
		}
	}

	// Tiny fish can fall between cell centres; keep them visible.
	if !hit {
		sx, sy := r.cam.WorldToScreen(f.X, f.Y)
		cx, cy := int(sx), int(sy)
		if cx >= 0 && cx < w && cy >= 0 && cy < rows {
			r.screen.SetContent(cx, cy, fishRune, nil, style)
		}
	}

	if f.Player {
		ex, ey := r.cam.WorldToScreen(o.Eye.X, o.Eye.Y)
		cx, cy := int(ex), int(ey)
		if cx >= 0 && cx < w && cy >= 0 && cy < rows {
			r.screen.SetContent(cx, cy, eyeRune, nil, r.eye)
		}
	}
}

func (r *Renderer) drawStatus(board *game.Scoreboard, state game.State, w, y int) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
	x := drawText(r.screen, 1, y, board.Line(), statusStyle)

	switch {
	case board.Over:
		drawText(r.screen, x+3, y, fmt.Sprintf("GAME OVER  final score %d  Enter: restart", board.FinalScore), alertStyle)
	case state == game.Paused:
		drawText(r.screen, x+3, y, "PAUSED  Space: resume", alertStyle)
	case state == game.Idle:
		drawText(r.screen, x+3, y, "Enter: start  q: quit", statusStyle)
	}
}

// drawText writes s from (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
