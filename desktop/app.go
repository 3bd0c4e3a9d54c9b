// Package desktop runs the game in a raylib window.
package desktop

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/parry-123/fish-eating-game/camera"
	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/renderer"
	"github.com/parry-123/fish-eating-game/ui"
)

const controlsLegend = "Enter: start/restart  Space: pause  Tab: autopilot  ,/.: speed  F11: fullscreen"

// App owns the window-side state around a game.
type App struct {
	cfg *config.Config
	g   *game.Game

	frames   *game.FrameBuffer
	cam      *camera.Camera
	input    *Input
	fish     *renderer.FishRenderer
	water    *renderer.WaterBackground
	board    *game.Scoreboard
	hud      *ui.HUD
	controls *ui.Controls

	muted bool

	screenWidth, screenHeight float32
}

// Run opens the window and plays until it is closed. sinks receive game
// events alongside the HUD; muted is shown on the HUD.
func Run(cfg *config.Config, opts game.Options, muted bool, sinks ...game.Sink) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Fish Eating Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	app := &App{
		cfg:          cfg,
		frames:       game.NewFrameBuffer(),
		controls:     ui.NewControls(),
		muted:        muted,
		screenWidth:  float32(rl.GetScreenWidth()),
		screenHeight: float32(rl.GetScreenHeight()),
	}

	canvasW, canvasH := app.fitCanvas()
	app.cam = camera.New(app.screenWidth, app.screenHeight, canvasW, canvasH)
	app.input = NewInput(app.cam)
	app.fish = renderer.NewFishRenderer(app.cam, cfg.Derived.Palette, cfg.Derived.PlayerColor)
	app.water = renderer.NewWaterBackground(app.cam)

	opts.Config = cfg
	opts.Width, opts.Height = canvasW, canvasH
	opts.Renderer = app.frames
	opts.Input = app.input

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()
	app.g = g

	app.board = game.NewScoreboard(g.SizeLevel())
	app.hud = ui.NewHUD(app.board)
	g.SetSink(append(game.Sinks{app.board}, sinks...))

	slog.Info("window opened",
		"canvas_w", canvasW,
		"canvas_h", canvasH,
		"seed", g.Seed(),
	)

	for !rl.WindowShouldClose() {
		app.handleInput()
		g.Update(float64(rl.GetFrameTime()))
		g.RecordFrame()
		app.draw()
	}
	return nil
}

// fitCanvas sizes the canvas from the window width.
func (a *App) fitCanvas() (w, h float32) {
	c := a.cfg.Canvas
	return camera.FitCanvas(a.screenWidth, float32(c.MaxWidth), float32(c.Margin), float32(c.Aspect))
}

// handleInput processes window, command keys and pointer input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		switch a.g.State() {
		case game.Idle:
			a.g.Start()
		case game.GameOver:
			a.g.Restart()
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.g.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.g.SetAutopilot(!a.g.Autopilot())
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		a.g.SetStepsPerUpdate(a.g.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.g.SetStepsPerUpdate(a.g.StepsPerUpdate() + 1)
	}

	a.input.Poll()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h

	canvasW, canvasH := a.fitCanvas()
	a.cam.Resize(w, h)
	a.cam.SetCanvas(canvasW, canvasH)
	a.g.Resize(canvasW, canvasH)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 30, B: 48, A: 255})

	state := a.g.State()
	a.water.Draw(state == game.Running)
	a.fish.DrawFrame(a.frames.Frame())

	x, y, w, h := a.cam.CanvasRect()
	a.hud.Draw(ui.HUDData{
		State:        state,
		FPS:          rl.GetFPS(),
		Autopilot:    a.g.Autopilot(),
		Muted:        a.muted,
		CanvasX:      x,
		CanvasY:      y,
		CanvasW:      w,
		CanvasH:      h,
		ScreenWidth:  int32(a.screenWidth),
		ScreenHeight: int32(a.screenHeight),
	})
	ui.Apply(a.g, a.controls.Draw(state, x, y, w, h))
	a.hud.DrawControls(int32(a.screenHeight), controlsLegend)

	rl.EndDrawing()
}
