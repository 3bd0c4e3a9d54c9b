// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/systems"
)

// App owns the terminal-side state around a game. Only the loop goroutine
// touches it; tcell events arrive over a channel.
type App struct {
	screen tcell.Screen
	g      *game.Game
	frames *game.FrameBuffer
	input  *Input
	render *Renderer
	board  *game.Scoreboard

	tickInterval time.Duration
}

// Run takes over the terminal and plays until the user quits. sinks receive
// game events alongside the status line.
func Run(cfg *config.Config, opts game.Options, sinks ...game.Sink) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	app, err := NewApp(screen, cfg, opts, sinks...)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Loop()
	return nil
}

// NewApp creates a game drawing onto an initialized screen.
func NewApp(screen tcell.Screen, cfg *config.Config, opts game.Options, sinks ...game.Sink) (*App, error) {
	a := &App{
		screen:       screen,
		frames:       game.NewFrameBuffer(),
		tickInterval: cfg.Derived.TickInterval,
	}

	// The canvas keeps its headless size; the camera stretches it over the cells.
	canvasW, canvasH := cfg.Derived.HeadlessW32, cfg.Derived.HeadlessH32
	a.render = NewRenderer(screen, canvasW, canvasH, cfg.Derived.Palette, cfg.Derived.PlayerColor)
	a.input = NewInput(a.render.Camera(), cfg.Derived.KeyHold)

	opts.Config = cfg
	opts.Width, opts.Height = canvasW, canvasH
	opts.Renderer = a.frames
	opts.Input = a.input

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return nil, err
	}
	a.g = g
	a.board = game.NewScoreboard(g.SizeLevel())
	g.SetSink(append(game.Sinks{a.board}, sinks...))

	w, h := screen.Size()
	slog.Info("terminal opened", "cols", w, "rows", h, "seed", g.Seed())
	return a, nil
}

// Game returns the running game.
func (a *App) Game() *game.Game {
	return a.g
}

// Close releases the game.
func (a *App) Close() {
	a.g.Unload()
}

// Loop runs until a quit key is pressed or the screen is finalized.
func (a *App) Loop() {
	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(a.screen, events, done)

	last := time.Now()
	a.Frame(0)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Frame(now.Sub(last).Seconds())
			last = now
		}
	}
}

// eventPoller is the part of tcell.Screen the event pump needs.
type eventPoller interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards polled events until the screen is finalized or done
// is closed. events is closed when the screen stops delivering events.
func pumpEvents(p eventPoller, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := p.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one tcell event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, key := decodeKey(ev.Key(), ev.Rune())
		return a.apply(cmd, key)
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.Mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		a.render.Resize()
		a.screen.Sync()
	}
	return true
}

// apply runs a decoded command. It returns false for cmdQuit.
func (a *App) apply(cmd command, key systems.Key) bool {
	switch cmd {
	case cmdMove:
		a.input.Press(key)
	case cmdStart:
		switch a.g.State() {
		case game.Idle:
			a.g.Start()
		case game.GameOver:
			a.input.Release()
			a.g.Restart()
		}
	case cmdPause:
		a.g.TogglePause()
	case cmdAutopilot:
		a.g.SetAutopilot(!a.g.Autopilot())
	case cmdSlower:
		a.g.SetStepsPerUpdate(a.g.StepsPerUpdate() - 1)
	case cmdFaster:
		a.g.SetStepsPerUpdate(a.g.StepsPerUpdate() + 1)
	case cmdQuit:
		return false
	}
	return true
}

// Frame advances the game by dt seconds and redraws.
func (a *App) Frame(dt float64) {
	a.g.Update(dt)
	a.g.RecordFrame()
	a.render.Draw(a.frames.Frame(), a.board, a.g.State())
	a.screen.Show()
}
