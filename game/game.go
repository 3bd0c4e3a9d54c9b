// Package game owns the session: the fish world, the player, the state
// machine and the fixed-timestep tick loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/systems"
	"github.com/parry-123/fish-eating-game/telemetry"
)

// maxStepsPerUpdate bounds the interactive speed multiplier.
const maxStepsPerUpdate = 10

// Options configures a game instance.
type Options struct {
	Config *config.Config // nil = embedded defaults
	Seed   int64

	// Canvas size; zero uses the configured headless size.
	Width, Height float32

	Renderer Renderer
	Input    InputSource
	Sink     Sink

	// Autopilot steers the player instead of the input pointer.
	Autopilot bool

	LogStats       bool
	StatsWindowSec float64 // 0 = config telemetry.stats_window
	OutputDir      string  // empty = no CSV output
	StepsPerUpdate int     // ticks per scheduled tick (speed multiplier)
	StatsCallback  func(telemetry.WindowStats)

	// SessionCallback receives every finished session record.
	SessionCallback func(telemetry.SessionRecord)
}

// Game holds the complete game state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	world       *ecs.World
	fishMapper  *ecs.Map5[components.Position, components.Rotation, components.Body, components.Swim, components.Organism]
	fishFilter  *ecs.Filter5[components.Position, components.Rotation, components.Body, components.Swim, components.Organism]
	fishCount   int
	nextID      uint32
	spawnCapped bool

	player components.Player
	score  int
	state  State
	tick   int32

	width, height float32

	spawnParams  systems.SpawnParams
	growthParams systems.GrowthParams
	steerParams  systems.SteerParams
	cullMargin   float32

	renderer  Renderer
	input     InputSource
	sink      Sink
	autopilot bool

	clock          *Clock
	stepsPerUpdate int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	sessions      *telemetry.SessionTracker
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	sessionDone   func(telemetry.SessionRecord)
}

// NewGameWithOptions creates a game in the Idle state.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		seed:           opts.Seed,
		width:          opts.Width,
		height:         opts.Height,
		spawnParams:    systems.SpawnParamsFromConfig(cfg.Spawn),
		growthParams:   systems.GrowthParamsFromConfig(cfg.Growth),
		cullMargin:     float32(cfg.Cull.MarginFactor),
		renderer:       opts.Renderer,
		input:          opts.Input,
		sink:           opts.Sink,
		autopilot:      opts.Autopilot,
		clock:          NewClock(cfg.Tick.Rate, cfg.Tick.MaxCatchUp),
		stepsPerUpdate: opts.StepsPerUpdate,
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		sessionDone:    opts.SessionCallback,
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = cfg.Derived.HeadlessW32, cfg.Derived.HeadlessH32
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.input == nil {
		g.input = nopInput{}
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	g.updateSteerParams()

	statsWindowSec := opts.StatsWindowSec
	if statsWindowSec <= 0 {
		statsWindowSec = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindowSec, cfg.Derived.DT32)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.sessions = telemetry.NewSessionTracker(opts.Seed, cfg.Derived.DT32)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.outputManager = om

	g.resetWorld()
	g.player = g.newPlayer()
	return g, nil
}

// Resize changes the canvas bounds. Fish left outside the new bounds are
// wrapped back across the canvas on the next tick.
func (g *Game) Resize(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.updateSteerParams()
	slog.Debug("canvas_resized", "width", width, "height", height)
}

func (g *Game) updateSteerParams() {
	g.steerParams = systems.SteerParams{
		DangerRadius: float32(g.cfg.Autopilot.DangerRadius),
		Width:        g.width,
		Height:       g.height,
	}
}

// SetSink replaces the display sink. nil discards events.
func (g *Game) SetSink(s Sink) {
	if s == nil {
		s = nopSink{}
	}
	g.sink = s
}

// SetStepsPerUpdate sets the speed multiplier, clamped to [1, 10].
func (g *Game) SetStepsPerUpdate(n int) {
	if n < 1 {
		n = 1
	}
	if n > maxStepsPerUpdate {
		n = maxStepsPerUpdate
	}
	g.stepsPerUpdate = n
}

// StepsPerUpdate returns the speed multiplier.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetAutopilot toggles autopilot steering.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
}

// Autopilot reports whether autopilot steering is on.
func (g *Game) Autopilot() bool {
	return g.autopilot
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// SizeLevel returns floor(player size / level divisor).
func (g *Game) SizeLevel() int {
	return systems.SizeLevel(g.player.Size, g.growthParams.LevelDivisor)
}

// Player returns a copy of the player fish.
func (g *Game) Player() components.Player {
	return g.player
}

// FishCount returns the number of live non-player fish.
func (g *Game) FishCount() int {
	return g.fishCount
}

// Tick returns the number of ticks run since the game was created.
func (g *Game) Tick() int32 {
	return g.tick
}

// Bounds returns the canvas size.
func (g *Game) Bounds() (width, height float32) {
	return g.width, g.height
}

// Seed returns the RNG seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// SessionID returns the ID of the running session, or "" when none is open.
func (g *Game) SessionID() string {
	if cur := g.sessions.Current(); cur != nil {
		return cur.SessionID
	}
	return ""
}

// PerfStats returns the rolling tick timing statistics.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// RecordFrame records a display frame for FPS reporting.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// Unload closes any open session and the output files.
func (g *Game) Unload() {
	if g.sessions.Active() {
		g.endSession(telemetry.OutcomeAbandoned, 0)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
