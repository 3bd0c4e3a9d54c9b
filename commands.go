package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/parry-123/fish-eating-game/audio"
	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/desktop"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/terminal"
)

var (
	// play flags
	autopilot bool
	mute      bool

	// headless flags
	maxTicks       int
	stepsPerUpdate int
	maxSessions    int

	// term flags
	logFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Opens a resizable window. Enter starts or restarts, Space pauses, Tab
toggles the autopilot, comma and period change the speed, F11 toggles
fullscreen.`,
	RunE: runPlay,
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without graphics under the autopilot",
	Long: `Runs the simulation as fast as possible with the autopilot steering the
player. Sessions restart after game over until --sessions or --max-ticks is
reached. Combine with --output-dir for telemetry, perf and session CSVs.`,
	RunE: runHeadlessCmd,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Draws the canvas on the terminal's character grid. Arrow keys or WASD
steer (held keys repeat), mouse drag steers toward the pointer, Enter starts or
restarts, Space or p pauses, Tab toggles the autopilot, q or Esc quits.`,
	RunE: runTerm,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&autopilot, "autopilot", false, "Let the autopilot steer")
	cmd.Flags().BoolVar(&mute, "mute", false, "Disable sound cues")
}

func runPlay(cmd *cobra.Command, args []string) error {
	setupLogging(os.Stdout)
	cfg := config.Cfg()

	opts := baseOptions(cfg)
	opts.Autopilot = autopilot

	var sinks []game.Sink
	muted := true
	if sm := audio.Start(cfg.Audio, mute); sm != nil {
		defer sm.Close()
		sinks = append(sinks, sm)
		muted = false
	}
	return desktop.Run(cfg, opts, muted, sinks...)
}

func runTerm(cmd *cobra.Command, args []string) error {
	// The screen belongs to tcell; logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))

	cfg := config.Cfg()
	return terminal.Run(cfg, baseOptions(cfg))
}

func runHeadlessCmd(cmd *cobra.Command, args []string) error {
	setupLogging(os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := baseOptions(config.Cfg())
	opts.Autopilot = true
	opts.StepsPerUpdate = stepsPerUpdate

	_, err := runHeadless(ctx, opts, headlessLimits{
		MaxTicks:    maxTicks,
		MaxSessions: maxSessions,
	})
	return err
}
