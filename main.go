// Command fishgame runs the fish-eating game in a window, a terminal, or
// headless under an autopilot.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/game"
)

var (
	// Global flags
	configPath  string
	seed        int64
	outputDir   string
	logStats    bool
	statsWindow float64
)

// rootCmd plays in a window when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "fishgame",
	Short: "Eat smaller fish, avoid bigger ones",
	Long: `A small arcade game: steer your fish with the arrow keys, WASD, or the
mouse. Touching a smaller fish eats it and grows you; touching one the same
size or bigger ends the game.

Run without a subcommand to play in a window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize config before anything else
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Output directory for CSV logs and config snapshot")
	rootCmd.PersistentFlags().BoolVar(&logStats, "log-stats", false, "Output stats via slog")
	rootCmd.PersistentFlags().Float64Var(&statsWindow, "stats-window", 0, "Stats window size in seconds (0 = use config)")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)
	headlessCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	headlessCmd.Flags().IntVar(&stepsPerUpdate, "steps-per-update", 1, "Simulation ticks per update call")
	headlessCmd.Flags().IntVar(&maxSessions, "sessions", 1, "Stop after N sessions (0 = unlimited)")
	termCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (empty = discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(termCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// setupLogging installs the default slog logger writing JSON to w.
func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}

// baseOptions builds game options from the global flags.
func baseOptions(cfg *config.Config) game.Options {
	return game.Options{
		Config:         cfg,
		Seed:           resolveSeed(),
		LogStats:       logStats,
		StatsWindowSec: statsWindow,
		OutputDir:      outputDir,
	}
}
