// Command tune searches spawn parameters with CMA-ES so that autopilot
// sessions last about a target number of seconds.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/optimize"

	"github.com/parry-123/fish-eating-game/config"
)

var (
	configPath string
	maxTicks   int
	seeds      int
	maxEvals   int
	population int
	targetSec  float64
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "tune",
	Short: "Tune spawn parameters toward a target session length",
	Long: `Runs autopilot sessions for each candidate set of spawn parameters and
minimises the distance between the mean session length and --target-sec.
Every evaluation is logged to tune_log.csv; the best candidate is written as
best_config.yaml.`,
	SilenceUsage: true,
	RunE:         runTune,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Base config YAML file (empty = use defaults)")
	rootCmd.Flags().IntVar(&maxTicks, "max-ticks", 60*300, "Maximum session duration in ticks (cap)")
	rootCmd.Flags().IntVar(&seeds, "seeds", 4, "Number of seeds per evaluation")
	rootCmd.Flags().IntVar(&maxEvals, "max-evals", 100, "Maximum number of evaluations")
	rootCmd.Flags().IntVar(&population, "population", 0, "CMA-ES population size (0 = auto)")
	rootCmd.Flags().Float64Var(&targetSec, "target-sec", 60, "Target session length in seconds")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "Output directory for results (required)")
	rootCmd.MarkFlagRequired("output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// logRow is one line of tune_log.csv.
type logRow struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	SessionSec  float64 `csv:"session_sec"`
	Score       float64 `csv:"score"`
	Quality     float64 `csv:"quality"`
	SpawnChance float64 `csv:"spawn_chance"`
	MinSize     float64 `csv:"min_size"`
	SizeRange   float64 `csv:"size_range"`
	BaseSpeed   float64 `csv:"base_speed"`
}

func runTune(cmd *cobra.Command, args []string) error {
	// Sessions log start/end; only warnings matter here.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if targetSec <= 0 {
		return fmt.Errorf("--target-sec must be positive, got %v", targetSec)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if _, err := config.Load(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	params := NewParamVector()
	evalSeeds := make([]int64, seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, int32(maxTicks), evalSeeds, targetSec, func() (*config.Config, error) {
		return config.Load(configPath)
	})

	logFile, err := os.Create(filepath.Join(outputDir, "tune_log.csv"))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	dim := params.Dim()
	popSize := population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			fitness := evaluator.Evaluate(raw)
			evalCount++

			clamped := params.Clamp(raw)
			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}

			sum := evaluator.LastSummary()
			row := []logRow{{
				Eval:        evalCount,
				Fitness:     fitness,
				SessionSec:  sum.SessionSec,
				Score:       sum.Score,
				Quality:     sum.Quality,
				SpawnChance: clamped[0],
				MinSize:     clamped[1],
				SizeRange:   clamped[2],
				BaseSpeed:   clamped[3],
			}}
			var werr error
			if evalCount == 1 {
				werr = gocsv.Marshal(row, logFile)
			} else {
				werr = gocsv.MarshalWithoutHeaders(row, logFile)
			}
			if werr != nil {
				slog.Warn("failed to write tune log", "error", werr)
			}

			elapsed := time.Since(startTime)
			avgPerEval := elapsed / time.Duration(evalCount)
			remaining := time.Duration(maxEvals-evalCount) * avgPerEval
			fmt.Printf("Eval %d/%d: session=%.1fs score=%.0f quality=%.2f (best=%.4f) | elapsed: %s, ETA: %s\n",
				evalCount, maxEvals, sum.SessionSec, sum.Score, sum.Quality, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: maxEvals,
		Concurrent:      0, // Sequential evaluation; seeds already run in parallel
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d, target=%.0fs\n",
		dim, popSize, maxEvals, targetSec)

	initX := params.Normalize(params.DefaultVector())
	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		fmt.Printf("optimization ended: %v\n", err)
	}
	if bestParams == nil {
		if result != nil {
			bestParams = params.Clamp(params.Denormalize(result.X))
		} else {
			bestParams = params.DefaultVector()
		}
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)
	configOutPath := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return err
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	return nil
}
