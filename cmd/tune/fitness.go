package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/parry-123/fish-eating-game/config"
	"github.com/parry-123/fish-eating-game/game"
	"github.com/parry-123/fish-eating-game/telemetry"
)

// FitnessEvaluator runs autopilot sessions and scores how close they come to
// the target session length.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	loadConfig  func() (*config.Config, error)
	targetSec   float64
	targetFish  float64
	statsWindow float64

	mu          sync.Mutex
	lastSummary summary
}

// summary is the per-evaluation aggregate shown in progress lines.
type summary struct {
	SessionSec float64
	Score      float64
	Quality    float64
}

// NewFitnessEvaluator creates an evaluator. loadConfig must return a fresh
// config on every call; evaluations run concurrently.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, targetSec float64, loadConfig func() (*config.Config, error)) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		loadConfig:  loadConfig,
		targetSec:   targetSec,
		targetFish:  12,
		statsWindow: 5.0,
	}
}

// LastSummary returns the aggregates of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// runResult holds the results from a single session.
type runResult struct {
	sessionSec  float64
	score       int
	windowStats []telemetry.WindowStats
	err         error
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSession(x, s)
		}(i, seed)
	}
	wg.Wait()

	fitness := make([]float64, 0, len(results))
	secs := make([]float64, 0, len(results))
	scores := make([]float64, 0, len(results))
	qualities := make([]float64, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			// A broken config is the worst possible candidate.
			return math.Inf(1)
		}
		q := fe.computeQuality(r.windowStats)
		fitness = append(fitness, fe.computeFitness(r.sessionSec, q))
		secs = append(secs, r.sessionSec)
		scores = append(scores, float64(r.score))
		qualities = append(qualities, q)
	}

	fe.mu.Lock()
	fe.lastSummary = summary{
		SessionSec: stat.Mean(secs, nil),
		Score:      stat.Mean(scores, nil),
		Quality:    stat.Mean(qualities, nil),
	}
	fe.mu.Unlock()

	return stat.Mean(fitness, nil)
}

// runSession plays one autopilot session until game over or maxTicks.
func (fe *FitnessEvaluator) runSession(x []float64, seed int64) runResult {
	cfg, err := fe.loadConfig()
	if err != nil {
		return runResult{err: err}
	}
	fe.params.ApplyToConfig(cfg, x)

	var result runResult
	g, err := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Seed:           seed,
		Autopilot:      true,
		StatsWindowSec: fe.statsWindow,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
		SessionCallback: func(rec telemetry.SessionRecord) {
			result.sessionSec = rec.DurationSec
			result.score = rec.Score
		},
	})
	if err != nil {
		return runResult{err: err}
	}

	g.Start()
	for g.State() == game.Running && g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}
	// Unload closes a surviving session, so sessionSec is always set.
	g.Unload()
	return result
}

// computeFitness is the squared relative distance from the target session
// length, less a bonus of up to 0.2 for a lively canvas.
func (fe *FitnessEvaluator) computeFitness(sessionSec, quality float64) float64 {
	rel := (sessionSec - fe.targetSec) / fe.targetSec
	return rel*rel - 0.2*quality
}

// Quality component weights.
const (
	qualityWeightCrowd    = 0.5
	qualityWeightActivity = 0.5
)

// computeQuality scores a session ∈ [0, 1]: enough fish on the canvas and
// regular eating.
func (fe *FitnessEvaluator) computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) == 0 {
		return 0
	}

	counts := make([]float64, len(windows))
	active := 0
	for i, w := range windows {
		counts[i] = float64(w.FishCount)
		if w.Eaten > 0 {
			active++
		}
	}

	logErr := math.Log((stat.Mean(counts, nil) + 1) / (fe.targetFish + 1))
	crowd := math.Exp(-logErr * logErr)
	activity := float64(active) / float64(len(windows))

	return clamp01(qualityWeightCrowd*crowd + qualityWeightActivity*activity)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
