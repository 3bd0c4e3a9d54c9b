package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	FishCount int `csv:"fish"`

	// Events during window
	Spawns       int `csv:"spawns"`
	SpawnsCapped int `csv:"spawns_capped"`
	Eaten        int `csv:"eaten"`
	Culled       int `csv:"culled"`
	Deaths       int `csv:"deaths"`

	// Fish size distribution (sampled at window end)
	FishSizeMean float64 `csv:"fish_size_mean"`
	FishSizeStd  float64 `csv:"fish_size_std"`
	FishSizeP10  float64 `csv:"fish_size_p10"`
	FishSizeP50  float64 `csv:"fish_size_p50"`
	FishSizeP90  float64 `csv:"fish_size_p90"`

	// Player
	Score      int     `csv:"score"`
	PlayerSize float64 `csv:"player_size"`
}

// Percentile returns the empirical p-quantile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeSizeStats calculates mean, std, and percentiles from size values.
func ComputeSizeStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("fish", s.FishCount),
		slog.Int("spawns", s.Spawns),
		slog.Int("spawns_capped", s.SpawnsCapped),
		slog.Int("eaten", s.Eaten),
		slog.Int("culled", s.Culled),
		slog.Int("deaths", s.Deaths),
		slog.Float64("fish_size_mean", s.FishSizeMean),
		slog.Float64("fish_size_std", s.FishSizeStd),
		slog.Float64("fish_size_p10", s.FishSizeP10),
		slog.Float64("fish_size_p50", s.FishSizeP50),
		slog.Float64("fish_size_p90", s.FishSizeP90),
		slog.Int("score", s.Score),
		slog.Float64("player_size", s.PlayerSize),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
