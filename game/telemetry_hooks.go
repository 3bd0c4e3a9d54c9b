package game

import "log/slog"

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleFishSizes(), g.score, g.player.Size)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleFishSizes collects the size of every live fish.
func (g *Game) sampleFishSizes() []float64 {
	sizes := make([]float64, 0, g.fishCount)
	query := g.fishFilter.Query()
	for query.Next() {
		_, _, body, _, _ := query.Get()
		sizes = append(sizes, float64(body.Size))
	}
	return sizes
}

// endSession closes the open session record and writes it out.
func (g *Game) endSession(outcome string, killerSize float32) {
	rec, ok := g.sessions.End(g.tick, outcome, g.score, g.player.Size, g.SizeLevel(), killerSize)
	if !ok {
		return
	}

	slog.Info("session_ended", "session", rec)
	if g.sessionDone != nil {
		g.sessionDone(rec)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteSession(rec); err != nil {
			slog.Error("failed to write session", "error", err)
		}
	}
}
