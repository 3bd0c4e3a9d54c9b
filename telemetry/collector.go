// Package telemetry provides windowed game statistics, per-session records,
// tick phase timing and CSV output.
package telemetry

import "math"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	spawns       int
	spawnsCapped int
	eaten        int
	culled       int
	deaths       int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records a fish entering the world.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordSpawnCapped records a spawn skipped because the fish cap was reached.
func (c *Collector) RecordSpawnCapped() {
	c.spawnsCapped++
}

// RecordEaten records fish eaten by the player.
func (c *Collector) RecordEaten(n int) {
	c.eaten += n
}

// RecordCulled records fish removed for drifting off the canvas.
func (c *Collector) RecordCulled(n int) {
	c.culled += n
}

// RecordDeath records a lethal collision.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// fishSizes are the sizes of all live non-player fish at window end.
func (c *Collector) Flush(currentTick int32, fishSizes []float64, score int, playerSize float32) WindowStats {
	mean, std, p10, p50, p90 := ComputeSizeStats(fishSizes)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		FishCount:    len(fishSizes),
		Spawns:       c.spawns,
		SpawnsCapped: c.spawnsCapped,
		Eaten:        c.eaten,
		Culled:       c.culled,
		Deaths:       c.deaths,

		FishSizeMean: mean,
		FishSizeStd:  std,
		FishSizeP10:  p10,
		FishSizeP50:  p50,
		FishSizeP90:  p90,

		Score:      score,
		PlayerSize: float64(playerSize),
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.spawnsCapped = 0
	c.eaten = 0
	c.culled = 0
	c.deaths = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
