package game

import "math"

// Clock converts elapsed wall time into whole simulation ticks at a fixed rate.
type Clock struct {
	rate       float64
	maxCatchUp int
	pending    float64 // seconds not yet turned into ticks
}

// NewClock creates a clock yielding rate ticks per second, at most maxCatchUp
// ticks per Advance call.
func NewClock(rate, maxCatchUp int) *Clock {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Clock{rate: float64(rate), maxCatchUp: maxCatchUp}
}

// Advance adds dt seconds and returns the number of ticks now due.
// When more than maxCatchUp ticks are due the backlog is dropped.
func (c *Clock) Advance(dt float64) int {
	if dt > 0 {
		c.pending += dt
	}
	// Small epsilon so 3/60s of float error still yields 3 ticks
	n := int(math.Floor(c.pending*c.rate + 1e-9))
	if n > c.maxCatchUp {
		c.pending = 0
		return c.maxCatchUp
	}
	c.pending -= float64(n) / c.rate
	if c.pending < 0 {
		c.pending = 0
	}
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.pending = 0
}
