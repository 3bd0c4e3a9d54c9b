package systems

import (
	"math"
	"testing"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	t    *testing.T
	vals []float32
	i    int
}

func newSeqRand(t *testing.T, vals ...float32) *seqRand {
	return &seqRand{t: t, vals: vals}
}

func (r *seqRand) Float32() float32 {
	if r.i >= len(r.vals) {
		r.t.Fatalf("random sequence exhausted after %d draws", r.i)
	}
	v := r.vals[r.i]
	r.i++
	return v
}

// keySet is a KeyState backed by a set of held keys.
type keySet map[Key]bool

func (k keySet) KeyDown(key Key) bool { return k[key] }

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}
