package systems

import "math"

// clampFloat clamps a float32 value between min and max.
// When the range is empty (max < min) min wins.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float32) float32 {
	return float32(math.Sqrt(float64(distanceSq(x1, y1, x2, y2))))
}

// polar returns the vector of the given length pointing along angle.
func polar(angle, length float32) (dx, dy float32) {
	s, c := math.Sincos(float64(angle))
	return float32(c) * length, float32(s) * length
}

// atan2 is math.Atan2 on float32.
func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
