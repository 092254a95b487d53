package systems

import "math"

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float32) float32 {
	return float32(math.Hypot(float64(x2-x1), float64(y2-y1)))
}

// absf returns |v|.
func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
