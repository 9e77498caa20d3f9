package geom

import "math"

// NormalizeAngle maps a to the range [0, 2π).
func NormalizeAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

// AngleInArc reports whether angle lies on the arc from start to end,
// all normalized to [0, 2π). When start > end the arc wraps through 0
// and the range is the union [start, 2π) ∪ [0, end].
func AngleInArc(angle, start, end float32) bool {
	angle = NormalizeAngle(angle)
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}
