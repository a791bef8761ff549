package vmath

import "math"

// Vec2 is a point or direction in continuous world units
type Vec2 struct {
	X, Y float64
}

// Distance returns euclidean distance between (x1, y1) and (x2, y2)
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize2D returns unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// FromAngle returns a vector of length mag pointing along angle (radians)
func FromAngle(angle, mag float64) (x, y float64) {
	return math.Cos(angle) * mag, math.Sin(angle) * mag
}

// NormalizeAngle wraps angle into [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// AngleDiff returns the signed shortest rotation from -> to
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// SmoothAngle moves current toward target along the shortest arc by factor (0..1)
func SmoothAngle(current, target, factor float64) float64 {
	return current + AngleDiff(current, target)*factor
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
