package gfxmath

import "math"

// Epsilon is the default tolerance for approximate float64 comparisons.
const Epsilon = 1e-9

// EpsilonF32 is the tolerance for comparisons after a float32 round trip.
const EpsilonF32 = 1e-6

// Close reports whether a and b differ by at most Epsilon.
func Close(a, b float64) bool {
	return CloseEps(a, b, Epsilon)
}

// CloseEps reports whether a and b differ by at most eps.
func CloseEps(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sq returns x squared.
func Sq(x float64) float64 {
	return x * x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
