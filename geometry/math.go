// Package geometry provides the small pieces of math the grid and the
// path post-processor share.
package geometry

import "math"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF constrains v to the inclusive range [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b as a fraction in [0,1].
// Returns 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return ClampF((v-a)/(b-a), 0, 1)
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// TurnAngle returns the angle in radians between the segment a->b and the
// segment b->c. A straight continuation yields 0; a full reversal yields pi.
func TurnAngle(ax, ay, bx, by, cx, cy float64) float64 {
	v1x, v1y := bx-ax, by-ay
	v2x, v2y := cx-bx, cy-by
	l1 := math.Hypot(v1x, v1y)
	l2 := math.Hypot(v2x, v2y)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	dot := (v1x*v2x + v1y*v2y) / (l1 * l2)
	return math.Acos(ClampF(dot, -1, 1))
}

// CubicBezier evaluates a cubic Bézier curve at t in [0,1].
func CubicBezier(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}
