package internal

import "math"

// Linear tolerance. Two coordinates closer than this are the same coordinate,
// and a point within this distance of a curve lies on it.
const EP = 1e-5

// Angular tolerance, in degrees. Arc algorithms compare angles against this
// instead of EP, since an angular error is scaled by the radius.
const EPA = 1e-5

// Length used for rays cast by the orientation and containment oracles. It
// only needs to be far outside any drawing.
const farDistance = 1e10

// Two direction vectors whose 2D cross product is smaller than this are
// treated as parallel when collapsing runs of offset segments.
const parallelCross = 0.1

// A chord whose unit direction moves further than this after an offset is
// considered flipped.
const flipThreshold = 0.5

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < EP
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func degToRad(a float64) float64 {
	return a * math.Pi / 180
}

func radToDeg(a float64) float64 {
	return a * 180 / math.Pi
}

// Normalize an angle in degrees into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
