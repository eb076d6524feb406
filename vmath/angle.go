package vmath

import "math"

// PitchCeiling is the largest value inside [-180, 180), the hard-reset target for pitch underflow
var PitchCeiling = math.Nextafter(180, 0)

// WrapSmooth folds an angle into [-limit, limit) keeping the overshoot
func WrapSmooth(a, limit float64) float64 {
	if a >= -limit && a < limit {
		return a
	}
	span := 2 * limit
	a = math.Mod(a+limit, span)
	if a < 0 {
		a += span
	}
	return a - limit
}

// WrapHard resets an angle that left [-limit, limit) to the opposite bound, discarding the overshoot
func WrapHard(a, limit float64) float64 {
	switch {
	case a >= limit:
		return -limit
	case a < -limit:
		return math.Nextafter(limit, 0)
	}
	return a
}

// ApproachZero moves a towards zero by step without crossing it
func ApproachZero(a, step float64) float64 {
	switch {
	case a > 0:
		a -= step
		if a < 0 {
			return 0
		}
	case a < 0:
		a += step
		if a > 0 {
			return 0
		}
	}
	return a
}

// Clamp restricts v to [lo, hi] and reports whether it was changed
func Clamp(v, lo, hi float64) (float64, bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}
