package core

import "math"

// Interval represents a closed numeric range [Min, Max].
// An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

// Empty is the interval containing no values.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is the interval containing all values.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the width of the interval (negative when empty)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies within the interval, bounds included
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp projects x onto [Min, Max]. Clamping against Empty returns
// Min (+Inf); callers holding possibly-empty intervals must guard for it.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
