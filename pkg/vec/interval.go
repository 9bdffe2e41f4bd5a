package vec

import "math"

// Interval represents a closed range [Min, Max] of floats.
type Interval struct {
	Min, Max float64
}

// Empty is the default interval: contains nothing.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is the interval spanning all reals.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates an interval from explicit bounds.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalFromUnion returns the smallest interval containing both a and b.
func NewIntervalFromUnion(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns the extent of the interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies within the closed interval.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly within the interval.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp clamps x to the interval.
func (i Interval) Clamp(x float64) float64 {
	return math.Max(i.Min, math.Min(i.Max, x))
}

// Pad expands the interval by delta/2 on each side, centered on its midpoint.
func (i Interval) Pad(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
