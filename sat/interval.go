package sat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/shape"
)

// Interval is the range of the dot products of a polygon's vertices with an axis
type Interval struct {
	Min float64
	Max float64
}

// Project returns the interval covered by vertices along axis
func Project(vertices []shape.Vertex, axis mgl64.Vec2) Interval {
	interval := Interval{Min: math.Inf(1), Max: math.Inf(-1)}

	for _, v := range vertices {
		dot := shape.Dot(v.Vec2(), axis)
		interval.Min = math.Min(interval.Min, dot)
		interval.Max = math.Max(interval.Max, dot)
	}
	return interval
}

// ProjectAll projects vertices onto every axis, the result being parallel to axes
func ProjectAll(vertices []shape.Vertex, axes []mgl64.Vec2) []Interval {
	intervals := make([]Interval, len(axes))
	for i, axis := range axes {
		intervals[i] = Project(vertices, axis)
	}
	return intervals
}

// Overlaps reports whether the intervals share at least one point.
// Touching endpoints count as overlapping.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.Min > other.Max || other.Min > i.Max)
}

// Contains reports whether one interval lies strictly inside the other, in either direction.
// Coinciding bounds are not containment.
func (i Interval) Contains(other Interval) bool {
	return (i.Min > other.Min && i.Max < other.Max) ||
		(other.Min > i.Min && other.Max < i.Max)
}

// Overlap returns the smallest shift along the axis that would stop the intervals overlapping
func (i Interval) Overlap(other Interval) float64 {
	return math.Min(i.Max-other.Min, other.Max-i.Min)
}
