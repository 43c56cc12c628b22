package sat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/shape"
)

// AxisProjection bundles one axis with the intervals of both polygons on it
type AxisProjection struct {
	Axis mgl64.Vec2
	A    Interval
	B    Interval
}

// Separates reports whether the axis proves the polygons apart:
// the intervals neither overlap nor contain one another.
func (p AxisProjection) Separates() bool {
	return !p.A.Overlaps(p.B) && !p.A.Contains(p.B)
}

// Projections projects both polygons onto the ordered axis set of AxesOf(a, b).
// Entry i holds axis i with a's and b's intervals on it.
func Projections(a, b shape.Polygon) []AxisProjection {
	axes := AxesOf(a, b)
	intervalsA := ProjectAll(a.Vertices, axes)
	intervalsB := ProjectAll(b.Vertices, axes)

	projections := make([]AxisProjection, len(axes))
	for i, axis := range axes {
		projections[i] = AxisProjection{Axis: axis, A: intervalsA[i], B: intervalsB[i]}
	}
	return projections
}

// Collides reports whether the convex polygons a and b overlap.
// Touching polygons collide. The result is symmetric in a and b.
func Collides(a, b shape.Polygon) bool {
	_, separated := separatingAxis(Projections(a, b))
	return !separated
}

// SeparatingAxis returns the first axis, in AxesOf order, on which a and b are apart.
// It returns false when the polygons collide.
func SeparatingAxis(a, b shape.Polygon) (mgl64.Vec2, bool) {
	return separatingAxis(Projections(a, b))
}

func separatingAxis(projections []AxisProjection) (mgl64.Vec2, bool) {
	for _, p := range projections {
		// A single separating axis is enough to prove there is no collision
		if p.Separates() {
			return p.Axis, true
		}
	}
	return mgl64.Vec2{}, false
}

// totalContainment reports whether one interval is nested in the other on every axis
func totalContainment(projections []AxisProjection) bool {
	for _, p := range projections {
		if !p.A.Contains(p.B) {
			return false
		}
	}
	return true
}
