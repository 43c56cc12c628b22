package sat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/shape"
)

// MTV is a minimum translation vector: moving one polygon by Axis*Magnitude
// removes the collision.
//
// Axis is the unit direction line of the displacement. Its sign is the one of the
// edge normal it comes from, it is not oriented from one polygon toward the other:
// callers that need a push direction must pick the sign themselves.
type MTV struct {
	Axis      mgl64.Vec2
	Magnitude float64
}

// Vector returns the displacement Axis*Magnitude
func (m MTV) Vector() mgl64.Vec2 {
	return m.Axis.Mul(m.Magnitude)
}

// Resolve computes the minimum translation vector separating a and b.
// It returns false when the polygons do not collide.
func Resolve(a, b shape.Polygon) (MTV, bool) {
	return ResolveProjections(Projections(a, b))
}

// ResolveProjections computes the minimum translation vector from already built projections,
// as returned by Projections or ProjectParallel.
//
// Algorithm:
//  1. If any axis separates the polygons → no collision
//  2. Total containment: every axis has one interval strictly inside the other
//  3. Candidates per axis:
//     - general case: the overlap of both intervals
//     - total containment: overlap + |A.Min - B.Min| and overlap + |A.Max - B.Max|,
//     since closing the overlap alone leaves the inner polygon inside the outer one
//  4. Keep the smallest candidate. Ties go to the first one in axis order.
func ResolveProjections(projections []AxisProjection) (MTV, bool) {
	if _, separated := separatingAxis(projections); separated {
		return MTV{}, false
	}

	contained := totalContainment(projections)

	best := MTV{Magnitude: math.Inf(1)}
	for _, p := range projections {
		overlap := p.A.Overlap(p.B)

		if !contained {
			if overlap < best.Magnitude {
				best = MTV{Axis: p.Axis, Magnitude: overlap}
			}
			continue
		}

		for _, magnitude := range [2]float64{
			overlap + math.Abs(p.A.Min-p.B.Min),
			overlap + math.Abs(p.A.Max-p.B.Max),
		} {
			if magnitude < best.Magnitude {
				best = MTV{Axis: p.Axis, Magnitude: magnitude}
			}
		}
	}

	return best, true
}
