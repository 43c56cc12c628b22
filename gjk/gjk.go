// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for convex polygons in 2D.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski difference
// contains the origin. The algorithm builds a simplex incrementally (point, segment,
// triangle), converging toward the origin in a few iterations.
//
// It answers the same question as the sat package with a different method, and hands
// its final triangle to the epa package to compute the penetration depth.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/shape"
)

// Simplex represents a set of 1-3 points in the Minkowski difference space.
// Size progression: 1 point → 2 points (segment) → 3 points (triangle).
// The most recent point is always the last one.
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// Support returns the vertex of p furthest along direction
func Support(p shape.Polygon, direction mgl64.Vec2) mgl64.Vec2 {
	best := p.Vertices[0].Vec2()
	bestDot := best.Dot(direction)

	for _, v := range p.Vertices[1:] {
		if dot := v.Vec2().Dot(direction); dot > bestDot {
			best, bestDot = v.Vec2(), dot
		}
	}
	return best
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B):
// furthestPoint(A, direction) - furthestPoint(B, -direction)
func MinkowskiSupport(a, b shape.Polygon, direction mgl64.Vec2) mgl64.Vec2 {
	return Support(a, direction).Sub(Support(b, direction.Mul(-1)))
}

// GJK reports whether the convex polygons a and b overlap, touching included.
//
// Algorithm overview:
//  1. Start with initial search direction (toward B from A)
//  2. Get first support point in Minkowski difference
//  3. Iteratively refine simplex toward origin
//  4. If origin is contained → collision
//  5. If a support point can't pass the origin → no collision
//
// The simplex is modified in place. For most collisions it ends as a triangle
// containing the origin, which EPA uses as its initial polytope.
func GJK(a, b shape.Polygon, simplex *Simplex) bool {
	direction := b.Center().Vec2().Sub(a.Center().Vec2())
	if direction.Dot(direction) < 1e-8 {
		direction = mgl64.Vec2{1, 0} // Fallback if centers are identical
	}

	simplex.Points[0] = MinkowskiSupport(a, b, direction)
	simplex.Count = 1

	direction = simplex.Points[0].Mul(-1)
	if direction.Dot(direction) < 1e-16 {
		return true // First support point is the origin: the shapes touch
	}

	maxIterations := 32
	for i := 0; i < maxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// The new point doesn't reach the origin in the search direction,
		// therefore the origin is outside the Minkowski difference.
		if newPoint.Dot(direction) < 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	return false
}

func containsOrigin(simplex *Simplex, direction *mgl64.Vec2) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	}
	return false
}

// tripleProduct returns (a × b) × c, the component of b(a·c) - a(b·c) in the plane
func tripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	return b.Mul(a.Dot(c)).Sub(a.Mul(b.Dot(c)))
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// line handles the segment simplex (A most recent, B previous).
// It keeps the feature closest to the origin and points direction toward it.
func line(simplex *Simplex, direction *mgl64.Vec2) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	if ab.Dot(ab) < 1e-16 {
		if ao.Dot(ao) < 1e-16 {
			return true
		}
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	// Origin behind A
	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	if math.Abs(cross(ab, ao)) < 1e-12 {
		// Origin is on the segment
		return true
	}

	*direction = tripleProduct(ab, ao, ab)
	return false
}

// triangle handles the triangle simplex (A most recent, then B, then C).
// Returns true when the origin is inside, boundary included.
func triangle(simplex *Simplex, direction *mgl64.Vec2) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	// Colinear points: keep A and B as a segment
	if math.Abs(cross(ab, ac)) < 1e-12 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	// Region AB, pointing away from C
	abPerp := tripleProduct(ac, ab, ab)
	if abPerp.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = abPerp
		return false
	}

	// Region AC, pointing away from B
	acPerp := tripleProduct(ab, ac, ac)
	if acPerp.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = acPerp
		return false
	}

	return true
}
