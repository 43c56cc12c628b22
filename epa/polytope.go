package epa

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/gjk"
	"github.com/jinyuan70940/collision/shape"
)

// Edge is an edge of the polytope with its outward normal and distance to the origin
type Edge struct {
	Index    int // Index of the first vertex, the edge goes to Index+1
	Normal   mgl64.Vec2
	Distance float64
}

// Polytope is a counter-clockwise convex polygon in the Minkowski difference space,
// containing the origin, that grows toward the boundary of the difference.
type Polytope struct {
	points []mgl64.Vec2
}

var polytopePool = sync.Pool{
	New: func() interface{} {
		return &Polytope{points: make([]mgl64.Vec2, 0, polytopeInitialCapacity)}
	},
}

// Reset prepares the polytope for reuse from the pool
func (p *Polytope) Reset() {
	p.points = p.points[:0]
}

// Points returns the current vertices, counter-clockwise
func (p *Polytope) Points() []mgl64.Vec2 {
	return p.points
}

// BuildInitial creates the initial triangle from the GJK simplex.
// A segment simplex (origin on the segment) is completed with a support point
// on either side of it.
func (p *Polytope) BuildInitial(a, b shape.Polygon, simplex *gjk.Simplex) error {
	p.Reset()

	switch simplex.Count {
	case 3:
		p.points = append(p.points, simplex.Points[0], simplex.Points[1], simplex.Points[2])
	case 2:
		p0, p1 := simplex.Points[0], simplex.Points[1]
		segment := p1.Sub(p0)
		normal := shape.LeftNormal(segment)

		third := gjk.MinkowskiSupport(a, b, normal)
		if math.Abs(cross(segment, third.Sub(p0))) < degenerateArea {
			third = gjk.MinkowskiSupport(a, b, normal.Mul(-1))
		}
		if math.Abs(cross(segment, third.Sub(p0))) < degenerateArea {
			return fmt.Errorf("%w: flat Minkowski difference", ErrDegenerateSimplex)
		}
		p.points = append(p.points, p0, p1, third)
	default:
		return fmt.Errorf("%w: %d points", ErrDegenerateSimplex, simplex.Count)
	}

	if cross(p.points[1].Sub(p.points[0]), p.points[2].Sub(p.points[0])) < 0 {
		p.points[1], p.points[2] = p.points[2], p.points[1]
	}
	return nil
}

// ClosestEdge finds the edge closest to the origin
func (p *Polytope) ClosestEdge() Edge {
	closest := Edge{Distance: math.Inf(1)}

	for i := range p.points {
		from, to := p.points[i], p.points[(i+1)%len(p.points)]
		// Right normal of a counter-clockwise edge points outward
		e := to.Sub(from)
		normal := mgl64.Vec2{e.Y(), -e.X()}.Normalize()
		distance := normal.Dot(from)

		if distance < closest.Distance {
			closest = Edge{Index: i, Normal: normal, Distance: distance}
		}
	}

	return closest
}

// Insert adds a support point between the endpoints of edge
func (p *Polytope) Insert(edge Edge, point mgl64.Vec2) {
	at := edge.Index + 1
	p.points = append(p.points, mgl64.Vec2{})
	copy(p.points[at+1:], p.points[at:])
	p.points[at] = point
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
