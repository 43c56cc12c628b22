// Package shape provides the 2D primitives consumed by the collision core:
// vertices, vector helpers over mgl64.Vec2, convex polygons and their bounds.
//
// A Polygon is expected to list at least 3 vertices, in counter-clockwise
// order, describing a convex shape. Nothing in this package or in the
// collision core enforces it; IsCounterClockwise is offered to callers that
// want to check their input themselves.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidPolygon = errors.New("invalid polygon")

// Polygon is an ordered, counter-clockwise sequence of vertices
type Polygon struct {
	Vertices []Vertex
}

// NewPolygon creates a polygon from the given vertices, kept in order
func NewPolygon(vertices ...Vertex) Polygon {
	return Polygon{Vertices: append([]Vertex(nil), vertices...)}
}

// NewRegularPolygon generates a regular polygon of the given number of sides.
//
// Vertices lie on a circle of the given radius around center. Before
// rotation the first vertex sits directly below the center, the others follow
// counter-clockwise. rotationDegrees turns the whole shape counter-clockwise:
// a square (4 sides) rotated by 45° is axis-aligned, with half side radius/√2.
func NewRegularPolygon(sides int, radius, rotationDegrees float64, center Vertex) (Polygon, error) {
	if sides < 3 {
		return Polygon{}, fmt.Errorf("%w: %d sides, at least 3 required", ErrInvalidPolygon, sides)
	}
	if radius <= 0 {
		return Polygon{}, fmt.Errorf("%w: radius %v must be positive", ErrInvalidPolygon, radius)
	}

	start := mgl64.DegToRad(rotationDegrees) - math.Pi/2
	step := 2 * math.Pi / float64(sides)

	vertices := make([]Vertex, sides)
	for k := range vertices {
		sin, cos := math.Sincos(start + float64(k)*step)
		vertices[k] = Vertex{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		}
	}

	return Polygon{Vertices: vertices}, nil
}

// Edges returns the number of edges, equal to the number of vertices
func (p Polygon) Edges() int {
	return len(p.Vertices)
}

// Edge returns the endpoints of edge i, the last edge wrapping to the first vertex
func (p Polygon) Edge(i int) (Vertex, Vertex) {
	return p.Vertices[i], p.Vertices[(i+1)%len(p.Vertices)]
}

// Translate returns a copy of the polygon displaced by d
func (p Polygon) Translate(d mgl64.Vec2) Polygon {
	vertices := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = v.Add(d)
	}
	return Polygon{Vertices: vertices}
}

// Transformed returns a copy of the polygon with every vertex mapped by t
func (p Polygon) Transformed(t Transform) Polygon {
	vertices := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = t.Apply(v)
	}
	return Polygon{Vertices: vertices}
}

// Center returns the average of the vertices
func (p Polygon) Center() Vertex {
	var sum mgl64.Vec2
	for _, v := range p.Vertices {
		sum = sum.Add(v.Vec2())
	}
	sum = sum.Mul(1 / float64(len(p.Vertices)))

	return Vertex{X: sum.X(), Y: sum.Y()}
}

// AABB computes the axis-aligned bounding box of the polygon
func (p Polygon) AABB() AABB {
	min := p.Vertices[0].Vec2()
	max := min

	for _, v := range p.Vertices[1:] {
		min[0] = math.Min(min[0], v.X)
		min[1] = math.Min(min[1], v.Y)

		max[0] = math.Max(max[0], v.X)
		max[1] = math.Max(max[1], v.Y)
	}

	return AABB{Min: min, Max: max}
}

// SignedArea returns the shoelace area, positive for counter-clockwise winding
func (p Polygon) SignedArea() float64 {
	var area float64
	for i := range p.Vertices {
		a, b := p.Edge(i)
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// IsCounterClockwise reports whether the vertices wind counter-clockwise
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}
