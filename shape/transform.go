package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a placement in 2D space.
// Rotation is in radians, counter-clockwise, applied before Position.
type Transform struct {
	Position mgl64.Vec2
	Rotation float64
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec2{0, 0},
		Rotation: 0,
	}
}

// Apply maps a vertex from local space to world space
func (t Transform) Apply(v Vertex) Vertex {
	sin, cos := math.Sincos(t.Rotation)

	return Vertex{
		X: v.X*cos - v.Y*sin + t.Position.X(),
		Y: v.X*sin + v.Y*cos + t.Position.Y(),
	}
}
