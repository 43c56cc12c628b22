package shape

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a point of a polygon in 2D space
type Vertex struct {
	X, Y float64
}

// ToTuple returns the coordinates of the vertex as a pair
func (v Vertex) ToTuple() (float64, float64) {
	return v.X, v.Y
}

// Vec2 returns the vertex as a vector from the origin
func (v Vertex) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Add returns the vertex displaced by d
func (v Vertex) Add(d mgl64.Vec2) Vertex {
	return Vertex{X: v.X + d.X(), Y: v.Y + d.Y()}
}
