package shape

import "github.com/go-gl/mathgl/mgl64"

// FromPoints returns the displacement from vertex a to vertex b
func FromPoints(a, b Vertex) mgl64.Vec2 {
	return mgl64.Vec2{b.X - a.X, b.Y - a.Y}
}

// LeftNormal rotates v by 90° counter-clockwise
func LeftNormal(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// Normalize returns the unit vector pointing in the direction of v.
// The result is undefined (NaN components) for the zero vector.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	return v.Normalize()
}

// Dot returns the dot product of v1 and v2
func Dot(v1, v2 mgl64.Vec2) float64 {
	return v1.Dot(v2)
}
