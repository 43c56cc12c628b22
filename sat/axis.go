// Package sat implements the Separating Axis Theorem for convex polygons in 2D.
//
// Two convex polygons do not overlap if and only if there is an axis onto which
// their projections do not overlap. For polygons such an axis, when it exists,
// is always parallel to one of their edge normals, so the axes tested are the
// normalized left normals of every edge of both polygons.
//
// Pipeline:
//  1. Axes: one unit axis per edge, polygon A's first then polygon B's
//  2. Project: each polygon's vertices onto each axis, giving an Interval
//  3. Overlaps / Contains: compare both intervals of every axis
//  4. Collides: every axis overlaps or is contained
//  5. Resolve: the axis with the smallest separating magnitude (the MTV)
//
// Nothing here validates the polygons. They must be convex, wound
// counter-clockwise and free of coincident consecutive vertices; otherwise the
// axes are meaningless (or NaN for a zero-length edge) and so are the results.
//
// References:
//   - Ericson: "Real-Time Collision Detection" (2005), 5.2.1 Separating-axis Test
package sat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/shape"
)

// Axes returns one candidate separating axis per edge of p, in edge order.
// Each axis is the unit left normal of the edge going from vertex i to vertex i+1,
// the last edge closing back on the first vertex.
func Axes(p shape.Polygon) []mgl64.Vec2 {
	axes := make([]mgl64.Vec2, p.Edges())
	for i := range axes {
		from, to := p.Edge(i)
		axes[i] = shape.Normalize(shape.LeftNormal(shape.FromPoints(from, to)))
	}
	return axes
}

// AxesOf returns the full ordered axis set for the pair: a's axes then b's.
// This order is the tie-break key of Resolve.
func AxesOf(a, b shape.Polygon) []mgl64.Vec2 {
	return append(Axes(a), Axes(b)...)
}
