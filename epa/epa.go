// Package epa implements the Expanding Polytope Algorithm for convex polygons in 2D.
//
// EPA is run after GJK detects a collision to determine the penetration depth and the
// direction to separate the shapes. The polytope, starting from GJK's final simplex,
// is expanded toward the boundary of the Minkowski difference; its edge closest to the
// origin gives the separating normal and depth.
//
// For the general overlapping case the depth equals the minimum translation magnitude
// found by the sat package, which makes EPA a cross-check of the SAT resolver.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation on 3D Game Objects" (2001)
package epa

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision/gjk"
	"github.com/jinyuan70940/collision/shape"
)

const (
	// EPAMaxIterations limits polytope expansion to prevent infinite loops.
	EPAMaxIterations = 64

	// EPAConvergenceTolerance defines when EPA has converged: the new support point
	// improves the closest edge distance by less than this threshold.
	EPAConvergenceTolerance = 1e-9

	// area below which three points are considered colinear
	degenerateArea = 1e-12

	polytopeInitialCapacity = 8
)

var ErrDegenerateSimplex = errors.New("degenerate simplex")

// Penetration describes how far two polygons overlap.
// Moving B by Normal*Depth separates it from A.
type Penetration struct {
	Normal mgl64.Vec2
	Depth  float64
}

// EPA computes the penetration of two polygons GJK reported as colliding.
//
// Algorithm overview:
//  1. Start with the simplex from GJK (triangle containing the origin)
//  2. Find the polytope edge closest to the origin
//  3. Get the support point along that edge's normal
//  4. If it doesn't push the edge further → converged
//  5. Otherwise insert it into the polytope and repeat from step 2
//
// The normal points from A toward B.
func EPA(a, b shape.Polygon, simplex *gjk.Simplex) (Penetration, error) {
	polytope := polytopePool.Get().(*Polytope)
	defer polytopePool.Put(polytope)

	if err := polytope.BuildInitial(a, b, simplex); err != nil {
		return Penetration{}, err
	}

	for i := 0; i < EPAMaxIterations; i++ {
		edge := polytope.ClosestEdge()

		support := gjk.MinkowskiSupport(a, b, edge.Normal)
		distance := support.Dot(edge.Normal)

		if distance-edge.Distance < EPAConvergenceTolerance {
			return Penetration{Normal: edge.Normal, Depth: edge.Distance}, nil
		}

		polytope.Insert(edge, support)
	}

	return Penetration{}, fmt.Errorf("EPA failed to converge after %d iterations", EPAMaxIterations)
}
