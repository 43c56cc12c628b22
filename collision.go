// Package collision detects overlaps between convex polygons in 2D and computes
// the minimum translation vector separating them, with the Separating Axis Theorem.
//
// Collide and CollisionMTV work on a single pair. Resolve evaluates many pairs
// with a bounded pool of goroutines.
package collision

import (
	"context"

	"github.com/jinyuan70940/collision/sat"
	"github.com/jinyuan70940/collision/shape"
	"golang.org/x/sync/errgroup"
)

const DEFAULT_WORKERS = 1

// Collide reports whether the convex polygons a and b overlap, touching included.
func Collide(a, b shape.Polygon) bool {
	return sat.Collides(a, b)
}

// CollisionMTV returns the minimum translation vector of a colliding pair.
// ok is false when the polygons do not collide.
func CollisionMTV(a, b shape.Polygon) (mtv sat.MTV, ok bool) {
	return sat.Resolve(a, b)
}

// Pair represents two polygons to test against each other
type Pair struct {
	A shape.Polygon
	B shape.Polygon
}

// Result is the outcome of one Pair, Index being its position in the input
type Result struct {
	Index     int
	Colliding bool
	MTV       sat.MTV
}

// Resolve tests every pair with at most workersCount concurrent goroutines.
// Results are returned in input order. If ctx is cancelled before every pair
// is processed, Resolve returns the context error and no results.
func Resolve(ctx context.Context, pairs []Pair, workersCount int) ([]Result, error) {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	results := make([]Result, len(pairs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workersCount)

	for i, pair := range pairs {
		if groupCtx.Err() != nil {
			break
		}

		i, pair := i, pair
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			mtv, colliding := sat.Resolve(pair.A, pair.B)
			// Each goroutine owns its index, no lock is needed
			results[i] = Result{Index: i, Colliding: colliding, MTV: mtv}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
