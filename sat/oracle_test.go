package sat

import (
	"errors"
	"math"
	"testing"

	"github.com/jinyuan70940/collision/epa"
	"github.com/jinyuan70940/collision/gjk"
)

// GJK and EPA answer the same questions with a different method

func TestCollides_AgreesWithGJK(t *testing.T) {
	polygons := fixtures(t)
	simplex := &gjk.Simplex{}

	for i, a := range polygons {
		for j, b := range polygons {
			simplex.Reset()
			if got, expected := Collides(a, b), gjk.GJK(a, b, simplex); got != expected {
				t.Errorf("Fixtures %d/%d: Collides = %v, GJK = %v", i, j, got, expected)
			}
		}
	}
}

func TestResolve_AgreesWithEPA(t *testing.T) {
	polygons := fixtures(t)
	simplex := &gjk.Simplex{}
	compared := 0

	for i, a := range polygons {
		for j, b := range polygons {
			simplex.Reset()
			if !gjk.GJK(a, b, simplex) {
				continue
			}
			// Under total containment the magnitude exceeds the penetration depth
			if totalContainment(Projections(a, b)) {
				continue
			}

			penetration, err := epa.EPA(a, b, simplex)
			if errors.Is(err, epa.ErrDegenerateSimplex) {
				// Touching at a single point: nothing to expand
				continue
			}
			if err != nil {
				t.Errorf("Fixtures %d/%d: EPA failed: %v", i, j, err)
				continue
			}
			m, ok := Resolve(a, b)
			if !ok {
				t.Errorf("Fixtures %d/%d: expected an MTV", i, j)
				continue
			}

			if math.Abs(m.Magnitude-penetration.Depth) > 1e-6 {
				t.Errorf("Fixtures %d/%d: MTV magnitude %v, EPA depth %v", i, j, m.Magnitude, penetration.Depth)
			}
			compared++
		}
	}

	if compared == 0 {
		t.Fatal("Expected at least one colliding pair to compare")
	}
}
