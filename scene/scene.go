// Package scene loads a set of named polygons and the pairs to check from a
// YAML document, and evaluates them with the collision package.
package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinyuan70940/collision"
	"github.com/jinyuan70940/collision/shape"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownShape    = errors.New("unknown shape")
	ErrDuplicateShape  = errors.New("duplicate shape")
	ErrShapeDefinition = errors.New("invalid shape definition")
)

// Scene describes polygons and the checks to run between them.
// When Checks is empty, every pair of shapes is checked.
type Scene struct {
	Workers int           `yaml:"workers"`
	Shapes  []ShapeConfig `yaml:"shapes"`
	Checks  [][]string    `yaml:"checks"`
}

// ShapeConfig defines one polygon, either as a regular polygon or as an explicit
// counter-clockwise vertex list. Offset and Rotation (degrees) place the result.
type ShapeConfig struct {
	Name     string         `yaml:"name"`
	Regular  *RegularConfig `yaml:"regular,omitempty"`
	Vertices [][]float64    `yaml:"vertices,omitempty"`
	Offset   []float64      `yaml:"offset,omitempty"`
	Rotation float64        `yaml:"rotation,omitempty"`
}

type RegularConfig struct {
	Sides    int       `yaml:"sides"`
	Radius   float64   `yaml:"radius"`
	Rotation float64   `yaml:"rotation"`
	Center   []float64 `yaml:"center"`
}

// NamedPair is a check between two shapes of the scene
type NamedPair struct {
	A, B string
}

// Report is the outcome of one check
type Report struct {
	A             string     `yaml:"a"`
	B             string     `yaml:"b"`
	Colliding     bool       `yaml:"colliding"`
	Axis          [2]float64 `yaml:"axis,flow"`
	Magnitude     float64    `yaml:"magnitude"`
	BoundsOverlap bool       `yaml:"bounds_overlap"`
}

// Load decodes a scene from a YAML reader
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the scene stored at path
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Polygons builds every shape of the scene, indexed by name
func (s *Scene) Polygons() (map[string]shape.Polygon, error) {
	polygons := make(map[string]shape.Polygon, len(s.Shapes))

	for _, cfg := range s.Shapes {
		if _, ok := polygons[cfg.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShape, cfg.Name)
		}

		p, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", cfg.Name, err)
		}
		polygons[cfg.Name] = p
	}

	return polygons, nil
}

// Pairs lists the checks of the scene. Without explicit checks, every unordered
// pair of shapes is returned in declaration order.
func (s *Scene) Pairs() ([]NamedPair, error) {
	known := make(map[string]bool, len(s.Shapes))
	for _, cfg := range s.Shapes {
		known[cfg.Name] = true
	}

	if len(s.Checks) == 0 {
		pairs := make([]NamedPair, 0, len(s.Shapes)*(len(s.Shapes)-1)/2)
		for i := range s.Shapes {
			for j := i + 1; j < len(s.Shapes); j++ {
				pairs = append(pairs, NamedPair{A: s.Shapes[i].Name, B: s.Shapes[j].Name})
			}
		}
		return pairs, nil
	}

	pairs := make([]NamedPair, 0, len(s.Checks))
	for i, check := range s.Checks {
		if len(check) != 2 {
			return nil, fmt.Errorf("check %d: expected 2 shape names, got %d", i, len(check))
		}
		for _, name := range check {
			if !known[name] {
				return nil, fmt.Errorf("check %d: %w: %q", i, ErrUnknownShape, name)
			}
		}
		pairs = append(pairs, NamedPair{A: check[0], B: check[1]})
	}
	return pairs, nil
}

// Evaluate runs every check of the scene. workers overrides the scene setting when positive.
func (s *Scene) Evaluate(ctx context.Context, logger *zap.Logger, workers int) ([]Report, error) {
	polygons, err := s.Polygons()
	if err != nil {
		return nil, err
	}
	named, err := s.Pairs()
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = s.Workers
	}

	pairs := make([]collision.Pair, len(named))
	for i, pair := range named {
		pairs[i] = collision.Pair{A: polygons[pair.A], B: polygons[pair.B]}
	}

	start := time.Now()
	results, err := collision.Resolve(ctx, pairs, workers)
	if err != nil {
		return nil, fmt.Errorf("resolve scene: %w", err)
	}

	reports := make([]Report, len(results))
	colliding := 0
	for i, result := range results {
		pair := named[result.Index]
		reports[i] = Report{
			A:             pair.A,
			B:             pair.B,
			Colliding:     result.Colliding,
			Axis:          [2]float64{result.MTV.Axis.X(), result.MTV.Axis.Y()},
			Magnitude:     result.MTV.Magnitude,
			BoundsOverlap: polygons[pair.A].AABB().Overlaps(polygons[pair.B].AABB()),
		}

		if result.Colliding {
			colliding++
		}
		logger.Debug("pair checked",
			zap.String("a", pair.A),
			zap.String("b", pair.B),
			zap.Bool("colliding", result.Colliding),
			zap.Float64s("axis", reports[i].Axis[:]),
			zap.Float64("magnitude", result.MTV.Magnitude),
		)
	}

	logger.Info("scene evaluated",
		zap.Int("shapes", len(polygons)),
		zap.Int("pairs", len(reports)),
		zap.Int("colliding", colliding),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return reports, nil
}

// Build creates the polygon described by the configuration
func (c ShapeConfig) Build() (shape.Polygon, error) {
	var p shape.Polygon

	switch {
	case c.Regular != nil && len(c.Vertices) > 0:
		return shape.Polygon{}, fmt.Errorf("%w: both regular and vertices are set", ErrShapeDefinition)
	case c.Regular != nil:
		center, err := toVec2(c.Regular.Center)
		if err != nil {
			return shape.Polygon{}, fmt.Errorf("center: %w", err)
		}
		p, err = shape.NewRegularPolygon(c.Regular.Sides, c.Regular.Radius, c.Regular.Rotation, shape.Vertex{X: center.X(), Y: center.Y()})
		if err != nil {
			return shape.Polygon{}, err
		}
	case len(c.Vertices) > 0:
		if len(c.Vertices) < 3 {
			return shape.Polygon{}, fmt.Errorf("%w: %d vertices, at least 3 required", shape.ErrInvalidPolygon, len(c.Vertices))
		}
		vertices := make([]shape.Vertex, len(c.Vertices))
		for i, coords := range c.Vertices {
			v, err := toVec2(coords)
			if err != nil {
				return shape.Polygon{}, fmt.Errorf("vertex %d: %w", i, err)
			}
			vertices[i] = shape.Vertex{X: v.X(), Y: v.Y()}
		}
		p = shape.NewPolygon(vertices...)
	default:
		return shape.Polygon{}, fmt.Errorf("%w: one of regular or vertices is required", ErrShapeDefinition)
	}

	offset, err := toVec2(c.Offset)
	if err != nil {
		return shape.Polygon{}, fmt.Errorf("offset: %w", err)
	}
	if c.Rotation == 0 && offset == (mgl64.Vec2{}) {
		return p, nil
	}

	return p.Transformed(shape.Transform{Position: offset, Rotation: mgl64.DegToRad(c.Rotation)}), nil
}

// toVec2 converts a [x, y] list, an empty list being the origin
func toVec2(coords []float64) (mgl64.Vec2, error) {
	switch len(coords) {
	case 0:
		return mgl64.Vec2{}, nil
	case 2:
		return mgl64.Vec2{coords[0], coords[1]}, nil
	default:
		return mgl64.Vec2{}, fmt.Errorf("%w: expected [x, y], got %d values", ErrShapeDefinition, len(coords))
	}
}
