package scene

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinyuan70940/collision/shape"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleScene = `
workers: 2
shapes:
  - name: small
    regular: {sides: 4, radius: 4, rotation: 0, center: [0, 0]}
  - name: big
    regular: {sides: 4, radius: 6, rotation: 0, center: [2, 2]}
  - name: tri
    regular: {sides: 3, radius: 1, rotation: 0, center: [-5, 8]}
  - name: left
    regular: {sides: 4, radius: 4, rotation: 45, center: [0, 0]}
  - name: right
    vertices: [[-2, -2], [2, -2], [2, 2], [-2, 2]]
    offset: [4, 0]
checks:
  - [small, big]
  - [tri, big]
  - [left, right]
`

func TestLoad(t *testing.T) {
	t.Run("sample scene", func(t *testing.T) {
		s, err := Load(strings.NewReader(sampleScene))
		require.NoError(t, err)
		require.Equal(t, 2, s.Workers)
		require.Len(t, s.Shapes, 5)
		require.Len(t, s.Checks, 3)
		require.NotNil(t, s.Shapes[0].Regular)
		require.Equal(t, 4, s.Shapes[0].Regular.Sides)
		require.Equal(t, []float64{4, 0}, s.Shapes[4].Offset)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(strings.NewReader("shapes:\n  - name: a\n    colour: red\n"))
		require.Error(t, err)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o600))

		s, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, s.Shapes, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPolygons(t *testing.T) {
	t.Run("regular and explicit shapes", func(t *testing.T) {
		s, err := Load(strings.NewReader(sampleScene))
		require.NoError(t, err)

		polygons, err := s.Polygons()
		require.NoError(t, err)
		require.Len(t, polygons, 5)

		right := polygons["right"]
		require.Equal(t, shape.Vertex{X: 2, Y: -2}, right.Vertices[0])
		require.Equal(t, shape.Vertex{X: 6, Y: 2}, right.Vertices[2])
	})

	t.Run("rotation is applied to explicit vertices", func(t *testing.T) {
		s := &Scene{Shapes: []ShapeConfig{{
			Name:     "a",
			Vertices: [][]float64{{1, 0}, {0, 1}, {-1, 0}},
			Rotation: 90,
		}}}
		polygons, err := s.Polygons()
		require.NoError(t, err)
		require.InDelta(t, 0, polygons["a"].Vertices[0].X, 1e-12)
		require.InDelta(t, 1, polygons["a"].Vertices[0].Y, 1e-12)
	})

	tests := []struct {
		name   string
		shapes []ShapeConfig
		target error
	}{
		{
			name:   "duplicate name",
			shapes: []ShapeConfig{{Name: "a", Regular: &RegularConfig{Sides: 3, Radius: 1}}, {Name: "a", Regular: &RegularConfig{Sides: 4, Radius: 1}}},
			target: ErrDuplicateShape,
		},
		{
			name:   "neither regular nor vertices",
			shapes: []ShapeConfig{{Name: "a"}},
			target: ErrShapeDefinition,
		},
		{
			name:   "both regular and vertices",
			shapes: []ShapeConfig{{Name: "a", Regular: &RegularConfig{Sides: 3, Radius: 1}, Vertices: [][]float64{{0, 0}, {1, 0}, {0, 1}}}},
			target: ErrShapeDefinition,
		},
		{
			name:   "too few vertices",
			shapes: []ShapeConfig{{Name: "a", Vertices: [][]float64{{0, 0}, {1, 0}}}},
			target: shape.ErrInvalidPolygon,
		},
		{
			name:   "malformed vertex",
			shapes: []ShapeConfig{{Name: "a", Vertices: [][]float64{{0, 0}, {1, 0, 2}, {0, 1}}}},
			target: ErrShapeDefinition,
		},
		{
			name:   "invalid regular polygon",
			shapes: []ShapeConfig{{Name: "a", Regular: &RegularConfig{Sides: 2, Radius: 1}}},
			target: shape.ErrInvalidPolygon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{Shapes: tt.shapes}
			_, err := s.Polygons()
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestPairs(t *testing.T) {
	t.Run("every pair when no checks", func(t *testing.T) {
		s := &Scene{Shapes: []ShapeConfig{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
		pairs, err := s.Pairs()
		require.NoError(t, err)
		require.Equal(t, []NamedPair{{A: "a", B: "b"}, {A: "a", B: "c"}, {A: "b", B: "c"}}, pairs)
	})

	t.Run("explicit checks", func(t *testing.T) {
		s := &Scene{
			Shapes: []ShapeConfig{{Name: "a"}, {Name: "b"}},
			Checks: [][]string{{"b", "a"}},
		}
		pairs, err := s.Pairs()
		require.NoError(t, err)
		require.Equal(t, []NamedPair{{A: "b", B: "a"}}, pairs)
	})

	t.Run("unknown shape", func(t *testing.T) {
		s := &Scene{
			Shapes: []ShapeConfig{{Name: "a"}},
			Checks: [][]string{{"a", "ghost"}},
		}
		_, err := s.Pairs()
		require.ErrorIs(t, err, ErrUnknownShape)
	})

	t.Run("malformed check", func(t *testing.T) {
		s := &Scene{
			Shapes: []ShapeConfig{{Name: "a"}},
			Checks: [][]string{{"a"}},
		}
		_, err := s.Pairs()
		require.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	reports, err := s.Evaluate(context.Background(), zap.New(core), 0)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	require.Equal(t, "small", reports[0].A)
	require.Equal(t, "big", reports[0].B)
	require.True(t, reports[0].Colliding)
	require.True(t, reports[0].BoundsOverlap)

	require.False(t, reports[1].Colliding)
	require.False(t, reports[1].BoundsOverlap)
	require.Zero(t, reports[1].Magnitude)

	require.True(t, reports[2].Colliding)
	// half sides 2√2 and 2, centers 4 apart on x
	require.InDelta(t, 2*math.Sqrt2-2, reports[2].Magnitude, 1e-9)
	require.InDelta(t, 1.0, math.Abs(reports[2].Axis[0]), 1e-9)
	require.InDelta(t, 0.0, reports[2].Axis[1], 1e-9)

	require.Equal(t, 3, logs.FilterMessage("pair checked").Len())
	summary := logs.FilterMessage("scene evaluated").All()
	require.Len(t, summary, 1)
	require.Equal(t, int64(2), summary[0].ContextMap()["colliding"])
	require.Equal(t, int64(2), summary[0].ContextMap()["workers"])
}

func TestEvaluate_Errors(t *testing.T) {
	t.Run("invalid shape", func(t *testing.T) {
		s := &Scene{Shapes: []ShapeConfig{{Name: "a"}}}
		_, err := s.Evaluate(context.Background(), zap.NewNop(), 1)
		require.ErrorIs(t, err, ErrShapeDefinition)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s, err := Load(strings.NewReader(sampleScene))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = s.Evaluate(ctx, zap.NewNop(), 1)
		require.ErrorIs(t, err, context.Canceled)
	})
}
