package contour

import (
	"fmt"
	"math"
)

// Engine is the contour-tracing backend. It is treated as an opaque
// collaborator: this package consumes its raw output but places no
// requirements on how contours are traced beyond the stream contract
// below.
//
// TraceLine returns one vertex array per disjoint path at the given
// level; closed paths repeat their first vertex at the end.
//
// TraceFilled returns the region between min and max as parallel
// vertex and code streams: entry i describes one polygon whose rings
// are delimited by MoveTo...ClosePoly code spans, exterior ring first,
// holes after. The ClosePoly vertex repeats the ring's first vertex.
//
// Implementations must not mutate their grid data during queries; a
// generator is safe for concurrent queries exactly when its engine is
// safe for concurrent reads.
type Engine interface {
	TraceLine(level float64) [][]Point
	TraceFilled(min, max float64) ([][]Point, [][]PathCode)
}

// Generator answers contour queries against a fixed grid. It pairs one
// engine handle, built once at construction, with one formatter that
// translates every raw trace result. Queries never mutate the
// generator.
//
// The type parameter T is the formatter's result type.
type Generator[T any] struct {
	engine    Engine
	formatter Formatter[T]
}

// NewGenerator wraps an existing engine with a formatter. Use this to
// inject a custom tracing backend; the grid constructors ([New],
// [FromCurvilinear], [FromRectilinear], [FromUniform]) build the
// default quad engine instead.
func NewGenerator[T any](e Engine, f Formatter[T]) (*Generator[T], error) {
	if e == nil {
		return nil, fmt.Errorf("contour: engine must not be nil: %w", ErrValue)
	}
	if f == nil {
		return nil, fmt.Errorf("contour: formatter must not be nil: %w", ErrValue)
	}
	return &Generator[T]{engine: e, formatter: f}, nil
}

// Contour traces the contour lines at the given level and returns the
// formatted result. The level must be a real number: NaN is rejected
// before the engine is consulted.
func (g *Generator[T]) Contour(level float64) (T, error) {
	var zero T
	if math.IsNaN(level) {
		return zero, fmt.Errorf("%w: NaN", ErrLevel)
	}
	vertices := g.engine.TraceLine(level)
	Logger().Debug("contour: traced lines", "level", level, "paths", len(vertices))
	return g.formatter.Format(Level{Min: level, Max: level}, vertices, nil)
}

// FilledContour traces the filled region between min and max and
// returns the formatted result. A NaN bound means "unbounded" and is
// replaced by the most negative (min) or most positive (max)
// representable float64, so FilledContour(math.NaN(), math.NaN())
// covers the entire value range.
func (g *Generator[T]) FilledContour(min, max float64) (T, error) {
	var zero T
	if math.IsNaN(min) {
		min = -math.MaxFloat64
	}
	if math.IsNaN(max) {
		max = math.MaxFloat64
	}
	if min > max {
		return zero, fmt.Errorf("contour: band minimum %v exceeds maximum %v: %w", min, max, ErrValue)
	}
	vertices, codes := g.engine.TraceFilled(min, max)
	Logger().Debug("contour: traced filled region",
		"min", min, "max", max, "polygons", len(vertices))
	return g.formatter.Format(Level{Min: min, Max: max}, vertices, codes)
}
