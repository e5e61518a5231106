package contour

import "fmt"

// Level identifies the data level(s) a contour was traced at. For line
// contours Min and Max both hold the query level. For filled contours
// they hold the band's bounds.
type Level struct {
	Min, Max float64
}

// Formatter converts the raw (level, vertices, codes) triple produced
// by a contouring engine into an application-usable representation.
//
// For line contours codes is nil and each entry of vertices is one
// disjoint contour path. For filled contours codes parallels vertices
// and segments each entry into closed rings via MoveTo...ClosePoly
// spans; entry i describes one polygon whose first ring is the
// exterior and whose remaining rings are holes.
//
// A Formatter is selected once at generator construction time. It must
// be stateless with respect to queries: the generator may be queried
// concurrently.
type Formatter[T any] interface {
	Format(level Level, vertices [][]Point, codes [][]PathCode) (T, error)
}

// FormatterFunc adapts an ordinary function to the Formatter
// interface, making custom output formats a first-class extension
// point.
type FormatterFunc[T any] func(level Level, vertices [][]Point, codes [][]PathCode) (T, error)

// Format calls f.
func (f FormatterFunc[T]) Format(level Level, vertices [][]Point, codes [][]PathCode) (T, error) {
	return f(level, vertices, codes)
}

// FlatFormatter emits contours as flat vertex arrays, one per path.
//
// Line contours pass through unchanged. Filled contours are split into
// their closed rings, emitted in engine order (each exterior before its
// holes); the exterior/hole relationship itself is not reported. Every
// emitted ring starts and ends on the same coordinate pair.
type FlatFormatter struct{}

// Format implements Formatter.
func (FlatFormatter) Format(_ Level, vertices [][]Point, codes [][]PathCode) ([][]Point, error) {
	if codes == nil {
		return vertices, nil
	}
	if len(codes) != len(vertices) {
		return nil, errParallelStreams(len(vertices), len(codes))
	}
	var rings [][]Point
	for i, cs := range codes {
		for _, span := range ringSpans(cs) {
			rings = append(rings, vertices[i][span[0]:span[1]+1])
		}
	}
	return rings, nil
}

// errParallelStreams reports a filled contour whose code stream does
// not parallel its vertex stream, which violates the engine contract.
func errParallelStreams(nv, nc int) error {
	return fmt.Errorf("contour: %d vertex arrays but %d code arrays: %w", nv, nc, ErrValue)
}

// ringSpans pairs MoveTo indices with ClosePoly indices in traversal
// order. Each pair is the inclusive [start, stop] index span of one
// closed ring.
func ringSpans(codes []PathCode) [][2]int {
	var spans [][2]int
	start := -1
	for i, c := range codes {
		switch c {
		case MoveTo:
			start = i
		case ClosePoly:
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
		}
	}
	return spans
}

// Raw is the untranslated engine output captured by RawFormatter.
// Codes is nil for line contours.
type Raw struct {
	Level    Level
	Vertices [][]Point
	Codes    [][]PathCode
}

// RawFormatter passes the raw engine output through unchanged. It is
// mainly useful as a starting point for writing custom formatters.
type RawFormatter struct{}

// Format implements Formatter.
func (RawFormatter) Format(level Level, vertices [][]Point, codes [][]PathCode) (Raw, error) {
	return Raw{Level: level, Vertices: vertices, Codes: codes}, nil
}
