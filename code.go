package contour

import "fmt"

// PathCode tags a vertex with how it connects to its neighbor in a
// composite path. The numeric values are part of the engine contract
// and must not be renumbered: formatters branch on the raw values
// supplied by the contouring engine.
type PathCode uint8

const (
	// Stop marks the end of an entire path. The vertex is ignored.
	Stop PathCode = 0
	// MoveTo starts a new subpath at the given vertex.
	MoveTo PathCode = 1
	// LineTo draws a line from the current position to the vertex.
	LineTo PathCode = 2
	// Curve3 is a quadratic Bezier control point or endpoint.
	Curve3 PathCode = 3
	// Curve4 is a cubic Bezier control point or endpoint.
	Curve4 PathCode = 4
	// ClosePoly draws a segment back to the start of the current
	// subpath. The vertex repeats the subpath's first vertex.
	ClosePoly PathCode = 79
)

// String returns the name of the path code.
func (c PathCode) String() string {
	switch c {
	case Stop:
		return "Stop"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Curve3:
		return "Curve3"
	case Curve4:
		return "Curve4"
	case ClosePoly:
		return "ClosePoly"
	default:
		return fmt.Sprintf("PathCode(%d)", uint8(c))
	}
}
