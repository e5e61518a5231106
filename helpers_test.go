package contour

import (
	"math"

	geom "github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ringStream builds a synthetic filled-contour entry from rings given
// without their closing vertex: each ring becomes a
// MoveTo...LineTo...ClosePoly span with the first vertex repeated at
// the end, mirroring the engine contract.
func ringStream(rings ...[]Point) ([]Point, []PathCode) {
	var vs []Point
	var cs []PathCode
	for _, ring := range rings {
		vs = append(vs, ring...)
		vs = append(vs, ring[0])
		cs = append(cs, MoveTo)
		for i := 1; i < len(ring); i++ {
			cs = append(cs, LineTo)
		}
		cs = append(cs, ClosePoly)
	}
	return vs, cs
}

// radialGrid samples z = sqrt(x^2+y^2) on an n x n rectilinear grid
// over [-1,1] x [-1,1].
func radialGrid(n int) (x, y []float64, z *mat.Dense) {
	x = make([]float64, n)
	floats.Span(x, -1, 1)
	y = make([]float64, n)
	floats.Span(y, -1, 1)
	z = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			z.Set(i, j, math.Hypot(x[j], y[i]))
		}
	}
	return x, y, z
}

func pathLength(pts []Point) float64 {
	var l float64
	for i := 0; i+1 < len(pts); i++ {
		l += pts[i+1].Sub(pts[i]).Length()
	}
	return l
}

func coordPathLength(coords []geom.Coord) float64 {
	var l float64
	for i := 0; i+1 < len(coords); i++ {
		l += math.Hypot(coords[i+1][0]-coords[i][0], coords[i+1][1]-coords[i][1])
	}
	return l
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// stubEngine is an Engine that replays canned streams and records what
// it was asked for.
type stubEngine struct {
	lineOut     [][]Point
	filledOut   [][]Point
	filledCodes [][]PathCode

	lineCalls   int
	filledCalls int
	gotLevel    float64
	gotMin      float64
	gotMax      float64
}

func (s *stubEngine) TraceLine(level float64) [][]Point {
	s.lineCalls++
	s.gotLevel = level
	return s.lineOut
}

func (s *stubEngine) TraceFilled(min, max float64) ([][]Point, [][]PathCode) {
	s.filledCalls++
	s.gotMin, s.gotMax = min, max
	return s.filledOut, s.filledCodes
}
