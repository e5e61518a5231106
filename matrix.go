package contour

import "gonum.org/v1/gonum/mat"

// MatrixFormatter emits contours as a single interleaved matrix in the
// style of a two-column contour table: for every ring (or open line),
// one header row (vertexCount, level) immediately followed by that
// many vertex rows (x, y). Rings follow each other with no separator
// or terminator rows.
//
// For filled contours the header's level column always carries the
// band's lower bound; the upper bound is not represented in this
// format.
type MatrixFormatter struct{}

// Format implements Formatter. It returns nil when the contour is
// empty, since a 0x2 matrix cannot be represented.
func (MatrixFormatter) Format(level Level, vertices [][]Point, codes [][]PathCode) (*mat.Dense, error) {
	paths, err := FlatFormatter{}.Format(level, vertices, codes)
	if err != nil {
		return nil, err
	}
	rows := 0
	for _, p := range paths {
		rows += len(p) + 1
	}
	if rows == 0 {
		return nil, nil
	}
	m := mat.NewDense(rows, 2, nil)
	row := 0
	for _, p := range paths {
		m.Set(row, 0, float64(len(p)))
		m.Set(row, 1, level.Min)
		row++
		for _, pt := range p {
			m.Set(row, 0, pt.X)
			m.Set(row, 1, pt.Y)
			row++
		}
	}
	return m, nil
}
