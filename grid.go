package contour

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Option configures a generator during construction.
type Option func(*options)

type options struct {
	mask [][]bool
}

// WithMask marks grid points as invalid. The mask must have the same
// shape as the data grid; a quad touching a masked point produces no
// contours. A nil or all-false mask is equivalent to no mask.
func WithMask(mask [][]bool) Option {
	return func(o *options) {
		o.mask = mask
	}
}

// grid is the canonical curvilinear representation every constructor
// normalizes to. It is transient: the engine copies it at construction
// and the caller's matrices are never referenced afterwards.
type grid struct {
	x, y, z [][]float64
	mask    [][]bool // nil when no point is masked
}

// New constructs a contour generator from a general curvilinear grid.
// x, y, and z must all have the same shape, at least 2x2; x and y give
// the coordinates of each sample in z.
//
// This is the canonical constructor; [FromRectilinear] and
// [FromUniform] normalize more regular grids to this form.
func New[T any](x, y, z *mat.Dense, f Formatter[T], opts ...Option) (*Generator[T], error) {
	g, err := normalize(x, y, z, opts)
	if err != nil {
		return nil, err
	}
	return NewGenerator(newQuadEngine(g), f)
}

// FromCurvilinear constructs a contour generator from a curvilinear
// grid. It is an explicit alias for [New].
func FromCurvilinear[T any](x, y, z *mat.Dense, f Formatter[T], opts ...Option) (*Generator[T], error) {
	return New(x, y, z, f, opts...)
}

// FromRectilinear constructs a contour generator from a rectilinear
// grid: x holds the coordinate of each column of z, y the coordinate
// of each row. The axes are broadcast to a full curvilinear grid.
func FromRectilinear[T any](x, y []float64, z *mat.Dense, f Formatter[T], opts ...Option) (*Generator[T], error) {
	if z == nil {
		return nil, fmt.Errorf("contour: z must not be nil: %w", ErrValue)
	}
	rows, cols := z.Dims()
	if len(x) != cols {
		return nil, fmt.Errorf("contour: length of x is %d but z has %d columns: %w",
			len(x), cols, ErrShape)
	}
	if len(y) != rows {
		return nil, fmt.Errorf("contour: length of y is %d but z has %d rows: %w",
			len(y), rows, ErrShape)
	}
	xg := mat.NewDense(rows, cols, nil)
	yg := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xg.Set(i, j, x[j])
			yg.Set(i, j, y[i])
		}
	}
	return New(xg, yg, z, f, opts...)
}

// FromUniform constructs a contour generator from a uniform grid:
// origin is the (x, y) coordinate of z[0,0] and step the (x, y)
// distance between neighboring samples. Both step components must be
// non-zero.
func FromUniform[T any](z *mat.Dense, origin, step [2]float64, f Formatter[T], opts ...Option) (*Generator[T], error) {
	if z == nil {
		return nil, fmt.Errorf("contour: z must not be nil: %w", ErrValue)
	}
	if step[0] == 0 || step[1] == 0 {
		return nil, fmt.Errorf("contour: step must have non-zero components but is %v: %w",
			step, ErrValue)
	}
	rows, cols := z.Dims()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("contour: z must be at least 2x2 but is %dx%d: %w",
			rows, cols, ErrShape)
	}
	x := make([]float64, cols)
	floats.Span(x, origin[0], origin[0]+step[0]*float64(cols-1))
	y := make([]float64, rows)
	floats.Span(y, origin[1], origin[1]+step[1]*float64(rows-1))
	return FromRectilinear(x, y, z, f, opts...)
}

// normalize validates the curvilinear triple and the options and
// produces the canonical grid. All validation happens here, before any
// engine is built.
func normalize(x, y, z *mat.Dense, opts []Option) (grid, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if x == nil || y == nil || z == nil {
		return grid{}, fmt.Errorf("contour: grid matrices must not be nil: %w", ErrValue)
	}
	rows, cols := z.Dims()
	if rows < 2 || cols < 2 {
		return grid{}, fmt.Errorf("contour: z must be at least 2x2 but is %dx%d: %w",
			rows, cols, ErrShape)
	}
	if xr, xc := x.Dims(); xr != rows || xc != cols {
		return grid{}, fmt.Errorf("contour: x has shape %dx%d but z has shape %dx%d: %w",
			xr, xc, rows, cols, ErrShape)
	}
	if yr, yc := y.Dims(); yr != rows || yc != cols {
		return grid{}, fmt.Errorf("contour: y has shape %dx%d but z has shape %dx%d: %w",
			yr, yc, rows, cols, ErrShape)
	}
	mask, masked, err := normalizeMask(o.mask, rows, cols)
	if err != nil {
		return grid{}, err
	}
	Logger().Debug("contour: grid normalized", "rows", rows, "cols", cols, "masked", masked)
	return grid{
		x:    denseRows(x),
		y:    denseRows(y),
		z:    denseRows(z),
		mask: mask,
	}, nil
}

// normalizeMask validates the mask shape and drops masks with no set
// entries, so the engine only carries a mask when it changes the
// result.
func normalizeMask(mask [][]bool, rows, cols int) ([][]bool, int, error) {
	if mask == nil {
		return nil, 0, nil
	}
	if len(mask) != rows {
		return nil, 0, fmt.Errorf("contour: mask has %d rows but z has %d: %w",
			len(mask), rows, ErrShape)
	}
	masked := 0
	out := make([][]bool, rows)
	for i, row := range mask {
		if len(row) != cols {
			return nil, 0, fmt.Errorf("contour: mask row %d has %d columns but z has %d: %w",
				i, len(row), cols, ErrShape)
		}
		out[i] = make([]bool, cols)
		copy(out[i], row)
		for _, m := range row {
			if m {
				masked++
			}
		}
	}
	if masked == 0 {
		return nil, 0, nil
	}
	return out, masked, nil
}

func denseRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		mat.Row(out[i], i, m)
	}
	return out
}
