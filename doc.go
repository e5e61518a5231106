// Package contour computes iso-value contour lines and filled contour
// polygons over 2-D scalar fields sampled on structured grids.
//
// # Overview
//
// A [Generator] is built once from a grid and answers any number of
// queries against it. Three grid kinds are supported, each normalized
// to a canonical curvilinear representation at construction time:
//
//   - [FromUniform]: fixed spacing, described by an origin and a step
//   - [FromRectilinear]: independent per-axis spacing
//   - [New] / [FromCurvilinear]: fully general per-point coordinates
//
// Raw engine output is translated by a [Formatter] chosen at
// construction:
//
//   - [FlatFormatter]: flat vertex arrays, one per path or ring
//   - [MatrixFormatter]: a single interleaved header/vertex matrix
//   - [GeometryFormatter]: go-geom points, lines, rings, and polygons
//   - [GeoJSONFormatter]: a GeoJSON feature collection
//   - [RawFormatter]: the untranslated engine output
//
// Custom formats implement [Formatter] directly or wrap a function in
// [FormatterFunc].
//
// # Quick start
//
//	z := mat.NewDense(rows, cols, samples)
//	gen, err := contour.FromUniform(z, [2]float64{0, 0}, [2]float64{1, 1}, contour.FlatFormatter{})
//	if err != nil {
//		...
//	}
//	lines, err := gen.Contour(0.5)         // iso-lines at level 0.5
//	polys, err := gen.FilledContour(0.5, 1) // region with 0.5 <= z <= 1
//
// # Engine
//
// Contour tracing itself is behind the [Engine] interface. The grid
// constructors bind a built-in marching-squares engine;
// [NewGenerator] accepts any other implementation.
//
// # Concurrency
//
// Generators are immutable after construction. Queries against one
// generator may run concurrently as long as the engine is safe for
// concurrent reads; the built-in engine is.
package contour
