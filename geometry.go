package contour

import (
	geom "github.com/twpayne/go-geom"
)

// GeometryFormatter emits contours as go-geom geometry objects.
//
// Line contours become a mix of [geom.Point] (degenerate single-point
// contours), [geom.LinearRing] (closed contours), and [geom.LineString]
// (open contours). Filled contours become [geom.Polygon] values, one
// per connected region, with the region's holes attached as interior
// rings.
//
// Rings that collapse to a single point are recoverable engine output
// and are handled by omission: a collapsed exterior drops its whole
// polygon, a collapsed hole drops just that hole. Any other geometry
// construction failure is returned unchanged.
type GeometryFormatter struct{}

// Format implements Formatter.
func (GeometryFormatter) Format(_ Level, vertices [][]Point, codes [][]PathCode) ([]geom.T, error) {
	if codes == nil {
		return lineGeometries(vertices), nil
	}
	if len(codes) != len(vertices) {
		return nil, errParallelStreams(len(vertices), len(codes))
	}
	var elements []geom.T
	for i, cs := range codes {
		poly, err := buildPolygon(vertices[i], ringSpans(cs))
		if err != nil {
			return nil, err
		}
		if poly != nil {
			elements = append(elements, poly)
		}
	}
	return elements, nil
}

func lineGeometries(vertices [][]Point) []geom.T {
	var elements []geom.T
	for _, vs := range vertices {
		if len(vs) == 0 {
			continue
		}
		switch {
		case vs[0] != vs[len(vs)-1]:
			elements = append(elements, geom.NewLineStringFlat(geom.XY, flatCoords(vs)))
		case len(vs) < 3:
			// Closed with fewer than 3 vertices: a single point.
			elements = append(elements, geom.NewPointFlat(geom.XY, []float64{vs[0].X, vs[0].Y}))
		default:
			elements = append(elements, geom.NewLinearRingFlat(geom.XY, flatCoords(vs)))
		}
	}
	return elements
}

// buildPolygon assembles one polygon from the ring spans of a filled
// contour entry. The first span is the exterior, the rest are holes.
// Spans shorter than 2 describe rings collapsed to a single point:
// such an exterior voids the polygon (nil, nil), such a hole is
// dropped.
func buildPolygon(vs []Point, spans [][2]int) (*geom.Polygon, error) {
	if len(spans) == 0 || spans[0][1]-spans[0][0] < 2 {
		return nil, nil
	}
	sign := signedArea(vs[spans[0][0] : spans[0][1]+1])
	poly := geom.NewPolygon(geom.XY)
	for i, span := range spans {
		if i > 0 && span[1]-span[0] < 2 {
			continue
		}
		pts := vs[span[0] : span[1]+1]
		// go-geom subtracts interior ring areas as signed values, so a
		// hole must share the exterior's orientation for Area to
		// exclude it. The engine emits holes opposite-oriented.
		if i > 0 && signedArea(pts)*sign < 0 {
			pts = reversedRing(pts)
		}
		ring := geom.NewLinearRingFlat(geom.XY, flatCoords(pts))
		if err := poly.Push(ring); err != nil {
			return nil, err
		}
	}
	return poly, nil
}

func reversedRing(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func flatCoords(pts []Point) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}
