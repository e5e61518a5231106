package contour

import (
	geojson "github.com/paulmach/go.geojson"
)

// GeoJSONFormatter emits contours as a GeoJSON feature collection.
//
// Line contours become LineString features (single-point contours
// become Point features); filled contours become Polygon features with
// holes as interior rings, using the same collapsed-ring omission
// policy as [GeometryFormatter]. Every feature carries a "level"
// property; filled features additionally carry "levelMax".
type GeoJSONFormatter struct{}

// Format implements Formatter.
func (GeoJSONFormatter) Format(level Level, vertices [][]Point, codes [][]PathCode) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	if codes == nil {
		for _, vs := range vertices {
			if len(vs) == 0 {
				continue
			}
			var f *geojson.Feature
			if vs[0] == vs[len(vs)-1] && len(vs) < 3 {
				f = geojson.NewPointFeature([]float64{vs[0].X, vs[0].Y})
			} else {
				f = geojson.NewLineStringFeature(positions(vs))
			}
			f.SetProperty("level", level.Min)
			fc.AddFeature(f)
		}
		return fc, nil
	}
	if len(codes) != len(vertices) {
		return nil, errParallelStreams(len(vertices), len(codes))
	}
	for i, cs := range codes {
		spans := ringSpans(cs)
		if len(spans) == 0 || spans[0][1]-spans[0][0] < 2 {
			continue
		}
		var rings [][][]float64
		for j, span := range spans {
			if j > 0 && span[1]-span[0] < 2 {
				continue
			}
			rings = append(rings, positions(vertices[i][span[0]:span[1]+1]))
		}
		f := geojson.NewPolygonFeature(rings)
		f.SetProperty("level", level.Min)
		f.SetProperty("levelMax", level.Max)
		fc.AddFeature(f)
	}
	return fc, nil
}

func positions(pts []Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}
