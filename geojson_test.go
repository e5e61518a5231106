package contour

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
)

func TestGeoJSONFormatterLines(t *testing.T) {
	open := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 1)}
	single := []Point{Pt(3, 3), Pt(3, 3)}

	fc, err := GeoJSONFormatter{}.Format(Level{Min: 0.5, Max: 0.5}, [][]Point{open, single}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("got %d features, want 2", len(fc.Features))
	}
	if typ := fc.Features[0].Geometry.Type; typ != geojson.GeometryLineString {
		t.Errorf("feature 0 is %v, want LineString", typ)
	}
	if typ := fc.Features[1].Geometry.Type; typ != geojson.GeometryPoint {
		t.Errorf("feature 1 is %v, want Point", typ)
	}
	level, err := fc.Features[0].PropertyFloat64("level")
	if err != nil || level != 0.5 {
		t.Errorf("level property = %v (%v), want 0.5", level, err)
	}
}

func TestGeoJSONFormatterFilled(t *testing.T) {
	outer := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	hole := []Point{Pt(1, 1), Pt(1, 3), Pt(3, 3), Pt(3, 1)}
	degenerate := []Point{Pt(2, 2)}
	vs, cs := ringStream(outer, degenerate, hole)

	fc, err := GeoJSONFormatter{}.Format(Level{Min: 0.25, Max: 0.75}, [][]Point{vs}, [][]PathCode{cs})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry.Type != geojson.GeometryPolygon {
		t.Fatalf("feature is %v, want Polygon", f.Geometry.Type)
	}
	if n := len(f.Geometry.Polygon); n != 2 {
		t.Errorf("polygon has %d rings, want 2 (degenerate hole dropped)", n)
	}
	if ring := f.Geometry.Polygon[0]; len(ring) != 5 {
		t.Errorf("exterior has %d positions, want 5", len(ring))
	}
	min, err := f.PropertyFloat64("level")
	if err != nil || min != 0.25 {
		t.Errorf("level property = %v (%v), want 0.25", min, err)
	}
	max, err := f.PropertyFloat64("levelMax")
	if err != nil || max != 0.75 {
		t.Errorf("levelMax property = %v (%v), want 0.75", max, err)
	}
}

func TestGeoJSONFormatterDegenerateExterior(t *testing.T) {
	vs, cs := ringStream([]Point{Pt(2, 2)})
	fc, err := GeoJSONFormatter{}.Format(Level{}, [][]Point{vs}, [][]PathCode{cs})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(fc.Features) != 0 {
		t.Errorf("degenerate exterior should yield no features, got %d", len(fc.Features))
	}
}
