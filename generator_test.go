package contour

import (
	"errors"
	"math"
	"testing"
)

func TestNewGeneratorValidation(t *testing.T) {
	if _, err := NewGenerator[[][]Point](nil, FlatFormatter{}); !errors.Is(err, ErrValue) {
		t.Errorf("nil engine: got %v, want ErrValue", err)
	}
	if _, err := NewGenerator[[][]Point](&stubEngine{}, nil); !errors.Is(err, ErrValue) {
		t.Errorf("nil formatter: got %v, want ErrValue", err)
	}
}

func TestContourRejectsNaNBeforeEngine(t *testing.T) {
	eng := &stubEngine{}
	gen, err := NewGenerator[[][]Point](eng, FlatFormatter{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.Contour(math.NaN()); !errors.Is(err, ErrLevel) {
		t.Errorf("got %v, want ErrLevel", err)
	}
	if eng.lineCalls != 0 {
		t.Errorf("engine was called %d times for a NaN level, want 0", eng.lineCalls)
	}
}

func TestContourPassesLevelToFormatter(t *testing.T) {
	eng := &stubEngine{lineOut: [][]Point{{Pt(0, 0), Pt(1, 1)}}}
	var got Level
	var gotCodes [][]PathCode
	f := FormatterFunc[struct{}](func(level Level, _ [][]Point, codes [][]PathCode) (struct{}, error) {
		got = level
		gotCodes = codes
		return struct{}{}, nil
	})
	gen, err := NewGenerator(eng, f)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.Contour(0.75); err != nil {
		t.Fatalf("Contour: %v", err)
	}
	if eng.gotLevel != 0.75 {
		t.Errorf("engine level = %v, want 0.75", eng.gotLevel)
	}
	if got != (Level{Min: 0.75, Max: 0.75}) {
		t.Errorf("formatter level = %+v, want {0.75 0.75}", got)
	}
	if gotCodes != nil {
		t.Errorf("line contour passed codes %v, want nil", gotCodes)
	}
}

func TestFilledContourDefaultsBounds(t *testing.T) {
	eng := &stubEngine{}
	gen, err := NewGenerator[[][]Point](eng, FlatFormatter{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.FilledContour(math.NaN(), math.NaN()); err != nil {
		t.Fatalf("FilledContour: %v", err)
	}
	if eng.gotMin != -math.MaxFloat64 {
		t.Errorf("min = %v, want -math.MaxFloat64", eng.gotMin)
	}
	if eng.gotMax != math.MaxFloat64 {
		t.Errorf("max = %v, want math.MaxFloat64", eng.gotMax)
	}

	// Omitted bounds must behave exactly like explicit ones.
	if _, err := gen.FilledContour(-math.MaxFloat64, math.MaxFloat64); err != nil {
		t.Fatalf("FilledContour explicit: %v", err)
	}
	if eng.gotMin != -math.MaxFloat64 || eng.gotMax != math.MaxFloat64 {
		t.Errorf("explicit bounds = (%v, %v), want full float64 range", eng.gotMin, eng.gotMax)
	}
}

func TestFilledContourInvertedBand(t *testing.T) {
	eng := &stubEngine{}
	gen, err := NewGenerator[[][]Point](eng, FlatFormatter{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.FilledContour(2, 1); !errors.Is(err, ErrValue) {
		t.Errorf("got %v, want ErrValue", err)
	}
	if eng.filledCalls != 0 {
		t.Errorf("engine was called %d times for an inverted band, want 0", eng.filledCalls)
	}
}

func TestFilledContourPassesBandToFormatter(t *testing.T) {
	vs, cs := ringStream([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)})
	eng := &stubEngine{filledOut: [][]Point{vs}, filledCodes: [][]PathCode{cs}}
	var got Level
	f := FormatterFunc[struct{}](func(level Level, _ [][]Point, _ [][]PathCode) (struct{}, error) {
		got = level
		return struct{}{}, nil
	})
	gen, err := NewGenerator(eng, f)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.FilledContour(0.25, 0.75); err != nil {
		t.Fatalf("FilledContour: %v", err)
	}
	if got != (Level{Min: 0.25, Max: 0.75}) {
		t.Errorf("formatter level = %+v, want {0.25 0.75}", got)
	}
}
