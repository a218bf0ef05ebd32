package svgflat

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/svgflat/geom"
)

func line(x0, y0, x1, y1 float64) geom.Line {
	return geom.Line{P0: geom.Pt(x0, y0), P1: geom.Pt(x1, y1)}
}

func TestParsePathData(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []geom.ParametricCurve
	}{
		{"empty", "", nil},
		{"blank", " \n\t ", nil},
		{"move only", "M10 10", nil},
		{
			"closed triangle",
			"M0 0 L10 0 L10 10 Z",
			[]geom.ParametricCurve{line(0, 0, 10, 0), line(10, 0, 10, 10), line(10, 10, 0, 0)},
		},
		{
			"implicit lineto",
			"M0 0 10 0 10 10z",
			[]geom.ParametricCurve{line(0, 0, 10, 0), line(10, 0, 10, 10), line(10, 10, 0, 0)},
		},
		{
			"relative",
			"m1 1 l2 0 h3 v4 z",
			[]geom.ParametricCurve{line(1, 1, 3, 1), line(3, 1, 6, 1), line(6, 1, 6, 5), line(6, 5, 1, 1)},
		},
		{
			"absolute horizontal and vertical",
			"M1 1 H5 V-2",
			[]geom.ParametricCurve{line(1, 1, 5, 1), line(5, 1, 5, -2)},
		},
		{
			"close at start point",
			"M0 0 L1 0 L0 0 Z",
			[]geom.ParametricCurve{line(0, 0, 1, 0), line(1, 0, 0, 0)},
		},
		{
			"zero length lines are kept",
			"M2 2 L2 2",
			[]geom.ParametricCurve{line(2, 2, 2, 2)},
		},
		{
			"subpaths",
			"M0 0 L1 0 M5 5 L6 5",
			[]geom.ParametricCurve{line(0, 0, 1, 0), line(5, 5, 6, 5)},
		},
		{
			"lineto after closepath",
			"M0 0 L1 0 Z L0 1",
			[]geom.ParametricCurve{line(0, 0, 1, 0), line(1, 0, 0, 0), line(0, 0, 0, 1)},
		},
		{
			"compact numbers",
			"M.5.5L-1-1",
			[]geom.ParametricCurve{line(0.5, 0.5, -1, -1)},
		},
		{
			"exponents and commas",
			"M1e1,2E0l1,1",
			[]geom.ParametricCurve{line(10, 2, 11, 3)},
		},
		{
			"cubic and smooth cubic",
			"M0 0 C0 1 1 1 1 0 S2 -1 2 0",
			[]geom.ParametricCurve{
				geom.CubicBez{P0: geom.Pt(0, 0), P1: geom.Pt(0, 1), P2: geom.Pt(1, 1), P3: geom.Pt(1, 0)},
				geom.CubicBez{P0: geom.Pt(1, 0), P1: geom.Pt(1, -1), P2: geom.Pt(2, -1), P3: geom.Pt(2, 0)},
			},
		},
		{
			"relative cubic",
			"M1 1 c0 1 1 1 1 0",
			[]geom.ParametricCurve{
				geom.CubicBez{P0: geom.Pt(1, 1), P1: geom.Pt(1, 2), P2: geom.Pt(2, 2), P3: geom.Pt(2, 1)},
			},
		},
		{
			"smooth cubic without previous cubic",
			"M0 0 S1 1 2 0",
			[]geom.ParametricCurve{
				geom.CubicBez{P0: geom.Pt(0, 0), P1: geom.Pt(0, 0), P2: geom.Pt(1, 1), P3: geom.Pt(2, 0)},
			},
		},
		{
			"quadratic and smooth quadratic",
			"M0 0 Q1 1 2 0 T4 0",
			[]geom.ParametricCurve{
				geom.QuadBez{P0: geom.Pt(0, 0), P1: geom.Pt(1, 1), P2: geom.Pt(2, 0)},
				geom.QuadBez{P0: geom.Pt(2, 0), P1: geom.Pt(3, -1), P2: geom.Pt(4, 0)},
			},
		},
		{
			"relative quadratic and smooth quadratic",
			"m0 0 q1 1 2 0 t2 0",
			[]geom.ParametricCurve{
				geom.QuadBez{P0: geom.Pt(0, 0), P1: geom.Pt(1, 1), P2: geom.Pt(2, 0)},
				geom.QuadBez{P0: geom.Pt(2, 0), P1: geom.Pt(3, -1), P2: geom.Pt(4, 0)},
			},
		},
		{
			"smooth quadratic after line",
			"M0 0 L1 0 T2 0",
			[]geom.ParametricCurve{
				line(0, 0, 1, 0),
				geom.QuadBez{P0: geom.Pt(1, 0), P1: geom.Pt(1, 0), P2: geom.Pt(2, 0)},
			},
		},
		{
			"arc with zero radius",
			"M0 0 A0 5 0 0 1 3 4",
			[]geom.ParametricCurve{line(0, 0, 3, 4)},
		},
		{
			"arc with huge radii",
			"M0 0 A1e200 1e200 0 0 1 10 0",
			[]geom.ParametricCurve{line(0, 0, 10, 0)},
		},
		{
			"arc to current point",
			"M1 1 A5 5 0 0 1 1 1",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePathData(tt.d)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, cmpopts.EquateEmpty())
		})
	}
}

func TestParsePathDataArc(t *testing.T) {
	for _, d := range []string{
		"M-1 0 A1 1 0 0 1 1 0",
		"M-1 0a1,1 0 012,0",
	} {
		segs, err := ParsePathData(d)
		if err != nil {
			t.Fatalf("%q: %v", d, err)
		}
		if len(segs) != 1 {
			t.Fatalf("%q: got %d segments, want 1", d, len(segs))
		}
		arc, ok := segs[0].(geom.Arc)
		if !ok {
			t.Fatalf("%q: got %T, want geom.Arc", d, segs[0])
		}
		opt := cmpopts.EquateApprox(0, 1e-12)
		diff(t, geom.Pt(-1, 0), arc.Start(), opt)
		diff(t, geom.Pt(0, -1), arc.Eval(0.5), opt)
		diff(t, geom.Pt(1, 0), arc.End(), opt)
	}
}

func TestParsePathDataArcRotation(t *testing.T) {
	segs, err := ParsePathData("M0 0 A10 5 90 0 1 0 20")
	if err != nil {
		t.Fatal(err)
	}
	arc := segs[0].(geom.Arc)
	// A 90° rotation turns the 10×5 ellipse upright, so the chord along the
	// y axis is its major diameter.
	diff(t, geom.Pt(0, 10), arc.Center, cmpopts.EquateApprox(0, 1e-9))
	diff(t, geom.Pt(0, 20), arc.End(), cmpopts.EquateApprox(0, 1e-9))
}

func TestParsePathDataErrors(t *testing.T) {
	tests := []struct {
		d      string
		offset int
	}{
		{"L0 0", 0},
		{"M0 0 X1 1", 5},
		{"M0 0 L1", 7},
		{"M0 0 L1 a", 8},
		{"M0 0 A1 1 0 2 0 1 1", 12},
		{"M0 0 Z 1 1", 7},
	}
	for _, tt := range tests {
		_, err := ParsePathData(tt.d)
		if err == nil {
			t.Errorf("%q: expected error", tt.d)
			continue
		}
		perr := asParseError(t, err)
		if perr.Offset != tt.offset {
			t.Errorf("%q: got offset %d, want %d (%v)", tt.d, perr.Offset, tt.offset, err)
		}
		if perr.Attr != "d" {
			t.Errorf("%q: got attribute %q, want \"d\"", tt.d, perr.Attr)
		}
	}
}
