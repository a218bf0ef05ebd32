package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/svgflat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func square(x0, y0, x1, y1 float64, color [3]float64) svgflat.Region {
	return svgflat.Region{
		Color: color,
		Contour: [][2]float64{
			{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1},
		},
	}
}

// testRegions is a 100×50 backing rectangle with two small squares on top.
func testRegions() []svgflat.Region {
	return []svgflat.Region{
		square(0, 0, 100, 50, [3]float64{1, 1, 1}),
		square(10, 10, 20, 20, [3]float64{1, 0, 0}),
		square(60, 30, 70, 40, [3]float64{0, 0, 1}),
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Size = 200
	opts.Extent = 100
	opts.AngleStep = 90
	return opts
}
