package svgflat

import (
	"honnef.co/go/svgflat/geom"
)

// Flatten samples the segments of each path and pairs the resulting contour
// with the color at the same index. Paths without a corresponding color are
// given [DefaultColor].
//
// Each segment contributes exactly PointsPerSegment+1 points. Paths without
// segments yield regions with empty contours.
func Flatten(paths []Path, colors []string, opts Options) []Region {
	if len(colors) != len(paths) {
		Logger().Warn("color count does not match path count", "colors", len(colors), "paths", len(paths))
	}

	n := opts.pointsPerSegment()
	regions := make([]Region, 0, len(paths))
	var buf []geom.Point
	for i, p := range paths {
		color := DefaultColor
		if i < len(colors) {
			color = colors[i]
		}

		contour := make([][2]float64, 0, len(p.Segments)*(n+1))
		for _, seg := range p.Segments {
			buf = geom.AppendSamples(buf[:0], seg, n)
			for _, pt := range buf {
				contour = append(contour, pt.Pair())
			}
		}
		Logger().Debug("flattened path", "element", i, "color", color, "points", len(contour))

		regions = append(regions, Region{
			Color:   HexToRGB(color),
			Contour: contour,
		})
	}
	return regions
}
