// Package render draws flattened regions the way the converter's companion
// viewer does: fitted into a square canvas, with large background shapes
// left out, optionally rotated about the drawing's center.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"honnef.co/go/svgflat"
	"honnef.co/go/svgflat/geom"
)

// ErrEmptyScene is returned by NewScene when there is nothing to fit into the
// canvas: the regions contain no points, or all points lie on a line.
var ErrEmptyScene = errors.New("render: no area to draw")

// Options configures rendering.
type Options struct {
	// Size is the side length of the square canvas, in pixels.
	Size int
	// Extent is the side length of the square, centered in the canvas, that
	// the drawing is scaled to fit.
	Extent float64
	// BackgroundRatio is the fraction of the drawing's bounding box area
	// above which a region's own bounding box marks it as background.
	BackgroundRatio float64
	// AngleStep is the rotation between consecutive animation frames, in
	// degrees.
	AngleStep float64
	// Delay is the time between GIF frames, in hundredths of a second.
	Delay int
}

// DefaultOptions returns the viewer defaults: an 800×800 canvas, a 600 unit
// extent, a background ratio of one half, and 5° steps.
func DefaultOptions() Options {
	return Options{
		Size:            800,
		Extent:          600,
		BackgroundRatio: 0.5,
		AngleStep:       5,
		Delay:           4,
	}
}

// Polygon is a closed, filled outline in canvas coordinates.
type Polygon struct {
	Color  color.NRGBA
	Points []geom.Point
}

// Scene is a set of regions laid out for a canvas.
type Scene struct {
	Bounds geom.Rect
	Scale  float64

	opts    Options
	regions []sceneRegion
}

type sceneRegion struct {
	color      color.NRGBA
	points     []geom.Point
	background bool
}

// NewScene computes the layout for regions: the bounding box over all their
// points and the uniform scale that fits it into the extent.
func NewScene(regions []svgflat.Region, opts Options) (*Scene, error) {
	if opts.Size <= 0 || opts.Extent <= 0 || opts.AngleStep <= 0 {
		return nil, fmt.Errorf("render: invalid options %+v", opts)
	}

	s := &Scene{opts: opts}
	var bounds geom.Rect
	var haveBounds bool
	for _, r := range regions {
		pts := r.Points()
		if bb, ok := geom.BoundingRect(pts); ok {
			if haveBounds {
				bounds = bounds.Union(bb)
			} else {
				bounds, haveBounds = bb, true
			}
		}
		s.regions = append(s.regions, sceneRegion{
			color:  Quantize(r.Color),
			points: pts,
		})
	}
	if !haveBounds || bounds.Width() <= 0 || bounds.Height() <= 0 || bounds.IsInf() {
		return nil, ErrEmptyScene
	}
	s.Bounds = bounds
	s.Scale = min(opts.Extent/bounds.Width(), opts.Extent/bounds.Height())

	limit := bounds.Area() * opts.BackgroundRatio
	for i := range s.regions {
		r := &s.regions[i]
		if len(r.points) < 3 {
			continue
		}
		bb, _ := geom.BoundingRect(r.points)
		r.background = bb.Area() > limit
		if r.background {
			svgflat.Logger().Debug("treating region as background", "region", i, "area", bb.Area(), "limit", limit)
		}
	}
	return s, nil
}

// Len returns the number of regions in the scene.
func (s *Scene) Len() int { return len(s.regions) }

// IsBackground reports whether region i is treated as background and not
// drawn. A region is background if it has at least three points and its
// bounding box covers more than the configured fraction of the drawing's
// bounding box.
func (s *Scene) IsBackground(i int) bool {
	return s.regions[i].background
}

// Transform returns the transform from document coordinates to canvas
// pixels for the drawing rotated by degrees. Positive angles rotate
// counter-clockwise on screen.
func (s *Scene) Transform(degrees float64) geom.Affine {
	half := float64(s.opts.Size) / 2
	return geom.Identity.
		ThenTranslate(geom.Vec2(s.Bounds.Center()).Negate()).
		// Scale into a y-up space, rotate there, then flip back.
		ThenScale(s.Scale, -s.Scale).
		ThenRotate(degrees * math.Pi / 180).
		ThenScale(1, -1).
		ThenTranslate(geom.Vec(half, half))
}

// Polygons returns the regions to draw, in order, projected onto the canvas
// for the given rotation. Background regions and regions without points are
// omitted.
func (s *Scene) Polygons(degrees float64) []Polygon {
	aff := s.Transform(degrees)
	var out []Polygon
	for _, r := range s.regions {
		if r.background || len(r.points) == 0 {
			continue
		}
		pts := make([]geom.Point, len(r.points))
		for j, pt := range r.points {
			pts[j] = pt.Transform(aff)
		}
		out = append(out, Polygon{Color: r.color, Points: pts})
	}
	return out
}

// Angles returns the rotation angles of a full turn, in degrees, starting at
// zero and spaced by the configured step.
func (s *Scene) Angles() []float64 {
	var out []float64
	for i := 0; ; i++ {
		a := float64(i) * s.opts.AngleStep
		if a >= 360 {
			break
		}
		out = append(out, a)
	}
	return out
}

// Quantize converts color channels in [0, 1] to 8 bits each, truncating
// like the viewer's hex formatting. Channels outside the range are clamped.
func Quantize(c [3]float64) color.NRGBA {
	ch := func(v float64) uint8 {
		return uint8(min(max(v*255, 0), 255))
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: 255}
}
