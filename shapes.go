package svgflat

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/svgflat/geom"
)

// shapeKinds lists the basic shape elements converted when
// [Options.Shapes] is set, in the order they are appended after the path
// elements.
var shapeKinds = []string{"polyline", "polygon", "line", "ellipse", "circle", "rect"}

// attrGetter looks up an attribute value by name.
type attrGetter func(name string) (string, bool)

// shapeSegments converts a basic shape element into segments.
func shapeSegments(kind string, attr attrGetter) ([]geom.ParametricCurve, error) {
	switch kind {
	case "rect":
		x, y, w, h, err := floatAttrs(attr, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		return polygonSegments([]geom.Point{
			geom.Pt(x, y),
			geom.Pt(x+w, y),
			geom.Pt(x+w, y+h),
			geom.Pt(x, y+h),
		}, true), nil
	case "circle":
		cx, cy, r, _, err := floatAttrs(attr, "cx", "cy", "r", "")
		if err != nil {
			return nil, err
		}
		return ellipseSegments(geom.Pt(cx, cy), geom.Vec(r, r)), nil
	case "ellipse":
		cx, cy, rx, ry, err := floatAttrs(attr, "cx", "cy", "rx", "ry")
		if err != nil {
			return nil, err
		}
		return ellipseSegments(geom.Pt(cx, cy), geom.Vec(rx, ry)), nil
	case "line":
		x1, y1, x2, y2, err := floatAttrs(attr, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		return []geom.ParametricCurve{geom.Line{P0: geom.Pt(x1, y1), P1: geom.Pt(x2, y2)}}, nil
	case "polyline", "polygon":
		v, _ := attr("points")
		pts, err := parsePoints(v)
		if err != nil {
			return nil, err
		}
		return polygonSegments(pts, kind == "polygon"), nil
	default:
		return nil, &ParseError{Element: -1, Attr: kind, Offset: -1, Msg: "unsupported element"}
	}
}

// polygonSegments connects consecutive points with lines, and the last point
// with the first if closed is set and they differ.
func polygonSegments(pts []geom.Point, closed bool) []geom.ParametricCurve {
	if len(pts) == 0 {
		return nil
	}
	segs := make([]geom.ParametricCurve, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		segs = append(segs, geom.Line{P0: pts[i-1], P1: pts[i]})
	}
	if first, last := pts[0], pts[len(pts)-1]; closed && first != last {
		segs = append(segs, geom.Line{P0: last, P1: first})
	}
	return segs
}

// ellipseSegments returns an ellipse as two half arcs, starting at its
// leftmost point.
func ellipseSegments(center geom.Point, radii geom.Vec2) []geom.ParametricCurve {
	left := center.Translate(geom.Vec(-radii.X, 0))
	right := center.Translate(geom.Vec(radii.X, 0))
	segs := appendArc(nil, left, right, radii, 0, true, false)
	return appendArc(segs, right, left, radii, 0, true, false)
}

// floatAttrs parses up to four numeric attributes. Missing attributes and
// empty names yield zero.
func floatAttrs(attr attrGetter, names ...string) (a, b, c, d float64, err error) {
	var out [4]float64
	for i, name := range names {
		if name == "" {
			continue
		}
		v, ok := attr(name)
		if !ok {
			continue
		}
		out[i], err = parseLength(name, v)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return out[0], out[1], out[2], out[3], nil
}

// parseLength parses a number, optionally followed by the px unit. Other
// units are not converted and are rejected.
func parseLength(name, v string) (float64, error) {
	s := strings.TrimSpace(v)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || (n < len(s) && s[n:] != "px") {
		return 0, &ParseError{Element: -1, Attr: name, Offset: -1, Msg: fmt.Sprintf("invalid length %q", v)}
	}
	return f, nil
}

// parsePoints parses the points attribute of polylines and polygons. A
// trailing unpaired coordinate is ignored.
func parsePoints(v string) ([]geom.Point, error) {
	s := &pathScanner{buf: []byte(v), attr: "points"}
	var pts []geom.Point
	for {
		s.skip()
		if s.done() {
			break
		}
		x, err := s.number()
		if err != nil {
			return nil, err
		}
		s.skip()
		if s.done() {
			break
		}
		y, err := s.number()
		if err != nil {
			return nil, err
		}
		pts = append(pts, geom.Pt(x, y))
	}
	return pts, nil
}
