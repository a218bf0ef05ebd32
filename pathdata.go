package svgflat

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/svgflat/geom"
)

const pathCommands = "MmZzLlHhVvCcSsQqTtAa"

// pathScanner tokenizes SVG path data.
type pathScanner struct {
	buf  []byte
	pos  int
	attr string
}

func (s *pathScanner) errorf(format string, args ...any) error {
	return &ParseError{
		Element: -1,
		Attr:    s.attr,
		Offset:  s.pos,
		Msg:     fmt.Sprintf(format, args...),
	}
}

func (s *pathScanner) done() bool { return s.pos >= len(s.buf) }

// skip skips whitespace and commas.
func (s *pathScanner) skip() {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) startsNumber() bool {
	if s.done() {
		return false
	}
	c := s.buf[s.pos]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func (s *pathScanner) number() (float64, error) {
	s.skip()
	if s.done() {
		return 0, s.errorf("unexpected end of data, expected number")
	}
	f, n := strconv.ParseFloat(s.buf[s.pos:])
	if n == 0 {
		return 0, s.errorf("expected number, found %q", s.buf[s.pos])
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, s.errorf("number %q out of range", s.buf[s.pos:s.pos+n])
	}
	s.pos += n
	return f, nil
}

func (s *pathScanner) point() (geom.Point, error) {
	x, err := s.number()
	if err != nil {
		return geom.Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}

// flag reads an arc flag. Flags are single characters and need not be
// separated from the following number.
func (s *pathScanner) flag() (bool, error) {
	s.skip()
	if s.done() {
		return false, s.errorf("unexpected end of data, expected flag")
	}
	switch s.buf[s.pos] {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	default:
		return false, s.errorf("arc flag must be 0 or 1, found %q", s.buf[s.pos])
	}
}

// ParsePathData parses the SVG path data mini-language, as found in the d
// attribute of path elements, into a list of segments.
//
// Moves start new subpaths but don't produce segments; the segments of all
// subpaths are returned in a single list. A closepath command produces a line
// back to the start of the subpath, unless the current point is already
// there. Arcs whose end points coincide are dropped, and arcs with a zero
// radius become lines.
//
// Empty path data yields no segments. Malformed path data yields a
// [*ParseError].
func ParsePathData(d string) ([]geom.ParametricCurve, error) {
	s := &pathScanner{buf: []byte(d), attr: "d"}
	s.skip()
	if s.done() {
		return nil, nil
	}
	if c := s.buf[s.pos]; c != 'M' && c != 'm' {
		return nil, s.errorf("path data must begin with a moveto, found %q", c)
	}

	var (
		segs  []geom.ParametricCurve
		cur   geom.Point
		start geom.Point
		// ctrl is the last control point of the previous curve, for smooth
		// curve commands.
		ctrl geom.Point
		cmd  byte
		prev byte
	)
	for {
		s.skip()
		if s.done() {
			break
		}

		c := s.buf[s.pos]
		if strings.IndexByte(pathCommands, c) >= 0 {
			cmd = c
			s.pos++
		} else if !s.startsNumber() {
			return nil, s.errorf("unknown command %q", c)
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, s.errorf("number %q after closepath", c)
		}
		// Otherwise, the previous command repeats with a new set of
		// arguments.

		rel := cmd >= 'a'
		// offset turns relative coordinates into absolute ones.
		offset := func(p geom.Point) geom.Point {
			if rel {
				return p.Translate(geom.Vec2(cur))
			}
			return p
		}

		switch cmd {
		case 'M', 'm':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			cur = offset(p)
			start = cur
		case 'Z', 'z':
			if cur != start {
				segs = append(segs, geom.Line{P0: cur, P1: start})
			}
			cur = start
		case 'L', 'l':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			p = offset(p)
			segs = append(segs, geom.Line{P0: cur, P1: p})
			cur = p
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			p := geom.Pt(x, cur.Y)
			segs = append(segs, geom.Line{P0: cur, P1: p})
			cur = p
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			p := geom.Pt(cur.X, y)
			segs = append(segs, geom.Line{P0: cur, P1: p})
			cur = p
		case 'C', 'c':
			var pts [3]geom.Point
			for i := range pts {
				p, err := s.point()
				if err != nil {
					return nil, err
				}
				pts[i] = offset(p)
			}
			segs = append(segs, geom.CubicBez{P0: cur, P1: pts[0], P2: pts[1], P3: pts[2]})
			ctrl = pts[1]
			cur = pts[2]
		case 'S', 's':
			var pts [2]geom.Point
			for i := range pts {
				p, err := s.point()
				if err != nil {
					return nil, err
				}
				pts[i] = offset(p)
			}
			c1 := cur
			if strings.IndexByte("CcSs", prev) >= 0 {
				c1 = cur.Reflect(ctrl)
			}
			segs = append(segs, geom.CubicBez{P0: cur, P1: c1, P2: pts[0], P3: pts[1]})
			ctrl = pts[0]
			cur = pts[1]
		case 'Q', 'q':
			var pts [2]geom.Point
			for i := range pts {
				p, err := s.point()
				if err != nil {
					return nil, err
				}
				pts[i] = offset(p)
			}
			segs = append(segs, geom.QuadBez{P0: cur, P1: pts[0], P2: pts[1]})
			ctrl = pts[0]
			cur = pts[1]
		case 'T', 't':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			p = offset(p)
			c1 := cur
			if strings.IndexByte("QqTt", prev) >= 0 {
				c1 = cur.Reflect(ctrl)
			}
			segs = append(segs, geom.QuadBez{P0: cur, P1: c1, P2: p})
			ctrl = c1
			cur = p
		case 'A', 'a':
			rx, err := s.number()
			if err != nil {
				return nil, err
			}
			ry, err := s.number()
			if err != nil {
				return nil, err
			}
			rot, err := s.number()
			if err != nil {
				return nil, err
			}
			large, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			p = offset(p)
			segs = appendArc(segs, cur, p, geom.Vec(rx, ry), rot, large, sweep)
			cur = p
		}
		prev = cmd

		// Coordinate pairs following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return segs, nil
}

// appendArc appends the arc from p0 to p1, with the ellipse rotated by rot
// degrees.
func appendArc(segs []geom.ParametricCurve, p0, p1 geom.Point, radii geom.Vec2, rot float64, large, sweep bool) []geom.ParametricCurve {
	if p0 == p1 {
		return segs
	}
	arc, ok := geom.NewArcFromSVG(p0, p1, radii, rot*math.Pi/180, large, sweep)
	if !ok {
		return append(segs, geom.Line{P0: p0, P1: p1})
	}
	return append(segs, arc)
}
