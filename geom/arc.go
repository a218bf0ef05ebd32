package geom

import (
	"math"
)

// Arc is an elliptical arc in center parametrization.
//
// The arc starts at StartAngle and sweeps SweepAngle radians; a positive sweep
// runs in the direction of increasing angle, which is clockwise in a y-down
// coordinate system. XRotation rotates the ellipse's x axis.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// NewArcFromSVG converts an arc in SVG endpoint parametrization to center
// parametrization, following the conversion in the SVG implementation notes.
//
// from and to are the arc's end points, radii the ellipse's radii,
// xRotation the rotation of the ellipse's x axis in radians, and largeArc
// and sweep the SVG flags of the same name. Radii that are too small to span
// the end points are scaled up uniformly.
//
// The second return value is false if the arc is degenerate and should be
// treated as a line. This is the case if either radius is zero, or if the
// radii are so large compared to the distance between the end points that
// the small arc cannot be told apart from the chord. It is also false if
// the end points coincide, in which case the arc should be omitted.
func NewArcFromSVG(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	if from == to {
		return Arc{}, false
	}
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}

	// Step 1: compute (x1′, y1′), the start point in a frame centered on the
	// chord's midpoint and aligned with the ellipse's axes. All further
	// computation happens in units of the radii, so nothing is squared at
	// the scale of the radii.
	half := from.Sub(to).Mul(0.5)
	p := half.rotate(-xRotation)
	px, py := p.X/rx, p.Y/ry

	// Ensure radii are large enough.
	l := math.Hypot(px, py)
	if l > 1 {
		rx *= l
		ry *= l
		px /= l
		py /= l
		l = 1
	}
	if l < minArcChord && !largeArc {
		return Arc{}, false
	}

	// Step 2: compute (cx′, cy′).
	coef := math.Sqrt(max(0, (1-l)*(1+l))) / l
	if math.IsNaN(coef) || math.IsInf(coef, 0) {
		coef = 0
	}
	if largeArc == sweep {
		coef = -coef
	}
	cp := Vec2{
		X: rx * (coef * py),
		Y: -ry * (coef * px),
	}

	// Step 3: compute the center in the original frame.
	center := from.Midpoint(to).Translate(cp.rotate(xRotation))

	// Step 4: compute the start angle and sweep.
	u := Vec2{px - coef*py, py + coef*px}
	v := Vec2{-px - coef*py, -py + coef*px}
	start := u.Angle()
	delta := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: delta,
		XRotation:  xRotation,
	}, true
}

// minArcChord is the half chord, in units of the radii, below which a small
// arc deviates from its chord by a negligible fraction of the chord's length.
const minArcChord = 1e-12

func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Take the ellipse radii, how the radii are rotated, and the sweep angle, and
// return a point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return Vec2{u, v}.rotate(xRotation)
}
