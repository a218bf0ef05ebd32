package geom

// ParametricCurve describes a path segment parametrized by a scalar.
//
// Eval(0) must equal Start and Eval(1) must equal End, up to floating-point
// error.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

var (
	_ ParametricCurve = Line{}
	_ ParametricCurve = QuadBez{}
	_ ParametricCurve = CubicBez{}
	_ ParametricCurve = Arc{}
)

// Sample evaluates c at the n+1 parameter values j/n for j = 0, ..., n and
// returns the resulting points in order. The first point is c's start and the
// last point is c's end.
//
// Sample panics if n is less than 1.
func Sample(c ParametricCurve, n int) []Point {
	return AppendSamples(make([]Point, 0, n+1), c, n)
}

// AppendSamples is like [Sample] but appends the points to dst.
func AppendSamples(dst []Point, c ParametricCurve, n int) []Point {
	if n < 1 {
		panic("geom: sample count must be at least 1")
	}
	for j := 0; j <= n; j++ {
		t := float64(j) / float64(n)
		dst = append(dst, c.Eval(t))
	}
	return dst
}
