// Package geom provides the small set of 2D primitives needed to flatten
// SVG path geometry: points and vectors, the parametric segment types that
// appear in path data (lines, quadratic and cubic Béziers, elliptical arcs),
// axis-aligned rectangles, and affine transforms.
//
// # Parametric curves
//
// [ParametricCurve] describes segments that can be evaluated at t ∈ [0, 1].
// Evaluating at 0 yields the segment's start point and evaluating at 1 yields
// its end point. The simplest parametric curve is the [Line], whose evaluation
// is a linear interpolation between its end points.
//
// [Sample] evaluates a curve at n+1 uniformly spaced parameter values. This is
// the only flattening strategy offered: the point density per segment is
// fixed and does not adapt to curvature.
//
// # Coordinates
//
// All coordinates are in the native space of the document they came from.
// Like SVG, the y axis points down, which makes positive rotations (see
// [Rotate]) appear clockwise on screen.
package geom
