// Package svgflat converts the path geometry of an SVG document into flat
// polygons paired with fill colors, and stores them as JSON.
//
// # Pipeline
//
// Conversion runs in two independent passes over the same document:
//
//   - [ExtractColors] walks the document's path elements and resolves an
//     effective fill color for each of them (see [ResolveColor]).
//   - [ReadPaths] walks the same path elements and parses their path data
//     into parametric segments (see [ParsePathData]).
//
// [Flatten] merges both lists by index. Every segment is sampled at a fixed
// number of uniformly spaced parameter values (see [geom.Sample]), and the
// samples of all segments of an element are concatenated into one contour.
// Consecutive segments share an end point, which therefore appears twice;
// contours are not deduplicated.
//
// The result is a list of [Region] values, one per element, in document
// order. [WriteRegions] serializes them as an indented JSON array of
// objects of the form
//
//	{"color": [r, g, b], "contour": [[x, y], ...]}
//
// with color channels in [0, 1] and coordinates in the document's own
// coordinate space. [Convert] runs the whole pipeline from an input file to
// an output file.
//
// # Colors
//
// Only hexadecimal colors with three or six digits are understood. Named
// colors, rgb() notation, gradients and anything else resolve to black.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive diagnostics.
package svgflat
