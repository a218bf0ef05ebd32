package svgflat

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/JoshVarga/svgparser"
	"golang.org/x/net/html/charset"

	"honnef.co/go/svgflat/geom"
)

// Path is the geometry of one drawable element.
type Path struct {
	// Kind is the element's name, such as "path" or "rect".
	Kind string
	// ID is the element's id attribute, if any.
	ID       string
	Segments []geom.ParametricCurve
}

// Options configures the geometry pass and flattening.
type Options struct {
	// PointsPerSegment is the number of intervals each segment is sampled
	// at, producing PointsPerSegment+1 points per segment. Values below 1
	// select DefaultPointsPerSegment.
	PointsPerSegment int
	// Shapes additionally converts basic shape elements (polylines,
	// polygons, lines, ellipses, circles, and rectangles). Their paths are
	// appended after all path elements. Colors are only extracted for path
	// elements, so shapes are drawn in the default color.
	Shapes bool
}

// DefaultPointsPerSegment is the sampling density used when
// [Options.PointsPerSegment] is not set.
const DefaultPointsPerSegment = 20

func (opts Options) pointsPerSegment() int {
	if opts.PointsPerSegment < 1 {
		return DefaultPointsPerSegment
	}
	return opts.PointsPerSegment
}

// ReadPaths parses an SVG document and returns the geometry of its path
// elements in document order.
//
// Malformed XML is reported as returned by the XML parser. Entities
// declared in the document type declaration are expanded. Malformed path
// data aborts the whole document with a [*ParseError] whose Element field
// identifies the offending element.
func ReadPaths(r io.Reader, opts Options) ([]Path, error) {
	root, err := decodeTree(r)
	if err != nil {
		return nil, fmt.Errorf("svgflat: reading geometry: %w", err)
	}

	els := findElements(root, "path")
	if opts.Shapes {
		for _, kind := range shapeKinds {
			els = append(els, findElements(root, kind)...)
		}
	}

	paths := make([]Path, 0, len(els))
	for i, el := range els {
		var segs []geom.ParametricCurve
		if el.Name == "path" {
			segs, err = ParsePathData(el.Attributes["d"])
		} else {
			segs, err = shapeSegments(el.Name, func(name string) (string, bool) {
				v, ok := el.Attributes[name]
				return v, ok
			})
		}
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Element = i
			}
			return nil, err
		}
		Logger().Debug("read path", "element", i, "kind", el.Name, "segments", len(segs))
		paths = append(paths, Path{
			Kind:     el.Name,
			ID:       el.Attributes["id"],
			Segments: segs,
		})
	}
	return paths, nil
}

// decodeTree parses the element tree of an SVG document, expanding the
// entities declared in its document type declaration.
func decodeTree(r io.Reader) (*svgparser.Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.Entity = declaredEntities(src)
	dec.CharsetReader = charset.NewReaderLabel

	root, err := svgparser.DecodeFirst(dec)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	if err := root.Decode(dec); err != nil && err != io.EOF {
		return nil, err
	}
	return root, nil
}

// findElements returns all descendants of el with the given name, in
// document order.
func findElements(el *svgparser.Element, name string) []*svgparser.Element {
	var out []*svgparser.Element
	var walk func(*svgparser.Element)
	walk = func(e *svgparser.Element) {
		if e.Name == name {
			out = append(out, e)
		}
		for _, child := range e.Children {
			walk(child)
		}
	}
	walk(el)
	return out
}
