package svgflat

import (
	"fmt"
)

// ParseError reports malformed geometry in an SVG document.
type ParseError struct {
	// Element is the index of the offending element among the elements
	// returned by [ReadPaths], or -1 if unknown.
	Element int
	// Attr is the attribute holding the malformed value.
	Attr string
	// Offset is the byte offset of the error within the attribute value,
	// or -1 if the value as a whole is malformed.
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	var where string
	if e.Element >= 0 {
		where = fmt.Sprintf("element %d: ", e.Element)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("svgflat: %sbad %s attribute at offset %d: %s", where, e.Attr, e.Offset, e.Msg)
	}
	return fmt.Sprintf("svgflat: %sbad %s attribute: %s", where, e.Attr, e.Msg)
}
