package svgflat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// DefaultColor is the color used for elements without a usable fill.
const DefaultColor = "#000000"

// ExtractColors parses an SVG document and returns the effective fill color
// of each path element, in document order. See [ResolveColor] for how a
// color is chosen.
//
// Only malformed XML is an error. Entities declared in the document type
// declaration are expanded. Missing or unusable fill information resolves
// to [DefaultColor].
func ExtractColors(r io.Reader) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("svgflat: reading colors: %w", err)
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = declaredEntities(src)
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(src); err != nil {
		return nil, fmt.Errorf("svgflat: reading colors: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("svgflat: reading colors: document has no root element")
	}

	var colors []string
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "path" {
			colors = append(colors, ResolveColor(el.SelectAttrValue("fill", ""), el.SelectAttrValue("style", "")))
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return colors, nil
}

// ResolveColor determines the effective fill color from an element's fill
// and style attributes.
//
// A fill attribute that is set and not "none" is used verbatim. Otherwise
// the style attribute is split into declarations at semicolons, and every
// declaration containing "fill:" is considered in turn. Its value is the
// text between the first and second colon, trimmed of whitespace. Values
// other than "none" replace the result, so the last such declaration wins.
// Without any usable value, the result is [DefaultColor].
func ResolveColor(fill, style string) string {
	if fill != "" && fill != "none" {
		return fill
	}

	color := DefaultColor
	for _, decl := range strings.Split(style, ";") {
		if !strings.Contains(decl, "fill:") {
			continue
		}
		v := strings.TrimSpace(strings.Split(decl, ":")[1])
		if v != "none" {
			color = v
		}
	}
	return color
}

// HexToRGB converts a color string of the form #rgb or #rrggbb to red,
// green, and blue channels in [0, 1]. Any other string, including empty
// strings and strings with non-hexadecimal digits, yields black.
func HexToRGB(s string) [3]float64 {
	var black [3]float64
	if !strings.HasPrefix(s, "#") {
		return black
	}
	hex := strings.TrimLeft(s, "#")

	var pairs [3]string
	switch len(hex) {
	case 6:
		pairs = [3]string{hex[0:2], hex[2:4], hex[4:6]}
	case 3:
		for i := range pairs {
			pairs[i] = strings.Repeat(hex[i:i+1], 2)
		}
	default:
		return black
	}

	var rgb [3]float64
	for i, p := range pairs {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return black
		}
		rgb[i] = float64(v) / 255.0
	}
	return rgb
}
