package svgflat

import (
	"strings"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		fill, style string
		want        string
	}{
		{"#ff00aa", "", "#ff00aa"},
		{"", "", DefaultColor},
		{"none", "", DefaultColor},
		{"#fff", "fill:#000000", "#fff"},
		{"none", "fill:#123456", "#123456"},
		{"", "stroke:#123456;fill:#abcdef;", "#abcdef"},
		{"", "fill: #abcdef ;stroke:#123456", "#abcdef"},
		{"", "fill:#111111;fill:#222222", "#222222"},
		{"", "fill:#111111;fill:none", "#111111"},
		{"", "fill:none", DefaultColor},
		{"", "stroke:#123456", DefaultColor},
		{"", "fill-opacity:0.5", DefaultColor},
		// Named colors are passed through and resolve to black later.
		{"red", "", "red"},
		{"", "fill:url(#grad)", "url(#grad)"},
	}
	for _, tt := range tests {
		if got := ResolveColor(tt.fill, tt.style); got != tt.want {
			t.Errorf("ResolveColor(%q, %q) = %q, want %q", tt.fill, tt.style, got, tt.want)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want [3]float64
	}{
		{"#ff00aa", [3]float64{1, 0, 0xaa / 255.0}},
		{"#FF00AA", [3]float64{1, 0, 0xaa / 255.0}},
		{"#000000", [3]float64{0, 0, 0}},
		{"#ffffff", [3]float64{1, 1, 1}},
		{"#abc", HexToRGB("#aabbcc")},
		{"#0f0", [3]float64{0, 1, 0}},
		{"##abc", HexToRGB("#aabbcc")},
		{"", [3]float64{}},
		{"none", [3]float64{}},
		{"red", [3]float64{}},
		{"ff00aa", [3]float64{}},
		{"#gg0000", [3]float64{}},
		{"#12345", [3]float64{}},
		{"#ff00aa80", [3]float64{}},
		{"rgb(1,2,3)", [3]float64{}},
		{"url(#grad)", [3]float64{}},
	}
	for _, tt := range tests {
		diff(t, tt.want, HexToRGB(tt.in))
	}

	if got := HexToRGB("#ff00aa")[2]; got != 170.0/255.0 {
		t.Errorf("got blue channel %v, want %v", got, 170.0/255.0)
	}
}

const colorDoc = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:svg="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <rect width="100" height="100" fill="#ffffff"/>
  <path d="M0 0 L1 1" fill="#ff00aa"/>
  <g fill="#00ff00">
    <path d="M0 0 L1 1" style="stroke:#123456;fill:#abcdef;"/>
    <g>
      <path d="M0 0 L1 1" fill="none"/>
    </g>
  </g>
  <svg:path d="M0 0 L1 1" fill="#abc"/>
  <path d="M0 0 L1 1" fill="none" style="fill:#010203"/>
</svg>
`

func TestExtractColors(t *testing.T) {
	got, err := ExtractColors(strings.NewReader(colorDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#ff00aa", "#abcdef", DefaultColor, "#abc", "#010203"}
	diff(t, want, got)
}

func TestExtractColorsEntities(t *testing.T) {
	got, err := ExtractColors(strings.NewReader(entityDoc))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"#ff00aa", "#010203"}, got)
}

func TestExtractColorsMalformed(t *testing.T) {
	if _, err := ExtractColors(strings.NewReader(`<svg><path d="M0 0"></svg>`)); err == nil {
		t.Error("expected error for malformed document")
	}
	if _, err := ExtractColors(strings.NewReader("")); err == nil {
		t.Error("expected error for empty document")
	}
}
