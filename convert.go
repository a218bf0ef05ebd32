package svgflat

import (
	"bytes"
	"fmt"
	"os"
)

// Convert reads the SVG document at input, flattens its paths, and writes
// the regions as JSON to output, replacing any existing file. It returns the
// regions it wrote.
//
// The output file is only touched once the whole document has been
// converted successfully.
func Convert(input, output string, opts Options) ([]Region, error) {
	src, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("svgflat: %w", err)
	}
	Logger().Info("read document", "path", input, "bytes", len(src))

	colors, err := ExtractColors(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	paths, err := ReadPaths(bytes.NewReader(src), opts)
	if err != nil {
		return nil, err
	}
	regions := Flatten(paths, colors, opts)

	var buf bytes.Buffer
	if err := WriteRegions(&buf, regions); err != nil {
		return nil, err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("svgflat: %w", err)
	}
	Logger().Info("wrote regions", "path", output, "regions", len(regions))
	return regions, nil
}
