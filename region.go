package svgflat

import (
	"encoding/json"
	"fmt"
	"io"

	"honnef.co/go/svgflat/geom"
)

// Region is a flattened element: a polygon and its fill color.
type Region struct {
	// Color holds the red, green, and blue channels, each in [0, 1].
	Color [3]float64 `json:"color"`
	// Contour holds the polygon's points as [x, y] pairs, in the source
	// document's coordinate space.
	Contour [][2]float64 `json:"contour"`
}

// Points returns the contour as points.
func (r Region) Points() []geom.Point {
	pts := make([]geom.Point, len(r.Contour))
	for i, p := range r.Contour {
		pts[i] = geom.Pt(p[0], p[1])
	}
	return pts
}

// WriteRegions writes regions as an indented JSON array. The output only
// depends on the regions, so equal inputs produce identical bytes.
func WriteRegions(w io.Writer, regions []Region) error {
	// Empty contours are encoded as [] rather than null.
	out := make([]Region, len(regions))
	for i, r := range regions {
		if r.Contour == nil {
			r.Contour = [][2]float64{}
		}
		out[i] = r
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("svgflat: encoding regions: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// ReadRegions decodes a JSON array as written by [WriteRegions].
func ReadRegions(r io.Reader) ([]Region, error) {
	var regions []Region
	if err := json.NewDecoder(r).Decode(&regions); err != nil {
		return nil, fmt.Errorf("svgflat: decoding regions: %w", err)
	}
	return regions, nil
}
