package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"honnef.co/go/svgflat"
)

// WritePDF writes the unrotated scene as a single page PDF with filled
// vector polygons. The page is a square with the canvas size in points.
func (s *Scene) WritePDF(path string) error {
	size := float64(s.opts.Size)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: size, Ht: size},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(0, 0, size, size, "F")

	polys := s.Polygons(0)
	for _, poly := range polys {
		pdf.SetFillColor(int(poly.Color.R), int(poly.Color.G), int(poly.Color.B))
		pts := make([]gofpdf.PointType, len(poly.Points))
		for i, pt := range poly.Points {
			pts[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
		}
		pdf.Polygon(pts, "F")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("render: writing PDF: %w", err)
	}
	svgflat.Logger().Info("wrote PDF", "path", path, "polygons", len(polys))
	return nil
}
