package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"honnef.co/go/svgflat"
)

// paint renders the scene rotated by degrees onto a new context. The caller
// must close the context.
func (s *Scene) paint(degrees float64) (*gg.Context, error) {
	dc := gg.NewContext(s.opts.Size, s.opts.Size)
	dc.ClearWithColor(gg.RGB(0, 0, 0))
	for _, poly := range s.Polygons(degrees) {
		dc.SetColor(poly.Color)
		dc.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, pt := range poly.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render: filling polygon: %w", err)
		}
	}
	return dc, nil
}

// Frame renders the scene rotated by degrees: a black canvas with every
// drawable region filled in order.
func (s *Scene) Frame(degrees float64) (image.Image, error) {
	dc, err := s.paint(degrees)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return dc.Image(), nil
}

// WritePNG renders the scene rotated by degrees to a PNG file.
func (s *Scene) WritePNG(path string, degrees float64) error {
	dc, err := s.paint(degrees)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// WriteFrames renders one full turn of the scene as numbered PNG files in
// dir, creating dir if necessary. It returns the paths of the files written.
func (s *Scene) WriteFrames(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	var paths []string
	for i, angle := range s.Angles() {
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if err := s.WritePNG(path, angle); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	svgflat.Logger().Info("wrote frames", "dir", dir, "frames", len(paths))
	return paths, nil
}

// WriteGIF renders one full turn of the scene as an animated GIF.
func (s *Scene) WriteGIF(path string) error {
	anim := &gif.GIF{}
	for _, angle := range s.Angles() {
		img, err := s.Frame(angle)
		if err != nil {
			return err
		}
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(pal, pal.Rect, img, img.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, s.opts.Delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("render: encoding GIF: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	svgflat.Logger().Info("wrote animation", "path", path, "frames", len(anim.Image))
	return nil
}
