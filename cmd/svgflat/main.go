// Command svgflat converts the paths of an SVG document into colored
// polylines and writes them as JSON. It can additionally render previews of
// the result as PNG frames, an animated GIF, or a PDF.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"honnef.co/go/svgflat"
	"honnef.co/go/svgflat/internal/config"
	"honnef.co/go/svgflat/render"
)

const usage = `Usage: svgflat [flags]

Samples every path of an SVG document at a fixed number of points per
segment and writes the resulting colored contours as JSON.

Flags:
`

var (
	configPath = flag.String("config", "", "TOML configuration file")
	input      = flag.String("in", "", "SVG input file")
	output     = flag.String("out", "", "JSON output file")
	points     = flag.Int("points", 0, "Intervals sampled per segment")
	shapes     = flag.Bool("shapes", false, "Also convert basic shapes (rect, circle, ...)")
	renderOnly = flag.Bool("render-only", false, "Skip conversion and render the existing JSON output")
	frames     = flag.String("frames", "", "Directory for rotated PNG preview frames")
	gifPath    = flag.String("gif", "", "Animated GIF preview")
	pdfPath    = flag.String("pdf", "", "PDF preview")
	size       = flag.Int("size", 0, "Preview canvas size in pixels")
	step       = flag.Float64("step", 0, "Rotation between preview frames, in degrees")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	svgflat.SetLogger(log)

	cfg, err := loadConfig()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		log.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly on top of it.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *input
		case "out":
			cfg.Output = *output
		case "points":
			cfg.PointsPerSegment = *points
		case "shapes":
			cfg.Shapes = *shapes
		case "render-only":
			cfg.RenderOnly = *renderOnly
		case "frames":
			cfg.Render.Frames = *frames
		case "gif":
			cfg.Render.GIF = *gifPath
		case "pdf":
			cfg.Render.PDF = *pdfPath
		case "size":
			cfg.Render.Size = *size
		case "step":
			cfg.Render.AngleStep = *step
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	regions, err := loadRegions(cfg)
	if err != nil {
		return err
	}
	if !cfg.WantsRender() {
		return nil
	}

	scene, err := render.NewScene(regions, cfg.RenderOptions())
	if err != nil {
		return err
	}
	if cfg.Render.Frames != "" {
		if _, err := scene.WriteFrames(cfg.Render.Frames); err != nil {
			return err
		}
	}
	if cfg.Render.GIF != "" {
		if err := scene.WriteGIF(cfg.Render.GIF); err != nil {
			return err
		}
	}
	if cfg.Render.PDF != "" {
		if err := scene.WritePDF(cfg.Render.PDF); err != nil {
			return err
		}
	}
	return nil
}

func loadRegions(cfg config.Config) ([]svgflat.Region, error) {
	if !cfg.RenderOnly {
		return svgflat.Convert(cfg.Input, cfg.Output, cfg.ConvertOptions())
	}
	f, err := os.Open(cfg.Output)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return svgflat.ReadRegions(f)
}
