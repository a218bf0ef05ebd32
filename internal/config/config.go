// Package config holds the settings of the svgflat command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"honnef.co/go/svgflat"
	"honnef.co/go/svgflat/render"
)

// Config is the complete set of settings for one conversion. Zero values
// of the optional outputs (Render.Frames, Render.GIF, Render.PDF) disable
// them.
type Config struct {
	Input            string `toml:"input"`
	Output           string `toml:"output"`
	PointsPerSegment int    `toml:"points_per_segment"`
	Shapes           bool   `toml:"shapes"`
	// RenderOnly skips the conversion and renders the regions stored in
	// Output.
	RenderOnly bool `toml:"render_only"`

	Render Render `toml:"render"`
}

// Render configures the optional preview outputs.
type Render struct {
	// Frames is a directory that receives one PNG per rotation angle.
	Frames string `toml:"frames"`
	// GIF is the path of an animated GIF of a full turn.
	GIF string `toml:"gif"`
	// PDF is the path of a single page vector PDF.
	PDF string `toml:"pdf"`

	Size            int     `toml:"size"`
	Extent          float64 `toml:"extent"`
	AngleStep       float64 `toml:"angle_step"`
	Delay           int     `toml:"delay"`
	BackgroundRatio float64 `toml:"background_ratio"`
}

// Default returns the settings used when neither a file nor flags say
// otherwise.
func Default() Config {
	ro := render.DefaultOptions()
	return Config{
		Input:            "input.svg",
		Output:           "roses.json",
		PointsPerSegment: svgflat.DefaultPointsPerSegment,
		Render: Render{
			Size:            ro.Size,
			Extent:          ro.Extent,
			AngleStep:       ro.AngleStep,
			Delay:           ro.Delay,
			BackgroundRatio: ro.BackgroundRatio,
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys that don't correspond
// to a setting are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (cfg Config) Validate() error {
	switch {
	case cfg.Input == "":
		return errors.New("config: input must not be empty")
	case cfg.Output == "":
		return errors.New("config: output must not be empty")
	case cfg.PointsPerSegment < 1:
		return fmt.Errorf("config: points_per_segment must be positive, got %d", cfg.PointsPerSegment)
	case cfg.RenderOnly && !cfg.WantsRender():
		return errors.New("config: render_only requires frames, gif, or pdf")
	case cfg.Render.Size < 1:
		return fmt.Errorf("config: render.size must be positive, got %d", cfg.Render.Size)
	case cfg.Render.Extent <= 0:
		return fmt.Errorf("config: render.extent must be positive, got %g", cfg.Render.Extent)
	case cfg.Render.AngleStep <= 0 || cfg.Render.AngleStep > 360:
		return fmt.Errorf("config: render.angle_step must be in (0, 360], got %g", cfg.Render.AngleStep)
	case cfg.Render.Delay < 0:
		return fmt.Errorf("config: render.delay must not be negative, got %d", cfg.Render.Delay)
	case cfg.Render.BackgroundRatio <= 0:
		return fmt.Errorf("config: render.background_ratio must be positive, got %g", cfg.Render.BackgroundRatio)
	}
	return nil
}

// WantsRender reports whether any preview output is configured.
func (cfg Config) WantsRender() bool {
	return cfg.Render.Frames != "" || cfg.Render.GIF != "" || cfg.Render.PDF != ""
}

func (cfg Config) ConvertOptions() svgflat.Options {
	return svgflat.Options{
		PointsPerSegment: cfg.PointsPerSegment,
		Shapes:           cfg.Shapes,
	}
}

func (cfg Config) RenderOptions() render.Options {
	return render.Options{
		Size:            cfg.Render.Size,
		Extent:          cfg.Render.Extent,
		BackgroundRatio: cfg.Render.BackgroundRatio,
		AngleStep:       cfg.Render.AngleStep,
		Delay:           cfg.Render.Delay,
	}
}
