package main

import (
	"os"

	"github.com/osuushi/contour"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings read from the --config file. Anything the file leaves out keeps its
// default.
type Config struct {
	OffsetSteps int          `yaml:"offset_steps"`
	SnapRadius  float64      `yaml:"snap_radius"`
	Render      RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	Scale     float64 `yaml:"scale"`
	LineWidth float64 `yaml:"line_width"`
}

func DefaultConfig() Config {
	return Config{
		OffsetSteps: contour.DefaultOffsetSteps,
		SnapRadius:  10,
		Render: RenderConfig{
			Scale:     10,
			LineWidth: 2,
		},
	}
}

// Load the config at path. An empty path gives the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.OffsetSteps < 1 {
		return errors.Errorf("offset_steps must be at least 1, got %d", c.OffsetSteps)
	}
	if c.SnapRadius < 0 {
		return errors.Errorf("snap_radius must not be negative, got %g", c.SnapRadius)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("render.scale must be positive, got %g", c.Render.Scale)
	}
	if c.Render.LineWidth <= 0 {
		return errors.Errorf("render.line_width must be positive, got %g", c.Render.LineWidth)
	}
	return nil
}

func (c Config) Options() contour.Options {
	return contour.Options{OffsetSteps: c.OffsetSteps}
}

func (c Config) RenderOptions() contour.RenderOptions {
	return contour.RenderOptions{Scale: c.Render.Scale, LineWidth: c.Render.LineWidth}
}
