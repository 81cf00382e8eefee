package config

import (
	"os"

	"github.com/san-kum/mandelterm/internal/mandel"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrames = 11
	DefaultFPS    = 8
	DefaultTheme  = "retro"
)

type Config struct {
	Palette string        `yaml:"palette"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Bounds  mandel.Region `yaml:"bounds"`
	Frames  int           `yaml:"frames"`
	FPS     int           `yaml:"fps"`
	Theme   string        `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette: mandel.DefaultPalette,
		Width:   mandel.DefaultWidth,
		Height:  mandel.DefaultHeight,
		Bounds:  mandel.DefaultRegion,
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
		Theme:   DefaultTheme,
	}
}

// Load reads a YAML file on top of the defaults; fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() mandel.Params {
	return mandel.Params{
		Palette: c.Palette,
		Width:   c.Width,
		Height:  c.Height,
		Bounds:  c.Bounds,
	}
}

func (c *Config) Clone() *Config {
	out := *c
	return &out
}
