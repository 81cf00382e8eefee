package config

import (
	"sort"

	"github.com/san-kum/mandelterm/internal/mandel"
)

var Palettes = map[string]string{
	"programmieren": mandel.DefaultPalette,
	"smiley":        "☻                  ",
	"ramp":          " .:-=+*#%@",
	"blocks":        " ░▒▓█",
	"detail":        " .'^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
}

// Presets are well-known regions of the plane. Deep zooms carry a longer
// palette since their detail only shows after many iterations.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"seahorse": withRegion(mandel.Region{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15},
		Palettes["detail"]),
	"elephant": withRegion(mandel.Region{MinX: -1.85, MaxX: -1.75, MinY: -0.10, MaxY: -0.02},
		Palettes["detail"]),
	"spiral": withRegion(mandel.Region{MinX: -0.7435, MaxX: -0.7420, MinY: 0.1310, MaxY: 0.1325},
		Palettes["detail"]),
	"triple-spiral": withRegion(mandel.Region{MinX: -0.7480, MaxX: -0.7450, MinY: 0.0950, MaxY: 0.0980},
		Palettes["detail"]),
	"dragon": withRegion(mandel.Region{MinX: -0.7400, MaxX: -0.7350, MinY: 0.1800, MaxY: 0.1850},
		Palettes["detail"]),
	"minibrot": withRegion(mandel.Region{MinX: -1.7390, MaxX: -1.7375, MinY: -0.0235, MaxY: -0.0220},
		Palettes["detail"]),
}

func withRegion(r mandel.Region, palette string) *Config {
	cfg := DefaultConfig()
	cfg.Bounds = r
	cfg.Palette = palette
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	return sortedKeys(Presets)
}

// Palette looks up a named palette.
func Palette(name string) (string, bool) {
	p, ok := Palettes[name]
	return p, ok
}

func ListPalettes() []string {
	return sortedKeys(Palettes)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
