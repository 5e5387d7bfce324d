package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"glider-run": {
		Pattern: "glider", RowPadding: 12, ColPadding: 12,
		Interval: 100 * time.Millisecond, CameraLead: 10, Tween: time.Second,
		FPS: DefaultFPS, Theme: "ocean", MaxLayers: DefaultMaxLayers,
	},
	"oscillator": {
		Pattern: "toad", RowPadding: 4, ColPadding: 4,
		Interval: 250 * time.Millisecond, CameraLead: 6, Tween: 500 * time.Millisecond,
		FPS: DefaultFPS, Theme: "minimal", MaxLayers: DefaultMaxLayers,
	},
	"methuselah": {
		Pattern: "rpentomino", RowPadding: 30, ColPadding: 30,
		Interval: 50 * time.Millisecond, CameraLead: 15, Tween: time.Second,
		FPS: DefaultFPS, Theme: "sunset", MaxLayers: 512,
	},
	"chaos": {
		Random:     RandomConfig{Width: 48, Height: 48, Density: 0.3, Seed: 1},
		RowPadding: 8, ColPadding: 8,
		Interval: 80 * time.Millisecond, CameraLead: 12, Tween: time.Second,
		FPS: DefaultFPS, Theme: "cyberpunk", MaxLayers: DefaultMaxLayers, MaxGenerations: 1000,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
