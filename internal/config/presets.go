package config

import "sort"

var Presets = map[string]*Config{
	"standard": {
		Size: 3000, Span: 3000, Seed: 1, TickSize: 5, Ticks: 1000,
		Workers: 1, Gravity: true, Collisions: true, FrameRate: 30,
	},
	"cluster": {
		Size: 5000, Span: 1500, Seed: 7, TickSize: 5, Ticks: 2000,
		Workers: 1, Gravity: true, Collisions: true, FrameRate: 30,
	},
	"sparse": {
		Size: 800, Span: 6000, Seed: 11, TickSize: 10, Ticks: 1000,
		Workers: 1, Gravity: true, Collisions: true, FrameRate: 30,
	},
	"singularity": {
		Size: 2000, Span: 1000, Seed: 23, TickSize: 2, Ticks: 5000,
		Workers: 1, Gravity: true, Collisions: true, FrameRate: 30,
	},
	"frozen": {
		Size: 1500, Span: 3000, Seed: 3, TickSize: 5, Ticks: 500,
		Workers: 1, Gravity: false, Collisions: true, FrameRate: 30,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
