package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 3000
	DefaultSpan      = 3000.0
	DefaultTickSize  = 5.0
	DefaultTicks     = 1000
	DefaultFrameRate = 30
)

// Config holds a complete simulation setup.
type Config struct {
	Size       int     `yaml:"size"`
	Span       float64 `yaml:"span"`
	Seed       int64   `yaml:"seed"`
	TickSize   float64 `yaml:"tick_size"`
	Ticks      int     `yaml:"ticks"`
	Workers    int     `yaml:"workers"`
	Gravity    bool    `yaml:"gravity"`
	Collisions bool    `yaml:"collisions"`
	FrameRate  int     `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:       DefaultSize,
		Span:       DefaultSpan,
		TickSize:   DefaultTickSize,
		Ticks:      DefaultTicks,
		Workers:    1,
		Gravity:    true,
		Collisions: true,
		FrameRate:  DefaultFrameRate,
	}
}

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
