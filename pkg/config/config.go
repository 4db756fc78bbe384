// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/syncwall/pkg/adapters/coverfetch"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

// Config represents the full configuration for syncwall.
type Config struct {
	// Display
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Output
	OutputPath string `yaml:"output"`

	// Text
	FontPath string  `yaml:"font_path"`
	FontSize float64 `yaml:"font_size"`

	// Mode selection
	Modes   []string `yaml:"modes"`
	Variant string   `yaml:"variant"` // linear, radial or empty for random

	// Fixed colors instead of extracting them from the cover
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`

	// Cover cache
	CacheTTLSec int `yaml:"cache_ttl_sec"`
	CacheSize   int `yaml:"cache_size"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	modes := make([]string, len(pipeline.AllModes))
	for i, m := range pipeline.AllModes {
		modes[i] = string(m)
	}
	return Config{
		Width:  1920,
		Height: 1080,

		OutputPath: "ImageCache/finalImage.png",

		FontSize: 40,

		Modes: modes,

		CacheTTLSec: int(coverfetch.DefaultTTL / time.Second),
		CacheSize:   coverfetch.DefaultCacheSize,

		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if err := c.Display().Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %.1f must be positive", c.FontSize)
	}
	if _, err := c.ParsedModes(); err != nil {
		return err
	}
	if _, err := pipeline.ParseVariant(c.Variant); err != nil {
		return err
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := ports.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Display returns the configured display size.
func (c Config) Display() pipeline.Display {
	return pipeline.Display{Width: c.Width, Height: c.Height}
}

// ParsedModes resolves the enabled mode names.
func (c Config) ParsedModes() ([]pipeline.Mode, error) {
	modes := make([]pipeline.Mode, 0, len(c.Modes))
	for _, name := range c.Modes {
		m, err := pipeline.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// Colors returns the fixed color pair, or nil when colors should be
// extracted from the cover. A lone primary yields a flat pair.
func (c Config) Colors() (*palette.Pair, error) {
	if c.Primary == "" && c.Secondary == "" {
		return nil, nil
	}
	if c.Primary == "" {
		return nil, fmt.Errorf("secondary color set without primary")
	}
	primary, err := ParseColor(c.Primary)
	if err != nil {
		return nil, err
	}
	secondary := primary
	if c.Secondary != "" {
		if secondary, err = ParseColor(c.Secondary); err != nil {
			return nil, err
		}
	}
	pair := palette.NewPair(primary, secondary)
	return &pair, nil
}

// CacheTTL returns the cover cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}

// ParseColor parses a hex color string such as "#1db954" or "1db954".
func ParseColor(hex string) (palette.Color, error) {
	if hex == "" {
		return palette.Color{}, fmt.Errorf("empty color")
	}
	return palette.ParseHex(hex)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	modes, err := c.ParsedModes()
	if err != nil {
		return orchestrator.Config{}, err
	}
	variant, err := pipeline.ParseVariant(c.Variant)
	if err != nil {
		return orchestrator.Config{}, err
	}
	return orchestrator.Config{
		Display: c.Display(),
		Modes:   modes,
		Variant: variant,
	}, nil
}
