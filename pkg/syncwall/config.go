// Package syncwall provides a high-level API for rendering song wallpapers.
package syncwall

import (
	"time"

	"github.com/user/syncwall/pkg/adapters/coverfetch"
	"github.com/user/syncwall/pkg/config"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
)

// DisplayPreset names a common display resolution.
type DisplayPreset string

const (
	Preset1080p     DisplayPreset = "1080p"
	Preset1440p     DisplayPreset = "1440p"
	Preset4K        DisplayPreset = "4k"
	PresetUltrawide DisplayPreset = "ultrawide"
)

// GetPresetDisplay returns the display size for the given preset.
func GetPresetDisplay(preset DisplayPreset) pipeline.Display {
	switch preset {
	case Preset1440p:
		return pipeline.Display{Width: 2560, Height: 1440}
	case Preset4K:
		return pipeline.Display{Width: 3840, Height: 2160}
	case PresetUltrawide:
		return pipeline.Display{Width: 3440, Height: 1440}
	default: // 1080p
		return pipeline.Display{Width: 1920, Height: 1080}
	}
}

// Config represents the configuration for wallpaper rendering.
type Config struct {
	// Display size
	Width  int
	Height int

	// Mode selection
	Modes   []pipeline.Mode          // candidates for random choice
	Variant pipeline.GradientVariant // VariantAuto flips a coin per render

	// Colors replaces cover extraction when set.
	Colors *palette.Pair

	// Text
	FontPath string  // TrueType file; empty uses the embedded face
	FontSize float64 // points

	// Output
	OutputPath string

	// Cover cache
	CacheSize int
	CacheTTL  time.Duration

	// Debug output directory; empty disables debug output.
	DebugDir string
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with 1080p defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

// NewConfigBuilderFromFile seeds a builder from a loaded configuration file.
func NewConfigBuilderFromFile(cfg config.Config) (*ConfigBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	modes, _ := cfg.ParsedModes()
	variant, _ := pipeline.ParseVariant(cfg.Variant)
	colors, _ := cfg.Colors()

	b := NewConfigBuilder()
	b.config.Width = cfg.Width
	b.config.Height = cfg.Height
	b.config.Modes = modes
	b.config.Variant = variant
	b.config.Colors = colors
	b.config.FontPath = cfg.FontPath
	b.config.FontSize = cfg.FontSize
	b.config.OutputPath = cfg.OutputPath
	b.config.CacheSize = cfg.CacheSize
	b.config.CacheTTL = cfg.CacheTTL()
	if cfg.Debug {
		b.config.DebugDir = cfg.DebugDir
	}
	return b, nil
}

func defaults() Config {
	d := GetPresetDisplay(Preset1080p)
	return Config{
		Width:  d.Width,
		Height: d.Height,

		Modes:   append([]pipeline.Mode(nil), pipeline.AllModes...),
		Variant: pipeline.VariantAuto,

		FontSize: 40,

		OutputPath: "ImageCache/finalImage.png",

		CacheSize: coverfetch.DefaultCacheSize,
		CacheTTL:  coverfetch.DefaultTTL,
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce a drawable display
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}

	if cfg.FontSize <= 0 {
		cfg.FontSize = 40
	}

	// Remove duplicate modes, keeping first occurrence
	seen := make(map[pipeline.Mode]bool, len(cfg.Modes))
	modes := make([]pipeline.Mode, 0, len(cfg.Modes))
	for _, m := range cfg.Modes {
		if !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		modes = append(modes, pipeline.AllModes...)
	}
	cfg.Modes = modes

	if cfg.CacheSize < 1 {
		cfg.CacheSize = coverfetch.DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = coverfetch.DefaultTTL
	}

	return cfg
}

// WithDisplay sets the display size.
func (b *ConfigBuilder) WithDisplay(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// WithPreset applies a display preset.
func (b *ConfigBuilder) WithPreset(preset DisplayPreset) *ConfigBuilder {
	d := GetPresetDisplay(preset)
	return b.WithDisplay(d.Width, d.Height)
}

// WithModes restricts random mode choice to modes.
func (b *ConfigBuilder) WithModes(modes ...pipeline.Mode) *ConfigBuilder {
	b.config.Modes = modes
	return b
}

// WithVariant fixes the gradient variant. VariantAuto restores the coin flip.
func (b *ConfigBuilder) WithVariant(variant pipeline.GradientVariant) *ConfigBuilder {
	b.config.Variant = variant
	return b
}

// WithColors skips cover extraction and uses pair for every render.
func (b *ConfigBuilder) WithColors(pair palette.Pair) *ConfigBuilder {
	b.config.Colors = &pair
	return b
}

// WithFont sets the TrueType font file and point size.
func (b *ConfigBuilder) WithFont(path string, size float64) *ConfigBuilder {
	b.config.FontPath = path
	b.config.FontSize = size
	return b
}

// WithOutputPath sets the wallpaper file.
func (b *ConfigBuilder) WithOutputPath(path string) *ConfigBuilder {
	b.config.OutputPath = path
	return b
}

// WithCache sets the cover cache size and entry lifetime.
func (b *ConfigBuilder) WithCache(size int, ttl time.Duration) *ConfigBuilder {
	b.config.CacheSize = size
	b.config.CacheTTL = ttl
	return b
}

// WithDebugDir enables debug output into dir.
func (b *ConfigBuilder) WithDebugDir(dir string) *ConfigBuilder {
	b.config.DebugDir = dir
	return b
}

// Display returns the configured display.
func (c Config) Display() pipeline.Display {
	return pipeline.Display{Width: c.Width, Height: c.Height}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Display: c.Display(),
		Modes:   append([]pipeline.Mode(nil), c.Modes...),
		Variant: c.Variant,
	}
}
