package syncwall

import (
	"testing"
	"time"

	"github.com/user/syncwall/pkg/config"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
)

func TestGetPresetDisplay(t *testing.T) {
	tests := []struct {
		preset DisplayPreset
		want   pipeline.Display
	}{
		{Preset1080p, pipeline.Display{Width: 1920, Height: 1080}},
		{Preset1440p, pipeline.Display{Width: 2560, Height: 1440}},
		{Preset4K, pipeline.Display{Width: 3840, Height: 2160}},
		{PresetUltrawide, pipeline.Display{Width: 3440, Height: 1440}},
		{"unknown", pipeline.Display{Width: 1920, Height: 1080}},
	}
	for _, tt := range tests {
		if got := GetPresetDisplay(tt.preset); got != tt.want {
			t.Errorf("GetPresetDisplay(%s): expected %+v, got %+v", tt.preset, tt.want, got)
		}
	}
}

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Modes) != len(pipeline.AllModes) {
		t.Errorf("expected all modes, got %v", cfg.Modes)
	}
	if cfg.Variant != pipeline.VariantAuto {
		t.Errorf("expected auto variant, got %s", cfg.Variant)
	}
	if cfg.FontSize != 40 {
		t.Errorf("expected font size 40, got %v", cfg.FontSize)
	}
	if cfg.CacheSize != 100 || cfg.CacheTTL != 600*time.Second {
		t.Errorf("expected cache 100/600s, got %d/%v", cfg.CacheSize, cfg.CacheTTL)
	}
	if cfg.DebugDir != "" {
		t.Errorf("expected debug disabled, got %q", cfg.DebugDir)
	}
}

func TestConfigBuilder_Overrides(t *testing.T) {
	pair := palette.NewPair(palette.Black, palette.White)
	cfg := NewConfigBuilder().
		WithPreset(Preset1440p).
		WithModes(pipeline.ModeGradient, pipeline.ModeGradient, pipeline.ModeBlurred).
		WithVariant(pipeline.VariantLinear).
		WithColors(pair).
		WithFont("/fonts/a.ttf", 32).
		WithOutputPath("/tmp/wall.png").
		WithCache(10, time.Minute).
		WithDebugDir("./debug").
		Build()

	if cfg.Width != 2560 || cfg.Height != 1440 {
		t.Errorf("expected 2560x1440, got %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Modes) != 2 || cfg.Modes[0] != pipeline.ModeGradient || cfg.Modes[1] != pipeline.ModeBlurred {
		t.Errorf("expected deduplicated [gradient blurred], got %v", cfg.Modes)
	}
	if cfg.Colors == nil || *cfg.Colors != pair {
		t.Errorf("expected fixed colors, got %v", cfg.Colors)
	}
	if cfg.FontPath != "/fonts/a.ttf" || cfg.FontSize != 32 {
		t.Errorf("expected font override, got %s %v", cfg.FontPath, cfg.FontSize)
	}
	if cfg.CacheSize != 10 || cfg.CacheTTL != time.Minute {
		t.Errorf("expected cache override, got %d/%v", cfg.CacheSize, cfg.CacheTTL)
	}

	orch := cfg.ToOrchestratorConfig()
	if orch.Variant != pipeline.VariantLinear || len(orch.Modes) != 2 {
		t.Errorf("expected orchestrator config to carry modes and variant, got %+v", orch)
	}
}

func TestConfigBuilder_Constraints(t *testing.T) {
	cfg := NewConfigBuilder().
		WithDisplay(0, -5).
		WithModes().
		WithFont("", 0).
		WithCache(0, 0).
		Build()

	if cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("expected display clamped to 1x1, got %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Modes) != len(pipeline.AllModes) {
		t.Errorf("expected empty mode list to mean all modes, got %v", cfg.Modes)
	}
	if cfg.FontSize != 40 {
		t.Errorf("expected default font size, got %v", cfg.FontSize)
	}
	if cfg.CacheSize != 100 || cfg.CacheTTL != 600*time.Second {
		t.Errorf("expected default cache, got %d/%v", cfg.CacheSize, cfg.CacheTTL)
	}
}

func TestNewConfigBuilderFromFile(t *testing.T) {
	file := config.Defaults()
	file.Width = 1280
	file.Height = 720
	file.Modes = []string{"waveform"}
	file.Variant = "radial"
	file.Primary = "#102030"
	file.Debug = true

	b, err := NewConfigBuilderFromFile(file)
	if err != nil {
		t.Fatalf("NewConfigBuilderFromFile failed: %v", err)
	}
	cfg := b.Build()

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Modes) != 1 || cfg.Modes[0] != pipeline.ModeWaveform {
		t.Errorf("expected [waveform], got %v", cfg.Modes)
	}
	if cfg.Variant != pipeline.VariantRadial {
		t.Errorf("expected radial, got %s", cfg.Variant)
	}
	if cfg.Colors == nil || cfg.Colors.Primary != (palette.Color{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("expected fixed primary, got %v", cfg.Colors)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected debug dir, got %q", cfg.DebugDir)
	}

	file.Modes = []string{"nope"}
	if _, err := NewConfigBuilderFromFile(file); err == nil {
		t.Error("expected invalid file config to be rejected")
	}
}
