// Package orchestrator resolves render requests and drives the layout stage
// into the wallpaper sink.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Display is used when a request does not carry its own.
	Display pipeline.Display

	// Modes are the candidates for requests that leave Mode empty.
	// An empty list means every mode.
	Modes []pipeline.Mode

	// Variant is used when a gradient request carries VariantAuto.
	// VariantAuto here means a coin flip per render.
	Variant pipeline.GradientVariant
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Display: pipeline.Display{Width: 1920, Height: 1080},
		Modes:   append([]pipeline.Mode(nil), pipeline.AllModes...),
		Variant: pipeline.VariantAuto,
	}
}

// ColorExtractor derives a color pair from a cover image.
type ColorExtractor interface {
	Extract(img image.Image) (palette.Pair, error)
}

// Orchestrator coordinates one render from request to wallpaper file.
type Orchestrator struct {
	layoutStage pipeline.Stage[pipeline.RenderRequest, pipeline.RenderResult]
	extractor   ColorExtractor
	output      ports.WallpaperSink
	sink        ports.DebugSink
	logger      ports.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a new Orchestrator. extractor may be nil when every request
// carries its own colors. rng drives mode and variant choice; nil seeds one
// from the clock.
func New(
	layoutStage pipeline.Stage[pipeline.RenderRequest, pipeline.RenderResult],
	extractor ColorExtractor,
	output ports.WallpaperSink,
	sink ports.DebugSink,
	rng *rand.Rand,
	logger ports.Logger,
) *Orchestrator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{
		layoutStage: layoutStage,
		extractor:   extractor,
		output:      output,
		sink:        sink,
		logger:      logger,
		rng:         rng,
	}
}

// Run renders req and replaces the wallpaper with the result. The wallpaper
// is left untouched when any step fails.
func (o *Orchestrator) Run(ctx context.Context, config Config, req pipeline.RenderRequest) (RunResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return RunResult{}, fmt.Errorf("render: %w", err)
	}

	req, err := o.Resolve(config, req)
	if err != nil {
		o.logger.Error(l10n.F("Render failed: %s", err))
		return RunResult{}, err
	}

	o.logger.Info(l10n.F("Rendering %s wallpaper (%dx%d)...", req.Mode, req.Display.Width, req.Display.Height))
	if req.Colors != nil {
		o.logger.Info(l10n.F("Colors: %s / %s", req.Colors.Primary.Hex(), req.Colors.Secondary.Hex()))
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(describe(req), "", "  "); err == nil {
			if err := o.sink.SaveRequestJSON(data); err != nil {
				o.logger.Warn(l10n.F("Debug output failed: %s", err))
			}
		}
	}

	result, err := o.layoutStage.Execute(ctx, req)
	if err != nil {
		o.logger.Error(l10n.F("Render failed: %s", err))
		return RunResult{}, fmt.Errorf("layout stage: %w", err)
	}

	if err := ctx.Err(); err != nil {
		o.logger.Warn(l10n.F("Nothing written: %s", err))
		return RunResult{}, fmt.Errorf("render: %w", err)
	}

	if o.sink.Enabled() {
		if err := o.sink.SaveLayer("final", result.Image); err != nil {
			o.logger.Warn(l10n.F("Debug output failed: %s", err))
		}
	}

	if err := o.output.Write(result.Image); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	elapsed := time.Since(start)
	o.logger.Info(l10n.F("Wallpaper saved to %s", o.output.Path()))
	o.logger.Info(l10n.F("Render completed in %d ms", elapsed.Milliseconds()))

	return RunResult{
		Mode:       result.Mode,
		Variant:    result.Variant,
		Colors:     result.Colors,
		Display:    req.Display,
		Title:      req.Title,
		Artist:     req.Artist,
		OutputPath: o.output.Path(),
		ElapsedMs:  int(elapsed.Milliseconds()),
	}, nil
}

// Resolve returns a copy of req with display, mode, variant and colors
// filled in. The caller's request is not modified.
func (o *Orchestrator) Resolve(config Config, req pipeline.RenderRequest) (pipeline.RenderRequest, error) {
	if req.Display == (pipeline.Display{}) {
		req.Display = config.Display
	}

	if req.Mode == "" {
		req.Mode = o.pickMode(config.Modes)
		o.logger.Info(l10n.F("Mode not set, picked %s", req.Mode))
	}

	if req.Mode == pipeline.ModeGradient && req.Variant == pipeline.VariantAuto {
		req.Variant = config.Variant
		if req.Variant == pipeline.VariantAuto {
			req.Variant = o.pickVariant()
			o.logger.Info(l10n.F("Gradient variant not set, picked %s", req.Variant))
		}
	}

	if req.Colors == nil && req.Cover != nil && o.extractor != nil {
		o.logger.Info(l10n.T("Extracting colors from cover"))
		pair, err := o.extractor.Extract(req.Cover)
		if err != nil {
			return req, fmt.Errorf("extract colors: %w", err)
		}
		req.Colors = &pair
	}

	return req, nil
}

func (o *Orchestrator) pickMode(modes []pipeline.Mode) pipeline.Mode {
	if len(modes) == 0 {
		modes = pipeline.AllModes
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return modes[o.rng.Intn(len(modes))]
}

func (o *Orchestrator) pickVariant() pipeline.GradientVariant {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.rng.Intn(2) == 0 {
		return pipeline.VariantLinear
	}
	return pipeline.VariantRadial
}

// requestInfo is the debug view of a resolved request.
type requestInfo struct {
	Mode       pipeline.Mode    `json:"mode"`
	Variant    string           `json:"variant,omitempty"`
	Display    pipeline.Display `json:"display"`
	Primary    string           `json:"primary,omitempty"`
	Secondary  string           `json:"secondary,omitempty"`
	Cover      string           `json:"cover,omitempty"`
	Title      string           `json:"title,omitempty"`
	Artist     string           `json:"artist,omitempty"`
	Samples    int              `json:"loudness_samples,omitempty"`
	LyricLines int              `json:"lyric_lines,omitempty"`
	DurationMs int              `json:"duration_ms,omitempty"`
}

func describe(req pipeline.RenderRequest) requestInfo {
	info := requestInfo{
		Mode:       req.Mode,
		Display:    req.Display,
		Title:      req.Title,
		Artist:     req.Artist,
		Samples:    len(req.Loudness),
		DurationMs: req.DurationMs,
	}
	if req.Mode == pipeline.ModeGradient {
		info.Variant = req.Variant.String()
	}
	if req.Colors != nil {
		info.Primary = req.Colors.Primary.Hex()
		info.Secondary = req.Colors.Secondary.Hex()
	}
	if req.Cover != nil {
		b := req.Cover.Bounds()
		info.Cover = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	}
	if lyric := strings.TrimSpace(req.Lyric); lyric != "" {
		info.LyricLines = len(strings.Split(lyric, "\n"))
	}
	return info
}

// RunResult contains the results of a render for summary generation.
type RunResult struct {
	Mode    pipeline.Mode
	Variant pipeline.GradientVariant
	Colors  palette.Pair
	Display pipeline.Display

	Title  string
	Artist string

	OutputPath string
	ElapsedMs  int
}
