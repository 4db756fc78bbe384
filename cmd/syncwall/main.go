// Package main provides the CLI entry point for syncwall.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/syncwall/pkg/adapters/logger"
	"github.com/user/syncwall/pkg/adapters/osfilesystem"
	"github.com/user/syncwall/pkg/config"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
	"github.com/user/syncwall/pkg/stages/text"
	"github.com/user/syncwall/pkg/summarizer"
	"github.com/user/syncwall/pkg/syncwall"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render  RenderCmd  `cmd:"" help:"Render a wallpaper for a song."`
	Extract ExtractCmd `cmd:"" help:"Print the color pair of a cover."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	// Required arguments
	Cover string `arg:"" help:"Cover image path or http(s) URL."`

	// Track
	Title    string `short:"t" help:"Song title."`
	Artist   string `short:"a" help:"Artist name."`
	Analysis string `type:"existingfile" help:"Audio analysis JSON used by the waveform mode."`
	Lyrics   string `type:"existingfile" help:"Full lyrics file; the chorus or most repeated lines are shown."`
	Duration string `help:"Track duration for the controller mode (e.g. 3m25s)."`

	// Mode
	Mode    string `short:"m" help:"Layout mode (albumImage, gradient, blurred, waveform, lyric, controllerImage). Random when empty."`
	Variant string `help:"Gradient variant (linear, radial). Random when empty."`
	Seed    *int64 `help:"Seed for random mode and variant choice."`

	// Output
	Output  *string `short:"o" help:"Output PNG path (default: ImageCache/finalImage.png)."`
	Config  string  `short:"c" type:"existingfile" help:"YAML configuration file."`
	Summary string  `help:"Write a render summary to file (Markdown format)."`

	// Display
	Preset *string `short:"p" enum:"1080p,1440p,4k,ultrawide" help:"Display preset (1080p, 1440p, 4k, ultrawide)."`
	Width  *int    `short:"W" help:"Display width in pixels."`
	Height *int    `short:"H" help:"Display height in pixels."`

	// Style
	Primary   *string  `help:"Primary color (hex) instead of extracting it from the cover."`
	Secondary *string  `help:"Secondary color (hex) instead of extracting it from the cover."`
	Font      *string  `help:"TrueType font file."`
	FontSize  *float64 `help:"Font size in points (default: 40)."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel *string `short:"l" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// ExtractCmd defines the extract subcommand.
type ExtractCmd struct {
	Cover string `arg:"" help:"Cover image path or http(s) URL."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("syncwall"),
		kong.Description(l10n.T("Render desktop wallpapers from the song that is playing.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	file, err := cmd.loadFileConfig()
	if err != nil {
		return err
	}

	log, err := cmd.buildLogger(file)
	if err != nil {
		return err
	}

	cfg, err := cmd.buildConfig(file)
	if err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()

	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}

	engine, err := syncwall.New(cfg, fs, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return err
	}
	defer engine.Close()

	req, err := cmd.buildRequest(ctx, engine, fs)
	if err != nil {
		return err
	}

	result, err := engine.Render(ctx, req)
	if err != nil {
		return err
	}

	if cmd.Summary != "" {
		if err := writeSummary(fs, cmd.Summary, result); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
			return fmt.Errorf("write summary: %w", err)
		}
		log.Info(l10n.F("Summary saved to %s", cmd.Summary))
	}
	return nil
}

// loadFileConfig reads the YAML file if one was given.
func (cmd *RenderCmd) loadFileConfig() (config.Config, error) {
	if cmd.Config == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(cmd.Config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (cmd *RenderCmd) buildLogger(file config.Config) (ports.Logger, error) {
	if cmd.Quiet {
		return logger.NewNoop(), nil
	}
	name := file.LogLevel
	if cmd.LogLevel != nil {
		name = *cmd.LogLevel
	}
	level, err := ports.ParseLogLevel(name)
	if err != nil {
		return nil, err
	}
	return logger.NewConsole(level), nil
}

// buildConfig starts from the file configuration and applies CLI overrides.
func (cmd *RenderCmd) buildConfig(file config.Config) (syncwall.Config, error) {
	builder, err := syncwall.NewConfigBuilderFromFile(file)
	if err != nil {
		return syncwall.Config{}, err
	}

	// Apply display
	if cmd.Preset != nil {
		builder.WithPreset(syncwall.DisplayPreset(*cmd.Preset))
	}
	d := builder.Build().Display()
	if cmd.Width != nil {
		d.Width = *cmd.Width
	}
	if cmd.Height != nil {
		d.Height = *cmd.Height
	}
	builder.WithDisplay(d.Width, d.Height)

	// Apply overrides
	if cmd.Variant != "" {
		variant, err := pipeline.ParseVariant(cmd.Variant)
		if err != nil {
			return syncwall.Config{}, err
		}
		builder.WithVariant(variant)
	}
	if cmd.Primary != nil || cmd.Secondary != nil {
		file.Primary, file.Secondary = deref(cmd.Primary, file.Primary), deref(cmd.Secondary, file.Secondary)
		colors, err := file.Colors()
		if err != nil {
			return syncwall.Config{}, err
		}
		if colors != nil {
			builder.WithColors(*colors)
		}
	}
	current := builder.Build()
	if cmd.Font != nil || cmd.FontSize != nil {
		builder.WithFont(deref(cmd.Font, current.FontPath), derefFloat(cmd.FontSize, current.FontSize))
	}
	if cmd.Output != nil {
		builder.WithOutputPath(*cmd.Output)
	}

	// Apply debug options
	if cmd.Debug {
		dir := file.DebugDir
		if cmd.DebugDir != nil {
			dir = *cmd.DebugDir
		}
		builder.WithDebugDir(dir)
	}

	return builder.Build(), nil
}

// buildRequest loads the cover and the optional per-mode inputs.
func (cmd *RenderCmd) buildRequest(ctx context.Context, engine *syncwall.Engine, fs ports.FileSystem) (pipeline.RenderRequest, error) {
	req := pipeline.RenderRequest{
		Title:  cmd.Title,
		Artist: cmd.Artist,
	}

	if cmd.Mode != "" {
		mode, err := pipeline.ParseMode(cmd.Mode)
		if err != nil {
			return req, err
		}
		req.Mode = mode
	}

	cover, err := engine.LoadCover(ctx, cmd.Cover)
	if err != nil {
		return req, err
	}
	req.Cover = cover

	if cmd.Analysis != "" {
		data, err := fs.ReadFile(cmd.Analysis)
		if err != nil {
			return req, fmt.Errorf("read analysis: %w", err)
		}
		if req.Loudness, err = syncwall.ParseAnalysis(data); err != nil {
			return req, err
		}
	}

	if cmd.Lyrics != "" {
		data, err := fs.ReadFile(cmd.Lyrics)
		if err != nil {
			return req, fmt.Errorf("read lyrics: %w", err)
		}
		// A missing excerpt only matters in lyric mode, where layout reports it.
		if excerpt, err := syncwall.LyricExcerpt(string(data)); err == nil {
			req.Lyric = excerpt
		}
	}

	if cmd.Duration != "" {
		d, err := time.ParseDuration(cmd.Duration)
		if err != nil {
			return req, fmt.Errorf("parse duration: %w", err)
		}
		req.DurationMs = int(d.Milliseconds())
	}

	return req, nil
}

func writeSummary(fs ports.FileSystem, path string, result orchestrator.RunResult) error {
	render := summarizer.RenderInfo{
		Mode:      string(result.Mode),
		Primary:   result.Colors.Primary.Hex(),
		Secondary: result.Colors.Secondary.Hex(),
	}
	if result.Mode == pipeline.ModeGradient {
		render.Variant = result.Variant.String()
	}
	if c, ok := syncwall.TextColor(result); ok {
		render.TextColor = c.Hex()
	}

	output := summarizer.OutputInfo{
		Path:      result.OutputPath,
		Width:     result.Display.Width,
		Height:    result.Display.Height,
		ElapsedMs: result.ElapsedMs,
	}
	if info, err := os.Stat(result.OutputPath); err == nil {
		output.FileSize = info.Size()
	}

	summary := summarizer.NewBuilder().
		WithTrack(result.Title, result.Artist).
		WithRender(render).
		WithOutput(output).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(path, summary)
}

// Run executes the extract command.
func (cmd *ExtractCmd) Run() error {
	log := logger.NewNoop()
	engine, err := syncwall.New(syncwall.NewConfigBuilder().Build(), osfilesystem.New(), nil, log)
	if err != nil {
		return err
	}
	defer engine.Close()

	cover, err := engine.LoadCover(context.Background(), cmd.Cover)
	if err != nil {
		return err
	}
	pair, err := engine.ExtractColors(cover)
	if err != nil {
		return err
	}

	fmt.Println(l10n.F("Primary:   %s", pair.Primary.Hex()))
	fmt.Println(l10n.F("Secondary: %s", pair.Secondary.Hex()))
	fmt.Println(l10n.F("Text:      %s", text.ColorFor(pair.Primary).Hex()))
	if d := pair.DarkestFirst(); d != pair {
		fmt.Println(l10n.F("Darker member is %s", d.Primary.Hex()))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("syncwall version %s", version))
	fmt.Println(l10n.F("modes: %s", strings.Join(modeNames(), ", ")))
	return nil
}

func modeNames() []string {
	names := make([]string, len(pipeline.AllModes))
	for i, m := range pipeline.AllModes {
		names[i] = string(m)
	}
	return names
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func derefFloat(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}
