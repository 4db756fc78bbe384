package syncwall

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"strings"

	"github.com/user/syncwall/pkg/adapters/coverfetch"
	"github.com/user/syncwall/pkg/adapters/filesink"
	"github.com/user/syncwall/pkg/adapters/ggrenderer"
	"github.com/user/syncwall/pkg/adapters/nullsink"
	"github.com/user/syncwall/pkg/adapters/prominent"
	"github.com/user/syncwall/pkg/adapters/svgicon"
	"github.com/user/syncwall/pkg/adapters/wallpapersink"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
	"github.com/user/syncwall/pkg/stages/gradient"
	"github.com/user/syncwall/pkg/stages/layout"
	"github.com/user/syncwall/pkg/stages/text"
	"github.com/user/syncwall/pkg/stages/waveform"
)

// Engine wires the production adapters and stages behind one render call.
type Engine struct {
	config    Config
	orch      *orchestrator.Orchestrator
	renderer  *ggrenderer.Renderer
	fetcher   ports.AssetFetcher
	extractor *palette.Extractor
	output    *wallpapersink.Sink
	fs        ports.FileSystem
	logger    ports.Logger
}

// New creates an Engine for cfg. rng drives random mode and variant choice
// and may be nil.
func New(cfg Config, fs ports.FileSystem, rng *rand.Rand, logger ports.Logger) (*Engine, error) {
	renderer, err := ggrenderer.NewWithFont(fs, cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	var sink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	layoutStage := layout.NewStage(
		renderer,
		layout.Stages{
			Gradient: gradient.NewStage(renderer, sink, logger),
			Waveform: waveform.NewStage(renderer, sink, logger),
			Text:     text.NewStage(renderer, cfg.FontSize, logger),
		},
		svgicon.New(),
		sink,
		logger,
		cfg.FontSize,
	)

	extractor := palette.NewExtractor(prominent.New(), logger)
	output := wallpapersink.New(cfg.OutputPath, fs, renderer, logger)
	fetcher := coverfetch.New(coverfetch.Options{
		CacheSize: cfg.CacheSize,
		TTL:       cfg.CacheTTL,
	}, logger)

	return &Engine{
		config:    cfg,
		orch:      orchestrator.New(layoutStage, extractor, output, sink, rng, logger),
		renderer:  renderer,
		fetcher:   fetcher,
		extractor: extractor,
		output:    output,
		fs:        fs,
		logger:    logger,
	}, nil
}

// WithFetcher replaces the HTTP cover fetcher.
func (e *Engine) WithFetcher(f ports.AssetFetcher) *Engine {
	e.fetcher = f
	return e
}

// Render draws req and replaces the wallpaper file. Fixed colors from the
// configuration apply when req carries none.
func (e *Engine) Render(ctx context.Context, req pipeline.RenderRequest) (orchestrator.RunResult, error) {
	if req.Colors == nil && e.config.Colors != nil {
		colors := *e.config.Colors
		req.Colors = &colors
	}
	return e.orch.Run(ctx, e.config.ToOrchestratorConfig(), req)
}

// LoadCover reads a cover from an http(s) URL or a local path and decodes it.
func (e *Engine) LoadCover(ctx context.Context, source string) (image.Image, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(source) {
		data, err = e.fetcher.Fetch(ctx, source)
	} else {
		data, err = e.fs.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("read cover: %v: %w", err, ports.ErrMissingAsset)
		}
	}
	if err != nil {
		return nil, err
	}

	img, err := e.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("decode cover %s: %v: %w", source, err, ports.ErrMissingAsset)
	}
	return img, nil
}

// ExtractColors derives the color pair of a cover.
func (e *Engine) ExtractColors(img image.Image) (palette.Pair, error) {
	return e.extractor.Extract(img)
}

// OutputPath returns the wallpaper file.
func (e *Engine) OutputPath() string {
	return e.output.Path()
}

// Close releases network resources.
func (e *Engine) Close() error {
	if c, ok := e.fetcher.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
