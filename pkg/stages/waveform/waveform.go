// Package waveform implements the loudness waveform stage.
package waveform

import (
	"context"
	"fmt"

	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

const (
	// Damping scales every level before it becomes geometry.
	Damping = 0.75

	// BarWidth is the horizontal extent of a bar.
	BarWidth = 16
	// CornerRadius rounds every bar.
	CornerRadius = 8
	// MinBarHeight is the height quiet bars are raised to.
	MinBarHeight = 32

	// DownscaleFactor shrinks the waveform before it is composited.
	DownscaleFactor = 0.6
)

// Bar is one rounded bar of the waveform, in display coordinates.
type Bar struct {
	X, Top, Bottom int
}

// Height returns the vertical extent of the bar.
func (b Bar) Height() int {
	return b.Bottom - b.Top
}

// Bars maps a loudness series onto bar geometry for display.
// Levels are damped but not re-clamped. Bars shorter than MinBarHeight are
// replaced by a MinBarHeight bar centered vertically.
func Bars(series pipeline.LoudnessSeries, display pipeline.Display) []Bar {
	w, h := float64(display.Width), float64(display.Height)
	bars := make([]Bar, len(series))
	for i, v := range series {
		level := v * Damping
		bar := Bar{
			X:      int(float64(i) / pipeline.SamplePoints * w),
			Top:    int((0.5 - level/2) * h),
			Bottom: int((0.5 + level/2) * h),
		}
		if bar.Height() < MinBarHeight {
			bar.Top = display.Height/2 - MinBarHeight/2
			bar.Bottom = display.Height/2 + MinBarHeight/2
		}
		bars[i] = bar
	}
	return bars
}

// Stage renders waveform bitmaps.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new waveform stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("waveform"),
	}
}

// Execute draws Secondary bars on a Primary display-sized bitmap and
// returns it together with its downscaled copy.
func (s *Stage) Execute(ctx context.Context, input pipeline.WaveformInput) (pipeline.WaveformResult, error) {
	if err := input.Display.Validate(); err != nil {
		return pipeline.WaveformResult{}, fmt.Errorf("waveform: %w", err)
	}
	if len(input.Series) == 0 {
		return pipeline.WaveformResult{}, fmt.Errorf("waveform: empty loudness series: %w", ports.ErrMissingAsset)
	}

	w, h := input.Display.Width, input.Display.Height
	canvas := s.renderer.CreateCanvas(w, h, input.Colors.Primary)
	bars := Bars(input.Series, input.Display)
	for _, bar := range bars {
		canvas.DrawRoundedRect(bar.X, bar.Top, BarWidth, bar.Height(), CornerRadius, input.Colors.Secondary)
	}
	full := canvas.ToImage()

	scaled := s.renderer.ResizeImage(full, int(float64(w)*DownscaleFactor), int(float64(h)*DownscaleFactor))
	s.logger.Debug("Waveform: %d bars, scaled to %dx%d", len(bars), scaled.Bounds().Dx(), scaled.Bounds().Dy())

	if s.sink.Enabled() {
		s.sink.SaveLayer("waveform", full)
	}

	return pipeline.WaveformResult{Full: full, Scaled: scaled}, nil
}
