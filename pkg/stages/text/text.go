// Package text implements the glyph layer stage.
package text

import (
	"context"
	"fmt"
	"image"

	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

const (
	// LuminanceThreshold separates light backgrounds (black text) from dark ones (white text).
	LuminanceThreshold = 186

	// LineSpacing is the gap in pixels between consecutive lines.
	LineSpacing = 4

	// DefaultX and DefaultY are the default text origin.
	DefaultX = 50
	DefaultY = 50
)

// ColorFor returns black for backgrounds brighter than LuminanceThreshold and
// white otherwise. The comparison is strict: a luminance of exactly 186 gives white.
func ColorFor(background palette.Color) palette.Color {
	// 0.299R + 0.587G + 0.114B in thousandths, kept integral so the boundary is exact
	l := 299*int(background.R) + 587*int(background.G) + 114*int(background.B)
	if l > LuminanceThreshold*1000 {
		return palette.Black
	}
	return palette.White
}

// Stage renders text lines onto a transparent display-sized layer.
type Stage struct {
	renderer ports.Renderer
	fontSize float64
	logger   ports.Logger
}

// NewStage creates a new text stage.
func NewStage(renderer ports.Renderer, fontSize float64, logger ports.Logger) *Stage {
	if fontSize <= 0 {
		fontSize = 40
	}
	return &Stage{
		renderer: renderer,
		fontSize: fontSize,
		logger:   logger.WithComponent("text"),
	}
}

// Execute renders the layer described by input.
func (s *Stage) Execute(ctx context.Context, input pipeline.TextInput) (pipeline.TextResult, error) {
	if err := input.Display.Validate(); err != nil {
		return pipeline.TextResult{}, fmt.Errorf("text layer: %w", err)
	}

	col := ColorFor(input.Background)
	style := ports.TextStyle{
		FontSize: s.fontSize,
		Color:    col,
		Outline:  input.Outline,
	}

	layer := s.renderer.CreateLayer(input.Display.Width, input.Display.Height)
	s.drawLines(layer, input, style)
	img := layer.ToImage()

	if input.Crop {
		img = s.renderer.CropImage(img, OpaqueBounds(img))
	}

	if input.FitHalfWidth {
		half := input.Display.Width / 2
		if img.Bounds().Dx() > half {
			fitted := half - input.Display.Width/100
			s.logger.Debug("Squeezing text layer from %d to %d px", img.Bounds().Dx(), fitted)
			img = s.renderer.ResizeImage(img, fitted, img.Bounds().Dy())
		}
	}

	s.logger.Debug("Rendered %d lines in %s (%dx%d)", len(input.Lines), col.Hex(), img.Bounds().Dx(), img.Bounds().Dy())
	return pipeline.TextResult{Image: img, Color: col}, nil
}

// drawLines lays the lines out top to bottom starting at (X, Y).
// Alignment is relative to the widest line of the block.
func (s *Stage) drawLines(layer ports.Canvas, input pipeline.TextInput, style ports.TextStyle) {
	widths := make([]float64, len(input.Lines))
	heights := make([]float64, len(input.Lines))
	block := 0.0
	for i, line := range input.Lines {
		widths[i], heights[i] = layer.MeasureText(line, style)
		block = max(block, widths[i])
	}

	y := float64(input.Y)
	for i, line := range input.Lines {
		x := float64(input.X)
		switch input.Align {
		case ports.AlignCenter:
			x += (block - widths[i]) / 2
		case ports.AlignRight:
			x += block - widths[i]
		}
		layer.DrawText(line, int(x), int(y), style)
		y += heights[i] + LineSpacing
	}
}

// OpaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. A fully transparent image yields an empty rectangle.
func OpaqueBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y

	visit := func(x, y int) {
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x+1)
		maxY = max(maxY, y+1)
	}

	switch src := img.(type) {
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				if row[x*4+3] != 0 {
					visit(b.Min.X+x, y)
				}
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
					visit(x, y)
				}
			}
		}
	}

	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
