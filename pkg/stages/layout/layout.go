// Package layout implements the wallpaper composition stage.
package layout

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
	"github.com/user/syncwall/pkg/stages/text"
)

// Stages groups the stages the composer delegates to.
type Stages struct {
	Gradient pipeline.Stage[pipeline.GradientInput, pipeline.GradientResult]
	Waveform pipeline.Stage[pipeline.WaveformInput, pipeline.WaveformResult]
	Text     pipeline.Stage[pipeline.TextInput, pipeline.TextResult]
}

// Stage composes one display-sized canvas per render request.
type Stage struct {
	renderer ports.Renderer
	stages   Stages
	icons    ports.IconRasterizer
	sink     ports.DebugSink
	logger   ports.Logger
	fontSize float64
}

// NewStage creates a new layout stage. icons may be nil, in which case the
// controller mode fails with ErrMissingAsset.
func NewStage(
	renderer ports.Renderer,
	stages Stages,
	icons ports.IconRasterizer,
	sink ports.DebugSink,
	logger ports.Logger,
	fontSize float64,
) *Stage {
	if fontSize <= 0 {
		fontSize = 40
	}
	return &Stage{
		renderer: renderer,
		stages:   stages,
		icons:    icons,
		sink:     sink,
		logger:   logger.WithComponent("layout"),
		fontSize: fontSize,
	}
}

// frame carries what every mode needs once the request is validated.
type frame struct {
	req    pipeline.RenderRequest
	colors palette.Pair
	cover  image.Image // small cover
	w, h   int
}

// Execute renders req and returns the finished canvas. Nothing is returned
// when a required input is missing.
func (s *Stage) Execute(ctx context.Context, req pipeline.RenderRequest) (pipeline.RenderResult, error) {
	if err := req.Display.Validate(); err != nil {
		return pipeline.RenderResult{}, fmt.Errorf("layout: %w", err)
	}
	if err := checkInputs(req); err != nil {
		return pipeline.RenderResult{}, err
	}

	f := frame{
		req:    req,
		colors: *req.Colors,
		w:      req.Display.Width,
		h:      req.Display.Height,
	}
	size := SmallCoverSize(req.Display, req.Cover.Bounds())
	f.cover = s.renderer.ResizeImage(req.Cover, size.X, size.Y)

	s.logger.Debug("Composing %s on %dx%d with %s / %s", req.Mode, f.w, f.h, f.colors.Primary.Hex(), f.colors.Secondary.Hex())

	var (
		img image.Image
		err error
	)
	switch req.Mode {
	case pipeline.ModeSplit:
		img, err = s.split(ctx, f)
	case pipeline.ModeGradient:
		img, err = s.gradient(ctx, f)
	case pipeline.ModeBlurred:
		img, err = s.blurred(ctx, f)
	case pipeline.ModeWaveform:
		img, err = s.waveform(ctx, f)
	case pipeline.ModeLyric:
		img, err = s.lyric(ctx, f)
	case pipeline.ModeController:
		img, err = s.controller(ctx, f)
	default:
		err = fmt.Errorf("unknown mode %q: %w", req.Mode, ports.ErrDegenerateInput)
	}
	if err != nil {
		return pipeline.RenderResult{}, fmt.Errorf("layout %s: %w", req.Mode, err)
	}

	return pipeline.RenderResult{
		Image:   img,
		Mode:    req.Mode,
		Variant: req.Variant,
		Colors:  f.colors,
	}, nil
}

// checkInputs rejects requests missing data their mode depends on.
func checkInputs(req pipeline.RenderRequest) error {
	if req.Colors == nil {
		return fmt.Errorf("layout: no color pair: %w", ports.ErrMissingAsset)
	}
	if req.Cover == nil || req.Cover.Bounds().Empty() {
		return fmt.Errorf("layout: no cover image: %w", ports.ErrMissingAsset)
	}
	switch req.Mode {
	case pipeline.ModeWaveform:
		if len(req.Loudness) == 0 {
			return fmt.Errorf("layout: no loudness series: %w", ports.ErrMissingAsset)
		}
	case pipeline.ModeLyric:
		if strings.TrimSpace(req.Lyric) == "" {
			return fmt.Errorf("layout: no lyrics found: %w", ports.ErrNoContent)
		}
	}
	return nil
}

// split paints Primary over the top half and Secondary over the bottom
// half, then the centered cover and the default text layer.
func (s *Stage) split(ctx context.Context, f frame) (image.Image, error) {
	canvas := s.renderer.CreateCanvas(f.w, f.h, color.Black)
	half := f.h / 2
	canvas.DrawRect(0, 0, f.w, half, f.colors.Primary)
	canvas.DrawRect(0, half, f.w, half, f.colors.Secondary)
	s.save("background", canvas.ToImage())

	s.pasteCentered(canvas, f)

	layer, err := s.text(ctx, pipeline.TextInput{
		Display:    f.req.Display,
		Lines:      f.req.Lines(),
		Background: f.colors.Primary,
		X:          text.DefaultX,
		Y:          text.DefaultY,
	})
	if err != nil {
		return nil, err
	}
	canvas.DrawImage(layer, 0, 0)
	return canvas.ToImage(), nil
}

// gradient draws the requested gradient variant behind the centered cover.
// The linear variant centers the text block on the primary color, the
// radial one left-aligns it on the darker member of the pair.
func (s *Stage) gradient(ctx context.Context, f frame) (image.Image, error) {
	bg, err := s.stages.Gradient.Execute(ctx, pipeline.GradientInput{
		Display:    f.req.Display,
		Colors:     f.colors,
		Variant:    f.req.Variant,
		CoverWidth: f.cover.Bounds().Dx(),
	})
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}

	canvas := s.renderer.CreateCanvas(f.w, f.h, color.Black)
	canvas.DrawImage(bg.Image, 0, 0)
	s.pasteCentered(canvas, f)

	input := pipeline.TextInput{
		Display:    f.req.Display,
		Lines:      f.req.Lines(),
		Background: f.colors.Primary,
		X:          text.DefaultX,
		Y:          text.DefaultY,
		Align:      ports.AlignCenter,
	}
	if f.req.Variant == pipeline.VariantRadial {
		input.Background = f.colors.DarkestFirst().Primary
		input.Align = ports.AlignLeft
	}

	layer, err := s.text(ctx, input)
	if err != nil {
		return nil, err
	}
	canvas.DrawImage(layer, 0, 0)
	return canvas.ToImage(), nil
}

// blurred fills twice the display with the cover, blurs it, keeps the
// center window and pastes an enlarged sharp cover in the middle.
func (s *Stage) blurred(ctx context.Context, f frame) (image.Image, error) {
	filled := s.renderer.FillImage(f.req.Cover, f.w*2, f.h*2)
	blurred := s.renderer.BlurImage(filled, BlurSigma)
	bg := s.renderer.CropImage(blurred, BlurCrop(f.req.Display))
	s.save("background", bg)

	canvas := s.renderer.CreateCanvas(f.w, f.h, color.Black)
	canvas.DrawImage(bg, 0, 0)

	b := f.cover.Bounds()
	enlarged := s.renderer.ResizeImage(f.cover, int(BlurredCoverScale*float64(b.Dx())), int(BlurredCoverScale*float64(b.Dy())))
	pos := Centered(f.req.Display, enlarged.Bounds().Size())
	canvas.DrawImage(enlarged, pos.X, pos.Y)
	return canvas.ToImage(), nil
}

// waveform centers the downscaled waveform on Primary with the text near
// the bottom-left corner.
func (s *Stage) waveform(ctx context.Context, f frame) (image.Image, error) {
	wave, err := s.stages.Waveform.Execute(ctx, pipeline.WaveformInput{
		Display: f.req.Display,
		Colors:  f.colors,
		Series:  f.req.Loudness,
	})
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}

	canvas := s.renderer.CreateCanvas(f.w, f.h, f.colors.Primary)
	pos := Centered(f.req.Display, wave.Scaled.Bounds().Size())
	canvas.DrawImage(wave.Scaled, pos.X, pos.Y)

	layer, err := s.text(ctx, pipeline.TextInput{
		Display:    f.req.Display,
		Lines:      f.req.Lines(),
		Background: f.colors.Primary,
		X:          text.DefaultX,
		Y:          f.h - 150,
	})
	if err != nil {
		return nil, err
	}
	canvas.DrawImage(layer, 0, 0)
	return canvas.ToImage(), nil
}

// lyric puts the cover on the left, the title below it and the uppercased
// excerpt in the right half.
func (s *Stage) lyric(ctx context.Context, f frame) (image.Image, error) {
	canvas := s.renderer.CreateCanvas(f.w, f.h, f.colors.Primary)

	header, err := s.text(ctx, pipeline.TextInput{
		Display:    f.req.Display,
		Lines:      f.req.Lines(),
		Background: f.colors.Primary,
		Align:      ports.AlignCenter,
		Crop:       true,
	})
	if err != nil {
		return nil, err
	}
	s.save("text-header", header)

	box, err := s.text(ctx, pipeline.TextInput{
		Display:      f.req.Display,
		Lines:        strings.Split(strings.ToUpper(strings.TrimSpace(f.req.Lyric)), "\n"),
		Background:   f.colors.Primary,
		Align:        ports.AlignCenter,
		Crop:         true,
		Outline:      LyricOutline,
		FitHalfWidth: true,
	})
	if err != nil {
		return nil, err
	}
	s.save("text-lyric", box)

	g := ComputeLyric(f.req.Display, f.cover.Bounds().Size(), header.Bounds().Size(), box.Bounds().Size())
	canvas.DrawImage(f.cover, g.Cover.X, g.Cover.Y)
	canvas.DrawImage(header, g.Header.X, g.Header.Y)
	canvas.DrawImage(box, g.Box.X, g.Box.Y)
	return canvas.ToImage(), nil
}

// controller mimics a media player card: cover, title, timestamps with a
// drop shadow, a progress bar and a pause button in the secondary color.
func (s *Stage) controller(ctx context.Context, f frame) (image.Image, error) {
	if s.icons == nil {
		return nil, fmt.Errorf("pause icon: no rasterizer: %w", ports.ErrMissingAsset)
	}
	icon, err := s.icons.PauseIcon(f.colors.Secondary, IconSize, IconSize)
	if err != nil {
		return nil, fmt.Errorf("pause icon: %v: %w", err, ports.ErrMissingAsset)
	}

	header, err := s.text(ctx, pipeline.TextInput{
		Display:    f.req.Display,
		Lines:      f.req.Lines(),
		Background: f.colors.Primary,
		Align:      ports.AlignCenter,
		Crop:       true,
	})
	if err != nil {
		return nil, err
	}

	g := ComputeController(f.req.Display, f.cover.Bounds().Size(), header.Bounds().Size(), icon.Bounds().Size())

	canvas := s.renderer.CreateCanvas(f.w, f.h, f.colors.Primary)
	canvas.DrawImage(f.cover, g.Cover.X, g.Cover.Y)
	canvas.DrawImage(icon, g.Icon.X, g.Icon.Y)
	canvas.DrawRect(g.Progress.Min.X, g.Progress.Min.Y, g.Progress.Dx(), g.Progress.Dy(), f.colors.Secondary)
	s.shadowText(canvas, "00:00", g.Elapsed, f.colors.Secondary)
	s.shadowText(canvas, FormatDuration(f.req.DurationMs), g.Duration, f.colors.Secondary)
	canvas.DrawImage(header, g.Header.X, g.Header.Y)
	return canvas.ToImage(), nil
}

// shadowText draws str in black offset by ShadowOffset, then in c on top.
func (s *Stage) shadowText(canvas ports.Canvas, str string, at image.Point, c color.Color) {
	canvas.DrawText(str, at.X+ShadowOffset, at.Y+ShadowOffset, ports.TextStyle{FontSize: s.fontSize, Color: color.Black})
	canvas.DrawText(str, at.X, at.Y, ports.TextStyle{FontSize: s.fontSize, Color: c})
}

func (s *Stage) pasteCentered(canvas ports.Canvas, f frame) {
	pos := Centered(f.req.Display, f.cover.Bounds().Size())
	canvas.DrawImage(f.cover, pos.X, pos.Y)
}

func (s *Stage) text(ctx context.Context, input pipeline.TextInput) (image.Image, error) {
	result, err := s.stages.Text.Execute(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return result.Image, nil
}

func (s *Stage) save(name string, img image.Image) {
	if s.sink.Enabled() {
		s.sink.SaveLayer(name, img)
	}
}
