// Package gradient implements the gradient background stage.
package gradient

import (
	"context"
	"fmt"
	"image/color"

	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

// BaseRings is the ring count for a square display. Wider displays get
// proportionally fewer rings so the density stays the same.
const BaseRings = 300

// Ring is one concentric outline of the radial gradient.
type Ring struct {
	Radius int
	Color  palette.Color
}

// RadialPlan lists the rings of a radial gradient, innermost first.
type RadialPlan struct {
	Rings  []Ring
	Stroke float64
}

// PlanRadial computes the rings for display. Rings whose radius would fall
// inside coverWidth/2 are left out so the cover sits on a clear area.
func PlanRadial(display pipeline.Display, colors palette.Pair, coverWidth int) RadialPlan {
	minDim := float64(display.MinDim())
	count := int(BaseRings * minDim / float64(display.MaxDim()))
	if count <= 0 {
		return RadialPlan{}
	}

	plan := RadialPlan{
		Rings:  make([]Ring, 0, count),
		Stroke: float64(int(minDim/float64(count)) + 2),
	}
	for i := 0; i < count; i++ {
		pos := float64(i) / float64(count) * minDim
		if pos < float64(coverWidth)/2 {
			continue
		}
		radius := int(pos)
		plan.Rings = append(plan.Rings, Ring{
			Radius: radius,
			Color:  colors.Primary.Lerp(colors.Secondary, float64(radius)/minDim),
		})
	}
	return plan
}

// LinearColor returns the color of scanline row for a gradient of height rows.
func LinearColor(colors palette.Pair, row, height int) palette.Color {
	return colors.Primary.Lerp(colors.Secondary, float64(row)/float64(height))
}

// Stage renders gradient backgrounds.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new gradient stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("gradient"),
	}
}

// Execute renders the background for input.Variant.
func (s *Stage) Execute(ctx context.Context, input pipeline.GradientInput) (pipeline.GradientResult, error) {
	if err := input.Display.Validate(); err != nil {
		return pipeline.GradientResult{}, fmt.Errorf("gradient: %w", err)
	}

	var result pipeline.GradientResult
	switch input.Variant {
	case pipeline.VariantLinear:
		result = s.linear(input)
	case pipeline.VariantRadial:
		result = s.radial(input)
	default:
		return pipeline.GradientResult{}, fmt.Errorf("gradient variant %d: %w", input.Variant, ports.ErrDegenerateInput)
	}

	if s.sink.Enabled() {
		s.sink.SaveLayer("gradient-"+input.Variant.String(), result.Image)
	}
	return result, nil
}

// linear paints one full-width band per scanline, Primary at the top.
func (s *Stage) linear(input pipeline.GradientInput) pipeline.GradientResult {
	w, h := input.Display.Width, input.Display.Height
	canvas := s.renderer.CreateCanvas(w, h, input.Colors.Primary)
	for i := 0; i < h; i++ {
		canvas.DrawRect(0, i, w, 1, LinearColor(input.Colors, i, h))
	}
	s.logger.Debug("Linear gradient %s -> %s over %d rows", input.Colors.Primary.Hex(), input.Colors.Secondary.Hex(), h)
	return pipeline.GradientResult{Image: canvas.ToImage(), Bands: h}
}

// radial strokes concentric circles from the center outwards on black.
// Each outline lies inside its radius, like a stroked bounding box.
func (s *Stage) radial(input pipeline.GradientInput) pipeline.GradientResult {
	w, h := input.Display.Width, input.Display.Height
	canvas := s.renderer.CreateCanvas(w, h, color.Black)
	plan := PlanRadial(input.Display, input.Colors, input.CoverWidth)

	cx, cy := float64(w)/2, float64(h)/2
	for _, ring := range plan.Rings {
		r := max(float64(ring.Radius)-plan.Stroke/2, 0)
		canvas.DrawEllipseStroke(cx, cy, r, r, ring.Color, plan.Stroke)
	}
	s.logger.Debug("Radial gradient: %d rings, stroke %.0f px", len(plan.Rings), plan.Stroke)
	return pipeline.GradientResult{Image: canvas.ToImage(), Bands: len(plan.Rings)}
}
