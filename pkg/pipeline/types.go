package pipeline

import (
	"fmt"
	"image"
	"strings"

	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Display is the size of the output surface in pixels.
type Display struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate reports an error unless both dimensions are positive.
func (d Display) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display %dx%d: %w", d.Width, d.Height, ports.ErrDegenerateInput)
	}
	return nil
}

// MinDim returns the smaller of width and height.
func (d Display) MinDim() int {
	return min(d.Width, d.Height)
}

// MaxDim returns the larger of width and height.
func (d Display) MaxDim() int {
	return max(d.Width, d.Height)
}

// Mode selects one of the wallpaper layouts.
type Mode string

const (
	ModeSplit      Mode = "albumImage"
	ModeGradient   Mode = "gradient"
	ModeBlurred    Mode = "blurred"
	ModeWaveform   Mode = "waveform"
	ModeLyric      Mode = "lyric"
	ModeController Mode = "controllerImage"
)

// AllModes lists every mode in its canonical order.
var AllModes = []Mode{ModeGradient, ModeBlurred, ModeWaveform, ModeSplit, ModeController, ModeLyric}

var modeAliases = map[string]Mode{
	"albumimage":      ModeSplit,
	"split":           ModeSplit,
	"gradient":        ModeGradient,
	"blurred":         ModeBlurred,
	"blur":            ModeBlurred,
	"waveform":        ModeWaveform,
	"lyric":           ModeLyric,
	"lyrics":          ModeLyric,
	"lyriccard":       ModeLyric,
	"controllerimage": ModeController,
	"controller":      ModeController,
}

// ParseMode resolves a mode name, accepting the historical aliases.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// GradientVariant selects the gradient algorithm used by ModeGradient.
// VariantAuto must be resolved to a concrete variant before rendering.
type GradientVariant int

const (
	VariantAuto GradientVariant = iota
	VariantLinear
	VariantRadial
)

// String returns the variant name.
func (v GradientVariant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantLinear:
		return "linear"
	case VariantRadial:
		return "radial"
	default:
		return "unknown"
	}
}

// ParseVariant parses "linear", "radial" or "auto". The empty string is auto.
func ParseVariant(s string) (GradientVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "random":
		return VariantAuto, nil
	case "linear":
		return VariantLinear, nil
	case "radial", "ellipse":
		return VariantRadial, nil
	}
	return VariantAuto, fmt.Errorf("unknown gradient variant %q", s)
}

// =============================================================================
// Loudness Types
// =============================================================================

// SamplePoints is the fixed length of a LoudnessSeries.
const SamplePoints = 100

// LoudnessSeries holds SamplePoints time-normalized loudness values in [0,1].
// Sample i is the loudest moment of the i-th percentile of the track.
type LoudnessSeries []float64

// AudioAnalysis is the subset of a track's audio analysis used to build a
// LoudnessSeries.
type AudioAnalysis struct {
	Track    AnalysisTrack     `json:"track"`
	Segments []AnalysisSegment `json:"segments"`
}

// AnalysisTrack carries the track-level fields.
type AnalysisTrack struct {
	Duration float64 `json:"duration"` // seconds
}

// AnalysisSegment is one analysed slice of audio.
type AnalysisSegment struct {
	Start       float64 `json:"start"`        // seconds
	Duration    float64 `json:"duration"`     // seconds
	LoudnessMax float64 `json:"loudness_max"` // dB, usually negative
}

// =============================================================================
// Render Request / Result
// =============================================================================

// RenderRequest carries everything one render needs.
// It is built by the caller and never mutated by the pipeline.
// An empty Mode or VariantAuto is resolved by the orchestrator.
type RenderRequest struct {
	Display Display
	Mode    Mode
	Variant GradientVariant // only used by ModeGradient

	Colors *palette.Pair
	Cover  image.Image

	Title  string
	Artist string

	Loudness   LoudnessSeries // ModeWaveform
	Lyric      string         // ModeLyric, already trimmed to an excerpt
	DurationMs int            // ModeController
}

// Lines returns the title lines followed by the artist lines. Fields are
// split on newlines; empty fields are skipped.
func (r RenderRequest) Lines() []string {
	lines := make([]string, 0, 2)
	for _, field := range []string{r.Title, r.Artist} {
		if field == "" {
			continue
		}
		lines = append(lines, strings.Split(strings.ReplaceAll(field, "\r\n", "\n"), "\n")...)
	}
	return lines
}

// RenderResult is the opaque display-sized canvas produced by a render.
type RenderResult struct {
	Image   image.Image
	Mode    Mode
	Variant GradientVariant
	Colors  palette.Pair
}

// =============================================================================
// Gradient Stage Types
// =============================================================================

// GradientInput contains parameters for the gradient background.
type GradientInput struct {
	Display    Display
	Colors     palette.Pair
	Variant    GradientVariant
	CoverWidth int // radial rings inside CoverWidth/2 are skipped
}

// GradientResult contains the rendered background.
type GradientResult struct {
	Image image.Image
	Bands int // scanlines or rings actually drawn
}

// =============================================================================
// Waveform Stage Types
// =============================================================================

// WaveformInput contains parameters for the waveform bitmap.
type WaveformInput struct {
	Display Display
	Colors  palette.Pair
	Series  LoudnessSeries
}

// WaveformResult contains the waveform at full and at composite size.
type WaveformResult struct {
	Full   image.Image // display-sized
	Scaled image.Image // downscaled for compositing
}

// =============================================================================
// Text Stage Types
// =============================================================================

// TextInput contains parameters for a text layer.
type TextInput struct {
	Display Display
	Lines   []string

	// Background is the color the text will sit on; the glyph color is
	// derived from it.
	Background palette.Color

	X, Y  int
	Align ports.TextAlign

	Crop         bool // trim to the tight bounding box of the glyphs
	Outline      int  // outline stroke width in pixels
	FitHalfWidth bool // squeeze wider-than-half-display layers horizontally
}

// TextResult contains the rendered glyph layer.
type TextResult struct {
	Image image.Image
	Color palette.Color
}
