package syncwall

import (
	"encoding/json"
	"fmt"

	"github.com/user/syncwall/pkg/lyrics"
	"github.com/user/syncwall/pkg/orchestrator"
	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
	"github.com/user/syncwall/pkg/stages/text"
	"github.com/user/syncwall/pkg/stages/waveform"
)

// ParseAnalysis decodes an audio-analysis JSON document into a loudness
// series.
func ParseAnalysis(data []byte) (pipeline.LoudnessSeries, error) {
	var analysis pipeline.AudioAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %v: %w", err, ports.ErrDegenerateInput)
	}
	return waveform.ExtractLoudness(analysis)
}

// LyricExcerpt picks the part of full lyrics shown on a lyric card.
func LyricExcerpt(full string) (string, error) {
	excerpt, ok := lyrics.Excerpt(full)
	if !ok {
		return "", fmt.Errorf("lyric excerpt: %w", ports.ErrNoContent)
	}
	return excerpt, nil
}

// TextColor returns the glyph color a finished render used for its
// title text, and false for modes without text.
func TextColor(result orchestrator.RunResult) (palette.Color, bool) {
	switch result.Mode {
	case pipeline.ModeBlurred:
		return palette.Color{}, false
	case pipeline.ModeGradient:
		if result.Variant == pipeline.VariantRadial {
			return text.ColorFor(result.Colors.DarkestFirst().Primary), true
		}
	}
	return text.ColorFor(result.Colors.Primary), true
}
