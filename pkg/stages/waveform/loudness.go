package waveform

import (
	"fmt"
	"math"

	"github.com/user/syncwall/pkg/pipeline"
	"github.com/user/syncwall/pkg/ports"
)

// ExtractLoudness buckets the analysis segments into pipeline.SamplePoints
// time-normalized slots. Each slot holds the loudest segment overlapping it,
// converted from dB to linear amplitude, and the series is then divided by
// its own maximum. Silent or empty analyses give an all-zero series.
func ExtractLoudness(analysis pipeline.AudioAnalysis) (pipeline.LoudnessSeries, error) {
	duration := analysis.Track.Duration
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("track duration %v: %w", duration, ports.ErrDegenerateInput)
	}

	n := pipeline.SamplePoints
	levels := make(pipeline.LoudnessSeries, n)
	for _, seg := range analysis.Segments {
		start := seg.Start / duration
		end := (seg.Start + seg.Duration) / duration
		loudness := math.Pow(10, seg.LoudnessMax/20)

		from := max(int(start*float64(n)), 0)
		to := min(n, int(end*float64(n)))
		for i := from; i < to; i++ {
			levels[i] = max(levels[i], loudness)
		}
	}

	return Normalize(levels), nil
}

// Normalize divides every value by the series maximum so the loudest sample
// becomes 1. A series without positive values is returned unchanged.
func Normalize(series pipeline.LoudnessSeries) pipeline.LoudnessSeries {
	peak := 0.0
	for _, v := range series {
		peak = max(peak, v)
	}
	if peak <= 0 {
		return series
	}
	out := make(pipeline.LoudnessSeries, len(series))
	for i, v := range series {
		out[i] = v / peak
	}
	return out
}
