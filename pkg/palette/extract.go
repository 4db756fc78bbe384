package palette

import (
	"fmt"
	"image"
	"sort"

	"github.com/user/syncwall/pkg/ports"
)

// DominantCount is the number of dominant colors requested from a Quantizer.
const DominantCount = 6

// Swatch is one quantized color and the number of pixels it stands for.
type Swatch struct {
	Color Color
	Count int
}

// Quantizer reduces an image to its most dominant colors.
// Results are ordered by descending Count.
type Quantizer interface {
	Dominant(img image.Image, k int) ([]Swatch, error)
}

// Extractor turns cover images into color pairs.
type Extractor struct {
	quantizer Quantizer
	fallback  Quantizer
	logger    ports.Logger
}

// NewExtractor creates an Extractor.
// When the primary quantizer fails, the histogram quantizer is used instead.
func NewExtractor(q Quantizer, logger ports.Logger) *Extractor {
	if q == nil {
		q = HistogramQuantizer{}
	}
	return &Extractor{
		quantizer: q,
		fallback:  HistogramQuantizer{},
		logger:    logger.WithComponent("palette"),
	}
}

// Extract derives a Pair from img. It never fails for a non-empty image.
func (e *Extractor) Extract(img image.Image) (Pair, error) {
	if img == nil || img.Bounds().Empty() {
		return Pair{}, fmt.Errorf("extract colors: empty cover: %w", ports.ErrMissingAsset)
	}

	swatches, err := e.quantizer.Dominant(img, DominantCount)
	if err != nil || len(swatches) == 0 {
		if err != nil {
			e.logger.Warn("Quantizer failed, using histogram: %v", err)
		} else {
			e.logger.Warn("Quantizer found no colors, using histogram")
		}
		swatches, err = e.fallback.Dominant(img, DominantCount)
		if err != nil {
			return Pair{}, fmt.Errorf("extract colors: %w", err)
		}
	}

	pair := PickPair(swatches)
	e.logger.Debug("Extracted %s / %s from %d swatches", pair.Primary.Hex(), pair.Secondary.Hex(), len(swatches))
	return pair, nil
}

// PickPair chooses the ordered pair from swatches ranked by dominance.
//
// Fewer than two distinct colors yield the most dominant color twice.
// Otherwise the first candidate after the most dominant one whose RGB differs
// from it is chosen; if none differs, the second-ranked candidate is used.
func PickPair(swatches []Swatch) Pair {
	if len(swatches) == 0 {
		return Pair{}
	}
	first := swatches[0].Color
	if distinct(swatches) < 2 {
		return NewPair(first, first)
	}
	for _, s := range swatches[1:] {
		if s.Color != first {
			return NewPair(first, s.Color)
		}
	}
	return NewPair(first, swatches[1].Color)
}

func distinct(swatches []Swatch) int {
	seen := make(map[Color]struct{}, len(swatches))
	for _, s := range swatches {
		seen[s.Color] = struct{}{}
	}
	return len(seen)
}

// HistogramQuantizer buckets pixels into a 5-bit-per-channel histogram and
// returns the mean color of the most populated buckets.
type HistogramQuantizer struct{}

type bucket struct {
	r, g, b uint64
	n       int
}

// Dominant implements Quantizer.
func (HistogramQuantizer) Dominant(img image.Image, k int) ([]Swatch, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("histogram: %w", ports.ErrDegenerateInput)
	}

	buckets := make(map[uint16]*bucket)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := FromColor(img.At(x, y))
			key := uint16(c.R>>3)<<10 | uint16(c.G>>3)<<5 | uint16(c.B>>3)
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += uint64(c.R)
			bk.g += uint64(c.G)
			bk.b += uint64(c.B)
			bk.n++
		}
	}

	keys := make([]uint16, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		bi, bj := buckets[keys[i]], buckets[keys[j]]
		if bi.n != bj.n {
			return bi.n > bj.n
		}
		return keys[i] < keys[j]
	})
	if len(keys) > k {
		keys = keys[:k]
	}

	swatches := make([]Swatch, 0, len(keys))
	for _, key := range keys {
		bk := buckets[key]
		n := uint64(bk.n)
		swatches = append(swatches, Swatch{
			Color: Color{R: uint8(bk.r / n), G: uint8(bk.g / n), B: uint8(bk.b / n)},
			Count: bk.n,
		})
	}
	return swatches, nil
}
