package palette

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/user/syncwall/pkg/adapters/logger"
	"github.com/user/syncwall/pkg/ports"
)

func TestPickPair(t *testing.T) {
	red := Color{200, 0, 0}
	blue := Color{0, 0, 200}
	green := Color{0, 200, 0}

	tests := []struct {
		name     string
		swatches []Swatch
		want     Pair
	}{
		{
			name:     "single color is duplicated",
			swatches: []Swatch{{Color: red, Count: 10}},
			want:     NewPair(red, red),
		},
		{
			name:     "all identical is duplicated",
			swatches: []Swatch{{Color: red}, {Color: red}, {Color: red}},
			want:     NewPair(red, red),
		},
		{
			name:     "first differing candidate wins",
			swatches: []Swatch{{Color: red}, {Color: red}, {Color: blue}, {Color: green}},
			want:     NewPair(red, blue),
		},
		{
			name:     "second ranked when distinct",
			swatches: []Swatch{{Color: green}, {Color: blue}, {Color: red}},
			want:     NewPair(green, blue),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickPair(tt.swatches)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHistogramQuantizer_OrdersByCount(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := color.RGBA{R: 240, G: 16, B: 16, A: 255}
			if y >= 7 {
				c = color.RGBA{R: 16, G: 16, B: 240, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	swatches, err := HistogramQuantizer{}.Dominant(img, DominantCount)
	if err != nil {
		t.Fatalf("Dominant failed: %v", err)
	}
	if len(swatches) != 2 {
		t.Fatalf("expected 2 swatches, got %d", len(swatches))
	}
	if swatches[0].Count != 70 || swatches[1].Count != 30 {
		t.Errorf("expected counts 70/30, got %d/%d", swatches[0].Count, swatches[1].Count)
	}
	if swatches[0].Color != (Color{240, 16, 16}) {
		t.Errorf("expected red first, got %v", swatches[0].Color)
	}
}

type failingQuantizer struct{}

func (failingQuantizer) Dominant(img image.Image, k int) ([]Swatch, error) {
	return nil, errors.New("boom")
}

type emptyQuantizer struct{}

func (emptyQuantizer) Dominant(img image.Image, k int) ([]Swatch, error) {
	return nil, nil
}

func TestExtractor_FallbackLogsCause(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	tests := []struct {
		name      string
		quantizer Quantizer
		want      string
	}{
		{"quantizer error", failingQuantizer{}, "boom"},
		{"no swatches", emptyQuantizer{}, "no colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			log := logger.NewWriter(ports.LevelWarn, &out, &errOut)

			if _, err := NewExtractor(tt.quantizer, log).Extract(img); err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if strings.Contains(errOut.String(), "<nil>") {
				t.Errorf("expected no <nil> in warning, got %q", errOut.String())
			}
			if !strings.Contains(errOut.String(), tt.want) {
				t.Errorf("expected warning to mention %q, got %q", tt.want, errOut.String())
			}
		})
	}
}

func TestExtractor_FlatImageYieldsDuplicatePair(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}

	pair, err := NewExtractor(failingQuantizer{}, logger.NewNoop()).Extract(img)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !pair.Flat() {
		t.Errorf("expected flat pair, got %v", pair)
	}
}

func TestExtractor_EmptyImage(t *testing.T) {
	_, err := NewExtractor(nil, logger.NewNoop()).Extract(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ports.ErrMissingAsset) {
		t.Errorf("expected ErrMissingAsset, got %v", err)
	}
}
