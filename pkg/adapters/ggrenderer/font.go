package ggrenderer

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/syncwall/pkg/ports"
)

// fontSet holds one parsed typeface. The parsed font is read-only and shared;
// faces carry glyph buffers and must not be shared between goroutines, so
// every canvas builds its own through newFace.
type fontSet struct {
	font *truetype.Font
}

func newFontSet(data []byte) (*fontSet, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fontSet{font: f}, nil
}

func defaultFontSet() *fontSet {
	fs, err := newFontSet(goregular.TTF)
	if err != nil {
		// goregular.TTF is compiled in
		panic(err)
	}
	return fs
}

func loadFontSet(fs ports.FileSystem, path string) (*fontSet, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %v: %w", path, err, ports.ErrMissingAsset)
	}
	set, err := newFontSet(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %v: %w", path, err, ports.ErrMissingAsset)
	}
	return set, nil
}

func (s *fontSet) newFace(size float64) font.Face {
	return truetype.NewFace(s.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
