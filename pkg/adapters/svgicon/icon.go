// Package svgicon rasterizes the bundled vector icons in arbitrary colors.
package svgicon

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"regexp"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/user/syncwall/pkg/palette"
	"github.com/user/syncwall/pkg/ports"
)

//go:embed pause-button.svg
var pauseSVG []byte

var fillAttr = regexp.MustCompile(`fill="#[0-9a-fA-F]{3,8}"`)

// Rasterizer implements ports.IconRasterizer.
type Rasterizer struct {
	pause []byte
}

// New creates a Rasterizer using the embedded icons.
func New() *Rasterizer {
	return &Rasterizer{pause: pauseSVG}
}

// NewFromSVG creates a Rasterizer with a custom pause icon.
func NewFromSVG(pause []byte) *Rasterizer {
	return &Rasterizer{pause: pause}
}

// PauseIcon returns the pause icon filled with c on a transparent background.
func (r *Rasterizer) PauseIcon(c color.Color, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pause icon %dx%d: %w", width, height, ports.ErrDegenerateInput)
	}
	return rasterize(Recolor(r.pause, palette.FromColor(c)), width, height)
}

// Recolor replaces every hex fill attribute in svg with c.
func Recolor(svg []byte, c palette.Color) []byte {
	return fillAttr.ReplaceAll(svg, []byte(`fill="`+c.Hex()+`"`))
}

func rasterize(svg []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse icon: %v: %w", err, ports.ErrMissingAsset)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}

// Ensure Rasterizer implements ports.IconRasterizer
var _ ports.IconRasterizer = (*Rasterizer)(nil)
