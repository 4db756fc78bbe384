// Package palette derives and manipulates the color pair that drives every wallpaper mode.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Black and White are the two possible text colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// FromColor converts any color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color as "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Lerp interpolates linearly from c to to.
// t is clamped to [0,1]; every channel is truncated toward zero and clamped to [0,255].
func (c Color) Lerp(to Color, t float64) Color {
	t = clampFloat(t, 0, 1)
	return Color{
		R: lerpChannel(c.R, to.R, t),
		G: lerpChannel(c.G, to.G, t),
		B: lerpChannel(c.B, to.B, t),
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*t
	return uint8(clampFloat(math.Trunc(v), 0, 255))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Luminance returns the perceived brightness 0.299R + 0.587G + 0.114B.
func (c Color) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// DistanceFromBlack returns the Euclidean RGB distance to black, in [0, sqrt(3)].
func (c Color) DistanceFromBlack() float64 {
	return c.colorful().DistanceRgb(colorful.Color{})
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseHex parses "#rrggbb" (or "rrggbb") into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
