package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new opaque drawing canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// CreateLayer creates a new fully transparent canvas.
	// Layers are used for glyphs that are later alpha-composited onto a canvas.
	CreateLayer(width, height int) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to exactly width x height (Lanczos).
	ResizeImage(img image.Image, width, height int) image.Image

	// FillImage scales an image to cover width x height and crops the overflow around the center.
	FillImage(img image.Image, width, height int) image.Image

	// BlurImage applies a Gaussian blur with the given sigma.
	BlurImage(img image.Image, sigma float64) image.Image

	// CropImage returns the part of img inside r, re-based at (0,0).
	CropImage(img image.Image, r image.Rectangle) image.Image
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// DrawImage alpha-composites an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawEllipseStroke draws an ellipse outline centered on (cx, cy).
	DrawEllipseStroke(cx, cy, rx, ry float64, c color.Color, strokeWidth float64)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the width and height of a single line of text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
// The typeface itself is fixed by the Renderer.
type TextStyle struct {
	FontSize float64
	Color    color.Color
	Outline  int // Outline stroke width in pixels (0 = none)
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
	FormatAuto
)
