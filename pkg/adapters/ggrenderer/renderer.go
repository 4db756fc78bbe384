// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"

	"github.com/user/syncwall/pkg/ports"
)

// DefaultFontSize is the point size used when a TextStyle leaves it unset.
const DefaultFontSize = 40

// Renderer implements ports.Renderer using gg for vector drawing and
// imaging for resampling and filters.
type Renderer struct {
	fonts *fontSet
}

// New creates a new Renderer that draws text with the embedded Go Regular face.
func New() *Renderer {
	return &Renderer{fonts: defaultFontSet()}
}

// NewWithFont creates a Renderer using the TrueType font at path.
// An empty path selects the embedded face.
func NewWithFont(fs ports.FileSystem, path string) (*Renderer, error) {
	if path == "" {
		return New(), nil
	}
	set, err := loadFontSet(fs, path)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: set}, nil
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return r.wrap(dc)
}

// CreateLayer creates a fully transparent canvas.
func (r *Renderer) CreateLayer(width, height int) ports.Canvas {
	return r.wrap(gg.NewContext(width, height))
}

func (r *Renderer) wrap(dc *gg.Context) *Canvas {
	return &Canvas{
		dc:    dc,
		im:    dc.Image().(*image.RGBA),
		fonts: r.fonts,
		faces: make(map[float64]font.Face),
	}
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		// Auto-detect; WebP is registered by the blank import above
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG, ports.FormatAuto:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to exactly width x height.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, max(width, 1), max(height, 1), imaging.Lanczos)
}

// FillImage scales img to cover width x height and crops the overflow around the center.
func (r *Renderer) FillImage(img image.Image, width, height int) image.Image {
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}

// BlurImage applies a Gaussian blur.
func (r *Renderer) BlurImage(img image.Image, sigma float64) image.Image {
	return imaging.Blur(img, sigma)
}

// CropImage cuts r out of img.
func (r *Renderer) CropImage(img image.Image, rect image.Rectangle) image.Image {
	return imaging.Crop(img, rect)
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
// Axis-aligned fills and image pastes go straight to the backing bitmap so
// they land on exact pixel boundaries. A Canvas is owned by one render and
// is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	im    *image.RGBA
	fonts *fontSet
	faces map[float64]font.Face
}

func (c *Canvas) face(size float64) font.Face {
	if size <= 0 {
		size = DefaultFontSize
	}
	f, ok := c.faces[size]
	if !ok {
		f = c.fonts.newFace(size)
		c.faces[size] = f
	}
	return f
}

// DrawImage alpha-composites an image with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.im, dst, img, b.Min, draw.Over)
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	draw.Draw(c.im, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawRoundedRect draws a filled rounded rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Fill()
}

// DrawEllipseStroke draws an ellipse outline.
func (c *Canvas) DrawEllipseStroke(cx, cy, rx, ry float64, col color.Color, strokeWidth float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawEllipse(cx, cy, rx, ry)
	c.dc.Stroke()
}

// DrawText draws one line of text with its top-left corner at (x, y).
// A positive Outline thickens the glyphs by redrawing them at every offset
// within that radius; the glyphs shift by Outline so the stroke stays inside
// the box reported by MeasureText.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.dc.SetFontFace(c.face(style.FontSize))
	c.dc.SetColor(style.Color)

	fx, fy := float64(x+style.Outline), float64(y+style.Outline)
	for dy := -style.Outline; dy <= style.Outline; dy++ {
		for dx := -style.Outline; dx <= style.Outline; dx++ {
			if dx*dx+dy*dy > style.Outline*style.Outline {
				continue
			}
			c.dc.DrawStringAnchored(text, fx+float64(dx), fy+float64(dy), 0, 1)
		}
	}
}

// MeasureText returns the advance width and line height of text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	c.dc.SetFontFace(c.face(style.FontSize))
	w, h := c.dc.MeasureString(text)
	pad := float64(2 * style.Outline)
	return w + pad, h + pad
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.im
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
