package mocks

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/user/syncwall/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// Unset funcs fall back to simple stdlib behavior so stages can run on it.
type Renderer struct {
	mu sync.Mutex

	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	CreateLayerFunc  func(width, height int) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	FillImageFunc    func(img image.Image, width, height int) image.Image
	BlurImageFunc    func(img image.Image, sigma float64) image.Image
	CropImageFunc    func(img image.Image, r image.Rectangle) image.Image

	// Canvases holds every canvas created through the default funcs.
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := NewCanvas(width, height, bg)
	m.track(c)
	return c
}

func (m *Renderer) CreateLayer(width, height int) ports.Canvas {
	if m.CreateLayerFunc != nil {
		return m.CreateLayerFunc(width, height)
	}
	c := NewCanvas(width, height, color.Transparent)
	m.track(c)
	return c
}

func (m *Renderer) track(c *Canvas) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Canvases = append(m.Canvases, c)
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) FillImage(img image.Image, width, height int) image.Image {
	if m.FillImageFunc != nil {
		return m.FillImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) BlurImage(img image.Image, sigma float64) image.Image {
	if m.BlurImageFunc != nil {
		return m.BlurImageFunc(img, sigma)
	}
	return img
}

func (m *Renderer) CropImage(img image.Image, r image.Rectangle) image.Image {
	if m.CropImageFunc != nil {
		return m.CropImageFunc(img, r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawCall records one drawing operation on a mock Canvas.
type DrawCall struct {
	Op     string // "image", "rect", "roundedRect", "ellipse", "text"
	X, Y   int
	W, H   int
	Color  color.Color
	Text   string
	Image  image.Image
	Stroke float64
}

// Canvas is a mock implementation of ports.Canvas.
// It records every call; only DrawRect and DrawImage touch the pixels.
type Canvas struct {
	mu sync.Mutex

	img   *image.RGBA
	Calls []DrawCall

	// TextWidth is the width reported per rune by MeasureText.
	TextWidth float64
}

// NewCanvas creates a mock canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img, TextWidth: 10}
}

func (m *Canvas) record(call DrawCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	draw.Draw(m.img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), img, b.Min, draw.Over)
	m.record(DrawCall{Op: "image", X: x, Y: y, W: b.Dx(), H: b.Dy(), Image: img})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	draw.Draw(m.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
	m.record(DrawCall{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.record(DrawCall{Op: "roundedRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawEllipseStroke(cx, cy, rx, ry float64, c color.Color, strokeWidth float64) {
	m.record(DrawCall{Op: "ellipse", X: int(cx), Y: int(cy), W: int(rx), H: int(ry), Color: c, Stroke: strokeWidth})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.record(DrawCall{Op: "text", X: x, Y: y, Text: text, Color: style.Color, Stroke: float64(style.Outline)})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len([]rune(text))) * m.TextWidth, style.FontSize
}

func (m *Canvas) ToImage() image.Image {
	return m.img
}

// CallsOf returns the recorded calls with the given Op.
func (m *Canvas) CallsOf(op string) []DrawCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []DrawCall
	for _, c := range m.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

var _ ports.Canvas = (*Canvas)(nil)
