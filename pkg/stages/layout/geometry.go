package layout

import (
	"fmt"
	"image"

	"github.com/user/syncwall/pkg/pipeline"
)

const (
	// CoverRatio is the small cover's width as a fraction of the display width.
	CoverRatio = 0.2

	// BlurSigma is the Gaussian blur strength of the blurred mode background.
	BlurSigma = 20
	// BlurredCoverScale enlarges the sharp cover pasted on the blur.
	BlurredCoverScale = 1.2

	// IconSize is the rasterized pause icon edge in pixels.
	IconSize = 200
	// ShadowOffset is the drop-shadow displacement of the controller timestamps.
	ShadowOffset = 1

	// LyricOutline thickens the lyric excerpt glyphs.
	LyricOutline = 2
)

// SmallCoverSize returns the canonical small cover size for a cover of size
// src on display: CoverRatio of the display width, aspect preserved.
func SmallCoverSize(display pipeline.Display, src image.Rectangle) image.Point {
	w := max(int(float64(display.Width)*CoverRatio), 1)
	h := w
	if src.Dx() > 0 {
		h = max(int(float64(w)*float64(src.Dy())/float64(src.Dx())), 1)
	}
	return image.Pt(w, h)
}

// Centered returns the top-left corner that centers size on display.
func Centered(display pipeline.Display, size image.Point) image.Point {
	return image.Pt(display.Width/2-size.X/2, display.Height/2-size.Y/2)
}

// BlurCrop is the center window of the 2x blurred background kept on screen.
func BlurCrop(display pipeline.Display) image.Rectangle {
	x, y := display.Width/2, display.Height/2
	return image.Rect(x, y, x+display.Width, y+display.Height)
}

// LyricGeometry holds the placement of the lyric card elements.
type LyricGeometry struct {
	Cover  image.Point
	Header image.Point
	Box    image.Point
}

// ComputeLyric places the cover on the left third, the header centered
// below it and the lyric box centered in the right half.
func ComputeLyric(display pipeline.Display, cover, header, box image.Point) LyricGeometry {
	w, h := display.Width, display.Height
	return LyricGeometry{
		Cover:  image.Pt(w/6, h/2-cover.Y/2),
		Header: image.Pt(w/6+cover.X/2-header.X/2, h/2+cover.Y/2+header.Y/2),
		Box:    image.Pt(w/2+(w/2-box.X)/2, h/2-box.Y/2),
	}
}

// ControllerGeometry holds the placement of the controller card elements.
type ControllerGeometry struct {
	Cover    image.Point
	Header   image.Point
	Icon     image.Point
	Progress image.Rectangle
	Elapsed  image.Point
	Duration image.Point
}

// ComputeController lays the card out top to bottom: cover at one sixth of
// the height, header, timestamps, progress bar, then the pause icon.
func ComputeController(display pipeline.Display, cover, header, icon image.Point) ControllerGeometry {
	w, h := display.Width, display.Height
	base := h/6 + cover.Y
	return ControllerGeometry{
		Cover:  image.Pt(w/2-cover.X/2, h/6),
		Header: image.Pt(w/2-header.X/2, base+100),
		Icon:   image.Pt(w/2-icon.X/2, base+250),
		// Inclusive corners [w/6, base+210] .. [w-w/6+100, base+215]
		Progress: image.Rect(w/6, base+210, w-w/6+100+1, base+215+1),
		Elapsed:  image.Pt(w/6-120, base+190),
		Duration: image.Pt(w-w/6+100, base+190),
	}
}

// FormatDuration renders a track length in milliseconds as mm:ss.
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d", ms/60000, (ms%60000)/1000)
}
