package ports

import (
	"image"
)

// WallpaperSink receives the finished canvas of every successful render.
// Implementations must either replace the previous wallpaper completely
// or leave it untouched.
type WallpaperSink interface {
	// Write persists the rendered wallpaper.
	Write(img image.Image) error

	// Path returns the location the wallpaper is written to.
	Path() string
}

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate layers for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayer saves an intermediate bitmap under the given name.
	SaveLayer(name string, img image.Image) error

	// SaveRequestJSON saves the render request metadata as JSON.
	SaveRequestJSON(data []byte) error
}
