// Package wallpapersink writes finished wallpapers to a single file path.
package wallpapersink

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/user/syncwall/pkg/ports"
)

// Sink encodes wallpapers as PNG and swaps them into place.
// The target file is either fully replaced or left untouched: the image is
// written next to it first and then renamed over it.
type Sink struct {
	path     string
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger

	mu sync.Mutex
}

// New creates a Sink writing to path.
func New(path string, fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Sink {
	return &Sink{
		path:     path,
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("wallpaper"),
	}
}

// Path returns the target file.
func (s *Sink) Path() string {
	return s.path
}

// Write replaces the wallpaper file with img.
// Concurrent writers are serialized; the last one wins.
func (s *Sink) Write(img image.Image) error {
	if img == nil {
		return fmt.Errorf("write wallpaper: nil image: %w", ports.ErrIOFailure)
	}

	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode wallpaper: %v: %w", err, ports.ErrIOFailure)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create %s: %v: %w", dir, err, ports.ErrIOFailure)
		}
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("write %s: %v: %w", tmp, err, ports.ErrIOFailure)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %v: %w", s.path, err, ports.ErrIOFailure)
	}

	s.logger.Debug("Wrote %d bytes to %s", len(data), s.path)
	return nil
}

// Ensure Sink implements ports.WallpaperSink
var _ ports.WallpaperSink = (*Sink)(nil)
