// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/user/syncwall/pkg/ports"
)

// Sink saves debug output to files.
// Layers are numbered in the order they are saved so a directory listing
// reads as the compositing sequence.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer

	mu  sync.Mutex
	seq int
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayer saves an intermediate bitmap as layers/NN-name.png.
func (s *Sink) SaveLayer(name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "layers")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode layer %s: %w", name, err)
	}

	s.mu.Lock()
	s.seq++
	index := s.seq
	s.mu.Unlock()

	path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", index, name))
	return s.fs.WriteFile(path, data)
}

// SaveRequestJSON saves the render request metadata as JSON.
func (s *Sink) SaveRequestJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "request.json")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
