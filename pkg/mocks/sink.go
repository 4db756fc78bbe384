package mocks

import (
	"image"
	"sync"

	"github.com/user/syncwall/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Layers      map[string]image.Image
	LayerOrder  []string
	RequestJSON []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Layers:  make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayer(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layers[name] = img
	m.LayerOrder = append(m.LayerOrder, name)
	return nil
}

func (m *DebugSink) SaveRequestJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestJSON = data
	return nil
}

// Layer returns a saved layer (for test verification).
func (m *DebugSink) Layer(name string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.Layers[name]
	return img, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                 { return false }
func (m *NullSink) SaveLayer(name string, img image.Image) error { return nil }
func (m *NullSink) SaveRequestJSON(data []byte) error            { return nil }

var _ ports.DebugSink = (*NullSink)(nil)

// WallpaperSink is a mock implementation of ports.WallpaperSink.
type WallpaperSink struct {
	mu sync.Mutex

	WriteFunc func(img image.Image) error
	PathValue string

	Written []image.Image
}

func (m *WallpaperSink) Write(img image.Image) error {
	if m.WriteFunc != nil {
		if err := m.WriteFunc(img); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Written = append(m.Written, img)
	return nil
}

func (m *WallpaperSink) Path() string {
	if m.PathValue == "" {
		return "finalImage.png"
	}
	return m.PathValue
}

// Count returns how many wallpapers were written.
func (m *WallpaperSink) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Written)
}

var _ ports.WallpaperSink = (*WallpaperSink)(nil)
