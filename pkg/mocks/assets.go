package mocks

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/syncwall/pkg/ports"
)

// AssetFetcher is a mock implementation of ports.AssetFetcher.
type AssetFetcher struct {
	mu sync.Mutex

	FetchFunc func(ctx context.Context, url string) ([]byte, error)
	Assets    map[string][]byte

	Requested []string
}

func (m *AssetFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	m.Requested = append(m.Requested, url)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	if data, ok := m.Assets[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("asset not found: %s", url)
}

var _ ports.AssetFetcher = (*AssetFetcher)(nil)

// IconRasterizer is a mock implementation of ports.IconRasterizer.
// By default it returns a solid square of the requested color.
type IconRasterizer struct {
	PauseIconFunc func(c color.Color, width, height int) (image.Image, error)

	Colors []color.Color
}

func (m *IconRasterizer) PauseIcon(c color.Color, width, height int) (image.Image, error) {
	m.Colors = append(m.Colors, c)
	if m.PauseIconFunc != nil {
		return m.PauseIconFunc(c, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img, nil
}

var _ ports.IconRasterizer = (*IconRasterizer)(nil)
