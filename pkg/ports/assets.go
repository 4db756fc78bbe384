// Package ports defines interfaces for external dependencies of the rendering pipeline.
package ports

import (
	"context"
	"image"
	"image/color"
)

// AssetFetcher retrieves remote assets such as cover art.
type AssetFetcher interface {
	// Fetch returns the raw bytes stored at url.
	// Implementations may serve repeated requests from a cache.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IconRasterizer produces recolored raster icons from vector assets.
type IconRasterizer interface {
	// PauseIcon returns the pause icon filled with c, rasterized at width x height.
	PauseIcon(c color.Color, width, height int) (image.Image, error)
}
