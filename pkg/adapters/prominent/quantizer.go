// Package prominent provides a palette.Quantizer backed by k-means clustering.
package prominent

import (
	"fmt"
	"image"

	"github.com/EdlinOrg/prominentcolor"

	"github.com/user/syncwall/pkg/palette"
)

// Quantizer implements palette.Quantizer with prominentcolor.
// Covers are used whole: no cropping and no background masks.
type Quantizer struct {
	// ResizeTo is the width the image is reduced to before clustering.
	ResizeTo uint
}

// New creates a Quantizer with the library's default working size.
func New() *Quantizer {
	return &Quantizer{ResizeTo: prominentcolor.DefaultSize}
}

// Dominant implements palette.Quantizer.
func (q *Quantizer) Dominant(img image.Image, k int) ([]palette.Swatch, error) {
	items, err := prominentcolor.KmeansWithAll(
		k,
		img,
		prominentcolor.ArgumentNoCropping,
		q.ResizeTo,
		[]prominentcolor.ColorBackgroundMask{},
	)
	if err != nil {
		return nil, fmt.Errorf("kmeans: %w", err)
	}

	swatches := make([]palette.Swatch, 0, len(items))
	for _, item := range items {
		swatches = append(swatches, palette.Swatch{
			Color: palette.Color{
				R: uint8(item.Color.R),
				G: uint8(item.Color.G),
				B: uint8(item.Color.B),
			},
			Count: item.Cnt,
		})
	}
	return swatches, nil
}

var _ palette.Quantizer = (*Quantizer)(nil)
