package encoder

import (
	"image"
)

// Encoder encodes an icon raster to a file format.
type Encoder interface {
	// Format returns the output format name (e.g. "png").
	Format() string

	// Encode converts the image to bytes.
	Encode(img image.Image) ([]byte, error)
}
