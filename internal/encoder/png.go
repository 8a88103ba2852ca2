package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// PNGEncoder encodes icons to PNG. Images with any transparency are
// flattened onto Matte first, so the output is always 24-bit RGB:
// asset catalogs reject alpha in app icons.
type PNGEncoder struct {
	Compression png.CompressionLevel
	Matte       color.Color // defaults to white
}

func (e *PNGEncoder) Format() string { return "png" }

func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	err := imaging.Encode(&buf, Flatten(img, e.Matte), imaging.PNG,
		imaging.PNGCompressionLevel(e.Compression))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Flatten returns img unchanged if it is opaque, otherwise img composited
// over a solid matte.
func Flatten(img image.Image, matte color.Color) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	if matte == nil {
		matte = color.White
	}
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), matte)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
