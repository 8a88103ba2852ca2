package render

import (
	"image"
	"image/color"
)

// Rings palette.
var (
	RingsBase  = color.RGBA{59, 130, 246, 255}
	RingsDisc  = color.RGBA{37, 99, 235, 255}
	RingsWhite = color.RGBA{255, 255, 255, 255}
)

// Rings draws concentric white rings over a darker disc with a white
// centre dot ("network rings").
type Rings struct{}

func (Rings) Name() string { return StyleRings }

func (Rings) Render(pixelSize int) (image.Image, error) {
	dc, err := newCanvas(pixelSize, RingsBase)
	if err != nil {
		return nil, err
	}

	center := pixelSize / 2
	fillCircle(dc, center, center, pixelSize/3, RingsDisc)

	width := max(1, pixelSize/20)
	for i := 3; i > 0; i-- {
		strokeCircle(dc, center, center, (pixelSize/6)*i, width, RingsWhite)
	}

	fillCircle(dc, center, center, pixelSize/12, RingsWhite)
	return dc.Image(), nil
}
