// Package render draws app icons from 2D primitives.
//
// Shapes follow integer bounding-box semantics: a circle of radius r at
// (cx, cy) covers the box [cx-r, cx+r] inclusive, so its continuous
// centre sits at (cx+0.5, cy+0.5) with radius r+0.5. Later shapes
// overpaint earlier ones.
package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
)

// Renderer produces a square icon for a pixel size.
type Renderer interface {
	// Name returns the style name.
	Name() string

	// Render draws an opaque pixelSize x pixelSize image.
	Render(pixelSize int) (image.Image, error)
}

const (
	StyleRings = "rings"
	StyleGrid  = "grid"
)

// DefaultSeed seeds the grid style when no seed is given.
const DefaultSeed = 42

// New returns the renderer for style. seed only affects styles that
// use randomness.
func New(style string, seed int64) (Renderer, error) {
	switch style {
	case StyleRings:
		return Rings{}, nil
	case StyleGrid:
		return Grid{Seed: seed}, nil
	}
	return nil, fmt.Errorf("unknown style %q (available: %v)", style, Styles())
}

// Styles returns the supported style names.
func Styles() []string {
	s := []string{StyleRings, StyleGrid}
	sort.Strings(s)
	return s
}

func newCanvas(pixelSize int, bg color.Color) (*gg.Context, error) {
	if pixelSize < 1 {
		return nil, fmt.Errorf("render: invalid pixel size %d", pixelSize)
	}
	dc := gg.NewContext(pixelSize, pixelSize)
	dc.SetColor(bg)
	dc.Clear()
	return dc, nil
}

func fillCircle(dc *gg.Context, cx, cy, r int, c color.Color) {
	dc.DrawCircle(float64(cx)+0.5, float64(cy)+0.5, float64(r)+0.5)
	dc.SetColor(c)
	dc.Fill()
}

// strokeCircle outlines a circle with the stroke lying inside radius r.
func strokeCircle(dc *gg.Context, cx, cy, r, width int, c color.Color) {
	outer := float64(r) + 0.5
	w := float64(width)
	if w >= outer {
		fillCircle(dc, cx, cy, r, c)
		return
	}
	dc.DrawCircle(float64(cx)+0.5, float64(cy)+0.5, outer-w/2)
	dc.SetColor(c)
	dc.SetLineWidth(w)
	dc.Stroke()
}

func fillPolygon(dc *gg.Context, pts []image.Point, c color.Color) {
	for i, p := range pts {
		x, y := float64(p.X)+0.5, float64(p.Y)+0.5
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}
