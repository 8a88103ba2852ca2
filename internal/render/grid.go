package render

import (
	"image"
	"image/color"

	"github.com/AnyUserName/appicon-cli/internal/random"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Grid palette.
var (
	GridBackground = color.RGBA{15, 15, 15, 255}
	GridPalette    = []color.RGBA{
		colornames.Green,
		colornames.Blue,
		colornames.Purple,
		colornames.Magenta,
	}
)

const gridDim = 3

// Shape is the primitive drawn in a grid cell.
type Shape int

const (
	FilledCircle Shape = iota
	HollowCircle
	Triangle
)

func (s Shape) String() string {
	switch s {
	case FilledCircle:
		return "filled_circle"
	case HollowCircle:
		return "hollow_circle"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// shapeFor maps a uniform [0,1) draw to a shape.
func shapeFor(v float64) Shape {
	switch {
	case v < 0.33:
		return FilledCircle
	case v < 0.66:
		return HollowCircle
	default:
		return Triangle
	}
}

// Source is the randomness a grid consumes. *random.MT19937 and
// *math/rand/v2.Rand both satisfy it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Cell is one planned grid cell.
type Cell struct {
	Row, Col int
	X, Y     int // centre in pixels
	Color    color.RGBA
	Shape    Shape
}

// PlanGrid assigns a color and shape to each of the 3x3 cells in
// row-major order. Each cell consumes one color draw, then one shape
// draw.
func PlanGrid(pixelSize int, rng Source) []Cell {
	cellSize := pixelSize / (gridDim + 1)
	cells := make([]Cell, 0, gridDim*gridDim)
	for row := 0; row < gridDim; row++ {
		for col := 0; col < gridDim; col++ {
			c := GridPalette[rng.IntN(len(GridPalette))]
			s := shapeFor(rng.Float64())
			cells = append(cells, Cell{
				Row:   row,
				Col:   col,
				X:     (col + 1) * cellSize,
				Y:     (row + 1) * cellSize,
				Color: c,
				Shape: s,
			})
		}
	}
	return cells
}

// GridPadding returns the shape radius used for pixelSize.
func GridPadding(pixelSize int) int {
	return pixelSize / (gridDim + 1) / 4
}

// DrawGrid paints the background and every planned cell onto dc.
func DrawGrid(dc *gg.Context, pixelSize int, rng Source) []Cell {
	dc.SetColor(GridBackground)
	dc.Clear()

	p := GridPadding(pixelSize)
	cells := PlanGrid(pixelSize, rng)
	for _, c := range cells {
		switch c.Shape {
		case FilledCircle:
			fillCircle(dc, c.X, c.Y, p, c.Color)
		case HollowCircle:
			strokeCircle(dc, c.X, c.Y, p, max(2, p/2), c.Color)
		case Triangle:
			fillPolygon(dc, []image.Point{
				{c.X - p, c.Y - p},
				{c.X - p, c.Y + p},
				{c.X + p, c.Y},
			}, c.Color)
		}
	}
	return cells
}

// Grid draws a seeded 3x3 grid of circles, rings and triangles on a
// dark background. Every Render reseeds, so equal seeds give identical
// images regardless of call order.
type Grid struct {
	Seed int64
}

func (Grid) Name() string { return StyleGrid }

func (g Grid) Render(pixelSize int) (image.Image, error) {
	dc, err := newCanvas(pixelSize, GridBackground)
	if err != nil {
		return nil, err
	}
	DrawGrid(dc, pixelSize, random.New(g.Seed))
	return dc.Image(), nil
}
