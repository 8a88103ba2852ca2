package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/AnyUserName/appicon-cli/internal/random"
	"github.com/fogleman/gg"
)

var (
	_ Source = (*random.MT19937)(nil)
)

// scripted replays fixed draws and records the call order.
type scripted struct {
	ints   []int
	floats []float64
	calls  []byte
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, 'i')
	v := s.ints[0] % n
	s.ints = append(s.ints[1:], s.ints[0])
	return v
}

func (s *scripted) Float64() float64 {
	s.calls = append(s.calls, 'f')
	v := s.floats[0]
	s.floats = append(s.floats[1:], s.floats[0])
	return v
}

func TestShapeFor(t *testing.T) {
	cases := []struct {
		v    float64
		want Shape
	}{
		{0, FilledCircle},
		{0.3299, FilledCircle},
		{0.33, HollowCircle},
		{0.6599, HollowCircle},
		{0.66, Triangle},
		{0.999, Triangle},
	}
	for _, c := range cases {
		if got := shapeFor(c.v); got != c.want {
			t.Errorf("%v: got %s, want %s", c.v, got, c.want)
		}
	}
}

func TestPlanGrid_Layout(t *testing.T) {
	src := &scripted{ints: []int{0, 1, 2, 3}, floats: []float64{0.1}}
	cells := PlanGrid(120, src)
	if len(cells) != 9 {
		t.Fatalf("cells: got %d", len(cells))
	}
	if string(src.calls) != strings.Repeat("if", 9) {
		t.Errorf("draw order: got %q", src.calls)
	}
	i := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := cells[i]
			if c.Row != row || c.Col != col {
				t.Errorf("cell %d: got row %d col %d", i, c.Row, c.Col)
			}
			if c.X != (col+1)*30 || c.Y != (row+1)*30 {
				t.Errorf("cell %d: centre (%d,%d)", i, c.X, c.Y)
			}
			if c.Color != GridPalette[i%4] {
				t.Errorf("cell %d: color %v", i, c.Color)
			}
			i++
		}
	}
}

func TestPlanGrid_SeededDeterministic(t *testing.T) {
	a := PlanGrid(1024, random.New(42))
	b := PlanGrid(1024, random.New(42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	c := PlanGrid(1024, random.New(43))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("seeds 42 and 43 produced the same grid")
	}
}

// Seed 42 must select the same cells as random.seed(42) followed by
// random.choice(palette), random.random() per cell in CPython.
func TestPlanGrid_Seed42Golden(t *testing.T) {
	green, blue, purple, magenta := GridPalette[0], GridPalette[1], GridPalette[2], GridPalette[3]
	want := []struct {
		color color.RGBA
		shape Shape
	}{
		{green, FilledCircle},
		{purple, FilledCircle},
		{blue, Triangle},
		{green, HollowCircle},
		{green, FilledCircle},
		{blue, FilledCircle},
		{green, HollowCircle},
		{magenta, FilledCircle},
		{purple, Triangle},
	}

	for _, size := range []int{40, 1024} {
		cells := PlanGrid(size, random.New(42))
		if len(cells) != len(want) {
			t.Fatalf("%d: cells: got %d", size, len(cells))
		}
		for i, w := range want {
			if cells[i].Color != w.color || cells[i].Shape != w.shape {
				t.Errorf("%d: cell %d: got %v %s, want %v %s",
					size, i, cells[i].Color, cells[i].Shape, w.color, w.shape)
			}
		}
	}
}

func TestGrid_Deterministic(t *testing.T) {
	a, err := Grid{Seed: 42}.Render(180)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Grid{Seed: 42}.Render(180)
	if !bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix) {
		t.Error("two renders with seed 42 differ")
	}
}

func renderScripted(t *testing.T, size int, shape float64) (image.Image, []Cell) {
	t.Helper()
	dc := gg.NewContext(size, size)
	cells := DrawGrid(dc, size, &scripted{ints: []int{0, 1, 2, 3}, floats: []float64{shape}})
	return dc.Image(), cells
}

func TestDrawGrid_FilledCircles(t *testing.T) {
	img, cells := renderScripted(t, 120, 0.1)
	for _, c := range cells {
		if got := rgbaAt(img, c.X, c.Y); got != c.Color {
			t.Errorf("cell (%d,%d): centre %v, want %v", c.Row, c.Col, got, c.Color)
		}
	}
	if got := rgbaAt(img, 0, 0); got != GridBackground {
		t.Errorf("background: got %v", got)
	}
}

func TestDrawGrid_Triangles(t *testing.T) {
	img, cells := renderScripted(t, 120, 0.9)
	p := GridPadding(120)
	for _, c := range cells {
		if got := rgbaAt(img, c.X, c.Y); got != c.Color {
			t.Errorf("cell (%d,%d): centre %v, want %v", c.Row, c.Col, got, c.Color)
		}
		// The tip points right; the column just right of the tip stays dark.
		if got := rgbaAt(img, c.X+p+2, c.Y); got != GridBackground {
			t.Errorf("cell (%d,%d): beyond tip %v", c.Row, c.Col, got)
		}
		// Left edge is a full-height vertical side.
		if got := rgbaAt(img, c.X-p+1, c.Y-p/2); got != c.Color {
			t.Errorf("cell (%d,%d): left side %v", c.Row, c.Col, got)
		}
	}
}

func TestDrawGrid_HollowCircles(t *testing.T) {
	img, cells := renderScripted(t, 120, 0.5)
	// padding 7, stroke 3: the ring covers radii 4.5..7.5.
	for _, c := range cells {
		if got := rgbaAt(img, c.X+6, c.Y); got != c.Color {
			t.Errorf("cell (%d,%d): ring %v, want %v", c.Row, c.Col, got, c.Color)
		}
		if got := rgbaAt(img, c.X, c.Y); got != GridBackground {
			t.Errorf("cell (%d,%d): hollow centre %v", c.Row, c.Col, got)
		}
	}
}

func TestGrid_SeededCellsPainted(t *testing.T) {
	const size = 120
	img, err := Grid{Seed: 42}.Render(size)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range PlanGrid(size, random.New(42)) {
		x, y := c.X, c.Y
		if c.Shape == HollowCircle {
			x += 6
		}
		if got := rgbaAt(img, x, y); got != c.Color {
			t.Errorf("cell (%d,%d) %s: got %v, want %v", c.Row, c.Col, c.Shape, got, c.Color)
		}
	}
}

func TestShape_String(t *testing.T) {
	if FilledCircle.String() != "filled_circle" || HollowCircle.String() != "hollow_circle" ||
		Triangle.String() != "triangle" || Shape(9).String() != "unknown" {
		t.Error("unexpected shape names")
	}
}
