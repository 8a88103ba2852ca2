package iconspec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned for logical sizes or scales that cannot
// produce a square icon of at least one pixel.
var ErrInvalidSize = errors.New("invalid icon size")

// MaxPixelSize bounds the side of a rendered icon.
const MaxPixelSize = 16384

// Idiom is the device family an icon is intended for.
type Idiom string

const (
	IdiomIPhone    Idiom = "iphone"
	IdiomIPad      Idiom = "ipad"
	IdiomMarketing Idiom = "ios-marketing"
)

// Valid reports whether i is one of the known idioms.
func (i Idiom) Valid() bool {
	switch i {
	case IdiomIPhone, IdiomIPad, IdiomMarketing:
		return true
	}
	return false
}

// IconSpec describes one output icon.
type IconSpec struct {
	Size     string // logical size, "WxH" or "W"
	Scale    int    // display density multiplier
	Idiom    Idiom  // naming only, never affects rendering
	Filename string
}

// PixelSize returns the side length of the rendered icon in pixels.
func (s IconSpec) PixelSize() (int, error) {
	return PixelSize(s.Size, s.Scale)
}

// ScaleLabel returns the scale as used in asset catalogs, e.g. "2x".
func (s IconSpec) ScaleLabel() string {
	return strconv.Itoa(s.Scale) + "x"
}

// ParseLogicalSize parses "WxH" or "W" into its numeric value.
// Non-square sizes are rejected.
func ParseLogicalSize(size string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(size), "x")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	if len(parts) == 2 {
		h, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || math.IsInf(h, 0) || math.IsNaN(h) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
		}
		if h != w {
			return 0, fmt.Errorf("%w: %q is not square", ErrInvalidSize, size)
		}
	}
	if w <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	return w, nil
}

// PixelSize computes floor(logical size * scale).
func PixelSize(size string, scale int) (int, error) {
	if scale < 1 {
		return 0, fmt.Errorf("%w: scale %d", ErrInvalidSize, scale)
	}
	w, err := ParseLogicalSize(size)
	if err != nil {
		return 0, err
	}
	if w*float64(scale) > MaxPixelSize {
		return 0, fmt.Errorf("%w: %s@%dx exceeds %d pixels", ErrInvalidSize, size, scale, MaxPixelSize)
	}
	px := int(w * float64(scale))
	if px < 1 {
		return 0, fmt.Errorf("%w: %s@%dx is below one pixel", ErrInvalidSize, size, scale)
	}
	return px, nil
}
