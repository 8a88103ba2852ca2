//go:build go1.22

package render

import "math/rand/v2"

var _ Source = (*rand.Rand)(nil)
