// Package palette maps part state to radar display colors.
package palette

import "image/color"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	Clear    = Color{0, 0, 0, 0}
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Magenta  = Color{1, 0, 1, 1}
	Yellow   = Color{1, 0.92, 0.016, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.2, 0.2, 0.2, 1}
	Orange   = Color{1, 0.5, 0, 1}
)

// Visible reports whether the color has any opacity.
func (c Color) Visible() bool {
	return c.A != 0
}

// Dull halves the color channels, leaving alpha alone.
func (c Color) Dull() Color {
	return Color{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// NRGBA converts to a non-premultiplied 8-bit color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
