package core

// Color is a linear RGBA color with float64 channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

// NewColor creates a new Color
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque returns an opaque color from RGB components
func Opaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// White is the multiplicative identity for RGB
var White = Opaque(1, 1, 1)

// MultiplyRGB multiplies the RGB channels component-wise, leaving alpha untouched
func (c Color) MultiplyRGB(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B, A: c.A}
}

// ScaleRGB multiplies the RGB channels by a scalar, leaving alpha untouched
func (c Color) ScaleRGB(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// WithAlpha returns the color with its alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}
