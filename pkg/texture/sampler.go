// Package texture provides the color samplers block model faces are textured with.
package texture

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// Sampler returns the linear RGBA color at texture coordinates uv in [0,1]².
// Samplers are immutable and safe for concurrent use.
type Sampler interface {
	Sample(uv core.Vec2) core.Color
}

// Solid provides a uniform color
type Solid struct {
	Color core.Color
}

// NewSolid creates a new solid color sampler
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// NewSolidHex creates an opaque solid sampler from an sRGB hex string like "#8db84a"
func NewSolidHex(hex string) (*Solid, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return NewSolid(c), nil
}

// Sample returns the solid color regardless of uv
func (s *Solid) Sample(uv core.Vec2) core.Color {
	return s.Color
}

// Transparent is a fully transparent sampler, useful for faces that exist
// geometrically but never produce a visible hit
var Transparent Sampler = NewSolid(core.Color{})

// ParseHex converts an sRGB hex string to an opaque linear color
func ParseHex(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// MustHex parses an sRGB hex string and panics if it is malformed. It is
// meant for package-level color tables.
func MustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("invalid color %q: %v", hex, err))
	}
	return c
}

// FromColorful converts a go-colorful sRGB color to an opaque linear color
func FromColorful(c colorful.Color) core.Color {
	r, g, b := c.LinearRgb()
	return core.Opaque(r, g, b)
}

// Checker alternates between two colors in a Size×Size grid over the face
type Checker struct {
	Even, Odd core.Color
	Size      int
}

// NewChecker creates a checkerboard sampler
func NewChecker(even, odd core.Color, size int) *Checker {
	if size < 1 {
		size = 1
	}
	return &Checker{Even: even, Odd: odd, Size: size}
}

// Sample returns Even or Odd depending on the cell containing uv
func (c *Checker) Sample(uv core.Vec2) core.Color {
	x := cell(uv.X, c.Size)
	y := cell(uv.Y, c.Size)
	if (x+y)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// cell maps a coordinate in [0,1] to one of n cells, clamping at the edges
func cell(t float64, n int) int {
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
