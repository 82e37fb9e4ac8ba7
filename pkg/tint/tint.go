// Package tint applies post-sample color multipliers to texture samples.
package tint

import "github.com/df07/go-block-raytracer/pkg/core"

// Kind identifies how a tint obtains its multiplier
type Kind int

const (
	None         Kind = iota // no tint
	Constant                 // fixed multiplier stored on the tint
	BiomeGrass               // biome grass color at the hit position
	BiomeFoliage             // biome foliage color at the hit position
	BiomeWater               // biome water color at the hit position
)

var kindNames = map[Kind]string{
	None:         "none",
	Constant:     "constant",
	BiomeGrass:   "grass",
	BiomeFoliage: "foliage",
	BiomeWater:   "water",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsBiomeDependent reports whether the multiplier is looked up from a biome
func (k Kind) IsBiomeDependent() bool {
	return k == BiomeGrass || k == BiomeFoliage || k == BiomeWater
}

// BiomeSource supplies biome colors for tinting. pos is the world-space hit
// position; implementations must be safe for concurrent use.
type BiomeSource interface {
	BiomeColor(kind Kind, pos core.Vec3) core.Color
}

// Tint is a color multiplier attached to a face. The zero value is no tint.
type Tint struct {
	Kind  Kind
	Color core.Color // only used by Constant
}

// Predefined biome tints
var (
	Grass   = Tint{Kind: BiomeGrass}
	Foliage = Tint{Kind: BiomeFoliage}
	Water   = Tint{Kind: BiomeWater}
)

// NewConstant creates a tint that always multiplies by c
func NewConstant(c core.Color) Tint {
	return Tint{Kind: Constant, Color: c}
}

// IsBiomeDependent reports whether applying the tint needs a biome lookup
func (t Tint) IsBiomeDependent() bool {
	return t.Kind.IsBiomeDependent()
}

// Apply multiplies the RGB channels of c by the tint color. Alpha is never
// changed. Biome tints are left as identity when src is nil.
func (t Tint) Apply(c core.Color, pos core.Vec3, src BiomeSource) core.Color {
	switch {
	case t.Kind == Constant:
		return c.MultiplyRGB(t.Color)
	case t.Kind.IsBiomeDependent() && src != nil:
		return c.MultiplyRGB(src.BiomeColor(t.Kind, pos))
	}
	return c
}
