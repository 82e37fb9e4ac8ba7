// Package uvmap implements the fixed set of texture coordinate remaps applied
// to a hit before its texture is sampled.
package uvmap

import "github.com/df07/go-block-raytracer/pkg/core"

// Mapping is a discrete transform of texture coordinates. The zero value is None.
type Mapping int

const (
	None      Mapping = iota // identity
	Rotate90                 // (1-v, u)
	Rotate180                // (1-u, 1-v)
	Rotate270                // (v, 1-u)
	FlipU                    // (1-u, v)
	FlipV                    // (u, 1-v)
)

// Mappings lists every mapping in declaration order
var Mappings = []Mapping{None, Rotate90, Rotate180, Rotate270, FlipU, FlipV}

var mappingNames = map[Mapping]string{
	None:      "none",
	Rotate90:  "rotate90",
	Rotate180: "rotate180",
	Rotate270: "rotate270",
	FlipU:     "flipU",
	FlipV:     "flipV",
}

func (m Mapping) String() string {
	if name, ok := mappingNames[m]; ok {
		return name
	}
	return "unknown"
}

// Apply remaps uv. Unknown values behave like None.
func (m Mapping) Apply(uv core.Vec2) core.Vec2 {
	u, v := uv.X, uv.Y
	switch m {
	case Rotate90:
		return core.NewVec2(1-v, u)
	case Rotate180:
		return core.NewVec2(1-u, 1-v)
	case Rotate270:
		return core.NewVec2(v, 1-u)
	case FlipU:
		return core.NewVec2(1-u, v)
	case FlipV:
		return core.NewVec2(u, 1-v)
	}
	return uv
}

// FromRotation returns the rotation for a clockwise angle in degrees, as used by
// JSON block model faces. Only multiples of 90 are representable.
func FromRotation(degrees int) (Mapping, bool) {
	switch ((degrees % 360) + 360) % 360 {
	case 0:
		return None, true
	case 90:
		return Rotate90, true
	case 180:
		return Rotate180, true
	case 270:
		return Rotate270, true
	}
	return None, false
}

// marker has distinct, exactly representable coordinates so that every mapping
// sends it to a different point
var marker = core.NewVec2(0.25, 0.125)

// Compose returns the mapping equal to applying first and then then. A
// rotation by a quarter turn followed by a flip is a diagonal reflection,
// which the set cannot express; ok is false in that case.
func Compose(first, then Mapping) (Mapping, bool) {
	target := then.Apply(first.Apply(marker))
	for _, m := range Mappings {
		if m.Apply(marker) == target {
			return m, true
		}
	}
	return None, false
}

// Inverse returns the mapping that undoes m
func Inverse(m Mapping) Mapping {
	switch m {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	}
	return m
}
