// Package biome supplies the biome colors used by grass, foliage and water tints.
package biome

import (
	"github.com/samber/lo"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
)

// Biome holds the linear tint colors of one biome
type Biome struct {
	ID      int
	Name    string
	Grass   core.Color
	Foliage core.Color
	Water   core.Color
}

// Color returns the biome's color for a tint kind. Non-biome kinds get white.
func (b Biome) Color(kind tint.Kind) core.Color {
	switch kind {
	case tint.BiomeGrass:
		return b.Grass
	case tint.BiomeFoliage:
		return b.Foliage
	case tint.BiomeWater:
		return b.Water
	}
	return core.White
}

// Palette is an immutable table of biomes indexed by ID
type Palette struct {
	biomes  []Biome
	unknown Biome
}

const (
	defaultWater = "#3f76e4"
	unknownColor = "#7e7e7e"
)

// paletteEntry is one row of the built-in biome table, in sRGB hex
type paletteEntry struct {
	name  string
	grass string
	water string
}

var defaultEntries = []paletteEntry{
	{"ocean", "#75b646", defaultWater},
	{"plains", "#8db84a", defaultWater},
	{"desert", "#9ba863", defaultWater},
	{"extreme_hills", "#75b646", defaultWater},
	{"forest", "#4a8f3a", defaultWater},
	{"taiga", "#478852", defaultWater},
	{"swampland", "#3e5226", "#617b64"},
	{"river", "#75b646", defaultWater},
	{"hell", "#75b646", defaultWater},
	{"sky", "#75b646", defaultWater},
	{"frozen_ocean", "#7a9c91", "#3938c9"},
	{"frozen_river", "#7a9c91", "#3938c9"},
	{"ice_plains", "#7a9c91", defaultWater},
	{"ice_mountains", "#7a9c91", defaultWater},
	{"mushroom_island", "#939d88", defaultWater},
	{"mushroom_island_shore", "#939d88", defaultWater},
	{"beach", "#75b646", defaultWater},
	{"desert_hills", "#9ba863", defaultWater},
	{"forest_hills", "#4a8f3a", defaultWater},
	{"taiga_hills", "#478852", defaultWater},
	{"extreme_hills_edge", "#75b646", defaultWater},
	{"jungle", "#3a8b25", defaultWater},
	{"jungle_hills", "#3a8b25", defaultWater},
}

// linear converts an sRGB hex color to an opaque linear color
func linear(hex string) core.Color {
	return texture.FromColorful(texture.MustHex(hex))
}

// DefaultPalette builds the built-in biome table. Foliage shares the grass
// color of each biome.
func DefaultPalette() *Palette {
	biomes := lo.Map(defaultEntries, func(e paletteEntry, id int) Biome {
		grass := linear(e.grass)
		return Biome{ID: id, Name: e.name, Grass: grass, Foliage: grass, Water: linear(e.water)}
	})
	unknown := linear(unknownColor)
	return &Palette{
		biomes:  biomes,
		unknown: Biome{ID: -1, Name: "unknown", Grass: unknown, Foliage: unknown, Water: linear(defaultWater)},
	}
}

// Lookup returns the biome with the given ID, or the unknown biome
func (p *Palette) Lookup(id int) Biome {
	if id < 0 || id >= len(p.biomes) {
		return p.unknown
	}
	return p.biomes[id]
}

// Find returns the biome with the given name
func (p *Palette) Find(name string) (Biome, bool) {
	return lo.Find(p.biomes, func(b Biome) bool { return b.Name == name })
}

// Names returns the biome names in ID order
func (p *Palette) Names() []string {
	return lo.Map(p.biomes, func(b Biome, _ int) string { return b.Name })
}

// Len returns the number of known biomes
func (p *Palette) Len() int {
	return len(p.biomes)
}
