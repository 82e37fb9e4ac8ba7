package biome

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/tint"
)

// column is a block column in the XZ plane
type column struct {
	x, z int
}

// Map assigns biomes to block columns and implements tint.BiomeSource.
// Columns without an assignment use the default biome. A Map must be fully
// populated before it is shared with render workers.
type Map struct {
	palette  *Palette
	fallback Biome
	columns  map[column]Biome
}

// NewMap creates a biome map where every column has the default biome
func NewMap(palette *Palette, defaultID int) *Map {
	return &Map{
		palette:  palette,
		fallback: palette.Lookup(defaultID),
		columns:  make(map[column]Biome),
	}
}

// Set assigns a biome to the column containing block (x, z)
func (m *Map) Set(x, z, id int) {
	m.columns[column{x, z}] = m.palette.Lookup(id)
}

// At returns the biome of the column containing pos
func (m *Map) At(pos core.Vec3) Biome {
	key := column{int(math.Floor(pos.X)), int(math.Floor(pos.Z))}
	if b, ok := m.columns[key]; ok {
		return b
	}
	return m.fallback
}

// BiomeColor implements tint.BiomeSource
func (m *Map) BiomeColor(kind tint.Kind, pos core.Vec3) core.Color {
	return m.At(pos).Color(kind)
}
