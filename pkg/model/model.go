// Package model implements block models: primitives with per-face textures,
// UV mappings and tints, and the nearest-hit rule that resolves a ray against
// all of them.
package model

import (
	"math"
	"slices"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
	"github.com/df07/go-block-raytracer/pkg/uvmap"
)

// BlockModel is what the renderer sees of a block type
type BlockModel interface {
	// Intersect resolves the ray against the model and commits the nearest
	// visible hit into state. It reports whether anything was committed.
	Intersect(state *core.RayState, biomes tint.BiomeSource) bool
	PrimitiveCount() int
	IsBiomeDependent() bool
	Bounds() core.AABB
}

// Surface holds the attributes of one face of a part. The zero value has no
// texture, which means the face is not present.
type Surface struct {
	Texture texture.Sampler
	Mapping uvmap.Mapping
	Tint    tint.Tint
}

// Present reports whether the face can produce hits
func (s Surface) Present() bool {
	return s.Texture != nil
}

// Part is one primitive together with the surfaces of its faces
type Part struct {
	Primitive geometry.Primitive
	Faces     [geometry.NumFaces]Surface
}

// Model is an immutable block model made of parts. It is safe to share
// between goroutines.
type Model struct {
	parts          []Part
	biomeDependent bool
	bounds         core.AABB
}

// New creates a model from parts. Parts are tested in the given order.
func New(parts ...Part) *Model {
	m := &Model{parts: slices.Clone(parts), bounds: core.EmptyAABB()}
	for _, p := range m.parts {
		m.bounds = m.bounds.Union(p.Primitive.Bounds())
		for _, s := range p.Faces {
			if s.Tint.IsBiomeDependent() {
				m.biomeDependent = true
			}
		}
	}
	return m
}

// Join concatenates the parts of several models, keeping their order
func Join(models ...*Model) *Model {
	var parts []Part
	for _, m := range models {
		parts = append(parts, m.parts...)
	}
	return New(parts...)
}

// Parts returns a copy of the model's parts
func (m *Model) Parts() []Part {
	return slices.Clone(m.parts)
}

// PrimitiveCount returns the number of primitives in the model
func (m *Model) PrimitiveCount() int {
	return len(m.parts)
}

// IsBiomeDependent reports whether any face carries a biome tint
func (m *Model) IsBiomeDependent() bool {
	return m.biomeDependent
}

// Bounds returns the union of the primitive bounds. It is inverted for an
// empty model.
func (m *Model) Bounds() core.AABB {
	return m.bounds
}

// candidate is the best visible hit found so far during one Intersect call
type candidate struct {
	hit   geometry.Hit
	uv    core.Vec2
	color core.Color
	tint  tint.Tint
}

// Intersect tests every part in declaration order and keeps the strictly
// nearest hit whose texel is not transparent. Ties go to the earlier part.
// Nothing but T is written to state unless a hit is committed.
func (m *Model) Intersect(state *core.RayState, biomes tint.BiomeSource) bool {
	state.Reset()

	best := math.Inf(1)
	var winner candidate
	found := false

	for i := range m.parts {
		part := &m.parts[i]

		// tMax = best rejects anything not strictly nearer than the current winner
		hit, ok := part.Primitive.Intersect(state.Ray, -core.Epsilon, best)
		if !ok {
			continue
		}

		surface := part.Faces[part.Primitive.Face(hit)]
		if !surface.Present() {
			continue
		}

		uv := surface.Mapping.Apply(hit.UV)
		color := surface.Texture.Sample(uv)
		if color.A <= core.Epsilon {
			continue
		}

		best = hit.T
		winner = candidate{hit: hit, uv: uv, color: color, tint: surface.Tint}
		found = true
	}

	if !found {
		return false
	}

	color := winner.color
	if state.OpaqueMaterial {
		color.A = 1
	}
	// Look the biome up just inside the surface so that faces lying on a block
	// boundary take the biome of the block that was hit
	pos := state.WorldPoint(winner.hit.T).Subtract(winner.hit.Normal.Multiply(core.Offset))
	state.Color = winner.tint.Apply(color, pos, biomes)
	state.Normal = winner.hit.Normal
	state.UV = winner.uv
	state.T = winner.hit.T
	state.Advance(state.T)
	return true
}
