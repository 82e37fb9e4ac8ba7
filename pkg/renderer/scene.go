package renderer

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/tint"
)

// Placement is a block model at an integer block position
type Placement struct {
	Position core.Vec3
	Model    model.BlockModel
	bounds   core.AABB // World bounds used to skip the model early
}

// SceneHit is the nearest block hit along a ray
type SceneHit struct {
	T        float64
	Normal   core.Vec3
	Color    core.Color
	Position core.Vec3 // Block position of the model that was hit
}

// Scene is a set of placed block models. Blocks are tested one after another;
// the scene is meant for small previews.
type Scene struct {
	placements []Placement
	biomes     tint.BiomeSource
}

// NewScene creates an empty scene. biomes may be nil, in which case biome
// tints leave textures untouched.
func NewScene(biomes tint.BiomeSource) *Scene {
	return &Scene{biomes: biomes}
}

// Add places a model with its minimum corner at block (x, y, z)
func (s *Scene) Add(x, y, z int, m model.BlockModel) {
	pos := core.NewVec3(float64(x), float64(y), float64(z))
	s.placements = append(s.placements, Placement{
		Position: pos,
		Model:    m,
		bounds:   m.Bounds().Translate(pos).Expand(core.Offset),
	})
}

// Len returns the number of placed blocks
func (s *Scene) Len() int {
	return len(s.placements)
}

// PrimitiveCount returns the total number of primitives of all placed models
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, p := range s.placements {
		count += p.Model.PrimitiveCount()
	}
	return count
}

// Bounds returns the world bounds of every placed model
func (s *Scene) Bounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, p := range s.placements {
		bounds = bounds.Union(p.Model.Bounds().Translate(p.Position))
	}
	return bounds
}

// Trace returns the nearest hit along ray. Each model is intersected in its
// own frame, with the ray translated by the block position.
func (s *Scene) Trace(ray core.Ray) (SceneHit, bool) {
	var best SceneHit
	best.T = math.Inf(1)
	found := false

	for i := range s.placements {
		p := &s.placements[i]
		if _, ok := p.bounds.Hit(ray, 0, best.T); !ok {
			continue
		}

		state := core.NewRayState(ray.Translate(p.Position.Negate()))
		state.Offset = p.Position
		if !p.Model.Intersect(state, s.biomes) || state.T >= best.T {
			continue
		}

		best = SceneHit{T: state.T, Normal: state.Normal, Color: state.Color, Position: p.Position}
		found = true
	}
	return best, found
}
