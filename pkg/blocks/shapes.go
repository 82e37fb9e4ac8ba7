// Package blocks provides the stock block models: shapes authored in Go and
// JSON element models embedded with the package.
package blocks

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
	"github.com/df07/go-block-raytracer/pkg/transform"
)

var fullBlock = geometry.NewBox(0, 1, 0, 1, 0, 1)

// Cube is a full block with one texture and tint per face
func Cube(textures [geometry.NumFaces]texture.Sampler, tints [geometry.NumFaces]tint.Tint) *model.Model {
	return model.MustBoxModel([]geometry.Box{fullBlock}, model.BoxAttributes{
		Textures: [][geometry.NumFaces]texture.Sampler{textures},
		Tints:    [][geometry.NumFaces]tint.Tint{tints},
	})
}

// CubeAll is a full block with the same texture on every face
func CubeAll(tex texture.Sampler) *model.Model {
	return Cube(model.UniformFaces(tex), [geometry.NumFaces]tint.Tint{})
}

// GrassBlock is a full block whose top takes the biome grass color
func GrassBlock(top, side, bottom texture.Sampler) *model.Model {
	textures := model.UniformFaces(side)
	textures[geometry.Top] = top
	textures[geometry.Bottom] = bottom

	var tints [geometry.NumFaces]tint.Tint
	tints[geometry.Top] = tint.Grass
	return Cube(textures, tints)
}

// Slab is a half block in the lower or upper half
func Slab(tex texture.Sampler, upper bool) *model.Model {
	box := geometry.NewBox(0, 1, 0, 0.5, 0, 1)
	if upper {
		box = geometry.NewBox(0, 1, 0.5, 1, 0, 1)
	}
	return model.MustBoxModel([]geometry.Box{box}, model.BoxAttributes{
		Textures: [][geometry.NumFaces]texture.Sampler{model.UniformFaces(tex)},
	})
}

// Stairs returns the north, east, south and west facing stairs. The step
// rises towards the facing direction.
func Stairs(tex texture.Sampler) ([4]*model.Model, error) {
	boxes := []geometry.Box{
		geometry.NewBox(0, 1, 0, 0.5, 0, 1),
		geometry.NewBox(0, 1, 0.5, 1, 0, 0.5),
	}
	faces := model.UniformFaces(tex)
	return model.NewOrientedBoxModels(boxes, model.BoxAttributes{
		Textures: [][geometry.NumFaces]texture.Sampler{faces, faces},
	})
}

// Water is a liquid block filled to 14/16 and tinted with the biome water color
func Water(tex texture.Sampler) *model.Model {
	return model.MustBoxModel([]geometry.Box{geometry.NewBoxPixels(0, 16, 0, 14, 0, 16)}, model.BoxAttributes{
		Textures: [][geometry.NumFaces]texture.Sampler{model.UniformFaces(tex)},
		Tints:    [][geometry.NumFaces]tint.Tint{model.UniformFaces(tint.Water)},
	})
}

// Cross is a plant made of two double-sided quads along the block diagonals
func Cross(tex texture.Sampler, t tint.Tint) *model.Model {
	half := math.Sqrt2 / 2
	base := []geometry.Quad{geometry.NewDoubleSidedQuad(
		core.NewVec3(0.5-half, 0, 0.5),
		core.NewVec3(0.5+half, 0, 0.5),
		core.NewVec3(0.5-half, 1, 0.5),
		geometry.FullUV,
	)}
	quads := transform.Join(
		transform.RotateYAngle(base, math.Pi/4),
		transform.RotateYAngle(base, -math.Pi/4),
	)
	return model.MustQuadModel(quads, model.QuadAttributes{
		Textures: []texture.Sampler{tex, tex},
		Tints:    []tint.Tint{t, t},
	})
}
