package blocks

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/blockmodel"
	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/texture"
)

// textureSize is the edge length of the generated textures in pixels
const textureSize = 16

// DefaultTextures returns procedurally generated 16x16 textures for every
// texture name the stock blocks use. Tinted textures are greyscale.
func DefaultTextures() blockmodel.TextureMap {
	return blockmodel.TextureMap{
		"block/stone":            noiseTexture("#8a8a8a", "#6b6b6b", 1),
		"block/cobblestone":      noiseTexture("#9a9a9a", "#4e4e4e", 2),
		"block/dirt":             noiseTexture("#8b6443", "#5f412a", 3),
		"block/grass_block_top":  noiseTexture("#c8c8c8", "#8c8c8c", 4),
		"block/grass_block_side": grassSideTexture(),
		"block/oak_planks":       planksTexture(),
		"block/water":            noiseTexture("#d0d0d0", "#b8b8b8", 5),
		"block/fern":             plantTexture(6),
		"block/short_grass":      plantTexture(7),
		"block/torch":            torchTexture(),
	}
}

// hash returns a deterministic value in [0, 1] for a pixel
func hash(x, y int, seed uint32) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + seed*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / math.MaxUint32
}

// generate builds a texture from a per-pixel function. y=0 is the top row.
func generate(pixel func(x, y int) core.Color) *texture.Image {
	pixels := make([]core.Color, textureSize*textureSize)
	for y := 0; y < textureSize; y++ {
		for x := 0; x < textureSize; x++ {
			pixels[y*textureSize+x] = pixel(x, y)
		}
	}
	return texture.NewImage(textureSize, textureSize, pixels)
}

// noiseTexture blends two sRGB colors in Lab space with per-pixel noise
func noiseTexture(a, b string, seed uint32) *texture.Image {
	ca, cb := texture.MustHex(a), texture.MustHex(b)
	return generate(func(x, y int) core.Color {
		return texture.FromColorful(ca.BlendLab(cb, hash(x, y, seed)))
	})
}

func grassSideTexture() *texture.Image {
	dirt := noiseTexture("#8b6443", "#5f412a", 3)
	grass, dark := texture.MustHex("#79a84a"), texture.MustHex("#5c8a34")
	return generate(func(x, y int) core.Color {
		// Ragged grass fringe over the dirt
		if y < 3 || (y == 3 && hash(x, 0, 8) > 0.5) {
			return texture.FromColorful(grass.BlendLab(dark, hash(x, y, 9)))
		}
		return dirt.Pixels[y*textureSize+x]
	})
}

func planksTexture() *texture.Image {
	light, dark := texture.MustHex("#b08f57"), texture.MustHex("#8c6d40")
	return generate(func(x, y int) core.Color {
		if y%4 == 3 {
			return texture.FromColorful(dark.BlendLab(texture.MustHex("#6b5230"), 0.5))
		}
		return texture.FromColorful(light.BlendLab(dark, 0.6*hash(x, y/4, 10)))
	})
}

// plantTexture is a greyscale cutout of blades growing from the bottom edge
func plantTexture(seed uint32) *texture.Image {
	light, dark := texture.MustHex("#d8d8d8"), texture.MustHex("#8a8a8a")
	return generate(func(x, y int) core.Color {
		height := 4 + int(hash(x, 0, seed)*12)
		if textureSize-y > height || hash(x, y, seed+1) < 0.2 {
			return core.Color{}
		}
		return texture.FromColorful(light.BlendLab(dark, hash(x, y, seed+2)))
	})
}

// torchTexture is a two pixel wide stick from row 6 down with a flame on top
func torchTexture() *texture.Image {
	stick, flame := texture.MustHex("#6b5432"), texture.MustHex("#ffd86b")
	return generate(func(x, y int) core.Color {
		switch {
		case x < 7 || x > 8 || y < 6:
			return core.Color{}
		case y < 8:
			return texture.FromColorful(flame)
		}
		return texture.FromColorful(stick)
	})
}
