package blocks

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/df07/go-block-raytracer/pkg/blockmodel"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
)

//go:embed assets
var assets embed.FS

// Facings lists the horizontal directions in the order oriented variants are built
var Facings = [4]string{"north", "east", "south", "west"}

// Assets returns the embedded JSON models laid out as models/block/<name>.json
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// FacingName returns the registry name of an oriented variant
func FacingName(name, facing string) string {
	return name + "[facing=" + facing + "]"
}

// builder collects models into a registry, remembering the first error
type builder struct {
	registry *model.Registry
	textures blockmodel.TextureSource
	loader   *blockmodel.Loader
	missing  []string
	err      error
}

// texture returns the named sampler, recording missing names
func (b *builder) texture(name string) texture.Sampler {
	s, ok := b.textures.Texture(name)
	if !ok {
		if !slices.Contains(b.missing, name) {
			b.missing = append(b.missing, name)
		}
		return texture.Transparent
	}
	return s
}

func (b *builder) register(name string, m model.BlockModel) {
	if b.err != nil {
		return
	}
	b.err = b.registry.Register(name, m)
}

func (b *builder) registerOriented(name string, variants [4]*model.Model, err error) {
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("failed to orient %s: %w", name, err)
		}
		return
	}
	for i, facing := range Facings {
		b.register(FacingName(name, facing), variants[i])
	}
}

// loadJSON loads and builds an embedded JSON model
func (b *builder) loadJSON(name string, t tint.Tint) *model.Model {
	if b.err != nil {
		return nil
	}
	decoded, err := b.loader.Load(name)
	if err != nil {
		b.err = fmt.Errorf("failed to load model %s: %w", name, err)
		return nil
	}
	m, err := blockmodel.Build(decoded, blockmodel.BuildOptions{Textures: b.textures, Tint: t})
	if err != nil {
		b.err = fmt.Errorf("failed to build model %s: %w", name, err)
		return nil
	}
	return m
}

// NewRegistry builds the registry of stock blocks from the given textures.
// Oriented blocks are registered once per facing, e.g. "oak_stairs[facing=east]".
func NewRegistry(textures blockmodel.TextureSource) (*model.Registry, error) {
	b := &builder{
		registry: model.NewRegistry(),
		textures: textures,
		loader:   blockmodel.NewLoader(Assets()),
	}

	stone := b.texture("block/stone")
	dirt := b.texture("block/dirt")
	planks := b.texture("block/oak_planks")

	b.register("stone", CubeAll(stone))
	b.register("dirt", CubeAll(dirt))
	b.register("oak_planks", CubeAll(planks))
	b.register("grass_block", GrassBlock(b.texture("block/grass_block_top"), b.texture("block/grass_block_side"), dirt))
	b.register("oak_slab", Slab(planks, false))
	b.register("oak_slab[type=top]", Slab(planks, true))
	stairs, err := Stairs(planks)
	b.registerOriented("oak_stairs", stairs, err)
	b.register("water", Water(b.texture("block/water")))
	b.register("fern", Cross(b.texture("block/fern"), tint.Foliage))

	if len(b.missing) > 0 {
		return nil, fmt.Errorf("%w: %s", blockmodel.ErrUnknownTexture, strings.Join(b.missing, ", "))
	}

	if m := b.loadJSON("cobblestone", tint.Tint{}); m != nil {
		b.register("cobblestone", m)
	}
	if m := b.loadJSON("short_grass", tint.Grass); m != nil {
		b.register("short_grass", m)
	}
	if m := b.loadJSON("torch", tint.Tint{}); m != nil {
		b.register("torch", m)
	}
	if m := b.loadJSON("stone_button", tint.Tint{}); m != nil {
		b.register("stone_button", m)
	}
	if m := b.loadJSON("wall_torch", tint.Tint{}); m != nil {
		variants, err := model.NewOrientedModels(m)
		b.registerOriented("wall_torch", variants, err)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.registry, nil
}
