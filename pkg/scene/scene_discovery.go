package scene

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	Description string
	create      func(Options) (*Scene, error)
}

var scenes = []SceneInfo{
	{"showcase", "Every registered model in a grid on a grass floor", NewShowcaseScene},
	{"model", "A single model, chosen with --model, on a grass floor", NewModelScene},
	{"biomes", "Grass, plants and water in every biome of the palette", NewBiomeScene},
}

// ListScenes returns the built-in scenes
func ListScenes() []SceneInfo {
	return scenes
}

// Create builds the scene with the given ID
func Create(id string, opts Options) (*Scene, error) {
	info, ok := lo.Find(scenes, func(s SceneInfo) bool { return s.ID == id })
	if !ok {
		return nil, fmt.Errorf("unknown scene type '%s'", id)
	}
	if opts.Registry == nil || opts.Palette == nil {
		return nil, fmt.Errorf("scene '%s' needs a registry and a palette", id)
	}
	return info.create(opts)
}

// NewShowcaseScene places every registered model two blocks apart
func NewShowcaseScene(opts Options) (*Scene, error) {
	s := newScene(opts)
	names := opts.Registry.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("showcase scene needs at least one model")
	}
	cols := int(math.Ceil(math.Sqrt(float64(len(names)))))

	for i, name := range names {
		m, _ := opts.Registry.Lookup(name)
		s.Blocks.Add(2*(i%cols), 0, 2*(i/cols), m)
	}

	rows := (len(names) + cols - 1) / cols
	if err := s.addFloor(opts.Registry, -1, 2*cols-1, -1, 2*rows-1); err != nil {
		return nil, err
	}
	s.frame()
	return s, nil
}

// NewModelScene shows a single model
func NewModelScene(opts Options) (*Scene, error) {
	if opts.Model == "" {
		return nil, fmt.Errorf("model scene needs a model name")
	}
	m, err := lookup(opts.Registry, opts.Model)
	if err != nil {
		return nil, err
	}

	s := newScene(opts)
	s.Blocks.Add(0, 0, 0, m)
	if err := s.addFloor(opts.Registry, -1, 1, -1, 1); err != nil {
		return nil, err
	}
	s.frame()
	return s, nil
}

// NewBiomeScene lays out one column pair per biome: a grass block with short
// grass on top, and a water block behind it
func NewBiomeScene(opts Options) (*Scene, error) {
	s := newScene(opts)

	grass, err := lookup(opts.Registry, "grass_block")
	if err != nil {
		return nil, err
	}
	plant, err := lookup(opts.Registry, "short_grass")
	if err != nil {
		return nil, err
	}
	water, err := lookup(opts.Registry, "water")
	if err != nil {
		return nil, err
	}

	for id := 0; id < opts.Palette.Len(); id++ {
		s.Biomes.Set(id, 0, id)
		s.Biomes.Set(id, 1, id)
		s.Blocks.Add(id, 0, 0, grass)
		s.Blocks.Add(id, 1, 0, plant)
		s.Blocks.Add(id, 0, 1, water)
	}
	s.frame()
	return s, nil
}
