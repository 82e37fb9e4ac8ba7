// Package scene builds the preview scenes rendered by the command line tool.
package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-block-raytracer/pkg/biome"
	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/renderer"
)

// Scene contains the placed blocks and the camera that frames them
type Scene struct {
	Blocks       *renderer.Scene
	CameraConfig renderer.CameraConfig
	Biomes       *biome.Map
}

// Options are the inputs shared by every scene constructor
type Options struct {
	Registry *model.Registry
	Palette  *biome.Palette
	Biome    int    // Biome of columns the scene does not assign
	Model    string // Model shown by the model scene
}

func newScene(opts Options) *Scene {
	biomes := biome.NewMap(opts.Palette, opts.Biome)
	return &Scene{Blocks: renderer.NewScene(biomes), Biomes: biomes}
}

func lookup(registry *model.Registry, name string) (model.BlockModel, error) {
	m, ok := registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown model '%s'", name)
	}
	return m, nil
}

// addFloor lays a grass floor one block below y=0 over [x0,x1]x[z0,z1]
func (s *Scene) addFloor(registry *model.Registry, x0, x1, z0, z1 int) error {
	grass, err := lookup(registry, "grass_block")
	if err != nil {
		return err
	}
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			s.Blocks.Add(x, -1, z, grass)
		}
	}
	return nil
}

// frame points the camera at the scene from the south-east and above,
// far enough back to fit the bounds in a 40 degree field of view
func (s *Scene) frame() {
	bounds := s.Blocks.Bounds()
	center := bounds.Center()
	radius := bounds.Size().Length() / 2
	vfov := 40.0
	distance := 1.1 * radius / math.Sin(vfov*math.Pi/360)

	direction := core.NewVec3(0.8, 0.9, 1).Normalize()
	s.CameraConfig = renderer.CameraConfig{
		Center: center.Add(direction.Multiply(distance)),
		LookAt: center,
		Up:     core.NewVec3(0, 1, 0),
		VFov:   vfov,
	}
}
