package model

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/uvmap"
)

// sample traces a ray against m and returns the committed color
func sample(t *testing.T, m *Model, origin, direction core.Vec3) core.Color {
	t.Helper()
	state := core.NewRayState(core.NewRay(origin, direction))
	if !m.Intersect(state, nil) {
		t.Fatalf("Expected hit from %v along %v, got miss", origin, direction)
	}
	return state.Color
}

func colorsClose(a, b core.Color) bool {
	return math.Abs(a.R-b.R) < 1e-9 && math.Abs(a.G-b.G) < 1e-9 && math.Abs(a.B-b.B) < 1e-9 && math.Abs(a.A-b.A) < 1e-9
}

func TestNewOrientedBoxModels_SidesTravelWithGeometry(t *testing.T) {
	var textures [geometry.NumFaces]texture.Sampler
	textures[geometry.North] = texture.NewSolid(red)
	textures[geometry.East] = texture.NewSolid(green)
	textures[geometry.South] = texture.NewSolid(blue)
	textures[geometry.West] = texture.NewSolid(core.Opaque(1, 1, 0))
	textures[geometry.Top] = texture.NewSolid(core.Opaque(1, 1, 1))
	textures[geometry.Bottom] = texture.NewSolid(core.Opaque(0, 0, 0))

	// Half-depth slab against the north edge of the block
	variants, err := NewOrientedBoxModels(
		[]geometry.Box{geometry.NewBox(0, 1, 0, 1, 0, 0.5)},
		BoxAttributes{Textures: [][geometry.NumFaces]texture.Sampler{textures}},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The face that was authored north must face the variant's direction
	outward := []struct {
		origin    core.Vec3
		direction core.Vec3
	}{
		{core.NewVec3(0.5, 0.5, -2), core.NewVec3(0, 0, 1)},  // north
		{core.NewVec3(3, 0.5, 0.5), core.NewVec3(-1, 0, 0)},  // east
		{core.NewVec3(0.5, 0.5, 3), core.NewVec3(0, 0, -1)},  // south
		{core.NewVec3(-2, 0.5, 0.5), core.NewVec3(1, 0, 0)},  // west
	}

	for i, ray := range outward {
		if got := sample(t, variants[i], ray.origin, ray.direction); got != red {
			t.Errorf("Variant %d: expected authored north face %v, got %v", i, red, got)
		}
	}

	// Top stays on top
	for i := range variants {
		if got := sample(t, variants[i], core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0)); got != core.Opaque(1, 1, 1) {
			t.Errorf("Variant %d: expected top texture, got %v", i, got)
		}
	}
}

func TestNewOrientedBoxModels_TexturesStayAttached(t *testing.T) {
	faces := UniformFaces[texture.Sampler](uvSampler{})
	mappings := UniformFaces(uvmap.None)
	mappings[geometry.Top] = uvmap.Rotate180
	mappings[geometry.Bottom] = uvmap.Rotate90

	variants, err := NewOrientedBoxModels(
		[]geometry.Box{geometry.NewBox(0, 1, 0, 1, 0, 0.5)},
		BoxAttributes{
			Textures:   [][geometry.NumFaces]texture.Sampler{faces},
			UVMappings: [][geometry.NumFaces]uvmap.Mapping{mappings},
		},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// rotate applies one RotateY quarter turn to a point: (x, z) -> (1-z, x)
	rotate := func(p core.Vec3) core.Vec3 { return core.NewVec3(1-p.Z, p.Y, p.X) }
	rotateDir := func(d core.Vec3) core.Vec3 { return core.NewVec3(-d.Z, d.Y, d.X) }

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"top", core.NewVec3(0.25, 5, 0.125), core.NewVec3(0, -1, 0)},
		{"bottom", core.NewVec3(0.25, -5, 0.125), core.NewVec3(0, 1, 0)},
		{"north", core.NewVec3(0.25, 0.75, -5), core.NewVec3(0, 0, 1)},
		{"south", core.NewVec3(0.75, 0.25, 5), core.NewVec3(0, 0, -1)},
		{"west", core.NewVec3(-5, 0.75, 0.375), core.NewVec3(1, 0, 0)},
		{"east", core.NewVec3(5, 0.25, 0.125), core.NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := sample(t, variants[0], tt.origin, tt.direction)
			origin, direction := tt.origin, tt.direction
			for turn := 1; turn < 4; turn++ {
				origin, direction = rotate(origin), rotateDir(direction)
				if got := sample(t, variants[turn], origin, direction); !colorsClose(got, want) {
					t.Errorf("Turn %d: expected %v, got %v", turn, want, got)
				}
			}
		})
	}
}

func TestNewOrientedBoxModels_UnrepresentableMapping(t *testing.T) {
	faces := UniformFaces[texture.Sampler](texture.NewSolid(red))
	mappings := UniformFaces(uvmap.None)
	mappings[geometry.Top] = uvmap.FlipU

	_, err := NewOrientedBoxModels(
		[]geometry.Box{geometry.NewBox(0, 1, 0, 1, 0, 1)},
		BoxAttributes{
			Textures:   [][geometry.NumFaces]texture.Sampler{faces},
			UVMappings: [][geometry.NumFaces]uvmap.Mapping{mappings},
		},
	)
	if err == nil {
		t.Error("Expected error for a flipped top face")
	}
}

func TestNewOrientedBoxModels_AttributeMismatch(t *testing.T) {
	if _, err := NewOrientedBoxModels([]geometry.Box{geometry.NewBox(0, 1, 0, 1, 0, 1)}, BoxAttributes{}); err == nil {
		t.Error("Expected error for missing textures")
	}
}

// sphereish is a primitive the orientation helpers know nothing about
type sphereish struct{ geometry.Box }

func TestNewOrientedModels_Quads(t *testing.T) {
	// Quad covering the north face of the block, seen from -Z
	quad := geometry.NewQuad(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), geometry.FullUV)
	north := MustQuadModel([]geometry.Quad{quad}, QuadAttributes{Textures: []texture.Sampler{uvSampler{}}})

	variants, err := NewOrientedModels(north)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if variants[0] != north {
		t.Error("Expected the north variant to be the input model")
	}

	rotate := func(p core.Vec3) core.Vec3 { return core.NewVec3(1-p.Z, p.Y, p.X) }
	rotateDir := func(d core.Vec3) core.Vec3 { return core.NewVec3(-d.Z, d.Y, d.X) }

	origin, direction := core.NewVec3(0.25, 0.75, -5), core.NewVec3(0, 0, 1)
	want := sample(t, north, origin, direction)
	for turn := 1; turn < 4; turn++ {
		origin, direction = rotate(origin), rotateDir(direction)
		if got := sample(t, variants[turn], origin, direction); !colorsClose(got, want) {
			t.Errorf("Turn %d: expected %v, got %v", turn, want, got)
		}

		q := variants[turn].Parts()[0].Primitive.(geometry.Quad)
		if !variants[turn].Parts()[0].Faces[q.Slot].Present() {
			t.Errorf("Turn %d: expected surface on slot %v", turn, q.Slot)
		}
	}

	if slot := variants[1].Parts()[0].Primitive.(geometry.Quad).Slot; slot != geometry.East {
		t.Errorf("Expected east slot after one turn, got %v", slot)
	}
}

func TestNewOrientedModels_UnsupportedPrimitive(t *testing.T) {
	m := New(Part{Primitive: sphereish{geometry.NewBox(0, 1, 0, 1, 0, 1)}})
	if _, err := NewOrientedModels(m); !errors.Is(err, ErrUnsupportedPrimitive) {
		t.Errorf("Expected ErrUnsupportedPrimitive, got %v", err)
	}
}
