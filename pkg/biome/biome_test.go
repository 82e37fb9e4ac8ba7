package biome

import (
	"math"
	"testing"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/tint"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	if p.Len() != 23 {
		t.Errorf("Expected 23 biomes, got %d", p.Len())
	}

	plains := p.Lookup(1)
	if plains.Name != "plains" {
		t.Errorf("Expected plains, got %s", plains.Name)
	}
	// 0x8d = 141 in sRGB is about 0.266 linear
	if math.Abs(plains.Grass.R-0.266) > 0.002 || plains.Grass.A != 1 {
		t.Errorf("Expected linear grass red near 0.266, got %v", plains.Grass)
	}
	if plains.Foliage != plains.Grass {
		t.Errorf("Expected foliage to share the grass color, got %v", plains.Foliage)
	}

	for _, id := range []int{-1, 23, 255} {
		if b := p.Lookup(id); b.Name != "unknown" {
			t.Errorf("Lookup(%d): expected unknown biome, got %s", id, b.Name)
		}
	}
}

func TestPalette_Find(t *testing.T) {
	p := DefaultPalette()

	swamp, ok := p.Find("swampland")
	if !ok {
		t.Fatal("Expected to find swampland")
	}
	if swamp.ID != 6 {
		t.Errorf("Expected swampland ID 6, got %d", swamp.ID)
	}
	if swamp.Water == p.Lookup(0).Water {
		t.Error("Expected swamp water to differ from ocean water")
	}

	if _, ok := p.Find("nether_wastes"); ok {
		t.Error("Expected unknown name lookup to fail")
	}
	if names := p.Names(); names[0] != "ocean" || names[len(names)-1] != "jungle_hills" {
		t.Errorf("Expected names in ID order, got %v", names)
	}
}

func TestBiome_Color(t *testing.T) {
	b := DefaultPalette().Lookup(4)

	tests := []struct {
		kind     tint.Kind
		expected core.Color
	}{
		{tint.BiomeGrass, b.Grass},
		{tint.BiomeFoliage, b.Foliage},
		{tint.BiomeWater, b.Water},
		{tint.None, core.White},
		{tint.Constant, core.White},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := b.Color(tt.kind); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMap_BiomeColor(t *testing.T) {
	p := DefaultPalette()
	m := NewMap(p, 1)
	m.Set(3, -2, 21)

	var _ tint.BiomeSource = m

	tests := []struct {
		name     string
		pos      core.Vec3
		expected core.Color
	}{
		{"default column", core.NewVec3(0.5, 64, 0.5), p.Lookup(1).Grass},
		{"assigned column", core.NewVec3(3.5, 70, -1.5), p.Lookup(21).Grass},
		{"assigned column lower corner", core.NewVec3(3, 0, -2), p.Lookup(21).Grass},
		{"neighbouring column", core.NewVec3(4, 0, -2), p.Lookup(1).Grass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.BiomeColor(tint.BiomeGrass, tt.pos); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMap_TintIntegration(t *testing.T) {
	p := DefaultPalette()
	m := NewMap(p, 6)

	base := core.NewColor(1, 1, 1, 0.75)
	got := tint.Water.Apply(base, core.NewVec3(0, 0, 0), m)
	expected := p.Lookup(6).Water.WithAlpha(0.75)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
