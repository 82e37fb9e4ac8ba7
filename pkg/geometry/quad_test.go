package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// upQuad is a unit quad in the plane y=0 facing +Y
func upQuad() Quad {
	// U along +Z, V along +X, so U × V points up
	return NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), FullUV)
}

func TestQuad_Hit_BasicIntersection(t *testing.T) {
	quad := upQuad()
	if quad.Normal != core.NewVec3(0, 1, 0) {
		t.Fatalf("Expected normal (0,1,0), got %v", quad.Normal)
	}

	// Ray shooting down at the center of the quad
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.25), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Intersect(ray, -core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	// alpha runs along U (+Z), beta along V (+X)
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected uv (0.25,0.5), got %v", hit.UV)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
	if quad.Face(hit) != Top {
		t.Errorf("Expected slot top, got %v", quad.Face(hit))
	}
}

func TestQuad_Hit_OutsideBounds(t *testing.T) {
	quad := upQuad()

	tests := []struct {
		name      string
		rayOrigin core.Vec3
	}{
		{"outside X bounds (negative)", core.NewVec3(-0.5, 1, 0.5)},
		{"outside X bounds (positive)", core.NewVec3(1.5, 1, 0.5)},
		{"outside Z bounds (negative)", core.NewVec3(0.5, 1, -0.5)},
		{"outside Z bounds (positive)", core.NewVec3(0.5, 1, 1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, core.NewVec3(0, -1, 0))
			if _, isHit := quad.Intersect(ray, -core.Epsilon, math.Inf(1)); isHit {
				t.Error("Expected miss, but got hit")
			}
		})
	}
}

func TestQuad_Hit_RejectionCases(t *testing.T) {
	quad := upQuad()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		tMax      float64
	}{
		{"parallel to plane", core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0), math.Inf(1)},
		{"plane behind ray", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, 1, 0), math.Inf(1)},
		{"back side of single-sided quad", core.NewVec3(0.5, -1, 0.5), core.NewVec3(0, 1, 0), math.Inf(1)},
		{"farther than tMax", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			if hit, isHit := quad.Intersect(ray, -core.Epsilon, tt.tMax); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestQuad_DoubleSided(t *testing.T) {
	quad := NewDoubleSidedQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), FullUV)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedNormal core.Vec3
	}{
		{"front side", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"back side", core.NewVec3(0.5, -1, 0.5), core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Intersect(core.NewRay(tt.origin, tt.direction), -core.Epsilon, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.direction) >= 0 {
				t.Error("Expected normal to oppose the ray direction")
			}
		})
	}
}

func TestQuad_UVRect(t *testing.T) {
	uv := NewUVRectPixels(4, 12, 0, 8)
	quad := NewQuad(core.NewVec3(0, 0, 0.5), core.NewVec3(1, 0, 0.5), core.NewVec3(0, 1, 0.5), uv)

	// U × V = X × Y = +Z, so the quad is seen from +Z
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 2), core.NewVec3(0, 0, -1))
	hit, isHit := quad.Intersect(ray, -core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expected := core.NewVec2(0.5, 0.25)
	if math.Abs(hit.UV.X-expected.X) > 1e-9 || math.Abs(hit.UV.Y-expected.Y) > 1e-9 {
		t.Errorf("Expected uv %v, got %v", expected, hit.UV)
	}
	if quad.Slot != South {
		t.Errorf("Expected default slot south, got %v", quad.Slot)
	}
}

func TestQuad_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		quad Quad
	}{
		{
			name: "colinear edges",
			quad: NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), FullUV),
		},
		{
			name: "zero-length edge",
			quad: NewDoubleSidedQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), FullUV),
		},
	}

	directions := []core.Vec3{
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.quad.Degenerate() {
				t.Error("Expected quad to be degenerate")
			}
			for _, dir := range directions {
				origin := core.NewVec3(0.5, 0.5, 0.5).Subtract(dir)
				if _, isHit := tt.quad.Intersect(core.NewRay(origin, dir), -core.Epsilon, math.Inf(1)); isHit {
					t.Errorf("Expected degenerate quad to reject direction %v", dir)
				}
			}
		})
	}
}

func TestQuad_WithSlot(t *testing.T) {
	quad := upQuad().WithSlot(North)
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Intersect(ray, -core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if quad.Face(hit) != North {
		t.Errorf("Expected authored slot north, got %v", quad.Face(hit))
	}
}

func TestQuad_Bounds(t *testing.T) {
	quad := upQuad()
	bounds := quad.Bounds()
	if bounds.Min != core.NewVec3(0, 0, 0) || bounds.Max != core.NewVec3(1, 0, 1) {
		t.Errorf("Expected bounds (0,0,0)-(1,0,1), got %v-%v", bounds.Min, bounds.Max)
	}
}
