package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"cross anticommutes", NewVec3(0, 1, 0).Cross(NewVec3(1, 0, 0)), NewVec3(0, 0, -1)},
		{"floor", NewVec3(1.5, -0.25, 3).Floor(), NewVec3(1, -1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)
	if dot := v.Dot(NewVec3(1, 1, 1)); dot != 19 {
		t.Errorf("Expected dot 19, got %f", dot)
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"axis", NewVec3(0, 0, -5), NewVec3(0, 0, -1)},
		{"diagonal", NewVec3(1, 0, 1), NewVec3(1/math.Sqrt2, 0, 1/math.Sqrt2)},
		{"zero vector stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if !result.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_ApproxEqual(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if !v.ApproxEqual(NewVec3(1+1e-10, 2, 3-1e-10), 1e-9) {
		t.Error("Expected vectors within tolerance to be equal")
	}
	if v.ApproxEqual(NewVec3(1, 2.1, 3), 1e-9) {
		t.Error("Expected vectors outside tolerance to differ")
	}
}

func TestRay(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	if p := ray.At(1.5); p != NewVec3(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", p)
	}

	moved := ray.Translate(NewVec3(-1, 1, 2))
	if moved.Origin != NewVec3(0, 1, 2) {
		t.Errorf("Expected origin (0,1,2), got %v", moved.Origin)
	}
	if moved.Direction != ray.Direction {
		t.Errorf("Expected direction to be unchanged, got %v", moved.Direction)
	}
}
