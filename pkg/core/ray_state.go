package core

import "math"

const (
	// Epsilon is the tolerance used for plane distances and alpha testing
	Epsilon = 0.000005
	// Offset is the distance a ray is nudged along its direction to leave a surface
	Offset = 0.0001
)

// RayState is the mutable hit state of one in-flight ray. It is owned by a
// single goroutine and is never shared between render workers.
//
// Between Reset and the end of a model intersection, T only decreases and
// UV, Normal and Color are only written together with T.
type RayState struct {
	Ray      Ray
	T        float64 // Nearest committed hit distance, +Inf when nothing is committed
	UV       Vec2    // Texture coordinates of the committed hit
	Normal   Vec3    // Surface normal of the committed hit
	Color    Color   // Color of the committed hit
	Distance float64 // Cumulative distance traveled

	// OpaqueMaterial forces the committed alpha to 1
	OpaqueMaterial bool

	// Offset translates positions in the ray's frame to world space. It is only
	// used to report world positions to biome lookups.
	Offset Vec3
}

// NewRayState creates a ray state ready for a model intersection pass
func NewRayState(ray Ray) *RayState {
	return &RayState{Ray: ray, T: math.Inf(1)}
}

// Reset clears the committed distance before a model intersection pass
func (s *RayState) Reset() {
	s.T = math.Inf(1)
}

// HasHit reports whether a finite hit distance is committed
func (s *RayState) HasHit() bool {
	return !math.IsInf(s.T, 1)
}

// Advance moves the ray origin t units along its direction and accumulates
// the traveled distance
func (s *RayState) Advance(t float64) {
	s.Distance += t
	s.Ray.Origin = s.Ray.At(t)
}

// WorldPoint returns the world-space position at parameter t along the ray
func (s *RayState) WorldPoint(t float64) Vec3 {
	return s.Ray.At(t).Add(s.Offset)
}
