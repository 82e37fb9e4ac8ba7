package geometry

import "github.com/df07/go-block-raytracer/pkg/core"

// Hit is the result of a successful primitive intersection
type Hit struct {
	T      float64   // Parameter t along the ray
	UV     core.Vec2 // Texture coordinates at the hit
	Normal core.Vec3 // Surface normal at the hit
}

// Primitive is an immutable shape that can be tested against a ray.
// Primitives are built once and shared read-only by all render workers.
type Primitive interface {
	// Intersect reports the nearest hit with tMin < t < tMax
	Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool)
	// Face maps a hit on this primitive to a canonical face
	Face(hit Hit) Face
	// Bounds returns the axis-aligned bounding box of the primitive
	Bounds() core.AABB
}
