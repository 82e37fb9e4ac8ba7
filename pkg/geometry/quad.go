package geometry

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// UVRect is the texture-space rectangle a quad maps onto
type UVRect struct {
	U0, U1 float64 // Texture u at the start and end of the quad's U edge
	V0, V1 float64 // Texture v at the start and end of the quad's V edge
}

// FullUV maps a quad onto the whole texture
var FullUV = UVRect{U0: 0, U1: 1, V0: 0, V1: 1}

// NewUVRect creates a UV rectangle from texture coordinates in [0,1]
func NewUVRect(u0, u1, v0, v1 float64) UVRect {
	return UVRect{U0: u0, U1: u1, V0: v0, V1: v1}
}

// NewUVRectPixels creates a UV rectangle from coordinates in sixteenths
func NewUVRectPixels(u0, u1, v0, v1 float64) UVRect {
	return UVRect{U0: u0 / 16, U1: u1 / 16, V0: v0 / 16, V1: v1 / 16}
}

// At maps parametric quad coordinates to texture coordinates
func (r UVRect) At(alpha, beta float64) core.Vec2 {
	return core.NewVec2(r.U0+alpha*(r.U1-r.U0), r.V0+beta*(r.V1-r.V0))
}

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner      core.Vec3 // One corner of the quad
	U           core.Vec3 // First edge vector
	V           core.Vec3 // Second edge vector
	Normal      core.Vec3 // Normal vector (computed from U × V)
	D           float64   // Plane equation constant: normal · p = D
	W           core.Vec3 // Cached vector for barycentric coordinates
	UV          UVRect    // Texture rectangle
	DoubleSided bool      // Whether the back side is also visible
	Slot        Face      // Face slot the quad was authored for
}

// NewQuad creates a quad from three corners: v0 is the shared corner, v1 ends
// the U edge and v2 ends the V edge. The fourth corner is v1 + v2 - v0. The
// quad faces along (v1 - v0) × (v2 - v0) and is only visible from that side.
func NewQuad(v0, v1, v2 core.Vec3, uv UVRect) Quad {
	u := v1.Subtract(v0)
	v := v2.Subtract(v0)

	// Calculate normal from cross product of edge vectors
	cross := u.Cross(v)
	normal := cross.Normalize()

	// w = normal / (normal · (u × v)); stays zero for degenerate quads
	var w core.Vec3
	if denom := normal.Dot(cross); denom != 0 {
		w = normal.Multiply(1.0 / denom)
	}

	slot, ok := FaceFromNormal(normal)
	if !ok {
		slot = North
	}

	return Quad{
		Corner: v0,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(v0),
		W:      w,
		UV:     uv,
		Slot:   slot,
	}
}

// NewDoubleSidedQuad creates a quad that is visible from both sides
func NewDoubleSidedQuad(v0, v1, v2 core.Vec3, uv UVRect) Quad {
	q := NewQuad(v0, v1, v2, uv)
	q.DoubleSided = true
	return q
}

// WithSlot returns a copy of the quad assigned to the given face slot
func (q Quad) WithSlot(face Face) Quad {
	q.Slot = face
	return q
}

// Degenerate reports whether the edges are zero-length or colinear
func (q Quad) Degenerate() bool {
	return q.Normal.LengthSquared() == 0
}

// Corners returns the four corners in winding order
func (q Quad) Corners() [4]core.Vec3 {
	return [4]core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.U).Add(q.V),
		q.Corner.Add(q.V),
	}
}

// Bounds returns the bounding box of the four corners
func (q Quad) Bounds() core.AABB {
	c := q.Corners()
	return core.NewAABBFromPoints(c[0], c[1], c[2], c[3])
}

// Face returns the slot the quad was authored for
func (q Quad) Face(hit Hit) Face {
	return q.Slot
}

// Intersect tests the ray against the quad. Rays parallel to the plane, hits
// outside (tMin, tMax) and hits outside the parallelogram are rejected. A
// single-sided quad also rejects rays reaching its back side; a double-sided
// quad reports the normal facing the incoming ray.
func (q Quad) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	if q.DoubleSided {
		if math.Abs(denominator) < core.Epsilon {
			return Hit{}, false
		}
	} else if denominator > -core.Epsilon {
		return Hit{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= tMin || t >= tMax {
		return Hit{}, false
	}

	// Barycentric coordinates of the hit point relative to the corner
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Hit{}, false
	}

	normal := q.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}

	return Hit{
		T:      t,
		UV:     q.UV.At(alpha, beta),
		Normal: normal,
	}, true
}
