package transform

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
)

// Apply transforms every quad by the affine matrix m. The authored face slot
// follows the transformed slot normal, and texture coordinates stay attached
// to the same points of the surface.
func Apply(quads []geometry.Quad, m mgl64.Mat4) []geometry.Quad {
	return lo.Map(quads, func(q geometry.Quad, _ int) geometry.Quad {
		return applyQuad(q, m)
	})
}

func applyQuad(q geometry.Quad, m mgl64.Mat4) geometry.Quad {
	v0 := transformPoint(m, q.Corner)
	v1 := transformPoint(m, q.Corner.Add(q.U))
	v2 := transformPoint(m, q.Corner.Add(q.V))
	uv := q.UV

	// A reflection reverses the winding; start the U edge from the other end
	// so the normal keeps pointing out of the surface
	if reflects(m) {
		v0, v1, v2 = v1, v0, v1.Add(v2.Subtract(v0))
		uv.U0, uv.U1 = uv.U1, uv.U0
	}

	var out geometry.Quad
	if q.DoubleSided {
		out = geometry.NewDoubleSidedQuad(v0, v1, v2, uv)
	} else {
		out = geometry.NewQuad(v0, v1, v2, uv)
	}

	if slot, ok := geometry.FaceFromNormal(transformDirection(m, q.Slot.Normal())); ok {
		out.Slot = slot
	}
	return out
}

// RotateX rotates quads 90 degrees about the X axis through the block centre
func RotateX(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotX) }

// RotateNegX rotates quads 90 degrees about the negative X axis
func RotateNegX(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotNegX) }

// RotateY rotates quads 90 degrees about the Y axis, carrying north to east
func RotateY(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotY) }

// RotateNegY rotates quads 90 degrees about the negative Y axis, carrying north to west
func RotateNegY(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotNegY) }

// RotateZ rotates quads 90 degrees about the Z axis
func RotateZ(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotZ) }

// RotateNegZ rotates quads 90 degrees about the negative Z axis
func RotateNegZ(quads []geometry.Quad) []geometry.Quad { return Apply(quads, rotNegZ) }

// RotateXAngle rotates quads by angle radians about the X axis through the block centre
func RotateXAngle(quads []geometry.Quad, angle float64) []geometry.Quad {
	return RotateXAbout(quads, angle, center)
}

// RotateYAngle rotates quads by angle radians about the Y axis through the block centre
func RotateYAngle(quads []geometry.Quad, angle float64) []geometry.Quad {
	return RotateYAbout(quads, angle, center)
}

// RotateZAngle rotates quads by angle radians about the Z axis through the block centre
func RotateZAngle(quads []geometry.Quad, angle float64) []geometry.Quad {
	return RotateZAbout(quads, angle, center)
}

// RotateXAbout rotates quads by angle radians about an X-parallel axis through pivot.
// pivot is in block coordinates.
func RotateXAbout(quads []geometry.Quad, angle float64, pivot core.Vec3) []geometry.Quad {
	return Apply(quads, about(mgl64.HomogRotate3DX(angle), pivot))
}

// RotateYAbout rotates quads by angle radians about a Y-parallel axis through pivot
func RotateYAbout(quads []geometry.Quad, angle float64, pivot core.Vec3) []geometry.Quad {
	return Apply(quads, about(mgl64.HomogRotate3DY(angle), pivot))
}

// RotateZAbout rotates quads by angle radians about a Z-parallel axis through pivot
func RotateZAbout(quads []geometry.Quad, angle float64, pivot core.Vec3) []geometry.Quad {
	return Apply(quads, about(mgl64.HomogRotate3DZ(angle), pivot))
}

// Translate moves quads by offset
func Translate(quads []geometry.Quad, offset core.Vec3) []geometry.Quad {
	return Apply(quads, mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// Scale scales quads uniformly about the block centre
func Scale(quads []geometry.Quad, s float64) []geometry.Quad {
	return Apply(quads, about(mgl64.Scale3D(s, s, s), center))
}

// MirrorX reflects quads in the plane x = 0.5, swapping east and west
func MirrorX(quads []geometry.Quad) []geometry.Quad { return Apply(quads, mirrorX) }

// Join concatenates quad arrays in order
func Join(groups ...[]geometry.Quad) []geometry.Quad {
	return lo.Flatten(groups)
}

// RotateYNESW returns the quads facing north, east, south and west, in that
// order. The input is taken to face north.
func RotateYNESW(quads []geometry.Quad) [4][]geometry.Quad {
	var out [4][]geometry.Quad
	out[0] = Apply(quads, mgl64.Ident4())
	for i := 1; i < 4; i++ {
		out[i] = RotateY(out[i-1])
	}
	return out
}
