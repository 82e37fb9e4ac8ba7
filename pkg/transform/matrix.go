// Package transform builds rotated, translated and scaled copies of primitive
// arrays. Every function returns a new slice and leaves its input untouched.
//
// Quarter turns follow the block-space convention where RotateY carries the
// north face to the east face, i.e. (x, z) -> (1-z, x).
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// center is the block centre all rotations and scales are taken about
var center = core.NewVec3(0.5, 0.5, 0.5)

// snapTolerance is how close a matrix entry must be to an integer to be snapped
const snapTolerance = 1e-9

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// about conjugates m so that it acts around pivot instead of the origin
func about(m mgl64.Mat4, pivot core.Vec3) mgl64.Mat4 {
	to := mgl64.Translate3D(pivot.X, pivot.Y, pivot.Z)
	from := mgl64.Translate3D(-pivot.X, -pivot.Y, -pivot.Z)
	return to.Mul4(m).Mul4(from)
}

// snap rounds entries that are within tolerance of an integer, making quarter
// turns exact
func snap(m mgl64.Mat4) mgl64.Mat4 {
	for i := range m {
		if r := math.Round(m[i]); math.Abs(m[i]-r) < snapTolerance {
			m[i] = r
		}
	}
	return m
}

// quarterTurn is a rotation by ±90° about an axis through the block centre
func quarterTurn(rotate func(angle float64) mgl64.Mat4, angle float64) mgl64.Mat4 {
	return snap(about(rotate(angle), center))
}

// Quarter turn matrices. The signs reproduce the block-space convention:
// RotateX maps (y, z) -> (1-z, y), RotateY maps (x, z) -> (1-z, x) and
// RotateZ maps (x, y) -> (1-y, x).
var (
	rotX    = quarterTurn(mgl64.HomogRotate3DX, math.Pi/2)
	rotNegX = quarterTurn(mgl64.HomogRotate3DX, -math.Pi/2)
	rotY    = quarterTurn(mgl64.HomogRotate3DY, -math.Pi/2)
	rotNegY = quarterTurn(mgl64.HomogRotate3DY, math.Pi/2)
	rotZ    = quarterTurn(mgl64.HomogRotate3DZ, math.Pi/2)
	rotNegZ = quarterTurn(mgl64.HomogRotate3DZ, -math.Pi/2)
	mirrorX = about(mgl64.Scale3D(-1, 1, 1), center)
)

func transformPoint(m mgl64.Mat4, p core.Vec3) core.Vec3 {
	return fromMgl(m.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

func transformDirection(m mgl64.Mat4, d core.Vec3) core.Vec3 {
	return fromMgl(m.Mul4x1(toMgl(d).Vec4(0)).Vec3())
}

// reflects reports whether m flips handedness
func reflects(m mgl64.Mat4) bool {
	return m.Mat3().Det() < 0
}
