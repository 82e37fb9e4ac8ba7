package geometry

import (
	"math"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// Box is an axis-aligned box given by six scalar bounds, in block space
// (a full block spans [0,1] on every axis)
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// NewBox creates a box from its bounds, given as min/max pairs per axis
func NewBox(xmin, xmax, ymin, ymax, zmin, zmax float64) Box {
	return Box{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		ZMin: zmin, ZMax: zmax,
	}
}

// NewBoxFromCorners creates the box spanned by two opposite corners
func NewBoxFromCorners(a, b core.Vec3) Box {
	return NewBox(
		math.Min(a.X, b.X), math.Max(a.X, b.X),
		math.Min(a.Y, b.Y), math.Max(a.Y, b.Y),
		math.Min(a.Z, b.Z), math.Max(a.Z, b.Z),
	)
}

// NewBoxPixels creates a box from bounds given in sixteenths of a block
func NewBoxPixels(xmin, xmax, ymin, ymax, zmin, zmax float64) Box {
	return NewBox(xmin/16, xmax/16, ymin/16, ymax/16, zmin/16, zmax/16)
}

// Min returns the minimum corner
func (b Box) Min() core.Vec3 {
	return core.NewVec3(b.XMin, b.YMin, b.ZMin)
}

// Max returns the maximum corner
func (b Box) Max() core.Vec3 {
	return core.NewVec3(b.XMax, b.YMax, b.ZMax)
}

// Bounds returns the box as an AABB
func (b Box) Bounds() core.AABB {
	return core.NewAABB(b.Min(), b.Max())
}

// Face maps a hit to the face whose outward normal it carries
func (b Box) Face(hit Hit) Face {
	face, _ := FaceFromNormal(hit.Normal)
	return face
}

// slabFace records the plane a ray crosses on one slab
type slabFace struct {
	t    float64
	face Face
}

// Intersect tests the ray against the box with the slab method. The hit is on
// the face the ray enters through, or on the exit face when the ray starts
// inside the box. The reported normal is the outward normal of that face.
func (b Box) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	bmin := [3]float64{b.XMin, b.YMin, b.ZMin}
	bmax := [3]float64{b.XMax, b.YMax, b.ZMax}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	minFace := [3]Face{West, Bottom, North}
	maxFace := [3]Face{East, Top, South}

	near := slabFace{t: math.Inf(-1)}
	far := slabFace{t: math.Inf(1)}
	crossed := false

	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			// Parallel to this slab: the origin must already be between the planes
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return Hit{}, false
			}
			continue
		}
		crossed = true

		invDirection := 1.0 / direction[axis]
		enter := slabFace{t: (bmin[axis] - origin[axis]) * invDirection, face: minFace[axis]}
		exit := slabFace{t: (bmax[axis] - origin[axis]) * invDirection, face: maxFace[axis]}
		if direction[axis] < 0 {
			enter, exit = exit, enter
		}

		if enter.t > near.t {
			near = enter
		}
		if exit.t < far.t {
			far = exit
		}
		if near.t > far.t {
			return Hit{}, false
		}
	}

	if !crossed {
		return Hit{}, false
	}

	var chosen slabFace
	switch {
	case near.t > tMin && near.t < tMax:
		chosen = near
	case far.t > tMin && far.t < tMax:
		chosen = far
	default:
		return Hit{}, false
	}

	return Hit{
		T:      chosen.t,
		UV:     boxFaceUV(chosen.face, ray.At(chosen.t)),
		Normal: chosen.face.Normal(),
	}, true
}

// boxFaceUV projects a point on a box face to block-space texture coordinates
func boxFaceUV(face Face, p core.Vec3) core.Vec2 {
	switch face {
	case West:
		return core.NewVec2(p.Z, p.Y)
	case East:
		return core.NewVec2(1-p.Z, p.Y)
	case Bottom:
		return core.NewVec2(p.X, p.Z)
	case Top:
		return core.NewVec2(p.X, 1-p.Z)
	case North:
		return core.NewVec2(1-p.X, p.Y)
	default: // South
		return core.NewVec2(p.X, p.Y)
	}
}
