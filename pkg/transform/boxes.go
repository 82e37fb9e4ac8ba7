package transform

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
)

// Boxes only support transforms that keep them axis aligned: quarter turns,
// translations and scales.
func applyBoxes(boxes []geometry.Box, m mgl64.Mat4) []geometry.Box {
	return lo.Map(boxes, func(b geometry.Box, _ int) geometry.Box {
		return geometry.NewBoxFromCorners(transformPoint(m, b.Min()), transformPoint(m, b.Max()))
	})
}

// BoxesRotateX rotates boxes 90 degrees about the X axis through the block centre
func BoxesRotateX(boxes []geometry.Box) []geometry.Box { return applyBoxes(boxes, rotX) }

// BoxesRotateY rotates boxes 90 degrees about the Y axis, carrying north to east
func BoxesRotateY(boxes []geometry.Box) []geometry.Box { return applyBoxes(boxes, rotY) }

// BoxesRotateZ rotates boxes 90 degrees about the Z axis through the block centre
func BoxesRotateZ(boxes []geometry.Box) []geometry.Box { return applyBoxes(boxes, rotZ) }

// BoxesTranslate moves boxes by offset
func BoxesTranslate(boxes []geometry.Box, offset core.Vec3) []geometry.Box {
	return applyBoxes(boxes, mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// BoxesScale scales boxes uniformly about the block centre
func BoxesScale(boxes []geometry.Box, s float64) []geometry.Box {
	return applyBoxes(boxes, about(mgl64.Scale3D(s, s, s), center))
}

// BoxesRotateYNESW returns the boxes facing north, east, south and west
func BoxesRotateYNESW(boxes []geometry.Box) [4][]geometry.Box {
	var out [4][]geometry.Box
	out[0] = applyBoxes(boxes, mgl64.Ident4())
	for i := 1; i < 4; i++ {
		out[i] = BoxesRotateY(out[i-1])
	}
	return out
}

// FaceRotateY returns the face that f becomes after turns quarter turns by
// RotateY. Side faces cycle north, east, south, west; top and bottom stay.
// Negative turns rotate the other way.
func FaceRotateY(f geometry.Face, turns int) geometry.Face {
	sides := [4]geometry.Face{geometry.North, geometry.East, geometry.South, geometry.West}
	for i, side := range sides {
		if side == f {
			return sides[((i+turns)%4+4)%4]
		}
	}
	return f
}
