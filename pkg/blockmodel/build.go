package blockmodel

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/df07/go-block-raytracer/pkg/core"
	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
	"github.com/df07/go-block-raytracer/pkg/transform"
	"github.com/df07/go-block-raytracer/pkg/uvmap"
)

var (
	// ErrUnknownTexture is returned when a face names a texture the build
	// options cannot provide
	ErrUnknownTexture = errors.New("unknown texture")
	// ErrInvalidElement is returned for malformed element data
	ErrInvalidElement = errors.New("invalid element")
)

// TextureSource maps resolved texture names to samplers
type TextureSource interface {
	Texture(name string) (texture.Sampler, bool)
}

// TextureMap is a TextureSource backed by a map
type TextureMap map[string]texture.Sampler

// Texture implements TextureSource
func (m TextureMap) Texture(name string) (texture.Sampler, bool) {
	s, ok := m[name]
	return s, ok
}

// BuildOptions controls conversion of a decoded model
type BuildOptions struct {
	Textures TextureSource
	// Tint is applied to every face with a tint index
	Tint tint.Tint
}

// Build converts a resolved model. Unrotated elements whose faces use the
// default texture rectangle become boxes; every other element becomes one
// quad per listed face. Faces are emitted in north, east, south, west, top,
// bottom order.
func Build(m *Model, opts BuildOptions) (*model.Model, error) {
	var parts []model.Part
	for i, e := range m.Elements {
		elementParts, err := buildElement(e, opts)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		parts = append(parts, elementParts...)
	}
	return model.New(parts...), nil
}

// elementFace is a face of an element paired with its slot
type elementFace struct {
	slot geometry.Face
	face Face
}

// sortedFaces returns the element's faces in slot order
func sortedFaces(e Element) ([]elementFace, error) {
	faces := make([]elementFace, 0, len(e.Faces))
	for name, face := range e.Faces {
		slot, ok := geometry.ParseFace(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown face %q", ErrInvalidElement, name)
		}
		faces = append(faces, elementFace{slot: slot, face: face})
	}
	slices.SortFunc(faces, func(a, b elementFace) int { return int(a.slot) - int(b.slot) })
	return faces, nil
}

func buildElement(e Element, opts BuildOptions) ([]model.Part, error) {
	for axis := 0; axis < 3; axis++ {
		if e.From[axis] > e.To[axis] {
			return nil, fmt.Errorf("%w: from %v exceeds to %v", ErrInvalidElement, e.From, e.To)
		}
	}

	faces, err := sortedFaces(e)
	if err != nil {
		return nil, err
	}

	var surfaces [geometry.NumFaces]model.Surface
	for _, f := range faces {
		s, err := buildSurface(f.face, opts)
		if err != nil {
			return nil, fmt.Errorf("face %v: %w", f.slot, err)
		}
		surfaces[f.slot] = s
	}

	explicitUV := lo.SomeBy(faces, func(f elementFace) bool { return f.face.UV != nil })
	if !e.IsRotated() && !explicitUV {
		box := geometry.NewBoxPixels(e.From[0], e.To[0], e.From[1], e.To[1], e.From[2], e.To[2])
		return []model.Part{{Primitive: box, Faces: surfaces}}, nil
	}

	quads := lo.Map(faces, func(f elementFace, _ int) geometry.Quad {
		return elementQuad(e, f.slot, f.face.UV)
	})
	if e.IsRotated() {
		m, err := rotationMatrix(*e.Rotation)
		if err != nil {
			return nil, err
		}
		quads = transform.Apply(quads, m)
	}

	parts := make([]model.Part, len(quads))
	for i, q := range quads {
		// Surfaces stay on the authored face even when rotation tilts the quad
		slot := faces[i].slot
		parts[i].Primitive = q.WithSlot(slot)
		parts[i].Faces[slot] = surfaces[slot]
	}
	return parts, nil
}

func buildSurface(face Face, opts BuildOptions) (model.Surface, error) {
	var s model.Surface
	if opts.Textures == nil {
		return s, fmt.Errorf("%w: %s", ErrUnknownTexture, face.Texture)
	}
	sampler, ok := opts.Textures.Texture(strings.TrimPrefix(face.Texture, "minecraft:"))
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownTexture, face.Texture)
	}
	s.Texture = sampler

	mapping, ok := uvmap.FromRotation(face.Rotation)
	if !ok {
		return s, fmt.Errorf("%w: face rotation %d", ErrInvalidElement, face.Rotation)
	}
	s.Mapping = mapping

	if face.Tinted() {
		s.Tint = opts.Tint
	}
	return s, nil
}

// elementQuad builds the quad covering one face of an element. Without an
// explicit rectangle the texture coordinates match those of a box face, so
// boxes and quads texture identically.
func elementQuad(e Element, slot geometry.Face, pixels *[4]float64) geometry.Quad {
	x1, y1, z1 := e.From[0]/16, e.From[1]/16, e.From[2]/16
	x2, y2, z2 := e.To[0]/16, e.To[1]/16, e.To[2]/16

	var v0, v1, v2 core.Vec3
	var uv geometry.UVRect
	switch slot {
	case geometry.North:
		v0, v1, v2 = core.NewVec3(x2, y1, z1), core.NewVec3(x1, y1, z1), core.NewVec3(x2, y2, z1)
		uv = geometry.NewUVRect(1-x2, 1-x1, y1, y2)
	case geometry.South:
		v0, v1, v2 = core.NewVec3(x1, y1, z2), core.NewVec3(x2, y1, z2), core.NewVec3(x1, y2, z2)
		uv = geometry.NewUVRect(x1, x2, y1, y2)
	case geometry.West:
		v0, v1, v2 = core.NewVec3(x1, y1, z1), core.NewVec3(x1, y1, z2), core.NewVec3(x1, y2, z1)
		uv = geometry.NewUVRect(z1, z2, y1, y2)
	case geometry.East:
		v0, v1, v2 = core.NewVec3(x2, y1, z2), core.NewVec3(x2, y1, z1), core.NewVec3(x2, y2, z2)
		uv = geometry.NewUVRect(1-z2, 1-z1, y1, y2)
	case geometry.Top:
		v0, v1, v2 = core.NewVec3(x1, y2, z2), core.NewVec3(x2, y2, z2), core.NewVec3(x1, y2, z1)
		uv = geometry.NewUVRect(x1, x2, 1-z2, 1-z1)
	case geometry.Bottom:
		v0, v1, v2 = core.NewVec3(x1, y1, z1), core.NewVec3(x2, y1, z1), core.NewVec3(x1, y1, z2)
		uv = geometry.NewUVRect(x1, x2, z1, z2)
	}

	if pixels != nil {
		// JSON rectangles are [u1, v1, u2, v2] in pixels with v growing downwards
		p := *pixels
		uv = geometry.NewUVRect(p[0]/16, p[2]/16, 1-p[3]/16, 1-p[1]/16)
	}
	return geometry.NewQuad(v0, v1, v2, uv).WithSlot(slot)
}

// rotationMatrix builds the affine transform of an element rotation. Positive
// angles turn counterclockwise when looking down the axis towards the origin.
func rotationMatrix(r Rotation) (mgl64.Mat4, error) {
	angle := mgl64.DegToRad(r.Angle)
	stretch := 1.0
	if r.Rescale {
		stretch = 1 / math.Cos(angle)
	}

	var rotate, scale mgl64.Mat4
	switch r.Axis {
	case "x":
		rotate, scale = mgl64.HomogRotate3DX(angle), mgl64.Scale3D(1, stretch, stretch)
	case "y":
		rotate, scale = mgl64.HomogRotate3DY(angle), mgl64.Scale3D(stretch, 1, stretch)
	case "z":
		rotate, scale = mgl64.HomogRotate3DZ(angle), mgl64.Scale3D(stretch, stretch, 1)
	default:
		return mgl64.Mat4{}, fmt.Errorf("%w: rotation axis %q", ErrInvalidElement, r.Axis)
	}

	o := mgl64.Vec3{r.Origin[0] / 16, r.Origin[1] / 16, r.Origin[2] / 16}
	to := mgl64.Translate3D(o[0], o[1], o[2])
	from := mgl64.Translate3D(-o[0], -o[1], -o[2])
	return to.Mul4(scale).Mul4(rotate).Mul4(from), nil
}
