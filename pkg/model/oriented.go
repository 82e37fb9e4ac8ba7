package model

import (
	"errors"
	"fmt"

	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/transform"
	"github.com/df07/go-block-raytracer/pkg/uvmap"
)

// ErrUnsupportedPrimitive is returned when a part cannot be reoriented
var ErrUnsupportedPrimitive = errors.New("unsupported primitive")

// NewOrientedBoxModels builds the north, east, south and west variants of a
// box model authored facing north
func NewOrientedBoxModels(boxes []geometry.Box, attrs BoxAttributes) ([4]*Model, error) {
	north, err := NewBoxModel(boxes, attrs)
	if err != nil {
		return [4]*Model{}, err
	}
	return NewOrientedModels(north)
}

// NewOrientedModels returns the north, east, south and west variants of a
// model authored facing north. Side surfaces travel with the rotated
// geometry. Box top and bottom mappings absorb the quarter turn of the
// block-space UV layout so textures stay attached to the geometry; quads
// carry their texture rectangle with them and need no remap.
func NewOrientedModels(north *Model) ([4]*Model, error) {
	out := [4]*Model{north}

	parts := north.Parts()
	for turn := 1; turn < 4; turn++ {
		next := make([]Part, len(parts))
		for i, part := range parts {
			rotated, err := rotatePartY(part)
			if err != nil {
				return out, fmt.Errorf("part %d, turn %d: %w", i, turn, err)
			}
			next[i] = rotated
		}
		out[turn] = New(next...)
		parts = next
	}
	return out, nil
}

// rotatePartY applies a single RotateY quarter turn to a part
func rotatePartY(p Part) (Part, error) {
	switch prim := p.Primitive.(type) {
	case geometry.Box:
		faces, err := rotateFacesY(p.Faces)
		if err != nil {
			return p, err
		}
		return Part{Primitive: transform.BoxesRotateY([]geometry.Box{prim})[0], Faces: faces}, nil
	case geometry.Quad:
		var faces [geometry.NumFaces]Surface
		for _, f := range geometry.Faces {
			faces[transform.FaceRotateY(f, 1)] = p.Faces[f]
		}
		q := transform.RotateY([]geometry.Quad{prim})[0].WithSlot(transform.FaceRotateY(prim.Slot, 1))
		return Part{Primitive: q, Faces: faces}, nil
	}
	return p, fmt.Errorf("%w: %T", ErrUnsupportedPrimitive, p.Primitive)
}

// rotateFacesY moves box face surfaces along with a single RotateY quarter turn
func rotateFacesY(faces [geometry.NumFaces]Surface) ([geometry.NumFaces]Surface, error) {
	var out [geometry.NumFaces]Surface
	for _, f := range geometry.Faces {
		out[transform.FaceRotateY(f, 1)] = faces[f]
	}

	top, ok := uvmap.Compose(uvmap.Rotate90, out[geometry.Top].Mapping)
	if !ok {
		return out, fmt.Errorf("cannot rotate top face mapping %v", out[geometry.Top].Mapping)
	}
	bottom, ok := uvmap.Compose(uvmap.Rotate270, out[geometry.Bottom].Mapping)
	if !ok {
		return out, fmt.Errorf("cannot rotate bottom face mapping %v", out[geometry.Bottom].Mapping)
	}
	out[geometry.Top].Mapping = top
	out[geometry.Bottom].Mapping = bottom
	return out, nil
}
