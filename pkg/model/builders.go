package model

import (
	"errors"
	"fmt"

	"github.com/df07/go-block-raytracer/pkg/geometry"
	"github.com/df07/go-block-raytracer/pkg/texture"
	"github.com/df07/go-block-raytracer/pkg/tint"
	"github.com/df07/go-block-raytracer/pkg/uvmap"
)

// ErrAttributeMismatch is returned when an attribute array does not have one
// entry per primitive
var ErrAttributeMismatch = errors.New("attribute array length does not match primitive count")

// BoxAttributes are per-box, per-face attribute arrays indexed like the boxes
// and then by geometry.Face. Tints and UVMappings may be nil, meaning no tint
// and no remap everywhere.
type BoxAttributes struct {
	Textures   [][geometry.NumFaces]texture.Sampler
	Tints      [][geometry.NumFaces]tint.Tint
	UVMappings [][geometry.NumFaces]uvmap.Mapping
}

// QuadAttributes are per-quad attributes indexed like the quads. The
// attributes apply to the face slot each quad was authored for.
type QuadAttributes struct {
	Textures   []texture.Sampler
	Tints      []tint.Tint
	UVMappings []uvmap.Mapping
}

// checkLength validates one attribute array. Optional arrays may be nil.
func checkLength(name string, length, count int, optional bool) error {
	if optional && length == 0 {
		return nil
	}
	if length != count {
		return fmt.Errorf("%w: %d %s for %d primitives", ErrAttributeMismatch, length, name, count)
	}
	return nil
}

// NewBoxModel creates a model from boxes and their per-face attributes
func NewBoxModel(boxes []geometry.Box, attrs BoxAttributes) (*Model, error) {
	n := len(boxes)
	if err := checkLength("textures", len(attrs.Textures), n, false); err != nil {
		return nil, err
	}
	if err := checkLength("tints", len(attrs.Tints), n, true); err != nil {
		return nil, err
	}
	if err := checkLength("uv mappings", len(attrs.UVMappings), n, true); err != nil {
		return nil, err
	}

	parts := make([]Part, n)
	for i, box := range boxes {
		parts[i].Primitive = box
		for f := range parts[i].Faces {
			s := Surface{Texture: attrs.Textures[i][f]}
			if attrs.Tints != nil {
				s.Tint = attrs.Tints[i][f]
			}
			if attrs.UVMappings != nil {
				s.Mapping = attrs.UVMappings[i][f]
			}
			parts[i].Faces[f] = s
		}
	}
	return New(parts...), nil
}

// MustBoxModel is like NewBoxModel but panics on error. It is meant for
// package-level model tables.
func MustBoxModel(boxes []geometry.Box, attrs BoxAttributes) *Model {
	m, err := NewBoxModel(boxes, attrs)
	if err != nil {
		panic(err)
	}
	return m
}

// NewQuadModel creates a model from quads and their attributes
func NewQuadModel(quads []geometry.Quad, attrs QuadAttributes) (*Model, error) {
	n := len(quads)
	if err := checkLength("textures", len(attrs.Textures), n, false); err != nil {
		return nil, err
	}
	if err := checkLength("tints", len(attrs.Tints), n, true); err != nil {
		return nil, err
	}
	if err := checkLength("uv mappings", len(attrs.UVMappings), n, true); err != nil {
		return nil, err
	}

	parts := make([]Part, n)
	for i, quad := range quads {
		s := Surface{Texture: attrs.Textures[i]}
		if attrs.Tints != nil {
			s.Tint = attrs.Tints[i]
		}
		if attrs.UVMappings != nil {
			s.Mapping = attrs.UVMappings[i]
		}
		parts[i].Primitive = quad
		parts[i].Faces[quad.Slot] = s
	}
	return New(parts...), nil
}

// MustQuadModel is like NewQuadModel but panics on error
func MustQuadModel(quads []geometry.Quad, attrs QuadAttributes) *Model {
	m, err := NewQuadModel(quads, attrs)
	if err != nil {
		panic(err)
	}
	return m
}

// UniformFaces returns a face array with s on every face
func UniformFaces[T any](s T) [geometry.NumFaces]T {
	var faces [geometry.NumFaces]T
	for i := range faces {
		faces[i] = s
	}
	return faces
}
