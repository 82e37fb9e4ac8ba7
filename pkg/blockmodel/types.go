// Package blockmodel decodes JSON element block models and converts them into
// renderable block models.
package blockmodel

// Model is a decoded JSON block model. Coordinates are in sixteenths of a block.
type Model struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures"`
	Elements []Element         `json:"elements"`
}

// Element is one cuboid of a model
type Element struct {
	From     [3]float64      `json:"from"`
	To       [3]float64      `json:"to"`
	Rotation *Rotation       `json:"rotation"`
	Shade    *bool           `json:"shade"`
	Faces    map[string]Face `json:"faces"`
}

// Rotation turns an element about a single axis through Origin
type Rotation struct {
	Origin  [3]float64 `json:"origin"`
	Angle   float64    `json:"angle"`
	Axis    string     `json:"axis"`
	Rescale bool       `json:"rescale"`
}

// Face describes one face of an element. A face missing from the element's
// map is not rendered.
type Face struct {
	UV        *[4]float64 `json:"uv"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface"`
	Rotation  int         `json:"rotation"`
	TintIndex *int        `json:"tintindex"`
}

// Tinted reports whether the face takes a tint
func (f Face) Tinted() bool {
	return f.TintIndex != nil && *f.TintIndex >= 0
}

// IsRotated reports whether the element has a non-zero rotation
func (e Element) IsRotated() bool {
	return e.Rotation != nil && e.Rotation.Angle != 0
}
