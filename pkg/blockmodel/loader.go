package blockmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"strings"

	"github.com/samber/lo"
)

// maxTextureIndirection bounds "#name" reference chains
const maxTextureIndirection = 10

// Decode reads one JSON model without resolving its parent
func Decode(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("could not decode model json: %w", err)
	}
	if m.Textures == nil {
		m.Textures = make(map[string]string)
	}
	return &m, nil
}

// Loader loads models from a file system laid out as models/<name>.json,
// merging parents and resolving texture references. A Loader caches merged
// models and is not safe for concurrent use.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Model // merged with their parents, references unresolved
}

// NewLoader creates a loader reading from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*Model)}
}

// Load returns the fully resolved model called name. Names without a
// directory are looked up under block/. Texture references are resolved
// after the whole parent chain is merged, so a child's textures apply to
// inherited elements.
func (l *Loader) Load(name string) (*Model, error) {
	merged, err := l.load(name, nil)
	if err != nil {
		return nil, err
	}
	return resolved(merged), nil
}

func (l *Loader) load(name string, chain []string) (*Model, error) {
	name = strings.TrimPrefix(name, "minecraft:")
	if !strings.Contains(name, "/") {
		name = "block/" + name
	}
	if lo.Contains(chain, name) {
		return nil, fmt.Errorf("parent cycle: %s -> %s", strings.Join(chain, " -> "), name)
	}
	if m, ok := l.cache[name]; ok {
		return m, nil
	}

	file, err := l.fsys.Open(path.Join("models", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}
	defer file.Close()

	m, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}

	if m.Parent != "" && !strings.HasPrefix(m.Parent, "builtin/") {
		parent, err := l.load(m.Parent, append(chain, name))
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", m.Parent, err)
		}
		if len(m.Elements) == 0 {
			m.Elements = parent.Elements
		}
		m.Textures = lo.Assign(parent.Textures, m.Textures)
	}

	l.cache[name] = m
	return m, nil
}

// resolved returns a copy of m with every face texture resolved against
// m.Textures. m itself is left untouched.
func resolved(m *Model) *Model {
	out := *m
	out.Textures = maps.Clone(m.Textures)
	out.Elements = lo.Map(m.Elements, func(e Element, _ int) Element {
		faces := make(map[string]Face, len(e.Faces))
		for name, face := range e.Faces {
			face.Texture = ResolveTexture(face.Texture, m.Textures)
			faces[name] = face
		}
		e.Faces = faces
		return e
	})
	return &out
}

// ResolveTexture follows "#name" references through textures. Unresolvable
// references are returned as they are.
func ResolveTexture(ref string, textures map[string]string) string {
	for i := 0; i < maxTextureIndirection && strings.HasPrefix(ref, "#"); i++ {
		resolved, ok := textures[strings.TrimPrefix(ref, "#")]
		if !ok {
			break
		}
		ref = resolved
	}
	return ref
}
