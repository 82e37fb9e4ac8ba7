package blocks

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"github.com/df07/go-block-raytracer/pkg/blockmodel"
	"github.com/df07/go-block-raytracer/pkg/texture"
)

// LoadTexturePack reads every PNG under textures/ in fsys and returns base
// with those textures added or replaced. A file at textures/block/stone.png
// provides the texture "block/stone". base is not modified.
func LoadTexturePack(fsys fs.FS, base blockmodel.TextureMap) (blockmodel.TextureMap, error) {
	textures := maps.Clone(base)
	if textures == nil {
		textures = blockmodel.TextureMap{}
	}

	err := fs.WalkDir(fsys, "textures", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".png" {
			return nil
		}

		file, err := fsys.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()

		img, err := texture.Decode(file)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", name, err)
		}

		key := strings.TrimSuffix(strings.TrimPrefix(name, "textures/"), ".png")
		textures[key] = img
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load texture pack: %w", err)
	}
	return textures, nil
}
