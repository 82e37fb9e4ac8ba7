package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height, 1)
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer shades the pixels of individual tiles
type TileRenderer struct {
	scene  *Scene
	camera *Camera
	config Config
	light  core.Vec3
}

// NewTileRenderer creates a tile renderer for a scene
func NewTileRenderer(scene *Scene, camera *Camera, config Config) *TileRenderer {
	return &TileRenderer{
		scene:  scene,
		camera: camera,
		config: config,
		light:  config.LightDirection.Normalize(),
	}
}

// RenderTile renders the pixels of tile into img. Tiles never overlap, so
// concurrent calls for different tiles may share img.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA) TileStats {
	stats := TileStats{Pixels: tile.Bounds.Dx() * tile.Bounds.Dy()}

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			// Pixel centers; image rows grow downwards
			s := (float64(i) + 0.5) / float64(tr.config.Width)
			t := 1 - (float64(j)+0.5)/float64(tr.config.Height)
			ray := tr.camera.GetRay(s, t)

			c, hit := tr.rayColor(ray)
			if hit {
				stats.Hits++
			}
			img.SetRGBA(i, j, toSRGB(c))
		}
	}
	return stats
}

// rayColor returns the shaded color of the nearest block, or the sky
func (tr *TileRenderer) rayColor(ray core.Ray) (core.Color, bool) {
	hit, ok := tr.scene.Trace(ray)
	if !ok {
		return tr.background(ray), false
	}

	// Lambert term with an ambient floor
	diffuse := math.Max(0, hit.Normal.Dot(tr.light))
	light := tr.config.Ambient + (1-tr.config.Ambient)*diffuse
	return hit.Color.ScaleRGB(light).WithAlpha(1), true
}

// background returns a vertical gradient based on ray direction
func (tr *TileRenderer) background(ray core.Ray) core.Color {
	t := math.Max(0, ray.Direction.Normalize().Y)
	bottom := tr.config.BackgroundBottom.ScaleRGB(1 - t)
	top := tr.config.BackgroundTop.ScaleRGB(t)
	return core.Opaque(bottom.R+top.R, bottom.G+top.G, bottom.B+top.B)
}

// toSRGB encodes a linear color for an 8-bit image
func toSRGB(c core.Color) color.RGBA {
	r, g, b := colorful.LinearRgb(c.R, c.G, c.B).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
