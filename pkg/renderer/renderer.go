// Package renderer draws preview images of block scenes. Each pixel casts one
// ray, takes the nearest block hit and applies simple directional shading.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/image/draw"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// Renderer renders a scene tile by tile on a worker pool
type Renderer struct {
	scene  *Scene
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger logs through the standard
// library logger.
func NewRenderer(scene *Scene, config Config, logger core.Logger) (*Renderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", config.Width, config.Height)
	}
	if scene == nil {
		return nil, errors.New("scene is required")
	}
	if config.Camera.AspectRatio <= 0 {
		config.Camera.AspectRatio = float64(config.Width) / float64(config.Height)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{scene: scene, config: config, logger: logger}, nil
}

// Render renders the full image. It stops early and returns ctx.Err() once ctx
// is done.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)
	tileRenderer := NewTileRenderer(r.scene, NewCamera(r.config.Camera), r.config)

	pool := NewWorkerPool(ctx, r.config.Workers)
	defer pool.Stop()

	r.logger.Printf("Rendering %dx%d: %d blocks (%d primitives), %d tiles, %d workers\n",
		r.config.Width, r.config.Height, r.scene.Len(), r.scene.PrimitiveCount(), len(tiles), pool.GetNumWorkers())

	results, err := pool.RenderTiles(tiles, func(tile *Tile) TileStats {
		if ctx.Err() != nil {
			return TileStats{}
		}
		return tileRenderer.RenderTile(tile, img)
	})
	if ctx.Err() != nil {
		return nil, RenderStats{}, ctx.Err()
	}
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("failed to render tiles: %w", err)
	}

	stats := RenderStats{Blocks: r.scene.Len(), Workers: pool.GetNumWorkers()}
	for _, result := range results {
		stats.Add(result)
	}
	stats.Duration = time.Since(start)

	r.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())
	return img, stats, nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling
func Upscale(img image.Image, factor int) *image.RGBA {
	bounds := img.Bounds()
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
