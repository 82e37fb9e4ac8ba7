package renderer

import "time"

// TileStats contains statistics about one rendered tile
type TileStats struct {
	Pixels int // Pixels rendered
	Hits   int // Pixels whose ray hit a block
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Tiles    int           // Tiles rendered
	Pixels   int           // Total number of pixels rendered
	Hits     int           // Pixels whose ray hit a block
	Blocks   int           // Blocks in the scene
	Workers  int           // Workers used
	Duration time.Duration // Wall time of the render
}

// Add accumulates the statistics of one tile
func (s *RenderStats) Add(tile TileStats) {
	s.Tiles++
	s.Pixels += tile.Pixels
	s.Hits += tile.Hits
}

// Coverage returns the fraction of pixels that hit a block
func (s RenderStats) Coverage() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}
