package renderer

import "github.com/df07/go-block-raytracer/pkg/core"

// Config contains the preview renderer settings
type Config struct {
	Width    int // Image width in pixels
	Height   int // Image height in pixels
	TileSize int // Edge length of the square tiles rendered in parallel
	Workers  int // Number of render workers, zero for one per CPU

	Camera CameraConfig

	BackgroundTop    core.Color // Sky color straight up
	BackgroundBottom core.Color // Sky color at the horizon and below

	LightDirection core.Vec3 // Direction towards the light
	Ambient        float64   // Fraction of light reaching surfaces facing away
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:            320,
		Height:           240,
		TileSize:         32,
		Camera:           DefaultCameraConfig(),
		BackgroundTop:    core.Opaque(0.3, 0.5, 1.0),
		BackgroundBottom: core.Opaque(1.0, 1.0, 1.0),
		LightDirection:   core.NewVec3(0.4, 1.0, 0.6),
		Ambient:          0.35,
	}
}
