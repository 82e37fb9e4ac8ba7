package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-block-raytracer/pkg/core"
)

// Image provides color from a 2D image using nearest-neighbor lookup
type Image struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], linear RGB
}

// NewImage creates a new image texture
func NewImage(width, height int, pixels []core.Color) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// FromImage converts a decoded image to a texture. sRGB channels are converted
// to linear, alpha is kept as is.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := img.At(x+bounds.Min.X, y+bounds.Min.Y)
			_, _, _, a := src.RGBA()
			// MakeColor fails only for fully transparent pixels
			c, ok := colorful.MakeColor(src)
			if !ok {
				continue
			}
			r, g, b := c.LinearRgb()
			pixels[y*width+x] = core.NewColor(r, g, b, float64(a)/65535.0)
		}
	}

	return NewImage(width, height, pixels)
}

// Load reads a PNG or JPEG file into a texture
func Load(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, nil
}

// Decode reads a PNG or JPEG stream into a texture
func Decode(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Sample returns the texel containing uv. V=0 is the bottom row of the image.
func (t *Image) Sample(uv core.Vec2) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.Color{}
	}
	x := cell(uv.X, t.Width)
	y := cell(1.0-uv.Y, t.Height)
	return t.Pixels[y*t.Width+x]
}
