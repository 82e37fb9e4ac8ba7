package texture

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-block-raytracer/pkg/core"
)

var (
	white = core.Opaque(1, 1, 1)
	black = core.Opaque(0, 0, 0)
)

func TestImage_Sample(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	tex := NewImage(2, 2, []core.Color{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Color
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
		{"upper edge clamps", core.NewVec2(1, 1), black},
		{"lower edge clamps", core.NewVec2(0, 0), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.uv); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImage_SampleEmpty(t *testing.T) {
	tex := NewImage(0, 0, nil)
	if got := tex.Sample(core.NewVec2(0.5, 0.5)); got != (core.Color{}) {
		t.Errorf("Expected transparent black, got %v", got)
	}
}

func TestLoad(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{}) // fully transparent

	path := filepath.Join(t.TempDir(), "tex.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	file.Close()

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("Expected 2x1 texture, got %dx%d", tex.Width, tex.Height)
	}

	red := tex.Sample(core.NewVec2(0.25, 0.5))
	if math.Abs(red.R-1) > 1e-9 || red.G != 0 || red.B != 0 || math.Abs(red.A-1) > 1e-9 {
		t.Errorf("Expected opaque red, got %v", red)
	}
	if clear := tex.Sample(core.NewVec2(0.75, 0.5)); clear.A != 0 {
		t.Errorf("Expected transparent texel, got %v", clear)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestFromImage_LinearizesSRGB(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	got := FromImage(img).Pixels[0]
	// sRGB 128 is roughly 0.216 linear
	if math.Abs(got.R-0.216) > 0.002 {
		t.Errorf("Expected linear value near 0.216, got %f", got.R)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffffff")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-1) > 1e-9 || math.Abs(c.B-1) > 1e-9 || c.A != 1 {
		t.Errorf("Expected opaque white, got %v", c)
	}

	if _, err := ParseHex("green"); err == nil {
		t.Error("Expected error for malformed hex color")
	}
	if _, err := NewSolidHex("#12"); err == nil {
		t.Error("Expected error from NewSolidHex")
	}
}

func TestMustHex(t *testing.T) {
	r, g, b := MustHex("#ff8000").RGB255()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("Expected (255,128,0), got (%d,%d,%d)", r, g, b)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for malformed hex color")
		}
	}()
	MustHex("#12")
}

func TestChecker_Sample(t *testing.T) {
	checker := NewChecker(white, black, 2)

	tests := []struct {
		uv       core.Vec2
		expected core.Color
	}{
		{core.NewVec2(0.25, 0.25), white},
		{core.NewVec2(0.75, 0.25), black},
		{core.NewVec2(0.25, 0.75), black},
		{core.NewVec2(0.75, 0.75), white},
		{core.NewVec2(1, 1), white},
	}

	for _, tt := range tests {
		if got := checker.Sample(tt.uv); got != tt.expected {
			t.Errorf("uv %v: expected %v, got %v", tt.uv, tt.expected, got)
		}
	}
}

func TestTransparent(t *testing.T) {
	if a := Transparent.Sample(core.NewVec2(0.5, 0.5)).A; a != 0 {
		t.Errorf("Expected alpha 0, got %f", a)
	}
}
