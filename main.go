package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-block-raytracer/pkg/biome"
	"github.com/df07/go-block-raytracer/pkg/blocks"
	"github.com/df07/go-block-raytracer/pkg/model"
	"github.com/df07/go-block-raytracer/pkg/renderer"
	"github.com/df07/go-block-raytracer/pkg/scene"
)

// renderOptions holds the flags of the render command
type renderOptions struct {
	sceneType string
	modelName string
	biomeName string
	textures  string
	width     int
	height    int
	tileSize  int
	workers   int
	scale     int
	output    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockray",
		Short:         "Render previews of textured block models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCommand(), newListCommand())
	return root
}

func newRenderCommand() *cobra.Command {
	defaults := renderer.DefaultConfig()
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runRender(ctx, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.sceneType, "scene", "showcase", "Scene to render (see 'list')")
	flags.StringVar(&opts.modelName, "model", "", "Model shown by the 'model' scene")
	flags.StringVar(&opts.biomeName, "biome", "plains", "Biome of columns the scene does not assign")
	flags.StringVar(&opts.textures, "textures", "", "Directory with textures/<name>.png overriding the built-in textures")
	flags.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	flags.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	flags.IntVar(&opts.tileSize, "tile", defaults.TileSize, "Tile size in pixels")
	flags.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = one per CPU)")
	flags.IntVar(&opts.scale, "scale", 1, "Integer upscale factor applied to the output")
	flags.StringVar(&opts.output, "out", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenes, block models and biomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

// loadRegistry builds the stock blocks, with textures from textureDir
// replacing the built-in ones when it is set
func loadRegistry(textureDir string) (*model.Registry, error) {
	textures := blocks.DefaultTextures()
	if textureDir != "" {
		var err error
		textures, err = blocks.LoadTexturePack(os.DirFS(textureDir), textures)
		if err != nil {
			return nil, err
		}
	}

	registry, err := blocks.NewRegistry(textures)
	if err != nil {
		return nil, fmt.Errorf("loading blocks: %w", err)
	}
	return registry, nil
}

// createScene builds the named scene from the stock blocks and biomes
func createScene(sceneType, modelName, biomeName, textureDir string) (*scene.Scene, error) {
	registry, err := loadRegistry(textureDir)
	if err != nil {
		return nil, err
	}

	palette := biome.DefaultPalette()
	b, ok := palette.Find(biomeName)
	if !ok {
		return nil, fmt.Errorf("unknown biome '%s'", biomeName)
	}

	return scene.Create(sceneType, scene.Options{
		Registry: registry,
		Palette:  palette,
		Biome:    b.ID,
		Model:    modelName,
	})
}

func runRender(ctx context.Context, opts renderOptions, out io.Writer) error {
	if opts.scale < 1 {
		return fmt.Errorf("invalid scale %d", opts.scale)
	}

	selectedScene, err := createScene(opts.sceneType, opts.modelName, opts.biomeName, opts.textures)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.Width = opts.width
	config.Height = opts.height
	config.TileSize = opts.tileSize
	config.Workers = opts.workers
	config.Camera = selectedScene.CameraConfig

	r, err := renderer.NewRenderer(selectedScene.Blocks, config, nil)
	if err != nil {
		return err
	}

	img, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Render completed in %v (%d tiles, %.1f%% coverage)\n",
		stats.Duration, stats.Tiles, 100*stats.Coverage())

	var final image.Image = img
	if opts.scale > 1 {
		final = renderer.Upscale(img, opts.scale)
	}

	filename := opts.output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", opts.sceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := savePNG(filename, final); err != nil {
		return err
	}

	fmt.Fprintf(out, "Render saved as %s\n", filename)
	return nil
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}

func runList(out io.Writer) error {
	registry, err := loadRegistry("")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(out, "  %-10s %s\n", info.ID, info.Description)
	}

	fmt.Fprintln(out, "\nModels:")
	for _, name := range registry.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "\nBiomes:")
	for _, name := range biome.DefaultPalette().Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
