package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)


// outputNames maps each mode to the base name of its image file
var outputNames = map[integrator.Mode]string{
	integrator.ModeDistance: "distance",
	integrator.ModeMaterial: "materials",
	integrator.ModeDiffuse:  "diffuse",
	integrator.ModeShadow:   "final",
}

// options holds the parsed command line
type options struct {
	Scene     string
	Modes     string
	Width     int
	Height    int
	Workers   int
	TileSize  int
	Format    string
	OutputDir string
}

func main() {
	var opts options
	flag.StringVar(&opts.Scene, "scene", "default", "Built-in scene name, scene file name in scenes/, or path to a .pbrt file")
	flag.StringVar(&opts.Modes, "mode", "all", "Comma-separated render modes: distance, material, diffuse, shadow or all")
	flag.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.StringVar(&opts.Format, "format", output.FormatPPM, "Output format: ppm or png")
	flag.StringVar(&opts.OutputDir, "output", "", "Output directory (default output/<scene>)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := run(ctx, opts, renderer.NewDefaultLogger())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	for _, file := range files {
		fmt.Printf("Render saved as %s\n", file)
	}
}

func printHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, name := range scene.BuiltinSceneNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Each mode is saved to output/<scene>/<stage>.<format> where stage is")
	fmt.Println("distance, materials, diffuse or final (shadowed diffuse).")
}

func listScenes() error {
	scenes, err := scene.ListScenes(scene.SceneDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("%-32s %-8s %s\n", info.ID, info.Type, info.Name)
		if info.Description != "" {
			fmt.Printf("%-32s %-8s   %s\n", "", "", info.Description)
		}
	}
	return nil
}

// run renders the requested modes and returns the written file paths
func run(ctx context.Context, opts options, logger core.Logger) ([]string, error) {
	modes, err := parseModes(opts.Modes)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	s, err := createScene(opts.Scene)
	if err != nil {
		return nil, err
	}

	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if opts.Width > 0 {
		s.CameraConfig.Width = opts.Width
	}
	if opts.Height > 0 {
		s.CameraConfig.Height = opts.Height
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", opts.Scene, err)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = outputDirFor(opts.Scene)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	config := renderer.RenderConfig{TileSize: opts.TileSize, NumWorkers: opts.Workers}
	raytracer := renderer.NewRaytracer(s, s.CameraConfig.Width, s.CameraConfig.Height, config, logger)

	results, err := raytracer.RenderAll(ctx, modes...)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(results))
	for _, result := range results {
		filename := filepath.Join(outputDir, outputNames[result.Mode]+"."+format)
		if err := output.Save(filename, result.Image); err != nil {
			return files, err
		}
		files = append(files, filename)
	}
	return files, nil
}

// parseModes parses a comma-separated mode list; "all" selects every mode
func parseModes(value string) ([]integrator.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(value), "all") {
		return integrator.AllModes(), nil
	}

	var modes []integrator.Mode
	seen := make(map[integrator.Mode]bool)
	for _, name := range strings.Split(value, ",") {
		mode, err := integrator.ParseMode(name)
		if err != nil {
			return nil, err
		}
		if !seen[mode] {
			seen[mode] = true
			modes = append(modes, mode)
		}
	}
	return modes, nil
}

// createScene resolves a scene argument: built-in name, scene file in scenes/, or .pbrt path
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.LoadScene(sceneType)
}

// outputDirFor returns output/<scene name>, using the file name for scene file paths
func outputDirFor(sceneType string) string {
	name := sceneType
	if strings.HasSuffix(strings.ToLower(name), ".pbrt") {
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return filepath.Join("output", name)
}
