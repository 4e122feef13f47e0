package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig controls how a pass is split across workers
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// PassResult contains the output of one render mode
type PassResult struct {
	Mode  integrator.Mode
	Image *Image
	Stats RenderStats
}

// Raytracer renders a scene through a camera into images.
// It only reads the scene, so passes may run concurrently over the same scene.
type Raytracer struct {
	scene  *scene.Scene
	camera geometry.Camera
	width  int
	height int
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a raytracer for the scene's camera at the given resolution
func NewRaytracer(s *scene.Scene, width, height int, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		camera: s.Camera(),
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// RenderBounds shades every pixel inside bounds into img on the calling goroutine
func (rt *Raytracer) RenderBounds(mode integrator.Mode, bounds image.Rectangle, img *Image) RenderStats {
	var stats RenderStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.GetRay(float64(x), float64(y), rt.width, rt.height)
			sample := integrator.Shade(mode, ray, rt.scene)
			img.SetPixel(x, y, sample.Color)

			stats.TotalPixels++
			if sample.Hit {
				stats.HitPixels++
			}
			stats.ShadowRays += sample.ShadowRays
		}
	}

	return stats
}

// Render renders one mode into a new image using a worker pool over image tiles.
// The result does not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context, mode integrator.Mode) (*Image, RenderStats, error) {
	startTime := time.Now()
	img := NewImage(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)

	workerPool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %s pass: %dx%d, %d tiles (using %d workers)...\n",
		mode, rt.width, rt.height, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	for _, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			Mode:   mode,
			TaskID: tile.ID,
			Image:  img,
		})
	}

	// Collect every result before stopping so no worker blocks on a full queue
	var stats RenderStats
	var firstErr error
	failedTask := -1
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
			failedTask = result.TaskID
		}
		stats.Merge(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		rt.logger.Printf("Rendering %s pass cancelled at tile %d: %v\n", mode, failedTask, firstErr)
		return nil, RenderStats{}, fmt.Errorf("render %s pass: %w", mode, firstErr)
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("%s pass completed in %v (%d/%d pixels hit, %.1f%% coverage, %d shadow rays)\n",
		mode, stats.Duration, stats.HitPixels, stats.TotalPixels, stats.Coverage()*100, stats.ShadowRays)

	return img, stats, nil
}

// RenderAll renders each mode in order into its own image
func (rt *Raytracer) RenderAll(ctx context.Context, modes ...integrator.Mode) ([]PassResult, error) {
	results := make([]PassResult, 0, len(modes))
	for _, mode := range modes {
		img, stats, err := rt.Render(ctx, mode)
		if err != nil {
			return results, err
		}
		results = append(results, PassResult{Mode: mode, Image: img, Stats: stats})
	}
	return results, nil
}
