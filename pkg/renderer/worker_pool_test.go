package renderer

import (
	"context"
	"runtime"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), 8, 8, DefaultRenderConfig(), &captureLogger{})

	wp := NewWorkerPool(rt, 0, 1)
	if wp.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), wp.GetNumWorkers())
	}

	wp = NewWorkerPool(rt, 3, 1)
	if wp.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", wp.GetNumWorkers())
	}
}

func TestWorkerPool_ProcessesEveryTask(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), 30, 20, DefaultRenderConfig(), &captureLogger{})
	img := NewImage(30, 20)
	tiles := NewTileGrid(30, 20, 8)

	wp := NewWorkerPool(rt, 2, len(tiles))
	wp.Start(context.Background())
	for i, tile := range tiles {
		wp.SubmitTask(TileTask{Tile: tile, Mode: integrator.ModeMaterial, TaskID: i, Image: img})
	}

	seen := make(map[int]bool)
	total := 0
	for range tiles {
		result, ok := wp.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Fatalf("Unexpected error for task %d: %v", result.TaskID, result.Error)
		}
		if seen[result.TaskID] {
			t.Errorf("Task %d reported twice", result.TaskID)
		}
		seen[result.TaskID] = true
		total += result.Stats.TotalPixels
	}
	wp.Stop()

	if len(seen) != len(tiles) {
		t.Errorf("Expected %d results, got %d", len(tiles), len(seen))
	}
	if total != 30*20 {
		t.Errorf("Expected %d pixels, got %d", 30*20, total)
	}
	if _, ok := wp.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_CancelledContextReportsErrors(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), 16, 16, DefaultRenderConfig(), &captureLogger{})
	img := NewImage(16, 16)
	tiles := NewTileGrid(16, 16, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wp := NewWorkerPool(rt, 4, len(tiles))
	wp.Start(ctx)
	for i, tile := range tiles {
		wp.SubmitTask(TileTask{Tile: tile, Mode: integrator.ModeDistance, TaskID: i, Image: img})
	}

	for range tiles {
		result, _ := wp.GetResult()
		if result.Error == nil {
			t.Errorf("Task %d: expected cancellation error", result.TaskID)
		}
		if result.Stats.TotalPixels != 0 {
			t.Errorf("Task %d: expected no pixels rendered, got %d", result.TaskID, result.Stats.TotalPixels)
		}
	}
	wp.Stop()
}
