package renderer

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/kmorris/pathtracer/pkg/core"
	"github.com/kmorris/pathtracer/pkg/geometry"
	"github.com/kmorris/pathtracer/pkg/material"
)

func testWorld() core.Hittable {
	matte := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.75, matte),
	)
}

func TestRender_SingleSphere(t *testing.T) {
	config := testCameraConfig()
	result, err := NewRenderer(testWorld(), config, nil).Render(2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if result.Frame.Width != config.Width || result.Frame.Height != config.Height {
		t.Fatalf("frame is %dx%d, want %dx%d",
			result.Frame.Width, result.Frame.Height, config.Width, config.Height)
	}
	if result.Stats.PixelsRendered != config.Width*config.Height {
		t.Errorf("PixelsRendered = %d, want %d",
			result.Stats.PixelsRendered, config.Width*config.Height)
	}
	if result.Stats.RaysTraced == 0 {
		t.Error("RaysTraced = 0")
	}

	// Every pixel sees either the sphere or the bright background
	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			r, g, b := result.Frame.RGB(x, y)
			if r == 0 && g == 0 && b == 0 {
				t.Errorf("pixel (%d,%d) is black", x, y)
			}
		}
	}
}

func TestRender_DeterministicAcrossRuns(t *testing.T) {
	config := testCameraConfig()
	world := testWorld()

	first, err := NewRenderer(world, config, nil).Render(4)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := NewRenderer(world, config, nil).Render(4)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !bytes.Equal(first.Frame.Pix, second.Frame.Pix) {
		t.Error("repeat renders with fixed per-region seeds differ")
	}
}

func TestRender_WorkerCountDoesNotLosePixels(t *testing.T) {
	config := testCameraConfig()
	world := testWorld()

	for _, workers := range []int{1, 3, 16} {
		result, err := NewRenderer(world, config, nil).Render(workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if result.Stats.PixelsRendered != config.Width*config.Height {
			t.Errorf("workers=%d: PixelsRendered = %d, want %d",
				workers, result.Stats.PixelsRendered, config.Width*config.Height)
		}
		if len(result.WorkerStats) != min(workers, config.Width*config.Height) {
			t.Errorf("workers=%d: got %d worker stats", workers, len(result.WorkerStats))
		}
	}
}

// panicAt is a surface that panics during intersection
type panicAt struct {
	inner core.Hittable
}

func (p panicAt) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	if ray.Direction.X > 0 {
		panic("surface exploded")
	}
	return p.inner.Hit(ray, tValid)
}

func TestRender_WorkerPanicFailsRender(t *testing.T) {
	config := testCameraConfig()
	world := panicAt{inner: testWorld()}

	result, err := NewRenderer(world, config, nil).Render(4)
	if err == nil {
		t.Fatal("expected error from panicking worker")
	}
	if result != nil {
		t.Error("failed render should not return a result")
	}

	var workerErr *WorkerError
	if !errors.As(err, &workerErr) {
		t.Fatalf("error %v does not wrap a WorkerError", err)
	}
	if workerErr.Cause != "surface exploded" {
		t.Errorf("Cause = %v, want the panic value", workerErr.Cause)
	}
}

func TestRenderWithProgress_ReportsEveryRegion(t *testing.T) {
	config := testCameraConfig()

	var mu sync.Mutex
	seen := map[int]bool{}
	callbackConcurrent := false

	result, err := NewRenderer(testWorld(), config, nil).RenderWithProgress(5, func(region Region, stats RenderStats) {
		if !mu.TryLock() {
			callbackConcurrent = true
			return
		}
		defer mu.Unlock()
		seen[region.ID] = true
		if stats.PixelsRendered == 0 {
			t.Errorf("region %d reported zero pixels", region.ID)
		}
	})
	if err != nil {
		t.Fatalf("RenderWithProgress: %v", err)
	}

	if callbackConcurrent {
		t.Error("progress callback invoked concurrently; it must run on the coordinator only")
	}
	if len(seen) != len(result.WorkerStats) {
		t.Errorf("callback saw %d regions, want %d", len(seen), len(result.WorkerStats))
	}
}
