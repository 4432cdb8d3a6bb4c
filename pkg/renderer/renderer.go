package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/kmorris/pathtracer/pkg/core"
)

// WorkerError reports a worker that terminated abnormally before finishing
// its region. It is distinct from a normal completion so a failed render
// never silently returns a partially blank image.
type WorkerError struct {
	Region Region
	Cause  any // Recovered panic value
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("render worker failed on region %d %v: %v", e.Region.ID, e.Region.Bounds, e.Cause)
}

// RenderResult holds the finished framebuffer and aggregated statistics
type RenderResult struct {
	Frame       *Framebuffer
	Stats       RenderStats   // Sum over all workers
	WorkerStats []RenderStats // Per-region stats, indexed by region ID
	Elapsed     time.Duration // Wall-clock time for the whole render
}

// ProgressFunc is invoked from the coordinator as each region completes
type ProgressFunc func(region Region, stats RenderStats)

// workerReport is the single completion-or-failure message a worker sends
type workerReport struct {
	region Region
	stats  RenderStats
	err    error
}

// Renderer partitions an image across parallel workers that share one
// framebuffer. The scene graph is read-only during rendering, so workers
// share it without locks; the framebuffer is safe because regions are
// disjoint and each pixel is written by exactly one worker.
type Renderer struct {
	camera *Camera
	world  core.Hittable
	logger *zap.Logger
}

// NewRenderer creates a renderer for the given world and camera configuration
func NewRenderer(world core.Hittable, config CameraConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		camera: NewCamera(config),
		world:  world,
		logger: logger,
	}
}

// Render renders the full image using the given number of workers.
// workers <= 0 uses the CPU count.
func (r *Renderer) Render(workers int) (*RenderResult, error) {
	return r.RenderWithProgress(workers, nil)
}

// RenderWithProgress renders the full image, invoking onRegion from the
// coordinator goroutine as each region finishes. Any worker failure fails
// the whole render.
func (r *Renderer) RenderWithProgress(workers int, onRegion ProgressFunc) (*RenderResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	config := r.camera.Config()
	frame := NewFramebuffer(config.Width, config.Height)
	regions := PartitionRegions(config.Width, config.Height, workers)

	r.logger.Info("starting render",
		zap.Int("width", config.Width),
		zap.Int("height", config.Height),
		zap.Int("samples", config.SamplesPerPixel),
		zap.Int("regions", len(regions)),
	)

	start := time.Now()
	reports := make(chan workerReport, len(regions))

	for _, region := range regions {
		go r.renderWorker(frame, region, reports)
	}

	// Collect exactly one report per dispatched region
	workerStats := make([]RenderStats, len(regions))
	var failures []error
	for range regions {
		report := <-reports
		if report.err != nil {
			r.logger.Error("region failed", zap.Int("region", report.region.ID), zap.Error(report.err))
			failures = append(failures, report.err)
			continue
		}

		workerStats[report.region.ID] = report.stats
		r.logger.Debug("region complete",
			zap.Int("region", report.region.ID),
			zap.Int64("rays", report.stats.RaysTraced),
			zap.Duration("elapsed", report.stats.Elapsed),
		)
		if onRegion != nil {
			onRegion(report.region, report.stats)
		}
	}

	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	var total RenderStats
	for _, stats := range workerStats {
		total.Merge(stats)
	}

	elapsed := time.Since(start)
	r.logger.Info("render complete",
		zap.Int64("rays", total.RaysTraced),
		zap.Int("pixels", total.PixelsRendered),
		zap.Duration("elapsed", elapsed),
	)

	return &RenderResult{
		Frame:       frame,
		Stats:       total,
		WorkerStats: workerStats,
		Elapsed:     elapsed,
	}, nil
}

// renderWorker renders one region to completion and reports once.
// Panics are recovered and reported as a WorkerError rather than torn down,
// so the coordinator can fail the render with the region identity attached.
func (r *Renderer) renderWorker(frame *Framebuffer, region Region, reports chan<- workerReport) {
	defer func() {
		if cause := recover(); cause != nil {
			reports <- workerReport{
				region: region,
				err:    &WorkerError{Region: region, Cause: cause},
			}
		}
	}()

	// Independently seeded per worker: no contended shared state, and
	// repeat renders of the same scene stay reproducible.
	random := rand.New(rand.NewSource(int64(region.ID)*7919 + 42))

	stats := r.camera.RenderRegion(frame, region, r.world, random)
	reports <- workerReport{region: region, stats: stats}
}
