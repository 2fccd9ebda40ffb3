package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// bandsPerWorker oversubscribes workers so uneven rows balance out
const bandsPerWorker = 4

// Config contains configuration for a render pass
type Config struct {
	Workers    int   // Number of parallel workers (0 = use CPU count)
	MaxDepth   int   // Recursion budget for each primary ray
	Seed       int64 // Base seed for the per-band samplers
	DebugEvery int   // Record rays for every Nth pixel of the middle row (0 = off)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers:    0, // Auto-detect CPU count
		MaxDepth:   5,
		Seed:       0,
		DebugEvery: 0,
	}
}

// Renderer traces one primary ray per pixel and plots the results
type Renderer struct {
	integrator integrator.Integrator
	camera     geometry.Camera
	config     Config
	rayLog     *RayLog
	logger     core.Logger
}

// New creates a renderer. A nil logger uses the package's named logger.
func New(integ integrator.Integrator, camera geometry.Camera, config Config, logger core.Logger) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.New("renderer")
	}
	return &Renderer{
		integrator: integ,
		camera:     camera,
		config:     config,
		rayLog:     NewRayLog(),
		logger:     logger,
	}
}

// RayLog returns the debug rays recorded by the last pass
func (r *Renderer) RayLog() *RayLog {
	return r.rayLog
}

// Camera returns the camera used for rendering
func (r *Renderer) Camera() geometry.Camera {
	return r.camera
}

// SetCamera replaces the camera used by subsequent passes
func (r *Renderer) SetCamera(camera geometry.Camera) {
	r.camera = camera
}

// Render runs one pass over the whole image, plotting every pixel.
// The plotter must accept concurrent calls for distinct pixels.
func (r *Renderer) Render(ctx context.Context, plotter Plotter) (RenderStats, error) {
	start := time.Now()
	width, height := r.camera.Width, r.camera.Height

	bands := NewBandGrid(height, r.config.Workers*bandsPerWorker, r.config.Seed)
	r.rayLog.Reset()

	r.logger.Infof("rendering %dx%d with %d workers, %d bands, depth %d",
		width, height, r.config.Workers, len(bands), r.config.MaxDepth)

	var mtx sync.Mutex
	bandStats := make([]BandStats, len(bands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for _, band := range bands {
		band := band
		g.Go(func() error {
			bandStart := time.Now()
			if err := r.renderBand(gctx, band, plotter); err != nil {
				return err
			}
			mtx.Lock()
			bandStats[band.ID] = BandStats{ID: band.ID, Y0: band.Y0, Y1: band.Y1, Duration: time.Since(bandStart)}
			mtx.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Rows:        height,
		Tasks:       len(bands),
		Workers:     r.config.Workers,
		DebugRays:   r.rayLog.Len(),
		Elapsed:     time.Since(start),
		Bands:       bandStats,
	}
	r.logger.Debugf("pass finished in %s (%.0f pixels/s, %d debug rays)",
		stats.Elapsed, stats.PixelsPerSecond(), stats.DebugRays)
	return stats, nil
}

// renderBand renders every pixel in the band, checking for cancellation between rows
func (r *Renderer) renderBand(ctx context.Context, band *Band, plotter Plotter) error {
	debugRow := r.camera.Height / 2

	for y := band.Y0; y < band.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < r.camera.Width; x++ {
			ray, err := r.camera.GetRay(x, y)
			if err != nil {
				return fmt.Errorf("band %d: %w", band.ID, err)
			}

			var color core.Color
			if r.config.DebugEvery > 0 && y == debugRow && x%r.config.DebugEvery == 0 {
				color = r.integrator.TraceColorDebug(ray, r.config.MaxDepth, band.Sampler, r.rayLog)
			} else {
				color = r.integrator.TraceColor(ray, r.config.MaxDepth, nil, band.Sampler)
			}
			plotter.Plot(x, y, color.ToInt())
		}
	}
	return nil
}
