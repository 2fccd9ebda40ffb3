package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("whitted")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// createScene loads a built-in scene or a JSON scene file
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("empty scene name: %w", core.ErrInvalidArgument)
	}
	return scene.Load(sceneType, width, height)
}

// cameraOptions are the command line adjustments applied to a scene camera
type cameraOptions struct {
	FOV   float64
	Move  string
	Yaw   float64
	Pitch float64
}

// applyCameraOptions returns the scene camera adjusted by the options.
// Pitch is applied after yaw, around the yawed camera's right vector.
func applyCameraOptions(camera geometry.Camera, opts cameraOptions) (geometry.Camera, error) {
	if opts.FOV != 0 {
		if !(opts.FOV > 0 && opts.FOV < 180) {
			return camera, fmt.Errorf("fov %g: %w", opts.FOV, core.ErrInvalidArgument)
		}
		camera = camera.WithFOV(opts.FOV)
	}
	if opts.Move != "" {
		delta, err := parseVec3(opts.Move)
		if err != nil {
			return camera, fmt.Errorf("move: %w", err)
		}
		camera = camera.Move(delta)
	}
	if opts.Yaw != 0 {
		camera = camera.Rotate(camera.Up, opts.Yaw)
	}
	if opts.Pitch != 0 {
		camera = camera.Rotate(camera.Right(), opts.Pitch)
	}
	return camera, nil
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q: %w", s, core.ErrInvalidArgument)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, core.ErrInvalidArgument)
		}
		v[i] = f
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// Render a still frame.
func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx.String("scene"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}

	camera, err := applyCameraOptions(sc.Camera, cameraOptions{
		FOV:   ctx.Float64("fov"),
		Move:  ctx.String("move"),
		Yaw:   ctx.Float64("yaw"),
		Pitch: ctx.Float64("pitch"),
	})
	if err != nil {
		return err
	}

	config := renderer.Config{
		Workers:    ctx.Int("workers"),
		MaxDepth:   ctx.Int("depth"),
		Seed:       ctx.Int64("seed"),
		DebugEvery: ctx.Int("debug-every"),
	}
	logger.Noticef("rendering scene %q at %dx%d", ctx.String("scene"), camera.Width, camera.Height)

	integ := integrator.NewWhittedIntegrator(sc, integrator.DefaultConfig())
	r := renderer.New(integ, camera, config, logger)
	surface := renderer.NewSurface(camera.Width, camera.Height)

	stats, err := r.Render(context.Background(), surface)
	if err != nil {
		return err
	}

	if err := savePNG(ctx.String("out"), surface); err != nil {
		return err
	}
	logger.Noticef("frame saved as %s", ctx.String("out"))

	displayFrameStats(stats)
	if config.DebugEvery > 0 {
		displayDebugRays(r.RayLog().Rays())
	}
	return nil
}

func savePNG(filename string, surface *renderer.Surface) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, surface.Image()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "% of frame", "Render time"})
	for _, band := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", band.ID),
			fmt.Sprintf("%d-%d", band.Y0, band.Y1-1),
			fmt.Sprintf("%02.1f %%", 100*float64(band.Y1-band.Y0)/float64(max(1, stats.Rows))),
			band.Duration.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d workers", stats.Workers),
		fmt.Sprintf("%d px", stats.TotalPixels),
		"TOTAL",
		stats.Elapsed.String(),
	})

	table.Render()
	return buf.String()
}

func displayDebugRays(rays []integrator.DebugRay) {
	counts := make(map[integrator.DebugKind]int)
	for _, ray := range rays {
		counts[ray.Kind]++
	}
	logger.Infof("debug rays: %d primary, %d shadow, %d reflection, %d gloss",
		counts[integrator.DebugPrimary], counts[integrator.DebugShadow],
		counts[integrator.DebugReflection], counts[integrator.DebugGloss])
	for _, ray := range rays {
		logger.Debugf("%-10s depth %d %v -> %v", ray.Kind, ray.Depth, ray.Origin, ray.End)
	}
}

// List built-in scenes and scene files.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	response, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Scene", "Name", "Description"})
	for _, group := range response.Groups {
		for _, s := range group.Scenes {
			id := s.ID
			if s.FilePath != "" {
				id = s.FilePath
			}
			table.Append([]string{group.Name, id, s.Name, s.Description})
		}
	}
	table.Render()

	fmt.Print(buf.String())
	return nil
}
