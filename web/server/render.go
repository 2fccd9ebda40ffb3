package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// CompleteUpdate is the final SSE event of a render
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

type renderResult struct {
	surface *renderer.Surface
	stats   renderer.RenderStats
	err     error
}

// renderScene builds the scene for req and renders one frame
func (s *Server) renderScene(ctx context.Context, req *RenderRequest, logger core.Logger) renderResult {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return renderResult{err: err}
	}

	config := renderer.Config{
		Workers:  req.Workers,
		MaxDepth: req.Depth,
		Seed:     req.Seed,
	}
	integ := integrator.NewWhittedIntegrator(sceneObj, integrator.DefaultConfig())
	rend := renderer.New(integ, sceneObj.Camera, config, logger)
	surface := renderer.NewSurface(sceneObj.Camera.Width, sceneObj.Camera.Height)

	stats, err := rend.Render(ctx, surface)
	return renderResult{surface: surface, stats: stats, err: err}
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:     stats.TotalPixels,
		Bands:           stats.Tasks,
		Workers:         stats.Workers,
		PixelsPerSecond: stats.PixelsPerSecond(),
		ElapsedMs:       stats.Elapsed.Milliseconds(),
	}
}

// handleRender renders a frame and streams console messages and the final
// image via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 100)
	webLogger := NewWebLogger(renderID, consoleChan, s.logger)

	done := make(chan renderResult, 1)
	go func() {
		done <- s.renderScene(ctx, req, webLogger)
	}()

	for {
		select {
		case msg := <-consoleChan:
			if err := s.sendConsoleMessage(w, msg); err != nil {
				return
			}
		case result := <-done:
			s.drainConsole(w, consoleChan)
			if result.err != nil {
				s.sendSSEError(w, fmt.Sprintf("Render error: %v", result.err))
				return
			}
			imageData, err := imageToBase64PNG(result.surface.Image())
			if err != nil {
				s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
				return
			}
			data, err := json.Marshal(CompleteUpdate{ImageData: imageData, Stats: toStats(result.stats)})
			if err != nil {
				s.sendSSEError(w, err.Error())
				return
			}
			s.sendSSEEvent(w, "complete", string(data))
			return
		case <-ctx.Done():
			// Client disconnected, the render stops on the same context
			s.logger.Infof("[%s] client disconnected", renderID)
			return
		}
	}
}

// handleImage renders a frame and returns it as a PNG
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result := s.renderScene(r.Context(), req, s.logger)
	if result.err != nil {
		if r.Context().Err() != nil {
			return
		}
		writeError(w, http.StatusBadRequest, result.err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(result.stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, result.surface.Image()); err != nil {
		s.logger.Errorf("failed to encode PNG: %v", err)
	}
}

func (s *Server) drainConsole(w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
