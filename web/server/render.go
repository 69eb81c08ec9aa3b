package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneParams
	Backend      string `json:"backend"`      // sequential, parallel or gpu
	Antialiasing int    `json:"antialiasing"` // Jitter grid: 0, 2 or 3
	MaxDepth     int    `json:"maxDepth"`     // Reflection and refraction depth
	Format       string `json:"format"`       // png or json
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Backend   string           `json:"backend"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	TracedRays       uint64  `json:"tracedRays"`
	ShadowRays       uint64  `json:"shadowRays"`
	Workers          int     `json:"workers"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	params, err := parseSceneParams(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{
		SceneParams: params,
		Backend:     values.Get("backend"),
		Format:      values.Get("format"),
	}
	if req.Backend == "" {
		req.Backend = renderer.BackendParallel
	}
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	if req.Antialiasing, err = parseIntParam(values, "aa", 0, 0, 3); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", renderer.DefaultConfig().MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Antialiasing == 3 {
		glog.Warningf("Render warning: large image with 3x3 antialiasing may render slowly")
	}
	return req, nil
}

// handleRender renders a preset and returns it as a PNG, or as JSON with
// statistics and the render log when format=json.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	tracer := otel.Tracer("go-whitted-raytracer/web")
	_, span := tracer.Start(r.Context(), "Render")
	defer span.End()

	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseRenderRequest(r)
	if err != nil {
		fail(w, span, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	span.SetAttributes(
		attribute.String("scene", req.Scene),
		attribute.String("backend", req.Backend),
		attribute.Int("width", req.Width),
		attribute.Int("height", req.Height),
		attribute.Int("aa", req.Antialiasing),
	)

	preset, err := scene.Create(req.Scene, req.Width, req.Height)
	if err != nil {
		fail(w, span, http.StatusBadRequest, err)
		return
	}
	if err := preset.Camera.SetAntialiasing(req.Antialiasing); err != nil {
		fail(w, span, http.StatusBadRequest, err)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	consoleChan := make(chan ConsoleMessage, 64)
	logger := NewWebLogger(renderID, consoleChan)

	cfg := renderer.DefaultConfig()
	cfg.MaxDepth = req.MaxDepth
	backend, err := s.newBackend(req.Backend, cfg, logger)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, renderer.ErrGPUUnavailable) {
			status = http.StatusServiceUnavailable
		}
		fail(w, span, status, err)
		return
	}
	defer renderer.CloseBackend(backend)

	startTime := time.Now()
	canvas, stats, err := renderPreset(backend, preset)
	if err != nil {
		fail(w, span, http.StatusInternalServerError, err)
		return
	}
	elapsed := time.Since(startTime)
	span.SetAttributes(attribute.Int64("elapsed_ms", elapsed.Milliseconds()))

	img := canvas.ToImage()
	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			glog.Errorf("%s: writing PNG: %v", renderID, err)
		}
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		fail(w, span, http.StatusInternalServerError, fmt.Errorf("failed to encode image: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		Backend:   backend.Name(),
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:      stats.TotalPixels,
			TotalSamples:     stats.TotalSamples,
			TracedRays:       stats.TracedRays,
			ShadowRays:       stats.ShadowRays,
			Workers:          stats.Workers,
			AverageLuminance: renderer.CalculateAverageLuminance(img),
		},
		Console:   drainConsole(consoleChan),
		ElapsedMs: elapsed.Milliseconds(),
	})
}

// guard runs fn, turning a panic such as a hit list overflow into an error
// so a bad request cannot take down the server.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render aborted: %v", r)
		}
	}()
	return fn()
}

// renderPreset runs one pass under guard
func renderPreset(b renderer.Backend, p *scene.Preset) (*renderer.Canvas, renderer.RenderStats, error) {
	var (
		canvas *renderer.Canvas
		stats  renderer.RenderStats
	)
	err := guard(func() error {
		var err error
		canvas, stats, err = b.Render(p.Scene, p.Camera)
		return err
	})
	if err != nil {
		return nil, stats, err
	}
	return canvas, stats, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fail records err on the span and writes it as a JSON error response
func fail(w http.ResponseWriter, span trace.Span, status int, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	glog.Warningf("request failed (%d): %v", status, err)
	writeError(w, status, err.Error())
}
