package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Request limits shared by the render and inspect endpoints
const (
	minDimension = 16
	maxDimension = 2000
	maxDepth     = 50
)

// Server handles web requests for the ray tracer
type Server struct {
	port    int
	mux     *http.ServeMux
	renders atomic.Uint64

	// newBackend creates the backend for each render
	newBackend func(kind string, config renderer.Config, logger core.Logger) (renderer.Backend, error)
	// inspectConfig drives the tracer behind /api/inspect
	inspectConfig shading.Config
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{
		port:          port,
		mux:           http.NewServeMux(),
		newBackend:    renderer.NewBackend,
		inspectConfig: shading.DefaultConfig(),
	}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// Handler returns the HTTP handler serving all endpoints
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	glog.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// SceneParams are the query parameters shared by every scene endpoint
type SceneParams struct {
	Scene  string `json:"scene"`  // Preset name, see /api/scenes
	Width  int    `json:"width"`  // Image width
	Height int    `json:"height"` // Image height
}

// parseSceneParams parses scene, width and height
func parseSceneParams(values url.Values) (SceneParams, error) {
	p := SceneParams{Scene: values.Get("scene")}
	if p.Scene == "" {
		p.Scene = "default"
	}

	var err error
	if p.Width, err = parseIntParam(values, "width", 400, minDimension, maxDimension); err != nil {
		return p, err
	}
	if p.Height, err = parseIntParam(values, "height", 225, minDimension, maxDimension); err != nil {
		return p, err
	}
	return p, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
