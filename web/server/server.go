package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Server renders scenes on request
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server. scenesDir may be empty, in which
// case only built-in scenes are served.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Built-in id or "json:<file name>"
	Width           int    `json:"width"`           // Image width, 0 keeps the scene's
	Height          int    `json:"height"`          // Image height, 0 keeps the scene's
	ReflectDepth    int    `json:"reflectDepth"`    // -1 keeps the scene's
	MultiSampleRate int    `json:"multiSampleRate"` // -1 keeps the scene's
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes by group
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	groups, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleSceneConfig returns a scene's defaults together with the request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           sceneObj.Width,
			"height":          sceneObj.Height,
			"reflectDepth":    sceneObj.Config.ReflectDepth,
			"multiSampleRate": sceneObj.Config.MultiSampleRate,
			"background":      [4]float64{sceneObj.Config.Background.X, sceneObj.Config.Background.Y, sceneObj.Config.Background.Z, sceneObj.Config.Background.W},
		},
		"limits": map[string]interface{}{
			"width":           map[string]int{"min": minSize, "max": maxSize},
			"height":          map[string]int{"min": minSize, "max": maxSize},
			"reflectDepth":    map[string]int{"min": 0, "max": renderer.MaxReflectDepth},
			"multiSampleRate": map[string]int{"min": 0, "max": renderer.MaxMultiSampleRate},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

const (
	defaultScene = "sphere"
	minSize      = 1
	maxSize      = 2000
)

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.ReflectDepth, err = parseIntParam(query, "reflectDepth", -1, 0, renderer.MaxReflectDepth); err != nil {
		return nil, err
	}
	if req.MultiSampleRate, err = parseIntParam(query, "multiSampleRate", -1, 0, renderer.MaxMultiSampleRate); err != nil {
		return nil, err
	}

	return req, nil
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

// createSceneFor builds the requested scene and applies the request overrides
func (s *Server) createSceneFor(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return nil, err
	}

	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
	if req.ReflectDepth >= 0 {
		sceneObj.Config.ReflectDepth = req.ReflectDepth
	}
	if req.MultiSampleRate >= 0 {
		sceneObj.Config.MultiSampleRate = req.MultiSampleRate
	}
	return sceneObj, nil
}

// createScene resolves a built-in id or a "json:<name>" scene file
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(sceneName, "json:"); ok {
		if s.scenesDir == "" || name != filepath.Base(name) {
			return nil, fmt.Errorf("unknown scene: %s", sceneName)
		}
		return scene.LoadScene(filepath.Join(s.scenesDir, name+".json"))
	}
	return scene.Builtin(sceneName)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
