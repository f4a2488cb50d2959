package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/scene"
)

const testSceneJSON = `{
  "name": "Tiny",
  "group": "Tests",
  "render": {"photo": [16, 12]},
  "camera": {"position": [0, 0, -5], "target": [0, 0, 0], "aperture": [4, 3], "focal_depth": 2},
  "materials": {"red": {"type": "phong", "color": [1, 0, 0, 1]}},
  "objects": [{"type": "sphere", "center": [0, 0, 0], "radius": 2, "material": "red"}],
  "lights": [{"type": "point", "position": [0, 3, -6], "intensity": 10}]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(testSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}
	return NewServer(0, dir)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_Health(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Errorf("Unexpected health response %v %v", body, err)
	}
}

func TestServer_Scenes(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var groups []scene.SceneGroup
	if err := json.NewDecoder(rec.Body).Decode(&groups); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(groups) != 2 || groups[0].Name != scene.BuiltinGroup || groups[1].Name != "Tests" {
		t.Fatalf("Unexpected groups %+v", groups)
	}
	if groups[1].Scenes[0].ID != "json:tiny" {
		t.Errorf("Expected json:tiny, got %q", groups[1].Scenes[0].ID)
	}
}

func TestServer_SceneConfig(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/scene-config?scene=json:tiny")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Defaults struct {
			Width        int `json:"width"`
			Height       int `json:"height"`
			ReflectDepth int `json:"reflectDepth"`
		} `json:"defaults"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode config: %v", err)
	}
	if body.Defaults.Width != 16 || body.Defaults.Height != 12 {
		t.Errorf("Expected 16x12, got %dx%d", body.Defaults.Width, body.Defaults.Height)
	}

	if rec := get(t, s, "/api/scene-config?scene=cornell"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown scene, got %d", rec.Code)
	}
	if rec := get(t, s, "/api/scene-config?scene=json:../tiny"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a path outside the scenes directory, got %d", rec.Code)
	}
}

func TestServer_RenderJSON(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=json:tiny&multiSampleRate=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body RenderResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode render: %v", err)
	}
	if body.Width != 16 || body.Height != 12 {
		t.Errorf("Expected 16x12, got %dx%d", body.Width, body.Height)
	}
	if body.Stats.TotalPixels != 16*12 || body.Stats.TotalSamples != 16*12*4 {
		t.Errorf("Unexpected stats %+v", body.Stats)
	}
	if len(body.Console) == 0 {
		t.Error("Expected trace and rasterize log lines")
	}

	data, err := base64.StdEncoding.DecodeString(body.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("Unexpected image bounds %v", img.Bounds())
	}
}

func TestServer_RenderPNG(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=sphere&width=24&height=16&format=png")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 16 {
		t.Errorf("Unexpected image bounds %v", img.Bounds())
	}
}

func TestServer_RenderInvalidParams(t *testing.T) {
	s := newTestServer(t)
	tests := []string{
		"/api/render?width=abc",
		"/api/render?width=5000",
		"/api/render?reflectDepth=65",
		"/api/render?multiSampleRate=-2",
		"/api/render?scene=nonexistent",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestServer_Inspect(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/inspect?scene=json:tiny&x=8&y=6")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode inspect: %v", err)
	}
	if !body.Hit || body.GeometryType != "sphere" || body.MaterialType != "phong" {
		t.Errorf("Expected a phong sphere, got %+v", body)
	}
	if body.PathNodes != 1 || body.Depth != 0 {
		t.Errorf("Expected a single opaque node, got %d nodes at depth %d", body.PathNodes, body.Depth)
	}

	// The corner looks past the sphere
	rec = get(t, s, "/api/inspect?scene=json:tiny&x=0&y=0")
	body = InspectResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode inspect: %v", err)
	}
	if body.Hit || body.Color != "#000000" {
		t.Errorf("Expected a background miss, got %+v", body)
	}

	for _, target := range []string{
		"/api/inspect?scene=json:tiny&x=16&y=0",
		"/api/inspect?scene=json:tiny&x=a&y=0",
		"/api/inspect?scene=json:tiny&x=0",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}
