package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"sphere scene", "sphere", false},
		{"cube scene", "cube", false},
		{"mirror scene", "mirror", false},
		{"sphere-grid scene", "sphere-grid", false},
		{"texture scene", "texture", false},

		// JSON scenes (by name)
		{"two-spheres JSON", "two-spheres", false},
		{"hall-of-mirrors JSON", "hall-of-mirrors", false},
		{"glass-panel by id", "json:glass-panel", false},

		// JSON scenes (by path)
		{"direct JSON path", "scenes/two-spheres.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Width <= 0 || scene.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", scene.Width, scene.Height)
			}
			if scene.Camera == nil {
				t.Error("Scene should have a camera")
			}
			if err := scene.Config.Validate(); err != nil {
				t.Errorf("Scene config should be valid: %v", err)
			}
		})
	}
}

func TestTryLoadJSONScene(t *testing.T) {
	tests := []struct {
		name       string
		sceneType  string
		expectLoad bool
	}{
		{"two-spheres by name", "two-spheres", true},
		{"two-spheres by path", "scenes/two-spheres.json", true},
		{"nonexistent JSON", "nonexistent", false},
		{"invalid path", "scenes/nonexistent.json", false},
		{"built-in scene name", "mirror", false}, // Built-in scenes shouldn't load as JSON
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := tryLoadJSONScene(tt.sceneType)
			if tt.expectLoad && scene == nil {
				t.Errorf("Expected JSON scene to load for '%s', got nil", tt.sceneType)
			}
			if !tt.expectLoad && scene != nil {
				t.Errorf("Expected JSON scene not to load for '%s', got %s", tt.sceneType, scene.Name)
			}
		})
	}
}

func TestTryLoadJSONScene_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"render": {"photo": [0, 0]}}`), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}
	if scene := tryLoadJSONScene(path); scene != nil {
		t.Errorf("Expected an invalid scene file not to load, got %s", scene.Name)
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
		expected  string
	}{
		{"built-in scene", "sphere", filepath.Join("output", "sphere")},
		{"JSON scene by name", "two-spheres", filepath.Join("output", "two-spheres")},
		{"JSON scene by id", "json:glass-panel", filepath.Join("output", "glass-panel")},
		{"JSON file path", "scenes/two-spheres.json", filepath.Join("output", "two-spheres")},
		{"nested JSON path", "scenes/subdir/my-scene.json", filepath.Join("output", "my-scene")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.sceneType); got != tt.expected {
				t.Errorf("createOutputDir(%q) = %q, expected %q", tt.sceneType, got, tt.expected)
			}
		})
	}
}

func TestLoadPreferences(t *testing.T) {
	dir := t.TempDir()
	content := "[render]\nwidth = 64\nreflect_depth = 2\noutput = renders\n"
	if err := os.WriteFile(filepath.Join(dir, "render.ini"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write preferences: %v", err)
	}

	prefs, err := loadPreferences(dir)
	if err != nil {
		t.Fatalf("loadPreferences failed: %v", err)
	}
	if prefs.Width != 64 || prefs.ReflectDepth == nil || *prefs.ReflectDepth != 2 || !strings.EqualFold(prefs.Output, "renders") {
		t.Errorf("Unexpected preferences %+v", prefs)
	}
}
