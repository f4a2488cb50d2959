package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "sphere", "Built-in scene name, scene file name in scenes/, or path to a .json scene")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	width := flag.Int("width", 0, "Image width (overrides scene and preferences)")
	height := flag.Int("height", 0, "Image height (overrides scene and preferences)")
	depth := flag.Int("depth", -1, "Maximum reflection depth (overrides scene and preferences)")
	samples := flag.Int("samples", -1, "Multisample rate, rate² rays per pixel (overrides scene and preferences)")
	prefsDir := flag.String("prefs", "", "Preference directory scanned for *.ini files (default ~/"+loaders.PreferencesDirName+")")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		printScenes()
		return
	}

	fmt.Println("Starting Raycaster...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using scene %s (%d traceables, %d lights)\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Stack.LightSources()))

	// Preferences override the scene, flags override both
	prefs, err := loadPreferences(*prefsDir)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		prefs = &loaders.Preferences{}
	}
	prefs.Apply(&selectedScene.Config)
	selectedScene.Width, selectedScene.Height = prefs.Size(selectedScene.Width, selectedScene.Height)

	if *width > 0 {
		selectedScene.Width = *width
	}
	if *height > 0 {
		selectedScene.Height = *height
	}
	if *depth >= 0 {
		selectedScene.Config.ReflectDepth = *depth
	}
	if *samples >= 0 {
		selectedScene.Config.MultiSampleRate = *samples
	}

	filename := *output
	if filename == "" {
		outputDir := createOutputDir(*sceneType)
		if prefs.Output != "" {
			outputDir = filepath.Join(prefs.Output, filepath.Base(outputDir))
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	fmt.Printf("Rendering %dx%d, reflect depth %d, multisample rate %d\n",
		selectedScene.Width, selectedScene.Height, selectedScene.Config.ReflectDepth, selectedScene.Config.MultiSampleRate)

	img, stats, err := selectedScene.Render(renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Samples per pixel: %.1f, primary hits: %d, path nodes: %d, max depth: %d\n",
		stats.AverageSamples(), stats.PrimaryHits, stats.PathNodes, stats.MaxDepthReached)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	if err := loaders.SavePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a scene name to a built-in scene or a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}

	if s, err := scene.Builtin(sceneType); err == nil {
		return s, nil
	}

	if s := tryLoadJSONScene(sceneType); s != nil {
		return s, nil
	}

	return nil, fmt.Errorf("unknown scene %q", sceneType)
}

// tryLoadJSONScene loads sceneType as a .json path, or as a file name in
// the scenes directory. Returns nil if neither exists or parses.
func tryLoadJSONScene(sceneType string) *scene.Scene {
	var path string
	if strings.HasSuffix(sceneType, ".json") {
		path = sceneType
	} else {
		dir := scene.FindScenesDir()
		if dir == "" {
			return nil
		}
		path = filepath.Join(dir, strings.TrimPrefix(sceneType, "json:")+".json")
	}

	if _, err := os.Stat(path); err != nil {
		return nil
	}

	s, err := scene.LoadScene(path)
	if err != nil {
		fmt.Printf("Warning: failed to load scene %s: %v\n", path, err)
		return nil
	}
	return s
}

// createOutputDir returns output/<scene base name>
func createOutputDir(sceneType string) string {
	base := filepath.Base(sceneType)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimPrefix(base, "json:")
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}

// loadPreferences scans dir, or the default preference directory when dir is empty
func loadPreferences(dir string) (*loaders.Preferences, error) {
	if dir == "" {
		var err error
		if dir, err = loaders.PreferencesDir(); err != nil {
			return nil, err
		}
	}
	return loaders.ScanPreferences(dir)
}

func printScenes() {
	groups, err := scene.ListAllScenes(scene.FindScenesDir())
	if err != nil {
		fmt.Printf("Error listing scenes: %v\n", err)
		return
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			name := info.ID
			if info.Type == "json" {
				name = strings.TrimPrefix(info.ID, "json:")
			}
			fmt.Printf("  %-14s %s\n", name, info.Description)
		}
	}
}
