package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SceneFile is the JSON description of a scene
type SceneFile struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Group       string                   `json:"group,omitempty"`
	Render      RenderBlock              `json:"render"`
	Camera      CameraBlock              `json:"camera"`
	Materials   map[string]MaterialBlock `json:"materials,omitempty"`
	Objects     []ObjectBlock            `json:"objects"`
	Lights      []LightBlock             `json:"lights,omitempty"`

	// Dir is the directory the file was read from, used to resolve texture paths
	Dir string `json:"-"`
}

// RenderBlock holds output size and trace settings. Unset values fall back
// to the renderer defaults.
type RenderBlock struct {
	Photo           [2]int      `json:"photo"` // width, height
	ReflectDepth    *int        `json:"reflect_depth,omitempty"`
	MultiSampleRate *int        `json:"multi_sample_rate,omitempty"`
	Background      *[4]float64 `json:"background,omitempty"`
}

// CameraBlock places the camera either with a look-at target or with an
// explicit basis
type CameraBlock struct {
	Position   [3]float64  `json:"position"`
	Target     *[3]float64 `json:"target,omitempty"`
	Forward    *[3]float64 `json:"forward,omitempty"`
	Right      *[3]float64 `json:"right,omitempty"`
	Up         *[3]float64 `json:"up,omitempty"`
	Aperture   [2]float64  `json:"aperture"`
	FocalDepth float64     `json:"focal_depth"`
}

// MaterialBlock describes a lambert, phong or blinn material
type MaterialBlock struct {
	Type         string         `json:"type"`
	Color        *[4]float64    `json:"color,omitempty"`
	Specular     *[4]float64    `json:"specular,omitempty"`
	Emissive     *[4]float64    `json:"emissive,omitempty"`
	Exponent     float64        `json:"exponent,omitempty"`
	Reflectivity float64        `json:"reflectivity,omitempty"`
	Transparency float64        `json:"transparency,omitempty"`
	Textures     []TextureBlock `json:"textures,omitempty"`
}

// TextureBlock binds an image file or a procedural checkerboard to a
// material channel
type TextureBlock struct {
	Channel string        `json:"channel"`
	Image   string        `json:"image,omitempty"`
	Filter  string        `json:"filter,omitempty"` // nearest or linear
	Checker *CheckerBlock `json:"checker,omitempty"`
}

// CheckerBlock describes a procedural checkerboard texture
type CheckerBlock struct {
	Size   int           `json:"size"`   // Texture size in pixels
	Checks int           `json:"checks"` // Checks along each side
	Colors [2][4]float64 `json:"colors"`
}

// ObjectBlock describes a sphere or an axis-aligned cube
type ObjectBlock struct {
	Type     string      `json:"type"`
	Center   [3]float64  `json:"center"`
	Radius   float64     `json:"radius,omitempty"`
	Min      *[3]float64 `json:"min,omitempty"`
	Max      *[3]float64 `json:"max,omitempty"`
	Size     *[3]float64 `json:"size,omitempty"`
	Material string      `json:"material,omitempty"`
}

// LightBlock describes a point or spot light
type LightBlock struct {
	Type      string      `json:"type"`
	Position  [3]float64  `json:"position"`
	Target    *[3]float64 `json:"target,omitempty"`
	Color     *[4]float64 `json:"color,omitempty"`
	Intensity float64     `json:"intensity"`
	Angle     float64     `json:"angle,omitempty"`
	Delta     float64     `json:"delta,omitempty"`
}

// LoadSceneFile reads and decodes a JSON scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	scene.Dir = filepath.Dir(path)
	return scene, nil
}

// ParseSceneFile decodes a JSON scene. Unknown fields are rejected.
func ParseSceneFile(r io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var scene SceneFile
	if err := decoder.Decode(&scene); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Validate checks that types are known and material references resolve
func (s *SceneFile) Validate() error {
	if s.Render.Photo[0] <= 0 || s.Render.Photo[1] <= 0 {
		return fmt.Errorf("render.photo must be a positive [width, height], got %v", s.Render.Photo)
	}

	for name, m := range s.Materials {
		switch m.Type {
		case "lambert", "phong", "blinn":
		default:
			return fmt.Errorf("material %q: unknown type %q", name, m.Type)
		}
		for _, tex := range m.Textures {
			if tex.Image == "" && tex.Checker == nil {
				return fmt.Errorf("material %q: texture for channel %q needs an image or a checker", name, tex.Channel)
			}
		}
	}

	for i, o := range s.Objects {
		switch o.Type {
		case "sphere":
			if o.Radius <= 0 {
				return fmt.Errorf("object %d: sphere radius must be positive", i)
			}
		case "cube":
			if (o.Min == nil || o.Max == nil) && o.Size == nil {
				return fmt.Errorf("object %d: cube needs min/max or size", i)
			}
		default:
			return fmt.Errorf("object %d: unknown type %q", i, o.Type)
		}
		if o.Material != "" {
			if _, ok := s.Materials[o.Material]; !ok {
				return fmt.Errorf("object %d: unknown material %q", i, o.Material)
			}
		}
	}

	for i, l := range s.Lights {
		switch l.Type {
		case "point":
		case "spot":
			if l.Target == nil {
				return fmt.Errorf("light %d: spot light needs a target", i)
			}
		default:
			return fmt.Errorf("light %d: unknown type %q", i, l.Type)
		}
	}

	return nil
}

// ResolvePath makes a path from the scene file relative to its directory
func (s *SceneFile) ResolvePath(path string) string {
	if filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}
