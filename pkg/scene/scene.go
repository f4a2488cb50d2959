package scene

import (
	"fmt"
	"image"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *renderer.Camera
	Stack  *Stack
	Width  int // Image width
	Height int // Image height
	Config renderer.Config
}

// Render traces and rasterizes the scene into a new photo
func (s *Scene) Render(logger core.Logger) (*image.NRGBA, renderer.RenderStats, error) {
	photo, err := renderer.NewPhoto(s.Width, s.Height, s.Config, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	defer photo.Release()

	stats, err := photo.Trace(s.Stack, s.Camera)
	if err != nil {
		return nil, stats, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return photo.Rasterize(), stats, nil
}

// GetPrimitiveCount returns the total number of traceables in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Stack.Traceables())
}

// newCamera builds a look-at camera
func newCamera(position, target core.Vec3, aperture core.Vec2, focalDepth float64) (*renderer.Camera, error) {
	transform := core.LookAt(position, target, core.WorldUp)
	return renderer.NewCamera(transform, aperture, focalDepth)
}
