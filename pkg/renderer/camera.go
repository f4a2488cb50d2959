package renderer

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Camera generates rays for rendering. It is a pinhole camera: every ray
// leaves the viewport plane on a line through a single focal point behind it.
type Camera struct {
	Transform  core.Transform
	Aperture   core.Vec2 // Viewport width and height in world units
	FocalDepth float64   // Distance from the viewport back to the focal point

	topLeft core.Vec3 // Viewport corner at u=0, v=0
	uAxis   core.Vec3 // Spans the viewport left to right
	vAxis   core.Vec3 // Spans the viewport top to bottom
	focal   core.Vec3
}

// NewCamera creates a camera whose viewport is centered on the transform's
// position and faces along its forward axis
func NewCamera(transform core.Transform, aperture core.Vec2, focalDepth float64) (*Camera, error) {
	if aperture.X <= 0 || aperture.Y <= 0 {
		return nil, fmt.Errorf("camera aperture %vx%v has no area: %w", aperture.X, aperture.Y, core.ErrInvalidConfiguration)
	}
	if focalDepth <= 0 {
		return nil, fmt.Errorf("camera focal depth %v must be positive: %w", focalDepth, core.ErrInvalidConfiguration)
	}

	c := &Camera{
		Transform:  transform,
		Aperture:   aperture,
		FocalDepth: focalDepth,
		topLeft:    transform.MapPoint(core.NewVec3(-aperture.X/2, aperture.Y/2, 0)),
		uAxis:      transform.MapVector(core.NewVec3(aperture.X, 0, 0)),
		vAxis:      transform.MapVector(core.NewVec3(0, -aperture.Y, 0)),
		focal:      transform.MapPoint(core.NewVec3(0, 0, -focalDepth)),
	}

	// A degenerate transform can collapse the viewport even when the aperture is valid
	if area := c.uAxis.Cross(c.vAxis).Length(); !(area > minViewportArea) {
		return nil, fmt.Errorf("camera viewport has no area in world space: %w", core.ErrInvalidConfiguration)
	}
	if depth := transform.MapPoint(core.Vec3{}).Subtract(c.focal).Length(); !(depth > minViewportArea) {
		return nil, fmt.Errorf("camera focal point lies on the viewport: %w", core.ErrInvalidConfiguration)
	}
	return c, nil
}

// minViewportArea is the smallest world-space viewport area or focal
// distance a camera accepts
const minViewportArea = 1e-12

// Cast returns the ray through viewport coordinates (u, v), where (0,0) is
// the top-left corner and (1,1) the bottom-right
func (c *Camera) Cast(u, v float64) core.Ray {
	origin := c.topLeft.Add(c.uAxis.Multiply(u)).Add(c.vAxis.Multiply(v))
	return core.NewRay(origin, origin.Subtract(c.focal).Normalize())
}

// Position returns the world-space focal point all rays diverge from
func (c *Camera) Position() core.Vec3 {
	return c.focal
}
