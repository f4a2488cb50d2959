package lights

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// PointLight emits light in every direction from a single position
type PointLight struct {
	Position  core.Vec3 // Light position in world space
	Color     core.Vec4 // Light color
	Intensity float64   // Distance at which attenuation starts, larger is brighter
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Vec4, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// Luminance implements core.Light
func (pl *PointLight) Luminance(fragment core.Fragment, tracer core.Tracer) core.Lumination {
	if fragment.Material == nil {
		return core.NewLumination(core.UnshadedColor, core.Vec4{})
	}

	toLight := pl.Position.Subtract(fragment.Position)
	attenuation := distanceAttenuation(pl.Intensity, toLight.Length())
	if attenuation > 0 {
		attenuation *= 1 - pl.Occlusion(fragment, tracer)
	}

	lighting := core.NewLighting(toLight.Normalize(), pl.Color, attenuation)
	return fragment.Material.Shade(lighting, fragment)
}

// Occlusion implements core.Light by casting a shadow ray toward the light
func (pl *PointLight) Occlusion(fragment core.Fragment, tracer core.Tracer) float64 {
	return shadowOcclusion(pl.Position, fragment, tracer)
}

// distanceAttenuation is min(intensity/distance, 1); a light sitting on the
// fragment is unattenuated
func distanceAttenuation(intensity, distance float64) float64 {
	if distance <= 0 {
		return 1
	}
	return math.Min(math.Max(intensity/distance, 0), 1)
}

// shadowOcclusion returns how much of the segment from the fragment to the
// light is blocked. Only the nearest occluder counts, and it blocks in
// proportion to its opacity.
func shadowOcclusion(position core.Vec3, fragment core.Fragment, tracer core.Tracer) float64 {
	if tracer == nil {
		return 0
	}

	origin := fragment.Position.Add(fragment.Normal.Multiply(core.SurfaceBias))
	toLight := position.Subtract(origin)
	distance := toLight.Length()
	if distance == 0 {
		return 0
	}

	// Unit direction so hit distances are world distances
	shadow := core.NewRay(origin, toLight.Normalize())

	occluder, hit, ok := tracer.Nearest(shadow)
	if !ok || hit.Distance >= distance {
		return 0
	}
	if fragment.Source != nil && occluder == fragment.Source {
		return 0
	}

	return 1 - occluder.Fragmentate(hit).Transparency
}
