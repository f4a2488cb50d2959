package lights

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// SpotLight is a point light restricted to a cone with a soft edge
type SpotLight struct {
	PointLight
	direction       core.Vec3 // Normalized direction vector (from -> to)
	cosTotalWidth   float64   // Cosine of total cone angle (outer edge)
	cosFalloffStart float64   // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a new spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewSpotLight(from, to core.Vec3, color core.Vec4, intensity, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &SpotLight{
		PointLight:      *NewPointLight(from, color, intensity),
		direction:       to.Subtract(from).Normalize(),
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Luminance implements core.Light
func (sl *SpotLight) Luminance(fragment core.Fragment, tracer core.Tracer) core.Lumination {
	if fragment.Material == nil {
		return core.NewLumination(core.UnshadedColor, core.Vec4{})
	}

	toLight := sl.Position.Subtract(fragment.Position)
	lightToPoint := toLight.Normalize().Negate()

	attenuation := distanceAttenuation(sl.Intensity, toLight.Length()) * sl.falloff(sl.direction.Dot(lightToPoint))
	if attenuation > 0 {
		attenuation *= 1 - sl.Occlusion(fragment, tracer)
	}

	lighting := core.NewLighting(toLight.Normalize(), sl.Color, attenuation)
	return fragment.Material.Shade(lighting, fragment)
}

// falloff calculates the spot light falloff
// Based on the cosine of the angle between light direction and direction to point
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	// Outside the total cone width
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}

	// Inside the inner cone (full intensity)
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	// Smooth falloff using quartic curve
	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}
