package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec4 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec4(r, g, blue, 1).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a grid of spheres over a floor
func NewSphereGridScene() (*Scene, error) {
	camera, err := newCamera(core.NewVec3(4.5, 6, 18), core.NewVec3(4.5, 0.8, 4.5), core.NewVec2(3.2, 1.8), 2.5)
	if err != nil {
		return nil, err
	}

	stack := NewStack()

	floor := geometry.NewAxisCube(core.NewVec3(-10, -1, -10), core.NewVec3(20, 0, 20))
	floor.Attach(material.NewLambert(core.NewVec4(0.5, 0.5, 0.5, 1)))
	stack.Add(floor)

	gridSize := 8

	// Fit the grid into a 9x9 area
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			phong := material.NewPhong(oklchToRGB(lightness, chroma, hue), core.NewVec4(1, 1, 1, 1), 32)
			phong.Attach(material.NewScalar(0.2+0.1*float64((i+j)%3)), material.ChannelReflectivity)

			sphere := geometry.NewSphere(position, sphereRadius)
			sphere.Attach(phong)
			stack.Add(sphere)
		}
	}

	stack.AddLight(lights.NewPointLight(core.NewVec3(20, 25, 20), core.NewVec4(1, 0.96, 0.9, 1), 40))

	config := renderer.DefaultConfig()
	config.ReflectDepth = 2
	config.Background = core.NewVec4(0.5, 0.7, 1.0, 1)

	return &Scene{
		Name:   "sphere-grid",
		Camera: camera,
		Stack:  stack,
		Width:  400,
		Height: 225,
		Config: config,
	}, nil
}
