package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewTextureTestScene creates a scene demonstrating texture mapping on both
// primitive types
func NewTextureTestScene() (*Scene, error) {
	camera, err := newCamera(core.NewVec3(0, 2, -10), core.NewVec3(0, 1, 0), core.NewVec2(3.2, 1.8), 2)
	if err != nil {
		return nil, err
	}

	// Procedural textures
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec4(0.9, 0.9, 0.9, 1), // White
		core.NewVec4(0.2, 0.2, 0.8, 1), // Blue
	)
	redGreenGradient := material.NewGradientTexture(256, 256,
		core.NewVec4(1.0, 0.2, 0.2, 1), // Red (top)
		core.NewVec4(0.2, 1.0, 0.2, 1), // Green (bottom)
	)
	uvDebug := material.NewUVDebugTexture(256, 256)

	stack := NewStack()

	// Left: checkerboard sphere
	checkered := material.NewLambert(core.NewVec4(1, 1, 1, 1))
	checkered.Attach(checkerboard, material.ChannelColor)
	left := geometry.NewSphere(core.NewVec3(-3, 1, 0), 1)
	left.Attach(checkered)

	// Center: gradient cube with a glossy highlight
	gradient := material.NewBlinn(core.NewVec4(1, 1, 1, 1), core.NewVec4(0.5, 0.5, 0.5, 1), 0)
	gradient.Attach(redGreenGradient, material.ChannelColor)
	center := geometry.NewAxisCubeCentered(core.NewVec3(0, 1, 0), 2, 2, 2)
	center.Attach(gradient)

	// Right: UV debug sphere
	debug := material.NewPhong(core.NewVec4(1, 1, 1, 1), core.NewVec4(0.3, 0.3, 0.3, 1), 0)
	debug.Attach(uvDebug, material.ChannelColor)
	right := geometry.NewSphere(core.NewVec3(3, 1, 0), 1)
	right.Attach(debug)

	// Floor: flat normal map leaves shading unchanged
	floorMaterial := material.NewLambert(core.NewVec4(0.6, 0.6, 0.6, 1))
	floorMaterial.Attach(material.NewFlatNormalMap(), material.ChannelNormal)
	floor := geometry.NewAxisCube(core.NewVec3(-8, -0.5, -8), core.NewVec3(8, 0, 8))
	floor.Attach(floorMaterial)

	stack.Add(left, center, right, floor)
	stack.AddLight(
		lights.NewPointLight(core.NewVec3(-4, 6, -6), core.NewVec4(1, 1, 1, 1), 8),
		lights.NewSpotLight(core.NewVec3(0, 6, -3), core.NewVec3(0, 1, 0), core.NewVec4(1, 0.9, 0.8, 1), 8, 30, 8),
	)

	return &Scene{
		Name:   "texture",
		Camera: camera,
		Stack:  stack,
		Width:  400,
		Height: 225,
		Config: renderer.DefaultConfig(),
	}, nil
}
