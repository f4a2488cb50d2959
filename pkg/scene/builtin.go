package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// builtinScene pairs a scene's metadata with its constructor
type builtinScene struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{builtinInfo("sphere", "Sphere", "Single phong sphere filling the view"), NewSphereScene},
	{builtinInfo("cube", "Cube", "Checkered blinn cube seen from above a corner"), NewCubeScene},
	{builtinInfo("mirror", "Mirror", "Reflective sphere facing a second sphere over a floor"), NewMirrorScene},
	{builtinInfo("sphere-grid", "Sphere Grid", "Grid of rainbow-colored phong spheres"), NewSphereGridScene},
	{builtinInfo("texture", "Texture Test", "Procedural textures on spheres and cubes"), NewTextureTestScene},
}

func builtinInfo(id, name, description string) SceneInfo {
	return SceneInfo{
		ID:          id,
		Name:        name,
		DisplayName: name,
		Description: description,
		Group:       BuiltinGroup,
		Type:        "builtin",
	}
}

// Builtin creates the built-in scene with the given id
func Builtin(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create()
		}
	}
	return nil, fmt.Errorf("unknown built-in scene %q", id)
}

// BuiltinScenes lists the built-in scenes in display order
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// NewSphereScene creates a radius 4 sphere at the origin seen from z=-4
// through a 4x3 viewport
func NewSphereScene() (*Scene, error) {
	camera, err := newCamera(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 0), core.NewVec2(4, 3), 1.6)
	if err != nil {
		return nil, err
	}

	stack := NewStack()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 4)
	sphere.Attach(material.NewPhong(core.NewVec4(0.8, 0.3, 0.2, 1), core.NewVec4(1, 1, 1, 1), material.DefaultPhongExponent))
	stack.Add(sphere)
	stack.AddLight(lights.NewPointLight(core.NewVec3(6, 8, -10), core.NewVec4(1, 1, 1, 1), 12))

	return &Scene{
		Name:   "sphere",
		Camera: camera,
		Stack:  stack,
		Width:  240,
		Height: 160,
		Config: renderer.DefaultConfig(),
	}, nil
}

// NewCubeScene creates a checkered cube between (-2,-2,-2) and (2,2,2)
func NewCubeScene() (*Scene, error) {
	camera, err := newCamera(core.NewVec3(6, 5, 8), core.NewVec3(0, 0, 0), core.NewVec2(2, 1.5), 2)
	if err != nil {
		return nil, err
	}

	checker := material.NewCheckerboardTexture(64, 64, 16, core.NewVec4(0.9, 0.9, 0.9, 1), core.NewVec4(0.2, 0.2, 0.8, 1))
	blinn := material.NewBlinn(core.NewVec4(1, 1, 1, 1), core.NewVec4(0.6, 0.6, 0.6, 1), material.DefaultBlinnExponent)
	blinn.Attach(checker, material.ChannelColor)

	cube := geometry.NewAxisCube(core.NewVec3(-2, -2, -2), core.NewVec3(2, 2, 2))
	cube.Attach(blinn)

	stack := NewStack()
	stack.Add(cube)
	stack.AddLight(lights.NewPointLight(core.NewVec3(5, 8, 10), core.NewVec4(1, 1, 1, 1), 15))

	return &Scene{
		Name:   "cube",
		Camera: camera,
		Stack:  stack,
		Width:  320,
		Height: 240,
		Config: renderer.DefaultConfig(),
	}, nil
}

// NewMirrorScene creates a reflective sphere facing a red sphere, both
// resting over a floor slab
func NewMirrorScene() (*Scene, error) {
	camera, err := newCamera(core.NewVec3(0, 0.5, -8), core.NewVec3(0, 0, 0), core.NewVec2(4, 3), 2.5)
	if err != nil {
		return nil, err
	}

	silver := material.NewPhong(core.NewVec4(0.8, 0.8, 0.85, 1), core.NewVec4(1, 1, 1, 1), 64)
	silver.Attach(material.NewScalar(0.8), material.ChannelReflectivity)
	mirror := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.5)
	mirror.Attach(silver)

	target := geometry.NewSphere(core.NewVec3(2.5, 0, -4), 1)
	target.Attach(material.NewLambert(core.NewVec4(0.9, 0.2, 0.2, 1)))

	floorTexture := material.NewCheckerboardTexture(128, 128, 16, core.NewVec4(0.8, 0.8, 0.8, 1), core.NewVec4(0.3, 0.3, 0.3, 1))
	floorMaterial := material.NewLambert(core.NewVec4(1, 1, 1, 1))
	floorMaterial.Attach(floorTexture, material.ChannelColor)
	floor := geometry.NewAxisCube(core.NewVec3(-10, -2.5, -10), core.NewVec3(10, -1.5, 10))
	floor.Attach(floorMaterial)

	stack := NewStack()
	stack.Add(mirror, target, floor)
	stack.AddLight(lights.NewPointLight(core.NewVec3(4, 6, -6), core.NewVec4(1, 1, 1, 1), 10))

	config := renderer.DefaultConfig()
	config.Background = core.NewVec4(0.5, 0.7, 1.0, 1)

	return &Scene{
		Name:   "mirror",
		Camera: camera,
		Stack:  stack,
		Width:  320,
		Height: 240,
		Config: config,
	}, nil
}
