package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

var white = core.NewVec4(1, 1, 1, 1)

// Cone used for spot lights that give no angle, in degrees
const (
	defaultSpotAngle = 30.0
	defaultSpotDelta = 5.0
)

// LoadScene reads a JSON scene file and builds the scene it describes
func LoadScene(path string) (*Scene, error) {
	file, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return NewSceneFromFile(file)
}

// NewSceneFromFile builds a scene from a decoded scene file
func NewSceneFromFile(file *loaders.SceneFile) (*Scene, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	config := renderer.DefaultConfig()
	if file.Render.ReflectDepth != nil {
		config.ReflectDepth = *file.Render.ReflectDepth
	}
	if file.Render.MultiSampleRate != nil {
		config.MultiSampleRate = *file.Render.MultiSampleRate
	}
	if file.Render.Background != nil {
		config.Background = vec4(*file.Render.Background)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	camera, err := cameraFromBlock(file.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	materials := make(map[string]core.Material, len(file.Materials))
	for name, block := range file.Materials {
		m, err := materialFromBlock(file, block)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	stack := NewStack()
	for _, block := range file.Objects {
		stack.Add(objectFromBlock(block, materials[block.Material]))
	}
	for _, block := range file.Lights {
		stack.AddLight(lightFromBlock(block))
	}

	name := file.Name
	if name == "" {
		name = "untitled"
	}

	return &Scene{
		Name:   name,
		Camera: camera,
		Stack:  stack,
		Width:  file.Render.Photo[0],
		Height: file.Render.Photo[1],
		Config: config,
	}, nil
}

func cameraFromBlock(block loaders.CameraBlock) (*renderer.Camera, error) {
	position := vec3(block.Position)
	aperture := core.NewVec2(block.Aperture[0], block.Aperture[1])

	up := core.WorldUp
	if block.Up != nil {
		up = vec3(*block.Up)
	}

	if block.Target != nil {
		return renderer.NewCamera(core.LookAt(position, vec3(*block.Target), up), aperture, block.FocalDepth)
	}

	forward := core.NewVec3(0, 0, 1)
	if block.Forward != nil {
		forward = vec3(*block.Forward).Normalize()
	}
	right := up.Cross(forward).Normalize()
	if block.Right != nil {
		right = vec3(*block.Right).Normalize()
	}

	transform := core.NewTransform(position, forward, right, up.Normalize(), core.NewVec3(1, 1, 1))
	return renderer.NewCamera(transform, aperture, block.FocalDepth)
}

// textured is implemented by every material through its embedded Surface
type textured interface {
	core.Material
	Attach(sampler core.TextureSampler, channel material.Channel)
}

func materialFromBlock(file *loaders.SceneFile, block loaders.MaterialBlock) (core.Material, error) {
	color := white
	if block.Color != nil {
		color = vec4(*block.Color)
	}
	specular := white
	if block.Specular != nil {
		specular = vec4(*block.Specular)
	}

	var m textured
	switch block.Type {
	case "phong":
		m = material.NewPhong(color, specular, block.Exponent)
	case "blinn":
		m = material.NewBlinn(color, specular, block.Exponent)
	default:
		m = material.NewLambert(color)
	}

	if block.Emissive != nil {
		m.Attach(material.NewSolidColor(vec4(*block.Emissive)), material.ChannelEmissive)
	}
	if block.Reflectivity > 0 {
		m.Attach(material.NewScalar(block.Reflectivity), material.ChannelReflectivity)
	}
	if block.Transparency > 0 {
		m.Attach(material.NewScalar(block.Transparency), material.ChannelTransparency)
	}

	for _, tex := range block.Textures {
		channel, ok := material.ParseChannel(tex.Channel)
		if !ok {
			return nil, fmt.Errorf("unknown texture channel %q", tex.Channel)
		}
		sampler, err := textureFromBlock(file, tex)
		if err != nil {
			return nil, err
		}
		m.Attach(sampler, channel)
	}

	return m, nil
}

func textureFromBlock(file *loaders.SceneFile, block loaders.TextureBlock) (core.TextureSampler, error) {
	if block.Checker != nil {
		size := max(block.Checker.Size, 1)
		checks := max(block.Checker.Checks, 1)
		return material.NewCheckerboardTexture(size, size, max(size/checks, 1),
			vec4(block.Checker.Colors[0]), vec4(block.Checker.Colors[1])), nil
	}

	img, err := loaders.LoadImage(file.ResolvePath(block.Image))
	if err != nil {
		return nil, err
	}

	filter := material.FilterNearest
	if block.Filter == "linear" {
		filter = material.FilterLinear
	}
	return material.NewImageTexture(img.Width, img.Height, img.Pixels, filter), nil
}

func objectFromBlock(block loaders.ObjectBlock, m core.Material) core.Traceable {
	switch block.Type {
	case "cube":
		var cube *geometry.AxisCube
		if block.Min != nil && block.Max != nil {
			cube = geometry.NewAxisCube(vec3(*block.Min), vec3(*block.Max))
		} else {
			size := *block.Size
			cube = geometry.NewAxisCubeCentered(vec3(block.Center), size[0], size[1], size[2])
		}
		if m != nil {
			cube.Attach(m)
		}
		return cube
	default:
		sphere := geometry.NewSphere(vec3(block.Center), block.Radius)
		if m != nil {
			sphere.Attach(m)
		}
		return sphere
	}
}

func lightFromBlock(block loaders.LightBlock) core.Light {
	color := white
	if block.Color != nil {
		color = vec4(*block.Color)
	}

	if block.Type == "spot" {
		angle, delta := block.Angle, block.Delta
		if angle <= 0 {
			angle, delta = defaultSpotAngle, defaultSpotDelta
		}
		return lights.NewSpotLight(vec3(block.Position), vec3(*block.Target), color, block.Intensity, angle, delta)
	}
	return lights.NewPointLight(vec3(block.Position), color, block.Intensity)
}

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func vec4(a [4]float64) core.Vec4 {
	return core.NewVec4(a[0], a[1], a[2], a[3])
}
