package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Channel names a texture slot on a Surface
type Channel int

const (
	ChannelColor Channel = iota
	ChannelNormal
	ChannelSpecular
	ChannelTransparency
	ChannelReflectivity
	ChannelEmissive
	ChannelDisplacement
)

var channelNames = map[string]Channel{
	"color":        ChannelColor,
	"normal":       ChannelNormal,
	"specular":     ChannelSpecular,
	"transparency": ChannelTransparency,
	"reflectivity": ChannelReflectivity,
	"emissive":     ChannelEmissive,
	"displacement": ChannelDisplacement,
}

// ParseChannel maps a channel name such as "color" or "normal" to a Channel
func ParseChannel(name string) (Channel, bool) {
	c, ok := channelNames[name]
	return c, ok
}

// Surface holds the texture channels shared by every material.
// A channel left nil falls back to its default.
type Surface struct {
	ColorMap        core.TextureSampler
	NormalMap       core.TextureSampler
	SpecularMap     core.TextureSampler
	TransparencyMap core.TextureSampler
	ReflectivityMap core.TextureSampler
	EmissiveMap     core.TextureSampler
	DisplacementMap core.TextureSampler
}

// Defaults for unbound channels
var (
	DefaultColor    = core.NewVec4(1, 1, 1, 1)
	DefaultSpecular = core.NewVec4(0, 0, 0, 0)
	DefaultEmissive = core.NewVec4(0, 0, 0, 0)
	DefaultNormal   = core.NewVec3(0, 0, 1)
)

// Attach binds a sampler to exactly one channel
func (s *Surface) Attach(sampler core.TextureSampler, channel Channel) {
	switch channel {
	case ChannelColor:
		s.ColorMap = sampler
	case ChannelNormal:
		s.NormalMap = sampler
	case ChannelSpecular:
		s.SpecularMap = sampler
	case ChannelTransparency:
		s.TransparencyMap = sampler
	case ChannelReflectivity:
		s.ReflectivityMap = sampler
	case ChannelEmissive:
		s.EmissiveMap = sampler
	case ChannelDisplacement:
		s.DisplacementMap = sampler
	}
}

// Sample looks up every channel at a texture coordinate
func (s *Surface) Sample(texcoord core.Vec2) core.SurfaceSample {
	sample := core.SurfaceSample{
		Color:    DefaultColor,
		Normal:   DefaultNormal,
		Specular: DefaultSpecular,
		Emissive: DefaultEmissive,
	}

	if s.ColorMap != nil {
		sample.Color = s.ColorMap.Sample(texcoord)
	}
	if s.NormalMap != nil {
		// Stored as rgb in [0,1], decoded to [-1,1]
		n := s.NormalMap.Sample(texcoord).XYZ()
		sample.Normal = n.Multiply(2).Subtract(core.NewVec3(1, 1, 1)).Normalize()
	}
	if s.SpecularMap != nil {
		sample.Specular = s.SpecularMap.Sample(texcoord)
	}
	if s.EmissiveMap != nil {
		sample.Emissive = s.EmissiveMap.Sample(texcoord)
	}
	if s.TransparencyMap != nil {
		sample.Transparency = clamp01(s.TransparencyMap.Sample(texcoord).Mean())
	}
	if s.ReflectivityMap != nil {
		sample.Reflectivity = clamp01(s.ReflectivityMap.Sample(texcoord).Mean())
	}
	if s.DisplacementMap != nil {
		sample.Displacement = s.DisplacementMap.Sample(texcoord).Mean()
	}

	return sample
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// diffuse is the Lambert term shared by every material
func diffuse(lighting core.Lighting, fragment core.Fragment) core.Vec4 {
	return lighting.Scale(fragment.Color, max(fragment.Normal.Dot(lighting.Direction), 0))
}
