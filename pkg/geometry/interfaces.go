package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// surface is embedded by every primitive and carries its material binding
type surface struct {
	material core.Material
}

// Attach binds a material used to shade the primitive
func (s *surface) Attach(material core.Material) {
	s.material = material
}

// Material returns the attached material, nil if unshaded
func (s *surface) Material() core.Material {
	return s.material
}

// fragmentate resolves a hit into a fragment, sampling the material's
// texture channels at the hit's texture coordinate
func (s *surface) fragmentate(source core.Traceable, hit core.RayHit) core.Fragment {
	frag := core.DefaultFragment()
	frag.Source = source
	frag.Position = hit.Point
	frag.TexCoord = hit.TexCoord
	frag.Normal = hit.Normal
	frag.Tangent = hit.Tangent
	frag.Binormal = hit.Binormal
	frag.View = hit.Ray.Direction.Negate().Normalize()

	if s.material == nil {
		return frag
	}

	sample := s.material.Sample(hit.TexCoord)
	frag.Material = s.material
	frag.Color = sample.Color
	frag.Specular = sample.Specular
	frag.Emissive = sample.Emissive
	frag.Transparency = sample.Transparency
	frag.Reflectivity = sample.Reflectivity
	frag.Position = frag.Position.Add(frag.Normal.Multiply(sample.Displacement))

	if perturbed := frag.TangentToWorld(sample.Normal).Normalize(); perturbed.LengthSquared() > 0 {
		frag.Normal = perturbed
	}

	return frag
}
