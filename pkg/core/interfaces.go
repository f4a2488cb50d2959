package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Traceable is a geometric primitive that rays can hit
type Traceable interface {
	// Hit reports the nearest front-facing intersection, or false on a miss
	Hit(ray Ray) (RayHit, bool)

	// Fragmentate resolves the surface attributes at a hit produced by Hit
	Fragmentate(hit RayHit) Fragment

	// Material returns the attached material, nil if the primitive is unshaded
	Material() Material
}

// Material turns lighting at a fragment into diffuse and specular light
type Material interface {
	Shade(lighting Lighting, fragment Fragment) Lumination

	// Sample looks up every texture channel at a texture coordinate
	Sample(texcoord Vec2) SurfaceSample
}

// SurfaceSample holds a material's texture channels at one texture coordinate
type SurfaceSample struct {
	Color        Vec4
	Normal       Vec3 // Tangent-space normal, (0,0,1) is unperturbed
	Specular     Vec4
	Emissive     Vec4
	Transparency float64
	Reflectivity float64
	Displacement float64
}

// TextureSampler answers 2D normalized texture-coordinate queries
type TextureSampler interface {
	Sample(texcoord Vec2) Vec4
}

// Light illuminates fragments
type Light interface {
	// Luminance returns the light's contribution to a fragment. tracer is
	// only borrowed for the duration of the call.
	Luminance(fragment Fragment, tracer Tracer) Lumination

	// Occlusion returns how much of the light is blocked, 0 = fully lit, 1 = fully shadowed
	Occlusion(fragment Fragment, tracer Tracer) float64
}

// Tracer answers nearest and farthest hit queries against a set of traceables
type Tracer interface {
	Nearest(ray Ray) (Traceable, RayHit, bool)
	Farthest(ray Ray) (Traceable, RayHit, bool)
}
