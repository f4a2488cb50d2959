package core

// UnshadedColor is drawn for geometry that has no material attached
var UnshadedColor = Vec4{X: 1, Y: 0, Z: 1, W: 1}

// SurfaceBias offsets secondary rays off the surface they leave from
const SurfaceBias = 1e-4

// Fragment is the resolved surface description at a hit point. Fragments
// are values; nothing mutates one after its traceable produced it.
type Fragment struct {
	Material     Material  // Shading behavior, nil means unshaded
	Source       Traceable // Traceable the fragment was derived from
	Position     Vec3
	TexCoord     Vec2
	Normal       Vec3
	Tangent      Vec3
	Binormal     Vec3
	View         Vec3 // Unit vector from the surface back toward the ray origin
	Transparency float64
	Reflectivity float64
	Color        Vec4
	Specular     Vec4
	Emissive     Vec4
}

// DefaultFragment returns the unshaded fragment: magenta, opaque, non-reflective
func DefaultFragment() Fragment {
	return Fragment{
		Normal:   NewVec3(0, 0, 1),
		Tangent:  NewVec3(1, 0, 0),
		Binormal: NewVec3(0, 1, 0),
		View:     NewVec3(0, 0, 1),
		Color:    UnshadedColor,
	}
}

// Reflect returns the mirror ray leaving the fragment for an incoming ray
func (f Fragment) Reflect(incoming Ray) Ray {
	direction := incoming.Direction.Normalize().Reflect(f.Normal)
	return NewRay(f.Position.Add(f.Normal.Multiply(SurfaceBias)), direction)
}

// Passthrough continues an incoming ray straight past the fragment
func (f Fragment) Passthrough(incoming Ray) Ray {
	direction := incoming.Direction.Normalize()
	return NewRay(f.Position.Add(direction.Multiply(SurfaceBias)), direction)
}

// TangentToWorld maps a tangent-space vector into world space using the
// fragment's tangent frame
func (f Fragment) TangentToWorld(v Vec3) Vec3 {
	return f.Tangent.Multiply(v.X).Add(f.Binormal.Multiply(v.Y)).Add(f.Normal.Multiply(v.Z))
}
