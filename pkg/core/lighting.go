package core

// Lighting describes one light as seen from one fragment. It only lives for
// the duration of a single Shade call.
type Lighting struct {
	Direction   Vec3    // Unit direction from the fragment toward the light
	Color       Vec4    // Light color
	Attenuation float64 // Falloff and occlusion, clamped to [0,1]
}

// NewLighting creates lighting with the attenuation clamped to [0,1]
func NewLighting(direction Vec3, color Vec4, attenuation float64) Lighting {
	return Lighting{
		Direction:   direction,
		Color:       color,
		Attenuation: max(0, min(1, attenuation)),
	}
}

// Scale returns the light color scaled by attenuation and a shading factor,
// keeping the alpha channel of base
func (l Lighting) Scale(base Vec4, factor float64) Vec4 {
	k := factor * l.Attenuation
	return Vec4{
		X: base.X * l.Color.X * k,
		Y: base.Y * l.Color.Y * k,
		Z: base.Z * l.Color.Z * k,
		W: base.W,
	}
}
