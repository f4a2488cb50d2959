package core

import "math"

// NoHitDistance marks a RayHit that does not describe an intersection
const NoHitDistance = math.MaxFloat64

// RayHit is the result of a single ray-primitive intersection test
type RayHit struct {
	Ray      Ray     // Ray that produced the hit
	Distance float64 // Parameter t along the ray
	Point    Vec3    // Point of intersection
	TexCoord Vec2    // Texture coordinate in [0,1]
	Normal   Vec3    // Outward surface normal
	Tangent  Vec3    // Surface tangent
	Binormal Vec3    // Surface binormal
	Face     int     // Face index for faceted primitives, -1 otherwise
}

// Valid reports whether the hit distance is non-negative and finite
func (h RayHit) Valid() bool {
	return h.Distance >= 0 && h.Distance < NoHitDistance && !math.IsInf(h.Distance, 0) && !math.IsNaN(h.Distance)
}
