package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the front of the sphere
func (s *Sphere) Hit(ray core.Ray) (core.RayHit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return core.RayHit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	// Smaller non-negative root
	root := t0
	if root < 0 {
		root = t1
	}
	if root < 0 {
		return core.RayHit{}, false
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Normalize()

	// Only surfaces facing the ray count
	if normal.Dot(ray.Direction) >= 0 {
		return core.RayHit{}, false
	}

	tangent := normal.Cross(core.WorldUp).Normalize()
	binormal := normal.Cross(tangent)
	texcoord := core.NewVec2((normal.X+1)/2, (normal.Y+1)/2).Clamp(0, 1)

	return core.RayHit{
		Ray:      ray,
		Distance: root,
		Point:    point,
		TexCoord: texcoord,
		Normal:   normal,
		Tangent:  tangent,
		Binormal: binormal,
		Face:     -1,
	}, true
}

// Fragmentate resolves the surface attributes at a hit
func (s *Sphere) Fragmentate(hit core.RayHit) core.Fragment {
	return s.fragmentate(s, hit)
}
