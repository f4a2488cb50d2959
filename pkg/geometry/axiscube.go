package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// CubeFace identifies one of the six faces of an AxisCube
type CubeFace int

const (
	FaceNegX CubeFace = iota // entered travelling +X
	FaceNegY                 // entered travelling +Y
	FaceNegZ                 // entered travelling +Z
	FacePosX                 // entered travelling -X
	FacePosY                 // entered travelling -Y
	FacePosZ                 // entered travelling -Z
)

// DefaultNearClip is the minimum entry distance for an AxisCube hit
const DefaultNearClip = 1e-6

// faceFrame is the tangent frame of a cube face
type faceFrame struct {
	normal, tangent, binormal core.Vec3
}

var faceFrames = [6]faceFrame{
	FaceNegX: {core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, -1, 0)},
	FaceNegY: {core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)},
	FaceNegZ: {core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, -1, 0)},
	FacePosX: {core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0)},
	FacePosY: {core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1)},
	FacePosZ: {core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
}

// AxisCube represents an axis-aligned box between two corners
type AxisCube struct {
	surface
	Min      core.Vec3 // Lowest corner
	Max      core.Vec3 // Highest corner
	NearClip float64   // Entry distances at or below this are rejected
}

// NewAxisCube creates a cube from any two opposite corners
func NewAxisCube(p0, p1 core.Vec3) *AxisCube {
	return &AxisCube{
		Min:      p0.Min(p1),
		Max:      p0.Max(p1),
		NearClip: DefaultNearClip,
	}
}

// NewAxisCubeCentered creates a cube from its center and full extents
func NewAxisCubeCentered(center core.Vec3, width, height, depth float64) *AxisCube {
	half := core.NewVec3(width/2, height/2, depth/2)
	return NewAxisCube(center.Subtract(half), center.Add(half))
}

// slab returns the entry and exit distances along one axis. A ray parallel
// to the slab is inside it for every t or for none.
func slab(origin, direction, lo, hi float64) (tmin, tmax float64, positive bool) {
	if direction == 0 {
		if origin < lo || origin > hi {
			return math.Inf(1), math.Inf(-1), true
		}
		return math.Inf(-1), math.Inf(1), true
	}
	inv := 1 / direction
	if inv >= 0 {
		return (lo - origin) * inv, (hi - origin) * inv, true
	}
	return (hi - origin) * inv, (lo - origin) * inv, false
}

// Hit tests the ray against the cube using the slab method
func (c *AxisCube) Hit(ray core.Ray) (core.RayHit, bool) {
	txmin, txmax, xpos := slab(ray.Origin.X, ray.Direction.X, c.Min.X, c.Max.X)
	tymin, tymax, ypos := slab(ray.Origin.Y, ray.Direction.Y, c.Min.Y, c.Max.Y)
	tzmin, tzmax, zpos := slab(ray.Origin.Z, ray.Direction.Z, c.Min.Z, c.Max.Z)

	// Track which axis produced the latest entry
	t0, face := tymin, pick(ypos, FaceNegY, FacePosY)
	if txmin > tymin {
		t0, face = txmin, pick(xpos, FaceNegX, FacePosX)
	}
	t1 := math.Min(txmax, tymax)

	if tzmin > t0 {
		t0, face = tzmin, pick(zpos, FaceNegZ, FacePosZ)
	}
	if tzmax < t1 {
		t1 = tzmax
	}

	if !(t0 > c.NearClip && t0 <= t1) {
		return core.RayHit{}, false
	}

	frame := faceFrames[face]
	if frame.normal.Dot(ray.Direction) >= 0 {
		return core.RayHit{}, false
	}

	point := ray.At(t0)
	return core.RayHit{
		Ray:      ray,
		Distance: t0,
		Point:    point,
		TexCoord: c.faceTexCoord(face, point),
		Normal:   frame.normal,
		Tangent:  frame.tangent,
		Binormal: frame.binormal,
		Face:     int(face),
	}, true
}

// faceTexCoord derives uv from the fractional position along the two axes
// that lie in the face plane
func (c *AxisCube) faceTexCoord(face CubeFace, p core.Vec3) core.Vec2 {
	size := c.Max.Subtract(c.Min)
	inner := c.Min.Subtract(p) // toward the lowest corner
	outer := c.Max.Subtract(p) // toward the highest corner

	var uv core.Vec2
	switch face {
	case FaceNegX:
		uv = core.NewVec2(math.Abs(outer.Z)/size.Z, math.Abs(inner.Y)/size.Y)
	case FaceNegY:
		uv = core.NewVec2(math.Abs(inner.X)/size.X, math.Abs(outer.Z)/size.Z)
	case FaceNegZ:
		uv = core.NewVec2(math.Abs(inner.X)/size.X, math.Abs(inner.Y)/size.Y)
	case FacePosX:
		uv = core.NewVec2(math.Abs(inner.Z)/size.Z, math.Abs(inner.Y)/size.Y)
	case FacePosY:
		uv = core.NewVec2(math.Abs(inner.X)/size.X, math.Abs(inner.Z)/size.Z)
	case FacePosZ:
		uv = core.NewVec2(math.Abs(outer.X)/size.X, math.Abs(inner.Y)/size.Y)
	}
	return uv.Clamp(0, 1)
}

// Fragmentate resolves the surface attributes at a hit
func (c *AxisCube) Fragmentate(hit core.RayHit) core.Fragment {
	return c.fragmentate(c, hit)
}

func pick(positive bool, ifPositive, ifNegative CubeFace) CubeFace {
	if positive {
		return ifPositive
	}
	return ifNegative
}
