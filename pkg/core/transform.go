package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an object in the world: a position, an orthonormal
// basis and a per-axis scale. Local x maps to Right, y to Up and z to Forward.
type Transform struct {
	Position Vec3
	Forward  Vec3
	Right    Vec3
	Up       Vec3
	Scale    Vec3

	translation mgl64.Mat4 // translate * scale
	space       mgl64.Mat4 // basis (rotation)
}

// IdentityTransform returns a transform at the origin looking down +Z
func IdentityTransform() Transform {
	return NewTransform(
		NewVec3(0, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(1, 1, 1),
	)
}

// NewTransform builds a transform from a position, basis vectors and scale
func NewTransform(position, forward, right, up, scale Vec3) Transform {
	translation := mgl64.Translate3D(position.X, position.Y, position.Z).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
	space := mgl64.Mat4FromCols(
		right.Direction(),
		up.Direction(),
		forward.Direction(),
		mgl64.Vec4{0, 0, 0, 1},
	)

	return Transform{
		Position:    position,
		Forward:     forward,
		Right:       right,
		Up:          up,
		Scale:       scale,
		translation: translation,
		space:       space,
	}
}

// NewTransformFromMatrices recovers position, basis and scale from a
// translate*scale matrix and a basis matrix
func NewTransformFromMatrices(translation, space mgl64.Mat4) Transform {
	right := Vec3FromMGL(space.Col(0))
	up := Vec3FromMGL(space.Col(1))
	forward := Vec3FromMGL(space.Col(2))

	return Transform{
		Position:    Vec3FromMGL(translation.Col(3)),
		Forward:     forward,
		Right:       right,
		Up:          up,
		Scale:       NewVec3(translation.At(0, 0), translation.At(1, 1), translation.At(2, 2)),
		translation: translation,
		space:       space,
	}
}

// LookAt builds a unit-scale transform at position facing target.
// up only needs to be roughly perpendicular to the view direction.
func LookAt(position, target, up Vec3) Transform {
	forward := target.Subtract(position).Normalize()
	right := up.Cross(forward).Normalize()
	trueUp := forward.Cross(right)
	return NewTransform(position, forward, right, trueUp, NewVec3(1, 1, 1))
}

// Map applies the basis then the translation and scale to a homogeneous vector
func (t Transform) Map(v mgl64.Vec4) mgl64.Vec4 {
	return t.translation.Mul4(t.space).Mul4x1(v)
}

// MapPoint maps a local-space point into world space
func (t Transform) MapPoint(p Vec3) Vec3 {
	return Vec3FromMGL(t.Map(p.Point()))
}

// MapVector maps a local-space direction into world space (no translation)
func (t Transform) MapVector(v Vec3) Vec3 {
	return Vec3FromMGL(t.Map(v.Direction()))
}

// MapRay maps a local-space ray into world space
func (t Transform) MapRay(r Ray) Ray {
	return NewRay(t.MapPoint(r.Origin), t.MapVector(r.Direction).Normalize())
}

// IsOrthonormal reports whether the basis vectors are unit length and
// mutually perpendicular within tolerance
func (t Transform) IsOrthonormal(tolerance float64) bool {
	unit := func(v Vec3) bool { return math.Abs(v.Length()-1) <= tolerance }
	return unit(t.Forward) && unit(t.Right) && unit(t.Up) &&
		math.Abs(t.Forward.Dot(t.Right)) <= tolerance &&
		math.Abs(t.Forward.Dot(t.Up)) <= tolerance &&
		math.Abs(t.Right.Dot(t.Up)) <= tolerance
}
