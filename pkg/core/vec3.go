package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 represents a 2D vector, used for texture and viewport coordinates
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec2) Clamp(minVal, maxVal float64) Vec2 {
	return Vec2{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
	}
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// WorldUp is the up axis used to derive tangent frames
var WorldUp = Vec3{X: 0, Y: 1, Z: 0}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Reflect mirrors the incident vector v about normal n: v - 2(n·v)n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * n.Dot(v)))
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Equals reports whether two vectors are within 1e-9 of each other
func (v Vec3) Equals(other Vec3) bool {
	return v.Subtract(other).Length() <= 1e-9
}

// Point lifts the vector to a homogeneous point (w = 1)
func (v Vec3) Point() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 1}
}

// Direction lifts the vector to a homogeneous direction (w = 0)
func (v Vec3) Direction() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 0}
}

// Vec3FromMGL drops the w component of a homogeneous vector
func Vec3FromMGL(v mgl64.Vec4) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec4 is an RGBA color (or any 4-component quantity) with float channels
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a Vec4 with every component set to s
func Splat4(s float64) Vec4 {
	return Vec4{s, s, s, s}
}

// RGB returns an opaque color from its red, green and blue channels
func RGB(r, g, b float64) Vec4 {
	return Vec4{r, g, b, 1}
}

// Add returns the sum of two colors
func (c Vec4) Add(other Vec4) Vec4 {
	return Vec4{c.X + other.X, c.Y + other.Y, c.Z + other.Z, c.W + other.W}
}

// Subtract returns the difference of two colors
func (c Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{c.X - other.X, c.Y - other.Y, c.Z - other.Z, c.W - other.W}
}

// Multiply returns the color scaled by a scalar
func (c Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{c.X * scalar, c.Y * scalar, c.Z * scalar, c.W * scalar}
}

// MultiplyVec returns component-wise multiplication of two colors
func (c Vec4) MultiplyVec(other Vec4) Vec4 {
	return Vec4{c.X * other.X, c.Y * other.Y, c.Z * other.Z, c.W * other.W}
}

// DivideVec returns component-wise division of two colors
func (c Vec4) DivideVec(other Vec4) Vec4 {
	return Vec4{c.X / other.X, c.Y / other.Y, c.Z / other.Z, c.W / other.W}
}

// Lerp linearly interpolates between c (t = 0) and other (t = 1)
func (c Vec4) Lerp(other Vec4, t float64) Vec4 {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// Clamp returns a color with components clamped to [min, max]
func (c Vec4) Clamp(minVal, maxVal float64) Vec4 {
	return Vec4{
		X: max(minVal, min(maxVal, c.X)),
		Y: max(minVal, min(maxVal, c.Y)),
		Z: max(minVal, min(maxVal, c.Z)),
		W: max(minVal, min(maxVal, c.W)),
	}
}

// XYZ returns the first three components
func (c Vec4) XYZ() Vec3 {
	return Vec3{c.X, c.Y, c.Z}
}

// Mean returns the average of the red, green and blue channels
func (c Vec4) Mean() float64 {
	return (c.X + c.Y + c.Z) / 3
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Vec4) Luminance() float64 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

// Equals reports whether two colors are within 1e-9 of each other per channel
func (c Vec4) Equals(other Vec4) bool {
	const tolerance = 1e-9
	return math.Abs(c.X-other.X) <= tolerance &&
		math.Abs(c.Y-other.Y) <= tolerance &&
		math.Abs(c.Z-other.Z) <= tolerance &&
		math.Abs(c.W-other.W) <= tolerance
}
