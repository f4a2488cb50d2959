package core

// Ray represents a ray with an origin point and a forward direction.
// Callers may pass an unnormalized direction; every composition operator
// below re-normalizes the result.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Negate flips both the origin and the direction
func (r Ray) Negate() Ray {
	return Ray{Origin: r.Origin.Negate(), Direction: r.Direction.Negate()}
}

// Offset translates the origin, leaving the direction untouched
func (r Ray) Offset(v Vec3) Ray {
	return Ray{Origin: r.Origin.Add(v), Direction: r.Direction}
}

// Add sums origins and directions
func (r Ray) Add(other Ray) Ray {
	return Ray{
		Origin:    r.Origin.Add(other.Origin),
		Direction: r.Direction.Add(other.Direction).Normalize(),
	}
}

// Subtract takes the difference of origins and directions
func (r Ray) Subtract(other Ray) Ray {
	return Ray{
		Origin:    r.Origin.Subtract(other.Origin),
		Direction: r.Direction.Subtract(other.Direction).Normalize(),
	}
}

// Multiply multiplies origins and directions component-wise
func (r Ray) Multiply(other Ray) Ray {
	return Ray{
		Origin:    r.Origin.MultiplyVec(other.Origin),
		Direction: r.Direction.MultiplyVec(other.Direction).Normalize(),
	}
}

// Divide divides origins and directions component-wise
func (r Ray) Divide(other Ray) Ray {
	return Ray{
		Origin:    r.Origin.DivideVec(other.Origin),
		Direction: r.Direction.DivideVec(other.Direction).Normalize(),
	}
}

// Scale scales the origin and direction by s
func (r Ray) Scale(s float64) Ray {
	return Ray{
		Origin:    r.Origin.Multiply(s),
		Direction: r.Direction.Multiply(s).Normalize(),
	}
}

// ScaleVec scales the origin and direction per axis
func (r Ray) ScaleVec(v Vec3) Ray {
	return Ray{
		Origin:    r.Origin.MultiplyVec(v),
		Direction: r.Direction.MultiplyVec(v).Normalize(),
	}
}
