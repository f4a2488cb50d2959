package core

// Lumination accumulates diffuse and specular light. The zero value is the
// identity for Add.
type Lumination struct {
	Diffuse  Vec4
	Specular Vec4
}

// NewLumination creates a lumination from its two terms
func NewLumination(diffuse, specular Vec4) Lumination {
	return Lumination{Diffuse: diffuse, Specular: specular}
}

// Flatten combines the terms into a final color: diffuse + (1-diffuse)*specular.
// Alpha is never allowed below 1.
func (l Lumination) Flatten() Vec4 {
	c := l.Diffuse.Add(Splat4(1).Subtract(l.Diffuse).MultiplyVec(l.Specular))
	c.W = max(c.W, 1)
	return c
}

// Add sums two luminations term by term
func (l Lumination) Add(other Lumination) Lumination {
	return Lumination{l.Diffuse.Add(other.Diffuse), l.Specular.Add(other.Specular)}
}

// Subtract takes the term-by-term difference
func (l Lumination) Subtract(other Lumination) Lumination {
	return Lumination{l.Diffuse.Subtract(other.Diffuse), l.Specular.Subtract(other.Specular)}
}

// Multiply multiplies term by term, component-wise
func (l Lumination) Multiply(other Lumination) Lumination {
	return Lumination{l.Diffuse.MultiplyVec(other.Diffuse), l.Specular.MultiplyVec(other.Specular)}
}

// Divide divides term by term, component-wise
func (l Lumination) Divide(other Lumination) Lumination {
	return Lumination{l.Diffuse.DivideVec(other.Diffuse), l.Specular.DivideVec(other.Specular)}
}

// AddColor adds c to both terms
func (l Lumination) AddColor(c Vec4) Lumination {
	return Lumination{l.Diffuse.Add(c), l.Specular.Add(c)}
}

// MultiplyColor multiplies both terms by c component-wise
func (l Lumination) MultiplyColor(c Vec4) Lumination {
	return Lumination{l.Diffuse.MultiplyVec(c), l.Specular.MultiplyVec(c)}
}

// AddScalar adds s to every channel of both terms
func (l Lumination) AddScalar(s float64) Lumination {
	return l.AddColor(Splat4(s))
}

// Scale multiplies both terms by s
func (l Lumination) Scale(s float64) Lumination {
	return Lumination{l.Diffuse.Multiply(s), l.Specular.Multiply(s)}
}

// Negate negates both terms
func (l Lumination) Negate() Lumination {
	return l.Scale(-1)
}
