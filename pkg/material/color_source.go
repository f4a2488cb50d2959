package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// SolidColor provides a uniform color regardless of texture coordinate
type SolidColor struct {
	Color core.Vec4
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec4) *SolidColor {
	return &SolidColor{Color: color}
}

// Sample returns the solid color
func (s *SolidColor) Sample(texcoord core.Vec2) core.Vec4 {
	return s.Color
}

// NewScalar creates a solid source whose channel mean is v, for
// transparency, reflectivity and displacement channels
func NewScalar(v float64) *SolidColor {
	return &SolidColor{Color: core.NewVec4(v, v, v, 1)}
}
