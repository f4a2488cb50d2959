package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultPhongExponent is the highlight exponent used when none is given
const DefaultPhongExponent = 16.0

// Phong adds a mirror-direction specular highlight to the lambert term
type Phong struct {
	Surface
	Exponent float64
}

// NewPhong creates a phong material with solid diffuse and specular colors.
// A non-positive exponent selects DefaultPhongExponent.
func NewPhong(color, specular core.Vec4, exponent float64) *Phong {
	if exponent <= 0 {
		exponent = DefaultPhongExponent
	}
	p := &Phong{Exponent: exponent}
	p.Attach(NewSolidColor(color), ChannelColor)
	p.Attach(NewSolidColor(specular), ChannelSpecular)
	return p
}

// Shade implements core.Material
func (p *Phong) Shade(lighting core.Lighting, fragment core.Fragment) core.Lumination {
	reflected := lighting.Direction.Negate().Reflect(fragment.Normal)
	highlight := math.Pow(max(reflected.Dot(fragment.View), 0), p.Exponent)
	return core.NewLumination(
		diffuse(lighting, fragment),
		lighting.Scale(fragment.Specular, highlight),
	)
}
