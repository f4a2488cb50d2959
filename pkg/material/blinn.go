package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultBlinnExponent is the highlight exponent used when none is given
const DefaultBlinnExponent = 32.0

// Blinn approximates the phong highlight with a half vector
type Blinn struct {
	Surface
	Exponent float64
}

// NewBlinn creates a blinn material with solid diffuse and specular colors.
// A non-positive exponent selects DefaultBlinnExponent.
func NewBlinn(color, specular core.Vec4, exponent float64) *Blinn {
	if exponent <= 0 {
		exponent = DefaultBlinnExponent
	}
	b := &Blinn{Exponent: exponent}
	b.Attach(NewSolidColor(color), ChannelColor)
	b.Attach(NewSolidColor(specular), ChannelSpecular)
	return b
}

// Shade implements core.Material. The half vector is taken between the
// normal and the view direction.
func (b *Blinn) Shade(lighting core.Lighting, fragment core.Fragment) core.Lumination {
	half := fragment.Normal.Add(fragment.View).Normalize()
	highlight := math.Pow(max(half.Dot(fragment.View), 0), b.Exponent)
	return core.NewLumination(
		diffuse(lighting, fragment),
		lighting.Scale(fragment.Specular, highlight),
	)
}
