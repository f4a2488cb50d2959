package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Lambert is a purely diffuse material with no specular highlight
type Lambert struct {
	Surface
}

// NewLambert creates a lambert material with a solid color
func NewLambert(color core.Vec4) *Lambert {
	l := &Lambert{}
	l.Attach(NewSolidColor(color), ChannelColor)
	return l
}

// Shade implements core.Material
func (l *Lambert) Shade(lighting core.Lighting, fragment core.Fragment) core.Lumination {
	return core.NewLumination(diffuse(lighting, fragment), core.Vec4{})
}
