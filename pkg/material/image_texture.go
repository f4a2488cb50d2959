package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Filter selects how an ImageTexture reconstructs between pixels
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec4 // Row-major: Pixels[y*Width + x]
	Filter Filter
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec4, filter Filter) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Filter: filter,
	}
}

// Sample looks up the texture at given UV coordinates. UVs outside [0,1]
// wrap, and V=0 is the bottom row of the image.
func (t *ImageTexture) Sample(uv core.Vec2) core.Vec4 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return core.UnshadedColor
	}

	u := wrap(uv.X)
	v := 1.0 - wrap(uv.Y)

	if t.Filter == FilterLinear {
		return t.bilinear(u, v)
	}

	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)
	return t.Pixels[y*t.Width+x]
}

// bilinear blends the four texels around (u, v), wrapping at the edges
func (t *ImageTexture) bilinear(u, v float64) core.Vec4 {
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	texel := func(x, y int) core.Vec4 {
		x = ((x % t.Width) + t.Width) % t.Width
		y = ((y % t.Height) + t.Height) % t.Height
		return t.Pixels[y*t.Width+x]
	}

	top := texel(x0, y0).Lerp(texel(x0+1, y0), dx)
	bottom := texel(x0, y0+1).Lerp(texel(x0+1, y0+1), dx)
	return top.Lerp(bottom, dy)
}

// wrap maps f into [0,1]. Values already inside, 1 included, are kept so
// an edge coordinate samples its own edge.
func wrap(f float64) float64 {
	if f >= 0 && f <= 1 {
		return f
	}
	return f - math.Floor(f)
}

func clampIndex(i, n int) int {
	return max(0, min(n-1, i))
}
