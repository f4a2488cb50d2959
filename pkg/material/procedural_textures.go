package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec4) *ImageTexture {
	pixels := make([]core.Vec4, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			color := color2
			if (checkX+checkY)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels, FilterNearest)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec4, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			v := 1 - float64(y)/float64(max(height-1, 1))
			pixels[y*width+x] = core.NewVec4(u, v, 0, 1)
		}
	}

	return NewImageTexture(width, height, pixels, FilterNearest)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec4) *ImageTexture {
	pixels := make([]core.Vec4, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		color := color1.Lerp(color2, t)
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels, FilterLinear)
}

// NewFlatNormalMap creates a 1x1 normal map encoding the unperturbed normal
func NewFlatNormalMap() *SolidColor {
	return NewSolidColor(core.NewVec4(0.5, 0.5, 1, 1))
}
