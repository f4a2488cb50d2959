package material

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

var (
	white = core.NewVec4(1, 1, 1, 1)
	black = core.NewVec4(0, 0, 0, 1)
)

// TestImageTextureSample tests basic nearest texture sampling
func TestImageTextureSample(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec4{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels, FilterNearest)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec4
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Sample(tt.uv)
			if !result.Equals(tt.expected) {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	red := core.NewVec4(1, 0, 0, 1)
	texture := NewImageTexture(1, 1, []core.Vec4{red}, FilterNearest)

	testCases := []core.Vec2{
		core.NewVec2(0.5, 0.5),
		core.NewVec2(1.5, 0.5),
		core.NewVec2(0.5, 1.5),
		core.NewVec2(-0.5, -0.5),
		core.NewVec2(2.3, 3.7),
	}

	for _, uv := range testCases {
		result := texture.Sample(uv)
		if !result.Equals(red) {
			t.Errorf("UV%v: expected %v, got %v", uv, red, result)
		}
	}
}

// TestImageTextureEdges tests that coordinates on the 0 and 1 edges sample
// their own edge rather than the opposite one
func TestImageTextureEdges(t *testing.T) {
	// Left column black, right column white; top row black, bottom row white
	columns := NewImageTexture(2, 1, []core.Vec4{black, white}, FilterNearest)
	rows := NewImageTexture(1, 2, []core.Vec4{black, white}, FilterNearest)

	tests := []struct {
		name     string
		texture  *ImageTexture
		uv       core.Vec2
		expected core.Vec4
	}{
		{"u=0 is the left column", columns, core.NewVec2(0, 0.5), black},
		{"u=1 is the right column", columns, core.NewVec2(1, 0.5), white},
		{"u=2 wraps to the left column", columns, core.NewVec2(2, 0.5), black},
		{"v=0 is the bottom row", rows, core.NewVec2(0.5, 0), white},
		{"v=1 is the top row", rows, core.NewVec2(0.5, 1), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.texture.Sample(tt.uv); !got.Equals(tt.expected) {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

// TestImageTextureLinear tests bilinear filtering between texel centers
func TestImageTextureLinear(t *testing.T) {
	// Single row: black | white
	texture := NewImageTexture(2, 1, []core.Vec4{black, white}, FilterLinear)

	// Texel centers reproduce the stored colors
	if got := texture.Sample(core.NewVec2(0.25, 0.5)); !got.Equals(black) {
		t.Errorf("Left texel center: expected %v, got %v", black, got)
	}
	if got := texture.Sample(core.NewVec2(0.75, 0.5)); !got.Equals(white) {
		t.Errorf("Right texel center: expected %v, got %v", white, got)
	}

	// Halfway between centers is the average
	mid := texture.Sample(core.NewVec2(0.5, 0.5))
	expected := core.NewVec4(0.5, 0.5, 0.5, 1)
	if !mid.Equals(expected) {
		t.Errorf("Midpoint: expected %v, got %v", expected, mid)
	}
}

// TestImageTextureEmpty tests that a malformed texture samples as unshaded
func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(2, 2, nil, FilterNearest)
	if got := texture.Sample(core.NewVec2(0.5, 0.5)); !got.Equals(core.UnshadedColor) {
		t.Errorf("Expected unshaded color, got %v", got)
	}
}

// TestSolidColor tests the solid color source
func TestSolidColor(t *testing.T) {
	color := core.NewVec4(0.7, 0.3, 0.1, 1)
	solid := NewSolidColor(color)

	for _, uv := range []core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 1), core.NewVec2(0.5, 0.25)} {
		if result := solid.Sample(uv); !result.Equals(color) {
			t.Errorf("SolidColor at UV%v: expected %v, got %v", uv, color, result)
		}
	}
}

func TestCheckerboardTexture(t *testing.T) {
	texture := NewCheckerboardTexture(4, 4, 2, white, black)

	// Top-left check (image row 0) is color1
	if got := texture.Sample(core.NewVec2(0.1, 0.9)); !got.Equals(white) {
		t.Errorf("Expected color1 at top-left, got %v", got)
	}
	// Top-right check is color2
	if got := texture.Sample(core.NewVec2(0.9, 0.9)); !got.Equals(black) {
		t.Errorf("Expected color2 at top-right, got %v", got)
	}
}
