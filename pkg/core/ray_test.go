package core

import (
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 2, 6)) {
		t.Errorf("Expected (1,2,6), got %v", got)
	}
}

func TestRay_CompositionNormalizesDirection(t *testing.T) {
	a := NewRay(NewVec3(1, 0, 0), NewVec3(3, 0, 0))
	b := NewRay(NewVec3(0, 1, 0), NewVec3(0, 4, 0))

	tests := []struct {
		name   string
		result Ray
	}{
		{"add", a.Add(b)},
		{"subtract", a.Subtract(b)},
		{"scale", a.Scale(2)},
		{"scale per axis", a.ScaleVec(NewVec3(2, 3, 4))},
		{"multiply", a.Add(b).Multiply(NewRay(NewVec3(1, 1, 1), NewVec3(1, 2, 3)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.result.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", tt.result.Direction.Length())
			}
		})
	}
}

func TestRay_Scale(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	tests := []struct {
		name      string
		s         float64
		origin    Vec3
		direction Vec3
	}{
		{"double", 2, NewVec3(2, 4, 6), NewVec3(0, 0, 1)},
		{"negative flips", -1, NewVec3(-1, -2, -3), NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ray.Scale(tt.s)
			if !got.Origin.Equals(tt.origin) || !got.Direction.Equals(tt.direction) {
				t.Errorf("Expected %v %v, got %v %v", tt.origin, tt.direction, got.Origin, got.Direction)
			}
		})
	}
}

func TestRay_Offset(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 5)).Offset(NewVec3(1, 1, 1))
	if !ray.Origin.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("Expected origin (1,1,1), got %v", ray.Origin)
	}
	if !ray.Direction.Equals(NewVec3(0, 0, 5)) {
		t.Errorf("Offset must not touch the direction, got %v", ray.Direction)
	}
}

func TestFragment_Reflect(t *testing.T) {
	frag := DefaultFragment()
	frag.Position = NewVec3(0, 0, -1)
	frag.Normal = NewVec3(0, 0, -1)

	incoming := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	reflected := frag.Reflect(incoming)

	if !reflected.Direction.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected reflected direction (0,0,-1), got %v", reflected.Direction)
	}
	if reflected.Origin.Z >= -1 {
		t.Errorf("Reflected origin should sit on the normal side of the surface, got %v", reflected.Origin)
	}
}

func TestRayHit_Valid(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		valid    bool
	}{
		{"zero", 0, true},
		{"positive", 3.5, true},
		{"negative", -0.1, false},
		{"sentinel", NoHitDistance, false},
		{"infinite", math.Inf(1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (RayHit{Distance: tt.distance}).Valid(); got != tt.valid {
				t.Errorf("Expected %t, got %t", tt.valid, got)
			}
		})
	}
}
