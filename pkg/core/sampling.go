package core

import (
	"math/rand"
)

// Sampler provides sub-pixel sample positions for multi-sampling.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	// Get2D returns the offset in [0,1)² of sample i out of n
	Get2D(i, n int) Vec2
}

// GridSampler places samples at the centers of a regular grid
type GridSampler struct{}

// NewGridSampler creates a deterministic grid sampler
func NewGridSampler() *GridSampler {
	return &GridSampler{}
}

// Get2D returns the center of cell i in a rate×rate grid, where n = rate²
func (g *GridSampler) Get2D(i, n int) Vec2 {
	rate := gridRate(n)
	x := i % rate
	y := i / rate
	return NewVec2((float64(x)+0.5)/float64(rate), (float64(y)+0.5)/float64(rate))
}

// JitteredSampler places one random sample inside each grid cell
type JitteredSampler struct {
	random *rand.Rand
}

// NewJitteredSampler wraps a standard Go random generator
func NewJitteredSampler(random *rand.Rand) *JitteredSampler {
	return &JitteredSampler{random: random}
}

// Get2D returns a random point inside cell i of a rate×rate grid
func (j *JitteredSampler) Get2D(i, n int) Vec2 {
	rate := gridRate(n)
	x := i % rate
	y := i / rate
	return NewVec2(
		(float64(x)+j.random.Float64())/float64(rate),
		(float64(y)+j.random.Float64())/float64(rate),
	)
}

func gridRate(n int) int {
	rate := 1
	for rate*rate < n {
		rate++
	}
	return rate
}
