package renderer

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// MaxReflectDepth bounds the number of reflection or passthrough bounces
const MaxReflectDepth = 64

// MaxMultiSampleRate bounds the per-axis sample count of a pixel
const MaxMultiSampleRate = 16

// Config controls how a Photo traces its pixels
type Config struct {
	ReflectDepth    int          // Bounces after the primary hit, 0 disables reflection and passthrough
	MultiSampleRate int          // Samples per pixel along each axis, 0 and 1 both mean one sample
	Background      core.Vec4    // Color of rays that hit nothing
	Sampler         core.Sampler // Sub-pixel sample placement, nil means a regular grid
}

// DefaultConfig returns the settings used when a scene gives none
func DefaultConfig() Config {
	return Config{
		ReflectDepth:    4,
		MultiSampleRate: 1,
		Background:      core.NewVec4(0, 0, 0, 1),
	}
}

// Validate rejects depths and sample rates outside their supported range
func (c Config) Validate() error {
	if c.ReflectDepth < 0 || c.ReflectDepth > MaxReflectDepth {
		return fmt.Errorf("reflect depth %d outside [0, %d]: %w", c.ReflectDepth, MaxReflectDepth, core.ErrInvalidConfiguration)
	}
	if c.MultiSampleRate < 0 || c.MultiSampleRate > MaxMultiSampleRate {
		return fmt.Errorf("multi-sample rate %d outside [0, %d]: %w", c.MultiSampleRate, MaxMultiSampleRate, core.ErrInvalidConfiguration)
	}
	return nil
}

// samplesPerPixel returns the total number of camera rays for one pixel
func (c Config) samplesPerPixel() int {
	rate := max(c.MultiSampleRate, 1)
	return rate * rate
}

func (c Config) sampler() core.Sampler {
	if c.Sampler == nil {
		return core.NewGridSampler()
	}
	return c.Sampler
}
