package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// Stack is the set of traceables and lights a Photo is traced against
type Stack interface {
	core.Tracer
	LightSources() []core.Light
}

// Photo is a width×height grid of trace paths, stored row-major
type Photo struct {
	width  int
	height int
	config Config
	paths  []TracePath
	stack  Stack // Retained from the last Trace for shading during Rasterize
	logger core.Logger
}

// NewPhoto creates an empty photo. A nil logger selects the default logger.
func NewPhoto(width, height int, config Config, logger core.Logger) (*Photo, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Photo{
		width:  width,
		height: height,
		config: config,
		paths:  make([]TracePath, width*height),
		logger: logger,
	}, nil
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("photo size %dx%d must be positive: %w", width, height, core.ErrInvalidConfiguration)
	}
	return nil
}

// Width returns the photo width in pixels
func (p *Photo) Width() int { return p.width }

// Height returns the photo height in pixels
func (p *Photo) Height() int { return p.height }

// Config returns the trace settings
func (p *Photo) Config() Config { return p.config }

// SetConfig replaces the trace settings. Already traced paths are kept
// until the next Trace.
func (p *Photo) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	p.config = config
	return nil
}

// Empty reports whether the photo has no pixel buffer
func (p *Photo) Empty() bool {
	return len(p.paths) == 0
}

// At returns the trace path of pixel (x, y)
func (p *Photo) At(x, y int) (*TracePath, error) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return nil, fmt.Errorf("pixel (%d, %d) outside %dx%d photo: %w", x, y, p.width, p.height, core.ErrOutOfBounds)
	}
	return &p.paths[y*p.width+x], nil
}

// Resize reallocates the pixel buffer, keeping the paths of every pixel
// that lies inside both the old and the new size
func (p *Photo) Resize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}

	paths := make([]TracePath, width*height)
	for y := 0; y < min(height, p.height); y++ {
		for x := 0; x < min(width, p.width); x++ {
			paths[y*width+x] = p.paths[y*p.width+x]
		}
	}

	p.paths = paths
	p.width = width
	p.height = height
	return nil
}

// Release discards the pixel buffer and the retained stack
func (p *Photo) Release() {
	p.paths = nil
	p.width = 0
	p.height = 0
	p.stack = nil
}

// Trace casts camera rays for every pixel, row by row, and records what they
// hit. The stack is retained so Rasterize can light the recorded fragments.
func (p *Photo) Trace(stack Stack, camera *Camera) (RenderStats, error) {
	if stack == nil || camera == nil {
		return RenderStats{}, fmt.Errorf("trace needs a stack and a camera: %w", core.ErrInvalidConfiguration)
	}
	if p.Empty() {
		return RenderStats{}, fmt.Errorf("trace into a released photo: %w", core.ErrInvalidConfiguration)
	}

	start := time.Now()
	p.stack = stack

	samples := p.config.samplesPerPixel()
	sampler := p.config.sampler()
	stats := RenderStats{TotalPixels: p.width * p.height}

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			stats.add(p.tracePixel(stack, camera, sampler, samples, x, y))
		}
	}

	stats.Duration = time.Since(start)
	p.logger.Printf("Traced %dx%d: %d samples, %d primary hits, %d path nodes, max depth %d in %v\n",
		p.width, p.height, stats.TotalSamples, stats.PrimaryHits, stats.PathNodes, stats.MaxDepthReached, stats.Duration)

	return stats, nil
}

// TracePixel retraces a single pixel and returns its path. The stack is
// retained for Rasterize exactly as Trace does.
func (p *Photo) TracePixel(stack Stack, camera *Camera, x, y int) (*TracePath, error) {
	if stack == nil || camera == nil {
		return nil, fmt.Errorf("trace needs a stack and a camera: %w", core.ErrInvalidConfiguration)
	}
	if _, err := p.At(x, y); err != nil {
		return nil, err
	}

	p.stack = stack
	return p.tracePixel(stack, camera, p.config.sampler(), p.config.samplesPerPixel(), x, y), nil
}

func (p *Photo) tracePixel(stack Stack, camera *Camera, sampler core.Sampler, samples, x, y int) *TracePath {
	path := &p.paths[y*p.width+x]
	path.Release()

	for i := 0; i < samples; i++ {
		offset := sampler.Get2D(i, samples)
		u := (float64(x) + offset.X) / float64(p.width)
		v := (float64(y) + offset.Y) / float64(p.height)
		path.trace(stack, camera.Cast(u, v), p.config.ReflectDepth)
	}
	return path
}

// Rasterize lights and composes every pixel and converts it to 8-bit RGBA
func (p *Photo) Rasterize() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))

	var lights []core.Light
	var tracer core.Tracer
	if p.stack != nil {
		lights = p.stack.LightSources()
		tracer = p.stack
	}

	start := time.Now()
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.paths[y*p.width+x].Color(lights, tracer, p.config.Background)
			img.SetNRGBA(x, y, toNRGBA(c))
		}
	}

	p.logger.Printf("Rasterized %dx%d with %d lights in %v\n", p.width, p.height, len(lights), time.Since(start))
	return img
}

// toNRGBA converts normalized float channels to 8 bits
func toNRGBA(c core.Vec4) color.NRGBA {
	c = c.Clamp(0, 1)
	return color.NRGBA{
		R: uint8(math.Round(c.X * 255)),
		G: uint8(math.Round(c.Y * 255)),
		B: uint8(math.Round(c.Z * 255)),
		A: uint8(math.Round(c.W * 255)),
	}
}
