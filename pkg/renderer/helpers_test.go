package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {
	// Discard log output during tests
}

// testStack is a minimal linear-scan stack
type testStack struct {
	objects []core.Traceable
	lights  []core.Light
}

func (s *testStack) Nearest(ray core.Ray) (core.Traceable, core.RayHit, bool) {
	var best core.Traceable
	var bestHit core.RayHit
	bestHit.Distance = core.NoHitDistance
	for _, object := range s.objects {
		if hit, ok := object.Hit(ray); ok && hit.Valid() && hit.Distance < bestHit.Distance {
			best, bestHit = object, hit
		}
	}
	return best, bestHit, best != nil
}

func (s *testStack) Farthest(ray core.Ray) (core.Traceable, core.RayHit, bool) {
	return s.Nearest(ray)
}

func (s *testStack) LightSources() []core.Light {
	return s.lights
}

func testConfig(depth int) Config {
	config := DefaultConfig()
	config.ReflectDepth = depth
	return config
}
