package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Stack is the set of traceables and lights taking part in a render.
// Queries are a linear scan in insertion order.
type Stack struct {
	traceables []core.Traceable
	lights     []core.Light
}

// NewStack creates an empty stack
func NewStack() *Stack {
	return &Stack{}
}

// Add appends traceables to the stack
func (s *Stack) Add(traceables ...core.Traceable) {
	s.traceables = append(s.traceables, traceables...)
}

// AddLight appends lights to the stack
func (s *Stack) AddLight(lights ...core.Light) {
	s.lights = append(s.lights, lights...)
}

// Traceables returns the traceables in insertion order
func (s *Stack) Traceables() []core.Traceable {
	return s.traceables
}

// LightSources returns the lights in insertion order
func (s *Stack) LightSources() []core.Light {
	return s.lights
}

// Clear empties the stack
func (s *Stack) Clear() {
	s.traceables = nil
	s.lights = nil
}

// Nearest returns the traceable with the closest valid hit. On equal
// distances the earlier traceable wins.
func (s *Stack) Nearest(ray core.Ray) (core.Traceable, core.RayHit, bool) {
	var found core.Traceable
	best := core.RayHit{Distance: core.NoHitDistance}

	for _, traceable := range s.traceables {
		hit, ok := traceable.Hit(ray)
		if ok && hit.Valid() && hit.Distance < best.Distance {
			found, best = traceable, hit
		}
	}

	if found == nil {
		return nil, core.RayHit{}, false
	}
	return found, best, true
}

// Farthest returns the traceable with the most distant valid hit, scanning
// in reverse insertion order. On equal distances the later traceable wins.
func (s *Stack) Farthest(ray core.Ray) (core.Traceable, core.RayHit, bool) {
	var found core.Traceable
	best := core.RayHit{Distance: -1}

	for i := len(s.traceables) - 1; i >= 0; i-- {
		hit, ok := s.traceables[i].Hit(ray)
		if ok && hit.Valid() && hit.Distance > best.Distance {
			found, best = s.traceables[i], hit
		}
	}

	if found == nil {
		return nil, core.RayHit{}, false
	}
	return found, best, true
}
