package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// noChild marks a branch that was never traced
const noChild int32 = -1

// pathNode is one ray cast and what it hit
type pathNode struct {
	ray         core.Ray
	fragment    core.Fragment
	hit         bool
	depth       int   // Bounces since the camera ray
	reflection  int32 // Index of the mirror-ray node, or noChild
	passthrough int32 // Index of the transmitted-ray node, or noChild
}

// TracePath records every surface one pixel's rays reached. Nodes are kept
// in a flat slice where children always come after their parent, so the
// tree can be built breadth first and evaluated in reverse order without
// recursion. Each camera sample adds one root.
type TracePath struct {
	nodes  []pathNode
	roots  []int32
	colors []core.Vec4 // Scratch space for Color
}

// Assign makes fragment the single primary hit of the path, releasing any
// previously traced children
func (p *TracePath) Assign(fragment core.Fragment) {
	p.Release()
	p.nodes = append(p.nodes, pathNode{
		fragment:    fragment,
		hit:         true,
		reflection:  noChild,
		passthrough: noChild,
	})
	p.roots = append(p.roots, 0)
}

// Release drops every node and sample
func (p *TracePath) Release() {
	p.nodes = p.nodes[:0]
	p.roots = p.roots[:0]
}

// Len returns the number of rays recorded in the path
func (p *TracePath) Len() int {
	return len(p.nodes)
}

// Samples returns the number of camera rays traced into the path
func (p *TracePath) Samples() int {
	return len(p.roots)
}

// Hit reports whether any camera ray of the path hit a traceable
func (p *TracePath) Hit() bool {
	for _, root := range p.roots {
		if p.nodes[root].hit {
			return true
		}
	}
	return false
}

// Fragment returns the primary fragment of the first sample that hit
func (p *TracePath) Fragment() (core.Fragment, bool) {
	for _, root := range p.roots {
		if p.nodes[root].hit {
			return p.nodes[root].fragment, true
		}
	}
	return core.Fragment{}, false
}

// Reflection returns the fragment seen in the first sample's mirror ray
func (p *TracePath) Reflection() (core.Fragment, bool) {
	if len(p.roots) == 0 {
		return core.Fragment{}, false
	}
	return p.child(p.nodes[p.roots[0]].reflection)
}

// Passthrough returns the fragment seen through the first sample's surface
func (p *TracePath) Passthrough() (core.Fragment, bool) {
	if len(p.roots) == 0 {
		return core.Fragment{}, false
	}
	return p.child(p.nodes[p.roots[0]].passthrough)
}

func (p *TracePath) child(index int32) (core.Fragment, bool) {
	if index == noChild || !p.nodes[index].hit {
		return core.Fragment{}, false
	}
	return p.nodes[index].fragment, true
}

// Depth returns the deepest bounce recorded, 0 when only primary rays exist
func (p *TracePath) Depth() int {
	depth := 0
	for _, node := range p.nodes {
		depth = max(depth, node.depth)
	}
	return depth
}

// trace casts a camera ray and follows reflection and passthrough rays
// until maxDepth bounces or nothing further is hit
func (p *TracePath) trace(tracer core.Tracer, ray core.Ray, maxDepth int) {
	root := p.cast(tracer, ray, 0)
	p.roots = append(p.roots, root)

	for i := int(root); i < len(p.nodes); i++ {
		node := p.nodes[i]
		if !node.hit || node.depth >= maxDepth {
			continue
		}
		if node.fragment.Reflectivity > 0 {
			child := p.cast(tracer, node.fragment.Reflect(node.ray), node.depth+1)
			p.nodes[i].reflection = child
		}
		if node.fragment.Transparency > 0 {
			child := p.cast(tracer, node.fragment.Passthrough(node.ray), node.depth+1)
			p.nodes[i].passthrough = child
		}
	}
}

// cast appends the node for a single ray and returns its index
func (p *TracePath) cast(tracer core.Tracer, ray core.Ray, depth int) int32 {
	node := pathNode{
		ray:         ray,
		depth:       depth,
		reflection:  noChild,
		passthrough: noChild,
	}
	if object, hit, ok := tracer.Nearest(ray); ok {
		node.fragment = object.Fragmentate(hit)
		node.hit = true
	}
	p.nodes = append(p.nodes, node)
	return int32(len(p.nodes) - 1)
}

// Albedo sums the direct lighting of every light on the path's primary
// fragment. Children do not contribute. Without lights the fragment's own
// color is returned unshaded.
func (p *TracePath) Albedo(lights []core.Light, tracer core.Tracer) core.Lumination {
	fragment, ok := p.Fragment()
	if !ok {
		return core.Lumination{}
	}
	return albedo(fragment, lights, tracer)
}

func albedo(fragment core.Fragment, lights []core.Light, tracer core.Tracer) core.Lumination {
	emissive := core.NewVec4(fragment.Emissive.X, fragment.Emissive.Y, fragment.Emissive.Z, 0)
	if len(lights) == 0 {
		return core.NewLumination(fragment.Color.Add(emissive), core.Vec4{})
	}

	var sum core.Lumination
	for _, light := range lights {
		sum = sum.Add(light.Luminance(fragment, tracer))
	}
	sum.Diffuse = sum.Diffuse.Add(emissive)
	return sum
}

// Color composes the final pixel color. Each node's flattened albedo is
// blended toward its reflection by reflectivity, then toward its
// passthrough by transparency. Rays that hit nothing take the background
// color, and samples are averaged.
func (p *TracePath) Color(lights []core.Light, tracer core.Tracer, background core.Vec4) core.Vec4 {
	if len(p.roots) == 0 {
		return background
	}

	if cap(p.colors) < len(p.nodes) {
		p.colors = make([]core.Vec4, len(p.nodes))
	}
	colors := p.colors[:len(p.nodes)]

	for i := len(p.nodes) - 1; i >= 0; i-- {
		node := p.nodes[i]
		if !node.hit {
			colors[i] = background
			continue
		}

		c := albedo(node.fragment, lights, tracer).Flatten()
		if node.reflection != noChild {
			c = c.Lerp(colors[node.reflection], node.fragment.Reflectivity)
		}
		if node.passthrough != noChild {
			c = c.Lerp(colors[node.passthrough], node.fragment.Transparency)
		}
		colors[i] = c
	}

	var sum core.Vec4
	for _, root := range p.roots {
		sum = sum.Add(colors[root])
	}
	return sum.Multiply(1 / float64(len(p.roots)))
}
