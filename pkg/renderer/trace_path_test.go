package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestTracePath_AssignReleasesChildren(t *testing.T) {
	var path TracePath
	path.nodes = append(path.nodes,
		pathNode{hit: true, reflection: 1, passthrough: noChild},
		pathNode{hit: true, depth: 1, reflection: noChild, passthrough: noChild},
	)
	path.roots = append(path.roots, 0)

	fragment := core.DefaultFragment()
	fragment.Color = core.NewVec4(0.2, 0.4, 0.6, 1)
	path.Assign(fragment)

	if path.Len() != 1 || path.Samples() != 1 {
		t.Errorf("Expected a single node, got %d nodes %d samples", path.Len(), path.Samples())
	}
	if _, ok := path.Reflection(); ok {
		t.Error("Assign should release the reflection")
	}
	if path.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", path.Depth())
	}
}

func TestTracePath_EmptyColorIsBackground(t *testing.T) {
	var path TracePath
	background := core.NewVec4(0.1, 0.2, 0.3, 1)

	if got := path.Color(nil, nil, background); !got.Equals(background) {
		t.Errorf("Expected background %v, got %v", background, got)
	}
	if path.Hit() {
		t.Error("Empty path should not report a hit")
	}
	albedo := path.Albedo(nil, nil)
	if !albedo.Diffuse.Equals(core.Vec4{}) || !albedo.Specular.Equals(core.Vec4{}) {
		t.Errorf("Empty path albedo should be zero, got %+v", albedo)
	}
}

func TestTracePath_ColorBlendOrder(t *testing.T) {
	red := core.NewVec4(1, 0, 0, 1)
	green := core.NewVec4(0, 1, 0, 1)
	blue := core.NewVec4(0, 0, 1, 1)

	base := core.DefaultFragment()
	base.Color = red
	base.Reflectivity = 0.5
	base.Transparency = 0.5

	reflected := core.DefaultFragment()
	reflected.Color = green
	transmitted := core.DefaultFragment()
	transmitted.Color = blue

	var path TracePath
	path.nodes = []pathNode{
		{fragment: base, hit: true, reflection: 1, passthrough: 2},
		{fragment: reflected, hit: true, depth: 1, reflection: noChild, passthrough: noChild},
		{fragment: transmitted, hit: true, depth: 1, reflection: noChild, passthrough: noChild},
	}
	path.roots = []int32{0}

	// Reflection first: (0.5, 0.5, 0), then transparency: (0.25, 0.25, 0.5)
	got := path.Color(nil, nil, core.Vec4{})
	expected := core.NewVec4(0.25, 0.25, 0.5, 1)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestTracePath_MissedChildUsesBackground(t *testing.T) {
	base := core.DefaultFragment()
	base.Color = core.NewVec4(1, 1, 1, 1)
	base.Reflectivity = 1

	var path TracePath
	path.nodes = []pathNode{
		{fragment: base, hit: true, reflection: 1, passthrough: noChild},
		{hit: false, depth: 1, reflection: noChild, passthrough: noChild},
	}
	path.roots = []int32{0}

	background := core.NewVec4(0, 0, 0.5, 1)
	if got := path.Color(nil, nil, background); !got.Equals(background) {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestTracePath_SamplesAreAveraged(t *testing.T) {
	white := core.DefaultFragment()
	white.Color = core.NewVec4(1, 1, 1, 1)

	var path TracePath
	path.nodes = []pathNode{
		{fragment: white, hit: true, reflection: noChild, passthrough: noChild},
		{hit: false, reflection: noChild, passthrough: noChild},
	}
	path.roots = []int32{0, 1}

	got := path.Color(nil, nil, core.NewVec4(0, 0, 0, 1))
	if math.Abs(got.X-0.5) > 1e-9 || math.Abs(got.W-1) > 1e-9 {
		t.Errorf("Expected half grey, got %v", got)
	}
}

func TestTracePath_EmissiveAddsToUnlitColor(t *testing.T) {
	fragment := core.DefaultFragment()
	fragment.Color = core.NewVec4(0.25, 0, 0, 1)
	fragment.Emissive = core.NewVec4(0.5, 0, 0, 1)

	var path TracePath
	path.Assign(fragment)

	albedo := path.Albedo(nil, nil)
	expected := core.NewVec4(0.75, 0, 0, 1)
	if !albedo.Diffuse.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, albedo.Diffuse)
	}
}
