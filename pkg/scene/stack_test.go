package scene

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Spheres along +z at distances 5, 10 and 15 from the origin
func lineOfSpheres() (*Stack, []*geometry.Sphere) {
	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1),
		geometry.NewSphere(core.NewVec3(0, 0, 15), 1),
	}
	stack := NewStack()
	for _, s := range spheres {
		stack.Add(s)
	}
	return stack, spheres
}

func TestStack_NearestAndFarthest(t *testing.T) {
	stack, spheres := lineOfSpheres()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	nearest, hit, ok := stack.Nearest(ray)
	if !ok || nearest != core.Traceable(spheres[1]) {
		t.Fatalf("Expected the sphere at z=5, got %v", nearest)
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected nearest distance 4, got %f", hit.Distance)
	}

	farthest, hit, ok := stack.Farthest(ray)
	if !ok || farthest != core.Traceable(spheres[2]) {
		t.Fatalf("Expected the sphere at z=15, got %v", farthest)
	}
	if math.Abs(hit.Distance-14) > 1e-9 {
		t.Errorf("Expected farthest distance 14, got %f", hit.Distance)
	}
}

func TestStack_Miss(t *testing.T) {
	stack, _ := lineOfSpheres()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if object, _, ok := stack.Nearest(ray); ok || object != nil {
		t.Errorf("Expected nearest miss, got %v", object)
	}
	if object, _, ok := stack.Farthest(ray); ok || object != nil {
		t.Errorf("Expected farthest miss, got %v", object)
	}

	empty := NewStack()
	if _, _, ok := empty.Nearest(ray); ok {
		t.Error("Empty stack should never hit")
	}
}

func TestStack_SingleHitAgrees(t *testing.T) {
	stack := NewStack()
	stack.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1),
		geometry.NewAxisCube(core.NewVec3(5, 5, 5), core.NewVec3(6, 6, 6)),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	nearest, nearHit, ok1 := stack.Nearest(ray)
	farthest, farHit, ok2 := stack.Farthest(ray)
	if !ok1 || !ok2 {
		t.Fatal("Expected both queries to hit")
	}
	if nearest != farthest || nearHit.Distance != farHit.Distance {
		t.Errorf("Nearest and farthest disagree: %v@%f vs %v@%f", nearest, nearHit.Distance, farthest, farHit.Distance)
	}
}

func TestStack_TieBreaking(t *testing.T) {
	first := geometry.NewSphere(core.NewVec3(0, 0, 5), 1)
	second := geometry.NewSphere(core.NewVec3(0, 0, 5), 1)
	stack := NewStack()
	stack.Add(first, second)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if nearest, _, _ := stack.Nearest(ray); nearest != core.Traceable(first) {
		t.Error("Nearest should keep the first inserted object on a tie")
	}
	if farthest, _, _ := stack.Farthest(ray); farthest != core.Traceable(second) {
		t.Error("Farthest scans in reverse and should keep the last inserted object on a tie")
	}
}

func TestStack_LightsAndClear(t *testing.T) {
	stack, _ := lineOfSpheres()
	stack.AddLight(nil, nil)
	if len(stack.LightSources()) != 2 || len(stack.Traceables()) != 3 {
		t.Errorf("Unexpected contents: %d lights %d traceables", len(stack.LightSources()), len(stack.Traceables()))
	}

	stack.Clear()
	if len(stack.LightSources()) != 0 || len(stack.Traceables()) != 0 {
		t.Error("Clear should empty the stack")
	}
}
