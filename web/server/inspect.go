package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	TexCoord     [2]float64             `json:"texCoord"`
	Color        string                 `json:"color"` // Final pixel color as #rrggbb
	PathNodes    int                    `json:"pathNodes"`
	Depth        int                    `json:"depth"`
	Reflection   bool                   `json:"reflection"`  // Mirror ray hit something
	Passthrough  bool                   `json:"passthrough"` // Transmitted ray hit something
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes the material behind a fragment
func (s *Server) extractMaterialInfo(fragment core.Fragment) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":        hexColor(fragment.Color),
		"specular":     vec4Array(fragment.Specular),
		"emissive":     vec4Array(fragment.Emissive),
		"reflectivity": fragment.Reflectivity,
		"transparency": fragment.Transparency,
	}

	switch m := fragment.Material.(type) {
	case *material.Lambert:
		return "lambert", properties
	case *material.Phong:
		properties["exponent"] = m.Exponent
		return "phong", properties
	case *material.Blinn:
		properties["exponent"] = m.Exponent
		return "blinn", properties
	case nil:
		return "none", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(traceable core.Traceable) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := traceable.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Array(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.AxisCube:
		properties["min"] = vec3Array(geom.Min)
		properties["max"] = vec3Array(geom.Max)
		return "cube", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel retraces one pixel of the scene and returns its path
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (*renderer.TracePath, core.Vec4, error) {
	photo, err := renderer.NewPhoto(sceneObj.Width, sceneObj.Height, sceneObj.Config, nil)
	if err != nil {
		return nil, core.Vec4{}, err
	}

	path, err := photo.TracePixel(sceneObj.Stack, sceneObj.Camera, pixelX, pixelY)
	if err != nil {
		return nil, core.Vec4{}, err
	}

	color := path.Color(sceneObj.Stack.LightSources(), sceneObj.Stack, sceneObj.Config.Background)
	return path, color, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createSceneFor(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	path, color, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Inspect error: %v", err))
		return
	}

	fragment, hit := path.Fragment()
	if !hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: hexColor(color), PathNodes: path.Len()})
		return
	}

	materialType, materialProps := s.extractMaterialInfo(fragment)
	geometryType, geometryProps := s.extractGeometryInfo(fragment.Source)
	_, reflection := path.Reflection()
	_, passthrough := path.Passthrough()

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vec3Array(fragment.Position),
		Normal:       vec3Array(fragment.Normal),
		TexCoord:     [2]float64{fragment.TexCoord.X, fragment.TexCoord.Y},
		Color:        hexColor(color),
		PathNodes:    path.Len(),
		Depth:        path.Depth(),
		Reflection:   reflection,
		Passthrough:  passthrough,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

func hexColor(c core.Vec4) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(c.X*255)), int(math.Round(c.Y*255)), int(math.Round(c.Z*255)))
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vec4Array(v core.Vec4) [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}
