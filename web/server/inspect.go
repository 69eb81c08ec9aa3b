package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/intersect"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeName    string                 `json:"shapeName"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        [3]float64             `json:"color"`
	Hits         int                    `json:"hits"` // Intersections along the whole ray
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts the Phong and optical parameters of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           fmt.Sprintf("#%02x%02x%02x", toByte(mat.Color.R), toByte(mat.Color.G), toByte(mat.Color.B)),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}
	if mat.Pattern != nil {
		properties["pattern"] = mat.Pattern.Kind().String()
	}
	return properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) map[string]interface{} {
	properties := map[string]interface{}{
		"castsShadow": shape.CastsShadow(),
	}

	switch geom := shape.(type) {
	case *geometry.Cylinder:
		properties["minimum"] = finiteOrNil(geom.Minimum)
		properties["maximum"] = finiteOrNil(geom.Maximum)
		properties["closed"] = geom.Closed
	case *geometry.Cone:
		properties["minimum"] = finiteOrNil(geom.Minimum)
		properties["maximum"] = finiteOrNil(geom.Maximum)
		properties["closed"] = geom.Closed
	}
	return properties
}

// inspectPixel casts the primary ray through the pixel center and describes
// the first surface it hits.
func inspectPixel(preset *scene.Preset, config shading.Config, pixelX, pixelY int) InspectResponse {
	ray := preset.Camera.RayForPixel(pixelX, pixelY)

	list := intersect.NewHitList(config.HitListCapacity)
	intersect.IntersectInto(preset.Scene, ray, list)
	hit, ok := list.Hit()
	if !ok {
		return InspectResponse{Hit: false, Hits: list.Len()}
	}

	comps := shading.PrepareComputations(hit, ray, list)
	tracer := shading.NewTracer(preset.Scene, config)
	color := tracer.ColorAt(ray, tracer.MaxDepth())

	return InspectResponse{
		Hit:          true,
		ShapeName:    hit.Shape.Name(),
		GeometryType: hit.Shape.Kind().String(),
		Point:        vecArray(comps.Point),
		Normal:       vecArray(comps.Normal),
		Distance:     hit.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        colorArray(color),
		Hits:         list.Len(),
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Shape.Material()),
			"geometry": extractGeometryInfo(hit.Shape),
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	tracer := otel.Tracer("go-whitted-raytracer/web")
	_, span := tracer.Start(r.Context(), "Inspect")
	defer span.End()

	w.Header().Set("Access-Control-Allow-Origin", "*")

	params, err := parseSceneParams(r.URL.Query())
	if err != nil {
		fail(w, span, http.StatusBadRequest, fmt.Errorf("invalid scene parameters: %w", err))
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		fail(w, span, http.StatusBadRequest, fmt.Errorf("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		fail(w, span, http.StatusBadRequest, fmt.Errorf("invalid y coordinate"))
		return
	}
	if pixelX < 0 || pixelX >= params.Width || pixelY < 0 || pixelY >= params.Height {
		fail(w, span, http.StatusBadRequest, fmt.Errorf("pixel coordinates out of bounds"))
		return
	}
	span.SetAttributes(attribute.String("scene", params.Scene), attribute.Int("x", pixelX), attribute.Int("y", pixelY))

	preset, err := scene.Create(params.Scene, params.Width, params.Height)
	if err != nil {
		fail(w, span, http.StatusBadRequest, err)
		return
	}

	var resp InspectResponse
	if err := guard(func() error {
		resp = inspectPixel(preset, s.inspectConfig, pixelX, pixelY)
		return nil
	}); err != nil {
		fail(w, span, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func vecArray(v mgl64.Vec3) [3]float64 { return [3]float64{v[0], v[1], v[2]} }

func colorArray(c core.Color) [3]float64 { return [3]float64{c.R, c.G, c.B} }

func toByte(v float64) int {
	return int(255*min(max(v, 0), 1) + 0.5)
}

// finiteOrNil keeps infinite extents out of JSON, which cannot encode them
func finiteOrNil(v float64) interface{} {
	if v > 1e300 || v < -1e300 {
		return nil
	}
	return v
}
