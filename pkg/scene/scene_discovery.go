package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownScene is returned by Create for names with no preset
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene preset
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used by Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // Always "builtin"
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// Preset is a ready-to-render scene with a camera framing it
type Preset struct {
	Info   SceneInfo
	Scene  *Scene
	Camera *camera.Camera
}

type presetEntry struct {
	id          string
	description string
	group       string
	build       func() *Builder
	camera      func(width, height int) *camera.Camera
}

var presets = []presetEntry{
	{
		id:          "default",
		description: "Reference world: a sphere with a smaller sphere nested inside",
		group:       "Reference",
		build:       NewDefaultScene,
		camera:      defaultCamera,
	},
	{
		id:          "spheres",
		description: "Three matte spheres on a floor",
		group:       "Reference",
		build:       NewSpheresScene,
		camera: func(w, h int) *camera.Camera {
			return lookAt(w, h, math.Pi/3, core.Point(0, 1.5, -5), core.Point(0, 1, 0))
		},
	},
	{
		id:          "mirrors",
		description: "A sphere between two parallel mirrors",
		group:       "Reflection and Refraction",
		build:       NewMirrorsScene,
		camera: func(w, h int) *camera.Camera {
			return lookAt(w, h, math.Pi/3, core.Point(1.5, 2, -5), core.Point(0, 1, 0))
		},
	},
	{
		id:          "glass",
		description: "Hollow glass sphere with Fresnel reflections",
		group:       "Reflection and Refraction",
		build:       NewGlassScene,
		camera: func(w, h int) *camera.Camera {
			return lookAt(w, h, math.Pi/3, core.Point(0, 2.5, -5), core.Point(0, 1, 0))
		},
	},
	{
		id:          "shapes",
		description: "Cube, cylinder and cone on a ring-patterned floor",
		group:       "Showcase",
		build:       NewShapesScene,
		camera: func(w, h int) *camera.Camera {
			return lookAt(w, h, math.Pi/3, core.Point(0, 3, -6), core.Point(0, 0.7, 0.5))
		},
	},
	{
		id:          "patterns",
		description: "Stripe, gradient and ring patterns over a checkered floor",
		group:       "Showcase",
		build:       NewPatternsScene,
		camera: func(w, h int) *camera.Camera {
			return lookAt(w, h, math.Pi/3, core.Point(0, 2.5, -6), core.Point(0, 0.8, 0))
		},
	},
}

func (p presetEntry) info() SceneInfo {
	return SceneInfo{
		ID:          p.id,
		Name:        p.id,
		DisplayName: titleCase(p.id),
		Description: p.description,
		Group:       p.group,
		Type:        "builtin",
	}
}

// Create builds the named preset with a camera sized width x height
func Create(name string, width, height int) (*Preset, error) {
	for _, p := range presets {
		if p.id == name {
			return &Preset{
				Info:   p.info(),
				Scene:  p.build().Build(),
				Camera: p.camera(width, height),
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}

// Names returns the preset identifiers in registration order
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.id
	}
	return names
}

// ListScenes returns the presets grouped for display, groups sorted by name
func ListScenes() ScenesResponse {
	groupMap := make(map[string][]SceneInfo)
	for _, p := range presets {
		groupMap[p.group] = append(groupMap[p.group], p.info())
	}

	groupNames := make([]string, 0, len(groupMap))
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	var response ScenesResponse
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return response
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
