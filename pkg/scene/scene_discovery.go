package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrUnknownScene is returned by NewScene for names not in the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Factory populates a scene. The sampler drives any random placement.
type Factory func(opts Options, sampler core.Sampler) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by NewScene
	DisplayName string // Human readable name
	Description string
	factory     Factory
}

// builtinScenes lists every scene in the order they are presented
var builtinScenes = []SceneInfo{
	{ID: "random", Description: "Field of small random spheres around three large ones", factory: NewRandomScene},
	{ID: "two-spheres", Description: "Two checkered spheres", factory: NewTwoSpheresScene},
	{ID: "two-perlin-spheres", Description: "Marble textured sphere on a marble ground", factory: NewTwoPerlinSpheresScene},
	{ID: "earth", Description: "Image textured globe (needs earthmap.jpg)", factory: NewEarthScene},
	{ID: "simple-light", Description: "Marble spheres lit by a rectangle and a sphere light", factory: NewSimpleLightScene},
	{ID: "cornell-box", Description: "Cornell box with two rotated boxes", factory: NewCornellScene},
	{ID: "cornell-smoke", Description: "Cornell box with two blocks of smoke", factory: NewCornellSmokeScene},
	{ID: "final-scene", Description: "Showcase of every primitive, material and medium (needs earthmap.jpg)", factory: NewFinalScene},
	{ID: "triangle", Description: "Triangles in three materials", factory: NewTriangleScene},
	{ID: "teapot", Description: "Utah teapot triangle mesh (needs teapot.obj)", factory: NewTeapotScene},
}

// ListScenes returns the catalog of built-in scenes
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, info := range builtinScenes {
		info.DisplayName = titleCase(info.ID)
		scenes[i] = info
	}
	return scenes
}

// SceneNames returns the IDs of all built-in scenes
func SceneNames() []string {
	names := make([]string, len(builtinScenes))
	for i, info := range builtinScenes {
		names[i] = info.ID
	}
	return names
}

// NewScene builds the named scene and its BVH
func NewScene(name string, opts Options, sampler core.Sampler) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID != name {
			continue
		}

		s, err := info.factory(opts, sampler)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
		}
		if err := s.Preprocess(sampler); err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(SceneNames(), ", "))
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
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
