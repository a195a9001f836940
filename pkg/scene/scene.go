package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Camera     geometry.CameraConfig
	Background integrator.Background
	Shapes     []geometry.Hittable // Objects in the scene
	Lights     *lights.LightList   // Emitters sampled for direct lighting
	World      geometry.Hittable   // Acceleration structure over Shapes, built by Preprocess
}

// Options controls where scenes find their external resources
type Options struct {
	ResourceDir string // Directory holding earthmap.jpg and teapot.obj
}

// DefaultOptions looks for resources in ./res
func DefaultOptions() Options {
	return Options{ResourceDir: "res"}
}

// newScene creates an empty scene with the default camera and a sky background
func newScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Camera:     defaultCamera(),
		Background: integrator.Sky(),
		Shapes:     make([]geometry.Hittable, 0),
		Lights:     lights.NewLightList(),
	}
}

// defaultCamera looks at the origin from (13,2,3) with a 20 degree field of view
func defaultCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// cornellCamera looks into the 555 unit Cornell box through its open side
func cornellCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// AspectRatio returns the width / height ratio the scene is framed for
func (s *Scene) AspectRatio() float64 {
	return s.Camera.AspectRatio
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Shapes = append(s.Shapes, objects...)
}

// AddRectLight adds a rectangle to the scene and registers it for light sampling
func (s *Scene) AddRectLight(rect lights.AreaRect) {
	s.Shapes = append(s.Shapes, rect)
	s.Lights.Add(lights.NewRectLight(rect))
}

// AddFlippedRectLight adds rect with its front face reversed. Light sampling
// uses the unflipped rectangle since its density does not depend on orientation.
func (s *Scene) AddFlippedRectLight(rect lights.AreaRect) {
	s.Shapes = append(s.Shapes, geometry.NewFlipFace(rect))
	s.Lights.Add(lights.NewRectLight(rect))
}

// AddSphereLight adds a spherical light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	sphereLight := lights.NewSphereLight(center, radius, material.NewDiffuseLight(emission))
	s.Shapes = append(s.Shapes, sphereLight)
	s.Lights.Add(sphereLight)
}

// Preprocess prepares the scene for rendering by building the BVH over all shapes
func (s *Scene) Preprocess(sampler core.Sampler) error {
	bvh, err := geometry.NewBVH(s.Shapes, s.Camera.Time0, s.Camera.Time1, sampler)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.World = bvh
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

// countPrimitives counts primitives in a single shape, looking inside meshes and lists
func countPrimitives(shape geometry.Hittable) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		return obj.TriangleCount()
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.BVHNode:
		if obj.Leaf != nil {
			return countPrimitives(obj.Leaf)
		}
		return countPrimitives(obj.Left) + countPrimitives(obj.Right)
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	default:
		return 1
	}
}
