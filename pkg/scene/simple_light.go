package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleLightScene lights the marble spheres with a rectangle and a sphere
// light against a black background
func NewSimpleLightScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("simple-light")
	s.Background = integrator.Dark()
	s.Camera.LookFrom = core.NewVec3(26, 3, 6)
	s.Camera.LookAt = core.NewVec3(0, 2, 0)

	addMarbleSpheres(s, sampler)

	difflight := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.AddRectLight(geometry.NewXYRect(3, 5, 1, 3, -2, difflight))
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, core.NewVec3(4, 4, 4))

	return s, nil
}
