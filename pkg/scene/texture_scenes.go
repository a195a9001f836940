package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("two-spheres")

	checker := material.NewColorChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1))
	mat := material.NewTexturedLambertian(checker)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
	)

	return s, nil
}

// NewTwoPerlinSpheresScene creates a marble sphere resting on a marble ground
func NewTwoPerlinSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("two-perlin-spheres")
	addMarbleSpheres(s, sampler)
	return s, nil
}

// NewEarthScene creates a globe textured with res/earthmap.jpg
func NewEarthScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("earth")

	earthSurface, err := loadEarthMaterial(opts)
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earthSurface))

	return s, nil
}

// addMarbleSpheres adds the ground and center spheres shared by the perlin scenes
func addMarbleSpheres(s *Scene, sampler core.Sampler) {
	mat := material.NewTexturedLambertian(material.NewMarble(4, sampler))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	)
}

func loadEarthMaterial(opts Options) (material.Material, error) {
	texture, err := loaders.LoadImageTexture(filepath.Join(opts.ResourceDir, "earthmap.jpg"))
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}
	return material.NewTexturedLambertian(texture), nil
}
