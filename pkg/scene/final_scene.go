package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewFinalScene creates the final image of the second book: a field of boxes,
// moving, glass, metal, textured and foggy spheres, and a cluster of 1000 small
// spheres, all under one ceiling light
func NewFinalScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("final-scene")
	s.Background = integrator.Dark()
	s.Camera = geometry.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	// Ground: 20x20 boxes of random height
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			groundBoxes = append(groundBoxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("building ground: %w", err)
	}
	s.Add(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.AddRectLight(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Add(
		geometry.NewMovingSphere(center1, center2, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Blue subsurface-looking sphere: glass shell filled with dense fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(mist, 0.0001, material.NewSolidColor(core.NewVec3(1, 1, 1))))

	earthSurface, err := loadEarthMaterial(opts)
	if err != nil {
		return nil, err
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earthSurface),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))),
	)

	// Cluster of small white spheres, rotated and moved into view
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, 1000)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("building sphere cluster: %w", err)
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	return s, nil
}
