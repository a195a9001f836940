package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// NewCornellScene creates a classic Cornell box with a one-sided ceiling light
// and two rotated white boxes
func NewCornellScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("cornell-box")
	s.Camera = cornellCamera()
	s.Background = integrator.Dark()

	white := addCornellWalls(s)

	// Emits downward only
	light := material.NewOneSidedLight(core.NewVec3(15, 15, 15))
	s.AddFlippedRectLight(geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light))

	tall, short := cornellBoxes(white)
	s.Add(tall, short)

	return s, nil
}

// NewCornellSmokeScene replaces the boxes of the Cornell box with black and
// white smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("cornell-smoke")
	s.Camera = cornellCamera()
	s.Background = integrator.Dark()

	white := addCornellWalls(s)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.AddRectLight(geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light))

	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
	)

	return s, nil
}

// addCornellWalls adds the red, green and white walls and returns the white material
func addCornellWalls(s *Scene) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // right
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back
	)

	return white
}

// cornellBoxes returns the tall and short boxes, rotated and placed on the floor
func cornellBoxes(mat material.Material) (geometry.Hittable, geometry.Hittable) {
	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}
