package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTriangleScene creates single triangles in diffuse, metal and glass
// materials next to a small pyramid mesh
func NewTriangleScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("triangle")
	s.Camera.LookFrom = core.NewVec3(0, 2, 8)
	s.Camera.LookAt = core.NewVec3(0, 1, 0)
	s.Camera.VFov = 40

	addCheckerGround(s)

	s.Add(
		geometry.NewTriangle(core.NewVec3(-3.5, 0, 0), core.NewVec3(-1.5, 0, 0), core.NewVec3(-2.5, 2, 0),
			material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))),
		geometry.NewTriangle(core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(0, 2.5, -1),
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.05)),
		geometry.NewTriangle(core.NewVec3(1.5, 0, 0), core.NewVec3(3.5, 0, 0), core.NewVec3(2.5, 2, 0),
			material.NewDielectric(1.5)),
	)

	pyramid, err := createPyramidMesh(core.NewVec3(0, 0.5, 1.5), 1, 1,
		core.NewVec3(0, math.Pi/4, 0), material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8)), sampler)
	if err != nil {
		return nil, err
	}
	s.Add(pyramid)

	return s, nil
}

// NewTeapotScene loads res/teapot.obj and places it on a checkered ground
func NewTeapotScene(opts Options, sampler core.Sampler) (*Scene, error) {
	s := newScene("teapot")
	s.Camera.LookFrom = core.NewVec3(-2, 5, 10)
	s.Camera.LookAt = core.NewVec3(0, 1.5, 0)
	s.Camera.VFov = 30

	addCheckerGround(s)

	mesh, err := loaders.LoadOBJ(filepath.Join(opts.ResourceDir, "teapot.obj"))
	if err != nil {
		return nil, fmt.Errorf("loading teapot: %w", err)
	}

	teapot, err := geometry.NewTriangleMesh(mesh.Vertices, mesh.Faces,
		material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)), nil, sampler)
	if err != nil {
		return nil, fmt.Errorf("building teapot mesh: %w", err)
	}
	s.Add(teapot)

	return s, nil
}

// addCheckerGround adds a huge checkered sphere as the ground
func addCheckerGround(s *Scene) {
	checker := material.NewColorChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))
}

// createPyramidMesh creates a triangle mesh representing a square pyramid
// standing on its base, rotated about its center
func createPyramidMesh(center core.Vec3, baseSize, height float64, rotation core.Vec3, mat material.Material, sampler core.Sampler) (*geometry.TriangleMesh, error) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		// Base vertices (Y = center.Y - halfHeight)
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)), // 0: left-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)), // 1: right-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)), // 2: right-front
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)), // 3: left-front
		// Apex (Y = center.Y + halfHeight)
		center.Add(core.NewVec3(0, +halfHeight, 0)), // 4: apex
	}

	faces := []int{
		// Base (2 triangles)
		0, 2, 1, 0, 3, 2,
		// Side faces
		0, 1, 4, // back face
		1, 2, 4, // right face
		2, 3, 4, // front face
		3, 0, 4, // left face
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	}, sampler)
}
