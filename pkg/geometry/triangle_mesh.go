package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrInvalidFaces is returned when face indices do not describe whole triangles
var ErrInvalidFaces = errors.New("invalid triangle mesh faces")

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests
type TriangleMesh struct {
	triangles []*Triangle
	bvh       *BVHNode
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Materials []material.Material // Optional per-triangle materials
	Rotation  *core.Vec3          // Optional rotation in radians about X, Y, Z
	Center    *core.Vec3          // Optional center point for rotation
	Scale     float64             // Optional uniform scale applied before rotation (0 means 1)
	Offset    core.Vec3           // Translation applied last
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Every group of 3 indices in faces forms a triangle. options may be nil.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material, options *TriangleMeshOptions, sampler core.Sampler) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%d indices is not a multiple of 3: %w", len(faces), ErrInvalidFaces)
	}

	numTriangles := len(faces) / 3
	if options != nil && options.Materials != nil && len(options.Materials) != numTriangles {
		return nil, fmt.Errorf("%d materials for %d triangles: %w", len(options.Materials), numTriangles, ErrInvalidFaces)
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			workingVertices[i] = options.transform(vertex)
		}
	}

	triangles := make([]*Triangle, numTriangles)
	objects := make([]Hittable, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d: %w", i, idx, len(workingVertices), ErrInvalidFaces)
			}
		}

		triangleMaterial := mat
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleMaterial)
		objects[i] = triangles[i]
	}

	bvh, err := NewBVH(objects, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("building mesh BVH: %w", err)
	}

	return &TriangleMesh{triangles: triangles, bvh: bvh}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return tm.bvh.Box, true
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Triangles returns the individual triangles
func (tm *TriangleMesh) Triangles() []*Triangle {
	return tm.triangles
}

// transform applies scale, rotation about Center, then Offset
func (o *TriangleMeshOptions) transform(vertex core.Vec3) core.Vec3 {
	if o.Scale != 0 {
		vertex = vertex.Multiply(o.Scale)
	}
	if o.Rotation != nil {
		if o.Center != nil {
			vertex = vertex.Subtract(*o.Center)
		}
		vertex = rotateVertex(vertex, *o.Rotation)
		if o.Center != nil {
			vertex = vertex.Add(*o.Center)
		}
	}
	return vertex.Add(o.Offset)
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	// Rotation around X axis
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	// Rotation around Y axis
	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	// Rotation around Z axis
	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
