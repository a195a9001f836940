package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	edgeA      core.Vec3         // V1 - V0
	edgeB      core.Vec3         // V2 - V0
	normal     core.Vec3         // Cached normal vector
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		edgeA:    v1.Subtract(v0),
		edgeB:    v2.Subtract(v0),
	}

	// Precompute normal and bounding box
	t.normal = t.edgeA.Cross(t.edgeB).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2).Expand(BoxEpsilon)

	return t
}

// Hit solves origin + t·D = V0 + u·a + v·b for (t, u, v) and accepts points
// inside the triangle (u, v ≥ 0 and u + v ≤ 1)
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	d := ray.Direction
	a := t.edgeA
	b := t.edgeB
	rhs := t.V0.Subtract(ray.Origin)

	rows := [3][3]float64{
		{d.X, -a.X, -b.X},
		{d.Y, -a.Y, -b.Y},
		{d.Z, -a.Z, -b.Z},
	}
	x, err := core.SolveEquation(
		[][]float64{rows[0][:], rows[1][:], rows[2][:]},
		[]float64{rhs.X, rhs.Y, rhs.Z},
	)
	if err != nil {
		// Ray parallel to the triangle's plane
		return nil, false
	}

	tParam, u, v := x[0], x[1], x[2]
	if tParam < tMin || tParam > tMax {
		return nil, false
	}
	if u < 0 || v < 0 || u+v > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		UV:       core.NewVec2(u, v),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the vertex bounds widened by BoxEpsilon
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return t.bbox, true
}

// Normal returns the triangle's unit geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
