package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// XYRect is an axis-aligned rectangle on the plane z=K with outward normal +Z
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z=k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests the ray against the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 0, 1, 2, r.X0, r.X1, r.Y0, r.Y1, r.K, r.Material)
}

// BoundingBox is the rectangle thickened by BoxEpsilon along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-BoxEpsilon),
		core.NewVec3(r.X1, r.Y1, r.K+BoxEpsilon),
	), true
}

// Area returns the rectangle's area
func (r *XYRect) Area() float64 {
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// RandomPoint returns a uniformly distributed point on the rectangle
func (r *XYRect) RandomPoint(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(core.RandomRange(sampler, r.X0, r.X1), core.RandomRange(sampler, r.Y0, r.Y1), r.K)
}

// XZRect is an axis-aligned rectangle on the plane y=K with outward normal +Y
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y=k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 0, 2, 1, r.X0, r.X1, r.Z0, r.Z1, r.K, r.Material)
}

// BoundingBox is the rectangle thickened by BoxEpsilon along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-BoxEpsilon, r.Z0),
		core.NewVec3(r.X1, r.K+BoxEpsilon, r.Z1),
	), true
}

// Area returns the rectangle's area
func (r *XZRect) Area() float64 {
	return (r.X1 - r.X0) * (r.Z1 - r.Z0)
}

// RandomPoint returns a uniformly distributed point on the rectangle
func (r *XZRect) RandomPoint(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(core.RandomRange(sampler, r.X0, r.X1), r.K, core.RandomRange(sampler, r.Z0, r.Z1))
}

// YZRect is an axis-aligned rectangle on the plane x=K with outward normal +X
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x=k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 1, 2, 0, r.Y0, r.Y1, r.Z0, r.Z1, r.K, r.Material)
}

// BoundingBox is the rectangle thickened by BoxEpsilon along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-BoxEpsilon, r.Y0, r.Z0),
		core.NewVec3(r.K+BoxEpsilon, r.Y1, r.Z1),
	), true
}

// Area returns the rectangle's area
func (r *YZRect) Area() float64 {
	return (r.Y1 - r.Y0) * (r.Z1 - r.Z0)
}

// RandomPoint returns a uniformly distributed point on the rectangle
func (r *YZRect) RandomPoint(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(r.K, core.RandomRange(sampler, r.Y0, r.Y1), core.RandomRange(sampler, r.Z0, r.Z1))
}

// hitAxisRect intersects a rectangle spanning [a0,a1]×[b0,b1] on axes (axisA, axisB)
// lying on the plane axisK=k. The outward normal points along +axisK.
func hitAxisRect(ray core.Ray, tMin, tMax float64, axisA, axisB, axisK int, a0, a1, b0, b1, k float64, mat material.Material) (*material.HitRecord, bool) {
	dirK := ray.Direction.Axis(axisK)
	if dirK == 0 {
		return nil, false
	}

	t := (k - ray.Origin.Axis(axisK)) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(axisA) + t*ray.Direction.Axis(axisA)
	b := ray.Origin.Axis(axisB) + t*ray.Direction.Axis(axisB)
	if a < a0 || a > a1 || b < b0 || b > b1 {
		return nil, false
	}

	var outwardNormal core.Vec3
	switch axisK {
	case 0:
		outwardNormal = core.NewVec3(1, 0, 0)
	case 1:
		outwardNormal = core.NewVec3(0, 1, 0)
	default:
		outwardNormal = core.NewVec3(0, 0, 1)
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-a0)/(a1-a0), (b-b0)/(b1-b0)),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
