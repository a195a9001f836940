package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a child primitive by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object with an offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into the child's frame, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Object.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by Offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// RotateY rotates a child primitive about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
}

// NewRotateY rotates object by degrees about Y
func NewRotateY(object Hittable, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	return &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject rotates a world-space vector into the child's frame
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld rotates a child-frame vector back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into the child's frame and the hit point and normal back out
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox rotates the corners of the child's box over [time0, time1] and
// bounds the result
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	childBox, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := childBox.Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	return core.NewAABBFromPoints(corners[:]...).Expand(BoxEpsilon), true
}

// FlipFace reports the child's hits with the front-face flag inverted
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates and negates FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the child's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}
