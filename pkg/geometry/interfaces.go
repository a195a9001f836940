package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BoxEpsilon thickens bounding boxes of flat primitives so slab tests never see zero volume
const BoxEpsilon = 0.0001

var (
	// ErrEmptyBVH is returned when a BVH is built over no primitives
	ErrEmptyBVH = errors.New("cannot build BVH over an empty primitive list")
	// ErrUnboundedPrimitive is returned when a primitive reports no bounding box
	ErrUnboundedPrimitive = errors.New("primitive has no bounding box")
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]. The sampler is only
	// consumed by stochastic primitives such as participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the primitive over the shutter interval [time0, time1].
	// It returns false if the primitive cannot be bounded.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
