package lights

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// rayEpsilon is the minimum t used when casting probe rays toward a light
const rayEpsilon = 0.001

// Light is a primitive that can be both intersected and sampled by direction
type Light interface {
	geometry.Hittable
	pdf.Emittable
}

// AreaRect is an axis-aligned rectangle that can be sampled by area.
// *geometry.XYRect, *geometry.XZRect and *geometry.YZRect all satisfy it.
type AreaRect interface {
	geometry.Hittable
	Area() float64
	RandomPoint(sampler core.Sampler) core.Vec3
}

var (
	_ Light         = (*RectLight)(nil)
	_ Light         = (*SphereLight)(nil)
	_ pdf.Emittable = (*LightList)(nil)
	_ AreaRect      = (*geometry.XYRect)(nil)
	_ AreaRect      = (*geometry.XZRect)(nil)
	_ AreaRect      = (*geometry.YZRect)(nil)
)
