package lights

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// SphereLight represents a spherical area light
type SphereLight struct {
	*geometry.Sphere // Embed sphere for hit testing
}

// NewSphereLight creates a new spherical light
func NewSphereLight(center core.Vec3, radius float64, material material.Material) *SphereLight {
	return &SphereLight{
		Sphere: geometry.NewSphere(center, radius, material),
	}
}

// NewSphereLightFrom samples an existing sphere
func NewSphereLightFrom(sphere *geometry.Sphere) *SphereLight {
	return &SphereLight{Sphere: sphere}
}

// PDFValue returns 1/(2π(1-cos θmax)) for directions inside the cone the sphere
// subtends from origin, or the uniform sphere density when origin is inside the light
func (sl *SphereLight) PDFValue(origin, direction core.Vec3) float64 {
	if _, isHit := sl.Hit(core.NewRay(origin, direction), rayEpsilon, math.Inf(1), nil); !isHit {
		return 0
	}

	cosThetaMax, inside := sl.cone(origin)
	if inside {
		return 1 / (4 * math.Pi)
	}
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction uniformly within the cone subtended by the sphere
func (sl *SphereLight) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := sl.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()

	// If point is inside the sphere, sample uniformly on the sphere
	if _, inside := sl.cone(origin); inside {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	uvw := core.NewOnb(direction)
	return uvw.Local(core.RandomToSphere(sl.Radius, distanceSquared, sampler.Get2D()))
}

// IsValid returns true for spheres with positive radius
func (sl *SphereLight) IsValid() bool {
	return sl.Radius > 0
}

// cone returns cos θmax of the cone subtended from origin
func (sl *SphereLight) cone(origin core.Vec3) (float64, bool) {
	distanceSquared := sl.Center.Subtract(origin).LengthSquared()
	radiusSquared := sl.Radius * sl.Radius
	if distanceSquared <= radiusSquared {
		return 0, true
	}
	return math.Sqrt(1 - radiusSquared/distanceSquared), false
}
