// Package pdf holds the direction-sampling densities used for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions that can also draw samples from itself
type PDF interface {
	// Value returns the solid-angle density of sampling direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to this density
	Generate(sampler core.Sampler) core.Vec3
}

// Emittable is a light that can be sampled by direction from a shading point
type Emittable interface {
	// PDFValue returns the solid-angle density of picking direction from origin toward the light
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a direction from origin toward a random point on the light
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
	// IsValid reports whether the light can be sampled at all
	IsValid() bool
}

// CosinePDF is a cosine-weighted hemisphere around a surface normal
type CosinePDF struct {
	uvw core.Onb
}

// NewCosinePDF creates a cosine density oriented by normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewOnb(normal)}
}

// Value returns max(0, cos θ)/π
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere around the normal
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.RandomCosineDirection(sampler.Get2D()))
}

// UniformSpherePDF samples every direction with equal density
type UniformSpherePDF struct{}

// NewUniformSpherePDF creates a uniform sphere density
func NewUniformSpherePDF() *UniformSpherePDF {
	return &UniformSpherePDF{}
}

// Value returns 1/(4π)
func (p *UniformSpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniformly distributed unit vector
func (p *UniformSpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// LightPDF samples directions from a fixed origin toward an emittable light
type LightPDF struct {
	origin core.Vec3
	light  Emittable
}

// NewLightPDF creates a density toward light as seen from origin
func NewLightPDF(light Emittable, origin core.Vec3) *LightPDF {
	return &LightPDF{origin: origin, light: light}
}

// Value returns the light's solid-angle density for direction
func (p *LightPDF) Value(direction core.Vec3) float64 {
	return p.light.PDFValue(p.origin, direction)
}

// Generate draws a direction toward the light
func (p *LightPDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.light.Random(p.origin, sampler)
}

// MixturePDF blends two densities: ratio of the first and 1-ratio of the second
type MixturePDF struct {
	first, second PDF
	ratio         float64
}

// NewMixturePDF creates a mixture; ratio is clamped to [0, 1]
func NewMixturePDF(first, second PDF, ratio float64) *MixturePDF {
	return &MixturePDF{first: first, second: second, ratio: max(0, min(1, ratio))}
}

// Value returns ratio·first + (1-ratio)·second. A density with zero weight is never evaluated.
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	value := 0.0
	if p.ratio > 0 {
		value += p.ratio * p.first.Value(direction)
	}
	if p.ratio < 1 {
		value += (1 - p.ratio) * p.second.Value(direction)
	}
	return value
}

// Generate samples the first density with probability ratio, otherwise the second
func (p *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < p.ratio {
		return p.first.Generate(sampler)
	}
	return p.second.Generate(sampler)
}
