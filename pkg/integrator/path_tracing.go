package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

const (
	// tMin keeps secondary rays from re-hitting the surface they leave
	tMin = 0.001
	// minPDF is the smallest mixture density a diffuse sample may be divided by
	minPDF = 1e-12
)

// PathTracingIntegrator implements unidirectional path tracing with a mixture of
// material sampling and light sampling on diffuse bounces
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator's configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single ray starting at the configured maximum depth
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Emittable, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, lights, background, sampler, pt.config.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, lights pdf.Emittable, background Background, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMin, math.Inf(1), sampler)
	if !isHit {
		return background.Value(ray)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	// Start with emitted light from the hit material
	colorEmitted := pt.getEmittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.IsSpecular() {
		incoming := pt.rayColor(*scatter.Specular, world, lights, background, sampler, depth-1)
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, world, lights, background, sampler, depth))
}

// calculateDiffuseColor draws the next direction from the light/material mixture and
// weights the incoming radiance by scattering density over mixture density
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, world geometry.Hittable, lights pdf.Emittable, background Background, sampler core.Sampler, depth int) core.Vec3 {
	mixture := pt.mixturePDF(hit.Point, scatter.PDF, lights)

	direction := mixture.Generate(sampler)
	if direction.NearZero() {
		direction = hit.Normal
	}
	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)
	density := mixture.Value(direction)

	// Reject samples whose density would blow up the estimator
	if !(density > minPDF) || math.IsInf(density, 1) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.rayColor(scattered, world, lights, background, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / density)
}

// mixturePDF combines light sampling with the material's density. Without a usable
// light set every sample comes from the material.
func (pt *PathTracingIntegrator) mixturePDF(origin core.Vec3, materialPDF pdf.PDF, lights pdf.Emittable) *pdf.MixturePDF {
	if lights == nil || !lights.IsValid() {
		return pdf.NewMixturePDF(nil, materialPDF, 0)
	}
	return pdf.NewMixturePDF(pdf.NewLightPDF(lights, origin), materialPDF, pt.config.LightRatio)
}

// getEmittedLight returns the emitted light from a material if it's emissive
func (pt *PathTracingIntegrator) getEmittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
