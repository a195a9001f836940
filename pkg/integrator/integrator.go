package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. lights may be nil when the
	// scene has nothing to importance-sample.
	RayColor(ray core.Ray, world geometry.Hittable, lights pdf.Emittable, background Background, sampler core.Sampler) core.Vec3
}

// Config controls path termination and light sampling
type Config struct {
	MaxDepth   int     // Maximum number of bounces
	LightRatio float64 // Share of diffuse bounces that sample the lights directly
}

// DefaultConfig returns depth 50 with an even split between light and material sampling
func DefaultConfig() Config {
	return Config{
		MaxDepth:   50,
		LightRatio: 0.5,
	}
}

var _ Integrator = (*PathTracingIntegrator)(nil)
