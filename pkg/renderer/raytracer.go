package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// SamplingConfig contains rendering sampling parameters
type SamplingConfig struct {
	SamplesPerPixel int   // Samples per pixel in each pass
	MaxDepth        int   // Maximum ray bounces; a supplied path tracer must agree
	Passes          int   // Number of independent passes averaged into the image
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; pass k renders with Seed+k
}

// DefaultSamplingConfig returns 64 samples per pass, one pass per CPU
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 64,
		MaxDepth:        50,
		Passes:          runtime.NumCPU(),
		NumWorkers:      0,
		Seed:            42,
	}
}

// depthConfigurer is implemented by integrators with a configured bounce limit
type depthConfigurer interface {
	Config() integrator.Config
}

// checkMaxDepth rejects an integrator whose bounce limit differs from config.MaxDepth.
// A zero MaxDepth defers to the integrator.
func checkMaxDepth(config SamplingConfig, integ integrator.Integrator) error {
	configured, ok := integ.(depthConfigurer)
	if !ok || config.MaxDepth == 0 {
		return nil
	}
	if depth := configured.Config().MaxDepth; depth != config.MaxDepth {
		return fmt.Errorf("max depth %d does not match integrator max depth %d", config.MaxDepth, depth)
	}
	return nil
}

// Raytracer renders whole-image passes of a scene. It holds no mutable state,
// so a single Raytracer may render passes on several goroutines at once.
type Raytracer struct {
	scene         *scene.Scene
	camera        *geometry.Camera
	lights        pdf.Emittable
	width, height int
	config        SamplingConfig
	integrator    integrator.Integrator
}

// NewRaytracer creates a raytracer for the given scene. A nil integrator selects
// path tracing with config.MaxDepth and the default light ratio.
func NewRaytracer(s *scene.Scene, width, height int, config SamplingConfig, integ integrator.Integrator) *Raytracer {
	if integ == nil {
		integratorConfig := integrator.DefaultConfig()
		integratorConfig.MaxDepth = config.MaxDepth
		integ = integrator.NewPathTracingIntegrator(integratorConfig)
	}

	// A nil *LightList must not become a non-nil interface
	var lights pdf.Emittable
	if s.Lights != nil {
		lights = s.Lights
	}

	return &Raytracer{
		scene:      s,
		camera:     geometry.NewCamera(s.Camera),
		lights:     lights,
		width:      width,
		height:     height,
		config:     config,
		integrator: integ,
	}
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// RenderPass renders every pixel with SamplesPerPixel jittered samples drawn
// from sampler and returns the accumulated sums.
func (rt *Raytracer) RenderPass(sampler core.Sampler) *Framebuffer {
	fb := NewFramebuffer(rt.width, rt.height)

	// Image rows are stored top to bottom while t grows upward
	for j := rt.height - 1; j >= 0; j-- {
		y := rt.height - 1 - j
		for i := 0; i < rt.width; i++ {
			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				fb.AddSample(i, y, rt.samplePixel(i, j, sampler))
			}
		}
	}

	return fb
}

// samplePixel traces one jittered camera ray through pixel column i, row j
// (j counted from the bottom of the image)
func (rt *Raytracer) samplePixel(i, j int, sampler core.Sampler) core.Vec3 {
	jitter := sampler.Get2D()
	u := (float64(i) + jitter.X) / float64(rt.width)
	v := (float64(j) + jitter.Y) / float64(rt.height)

	ray := rt.camera.GetRay(u, v, sampler)
	return rt.integrator.RayColor(ray, rt.scene.World, rt.lights, rt.scene.Background, sampler)
}
