package renderer

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stderr. Stdout is left
// free for image data.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveRaytracer renders several independent passes in parallel and
// averages them into one image
type ProgressiveRaytracer struct {
	scene         *scene.Scene
	width, height int
	config        SamplingConfig
	raytracer     *Raytracer
	logger        core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(s *scene.Scene, width, height int, config SamplingConfig, integ integrator.Integrator, logger core.Logger) (*ProgressiveRaytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if err := checkMaxDepth(config, integ); err != nil {
		return nil, err
	}
	if config.Passes <= 0 {
		config.Passes = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &ProgressiveRaytracer{
		scene:     s,
		width:     width,
		height:    height,
		config:    config,
		raytracer: NewRaytracer(s, width, height, config, integ),
		logger:    logger,
	}, nil
}

// Render fans Passes tasks out to the worker pool and fans the results back in.
// Results are merged in pass order, so the image depends only on the seed and
// never on the number of workers or their scheduling.
func (pr *ProgressiveRaytracer) Render() (*Framebuffer, RenderStats, error) {
	startTime := time.Now()
	passes := pr.config.Passes

	workerPool := NewWorkerPool(pr.raytracer, min(pr.numWorkers(), passes), passes)
	workerPool.Start()
	defer workerPool.Stop()

	pr.logger.Printf("Rendering %s at %dx%d: %d passes x %d samples using %d workers...\n",
		pr.scene.Name, pr.width, pr.height, passes, pr.config.SamplesPerPixel, workerPool.GetNumWorkers())

	for k := 0; k < passes; k++ {
		workerPool.SubmitTask(PassTask{
			PassNumber: k,
			Seed:       pr.config.Seed + int64(k),
		})
	}

	final := NewFramebuffer(pr.width, pr.height)
	pending := make(map[int]*Framebuffer)
	next := 0

	for received := 0; received < passes; received++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		pr.logger.Printf("Pass %d/%d done in %v\n", received+1, passes, result.Duration)

		pending[result.PassNumber] = result.Buffer
		for buffer, ready := pending[next]; ready; buffer, ready = pending[next] {
			if err := final.Merge(buffer); err != nil {
				return nil, RenderStats{}, fmt.Errorf("failed to merge pass %d: %w", next, err)
			}
			delete(pending, next)
			next++
		}
	}

	stats := final.Stats()
	stats.Passes = passes
	stats.Elapsed = time.Since(startTime)

	pr.logger.Printf("Render completed in %v (%.0f samples/pixel)\n", stats.Elapsed, stats.AverageSamples)

	return final, stats, nil
}

func (pr *ProgressiveRaytracer) numWorkers() int {
	if pr.config.NumWorkers > 0 {
		return pr.config.NumWorkers
	}
	return runtime.NumCPU()
}
