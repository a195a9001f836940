package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	width      int
	samples    int
	passes     int
	depth      int
	workers    int
	seed       int64
	sceneName  string
	format     string
	output     string
	resDir     string
	lightRatio float64
	help       bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	if err := run(opts, os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options, using the renderer defaults
func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := newFlagSet(&opts, errOut)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func newFlagSet(opts *options, out io.Writer) *flag.FlagSet {
	defaults := renderer.DefaultSamplingConfig()
	integratorDefaults := integrator.DefaultConfig()
	sceneDefaults := scene.DefaultOptions()

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&opts.width, "width", 600, "Width of the output image in pixels")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel in each pass")
	fs.IntVar(&opts.passes, "passes", defaults.Passes, "Number of independent passes averaged into the image")
	fs.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for the scene and the first pass")
	fs.StringVar(&opts.sceneName, "scene", "random", "Scene to render (see -help)")
	fs.StringVar(&opts.format, "format", string(renderer.FormatPPM), "Output format: 'ppm' or 'png'")
	fs.StringVar(&opts.output, "o", "", "Output file ('-' for stdout; default stdout for ppm, output/<scene>/render_<timestamp>.png for png)")
	fs.StringVar(&opts.resDir, "res", sceneDefaults.ResourceDir, "Directory with texture and mesh resources")
	fs.Float64Var(&opts.lightRatio, "light-ratio", integratorDefaults.LightRatio, "Share of diffuse bounces that sample lights directly (0-1)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&options{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PPM output goes to stdout unless -o is given; progress is logged to stderr.")
}

// run builds the scene, renders it and writes the image
func run(opts options, stdout io.Writer, logger core.Logger) error {
	format, err := renderer.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.width <= 0 {
		return fmt.Errorf("width must be positive, got %d", opts.width)
	}
	if opts.lightRatio < 0 || opts.lightRatio > 1 {
		return fmt.Errorf("light ratio must be in [0,1], got %v", opts.lightRatio)
	}

	// Scene construction consumes its own stream so passes stay independent of it
	sceneSampler := core.NewSeededSampler(opts.seed)
	s, err := scene.NewScene(opts.sceneName, scene.Options{ResourceDir: opts.resDir}, sceneSampler)
	if err != nil {
		return err
	}

	width := opts.width
	height := imageHeight(width, s.AspectRatio())
	logger.Printf("Scene %s: %d primitives, %d lights, %dx%d\n",
		s.Name, s.GetPrimitiveCount(), s.Lights.Len(), width, height)

	config := renderer.SamplingConfig{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		Passes:          opts.passes,
		NumWorkers:      opts.workers,
		Seed:            opts.seed,
	}
	pathTracer := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth:   opts.depth,
		LightRatio: opts.lightRatio,
	})

	pr, err := renderer.NewProgressiveRaytracer(s, width, height, config, pathTracer, logger)
	if err != nil {
		return err
	}

	fb, stats, err := pr.Render()
	if err != nil {
		return err
	}
	logger.Printf("Rendered %d samples in %v\n", stats.TotalSamples, stats.Elapsed)

	filename := outputPath(opts.output, opts.sceneName, format, time.Now())
	if filename == "" {
		return renderer.WriteImage(stdout, fb, format)
	}
	if err := saveImage(filename, fb, format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// imageHeight derives the image height from width and aspect ratio
func imageHeight(width int, aspectRatio float64) int {
	if !(aspectRatio > 0) {
		return width
	}
	return max(1, int(float64(width)/aspectRatio))
}

// outputPath returns the file to write, or "" for stdout
func outputPath(output, sceneName string, format renderer.Format, now time.Time) string {
	switch {
	case output == "-":
		return ""
	case output != "":
		return output
	case format == renderer.FormatPPM:
		return ""
	default:
		timestamp := now.Format("20060102_150405")
		return filepath.Join("output", sceneName, fmt.Sprintf("render_%s%s", timestamp, format.Extension()))
	}
}

// saveImage writes fb to filename, creating parent directories
func saveImage(filename string, fb *renderer.Framebuffer, format renderer.Format) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := renderer.WriteImage(file, fb, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
