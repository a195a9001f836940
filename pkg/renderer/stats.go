package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Passes         int           // Number of passes merged into the image
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Elapsed        time.Duration // Wall-clock time of the whole render
}

// PixelStats tracks the accumulated radiance of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Framebuffer accumulates per-pixel radiance sums. Row 0 is the top of the image.
type Framebuffer struct {
	width, height int
	pixels        []PixelStats
}

// NewFramebuffer creates an empty framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Pixel returns the accumulated statistics of pixel (x, y)
func (fb *Framebuffer) Pixel(x, y int) PixelStats {
	return fb.pixels[y*fb.width+x]
}

// AddSample adds one radiance sample to pixel (x, y)
func (fb *Framebuffer) AddSample(x, y int, color core.Vec3) {
	fb.pixels[y*fb.width+x].AddSample(color)
}

// Color returns the mean radiance of pixel (x, y)
func (fb *Framebuffer) Color(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x].GetColor()
}

// Merge adds every sample of other into fb. Merging is a per-pixel sum, so the
// result is the average over the union of both sample sets.
func (fb *Framebuffer) Merge(other *Framebuffer) error {
	if other.width != fb.width || other.height != fb.height {
		return fmt.Errorf("cannot merge %dx%d framebuffer into %dx%d", other.width, other.height, fb.width, fb.height)
	}
	for i := range fb.pixels {
		fb.pixels[i].ColorAccum = fb.pixels[i].ColorAccum.Add(other.pixels[i].ColorAccum)
		fb.pixels[i].SampleCount += other.pixels[i].SampleCount
	}
	return nil
}

// Stats summarizes the sample counts held by the framebuffer
func (fb *Framebuffer) Stats() RenderStats {
	stats := RenderStats{TotalPixels: len(fb.pixels)}
	for i := range fb.pixels {
		stats.TotalSamples += fb.pixels[i].SampleCount
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// ToImage tone maps the framebuffer into an 8-bit image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// RGB returns the gamma corrected 8-bit channels of pixel (x, y)
func (fb *Framebuffer) RGB(x, y int) (uint8, uint8, uint8) {
	c := displayColor(fb.Color(x, y))
	return uint8(255.999 * c.X), uint8(255.999 * c.Y), uint8(255.999 * c.Z)
}

// displayColor maps radiance to [0,1]: negative and NaN channels become 0, then
// gamma 2 (square root) and clamping
func displayColor(c core.Vec3) core.Vec3 {
	c = core.NewVec3(nonNegative(c.X), nonNegative(c.Y), nonNegative(c.Z))
	return c.GammaCorrect(2).Clamp(0, 1)
}

func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}
