package renderer

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"strings"
)

// Format selects the encoding of a rendered image
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts "ppm" or "png" in any case
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ppm or png)", name)
	}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// WriteImage encodes fb to w in the given format
func WriteImage(w io.Writer, fb *Framebuffer, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb)
	case FormatPNG:
		return WritePNG(w, fb)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WritePPM writes fb as a plain-text P3 image, one "R G B" line per pixel with
// rows from top to bottom
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width(), fb.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := fb.RGB(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write PPM pixel data: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// WritePNG writes fb as an 8-bit PNG
func WritePNG(w io.Writer, fb *Framebuffer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
