package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two sources in a 3D checkerboard
type Checker struct {
	Odd  ColorSource
	Even ColorSource
}

// NewChecker creates a checker from two sources
func NewChecker(odd, even ColorSource) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewColorChecker creates a checker from two solid colors
func NewColorChecker(odd, even core.Vec3) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks Odd where sin(10x)·sin(10y)·sin(10z) is negative, Even otherwise
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
