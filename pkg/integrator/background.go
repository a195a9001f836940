package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background is the radiance seen by rays that escape the scene
type Background interface {
	Value(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Value returns the constant color
func (b *SolidBackground) Value(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically from Bottom to Top
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a vertical gradient
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// Value returns a gradient color based on ray direction
func (b *GradientBackground) Value(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Sky is the white to light blue daylight gradient
func Sky() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Dark is a black background for scenes lit only by emitters
func Dark() *SolidBackground {
	return NewSolidBackground(core.Vec3{})
}
