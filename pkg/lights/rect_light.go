package lights

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RectLight is an axis-aligned rectangular area light
type RectLight struct {
	AreaRect // Embed rect for hit testing
}

// NewRectLight wraps rect so it can be sampled for direct lighting
func NewRectLight(rect AreaRect) *RectLight {
	return &RectLight{AreaRect: rect}
}

// PDFValue converts the area density 1/A at the point direction hits into a
// solid-angle density: distance² / (|cos θ| · area)
func (rl *RectLight) PDFValue(origin, direction core.Vec3) float64 {
	hit, isHit := rl.Hit(core.NewRay(origin, direction), rayEpsilon, math.Inf(1), nil)
	if !isHit {
		return 0
	}

	directionLength := direction.Length()
	distanceSquared := hit.T * hit.T * directionLength * directionLength
	cosine := math.Abs(direction.Dot(hit.Normal)) / directionLength

	// Grazing directions carry no measurable density
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * rl.Area())
}

// Random returns the direction from origin to a uniformly chosen point on the rectangle
func (rl *RectLight) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return rl.RandomPoint(sampler).Subtract(origin)
}

// IsValid returns true for rectangles with positive area
func (rl *RectLight) IsValid() bool {
	return rl.Area() > 0
}
