package lights

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// LightList samples a set of lights with equal probability
type LightList struct {
	Lights []pdf.Emittable
}

// NewLightList creates a list from lights
func NewLightList(lights ...pdf.Emittable) *LightList {
	return &LightList{Lights: lights}
}

// Add appends a light to the list
func (l *LightList) Add(light pdf.Emittable) {
	l.Lights = append(l.Lights, light)
}

// Len returns the number of lights
func (l *LightList) Len() int {
	return len(l.Lights)
}

// PDFValue averages the member densities
func (l *LightList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Lights) == 0 {
		return 0
	}

	sum := 0.0
	for _, light := range l.Lights {
		sum += light.PDFValue(origin, direction)
	}
	return sum / float64(len(l.Lights))
}

// Random picks a member uniformly and samples a direction toward it.
// Callers must check IsValid first; an empty list returns the zero vector.
func (l *LightList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Lights) == 0 {
		return core.Vec3{}
	}
	return l.Lights[core.RandomInt(sampler, len(l.Lights))].Random(origin, sampler)
}

// IsValid returns true if the list has at least one light
func (l *LightList) IsValid() bool {
	return len(l.Lights) > 0
}
