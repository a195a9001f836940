package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It never scatters.
type DiffuseLight struct {
	Emission  ColorSource // Emitted radiance
	FrontOnly bool        // Emit only from the side the geometric normal faces
}

// NewDiffuseLight creates a two-sided light with a constant emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewOneSidedLight creates a light that is dark when seen from behind
func NewOneSidedLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), FrontOnly: true}
}

// Scatter absorbs every incoming ray
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF is zero: lights do not scatter
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit returns the emitted radiance at the hit
func (e *DiffuseLight) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if e.FrontOnly && !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
