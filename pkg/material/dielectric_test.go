package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}
	if !result.IsSpecular() {
		t.Error("Expected specular scatter")
	}

	// Both reflection and refraction occur across random draws
	hasReflection := false
	hasRefraction := false
	for i := 0; i < 1000 && (!hasReflection || !hasRefraction); i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Specular.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}
	if !hasReflection {
		t.Error("Expected at least one reflection")
	}
	if !hasRefraction {
		t.Error("Expected at least one refraction")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Leaving glass at 60 degrees: 1.5·sin(60°) > 1
	direction := core.NewVec3(math.Sin(math.Pi/3), math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, -1, 0), direction)
	hit := HitRecord{
		Normal:    core.NewVec3(0, -1, 0), // flipped to face the incoming ray
		FrontFace: false,
	}

	for i := 0; i < 100; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Specular.Direction.Y > 0 {
			t.Fatalf("Expected total internal reflection, got refracted direction %v", result.Specular.Direction)
		}
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched indices", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
