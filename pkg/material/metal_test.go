package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetalPerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRayAtTime(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0), 0.3)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  metal,
	}

	result, scattered := metal.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Expected mirror to scatter")
	}
	if !result.IsSpecular() {
		t.Fatal("Expected specular scatter")
	}
	if result.PDF != nil {
		t.Error("Specular scatter should not carry a density")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if result.Specular.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, result.Specular.Direction)
	}
	if result.Specular.Time != 0.3 {
		t.Errorf("Expected scattered ray to keep time 0.3, got %f", result.Specular.Time)
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float64
		expected float64
	}{
		{"Within range", 0.3, 0.3},
		{"Above one", 5, 1},
		{"Negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMetal(core.Vec3{}, tt.fuzz).Fuzzness; got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestMetalFuzzNeverScattersBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	// Grazing incidence makes absorption by fuzz common
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		result, scattered := metal.Scatter(ray, hit, sampler)
		if !scattered {
			absorbed++
			continue
		}
		if result.Specular.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v points into the surface", result.Specular.Direction)
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed")
	}
}
