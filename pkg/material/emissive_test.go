package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	emission := core.NewVec3(4, 4, 4)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name      string
		light     *DiffuseLight
		frontFace bool
		expected  core.Vec3
	}{
		{"Two-sided front", NewDiffuseLight(emission), true, emission},
		{"Two-sided back", NewDiffuseLight(emission), false, emission},
		{"One-sided front", NewOneSidedLight(emission), true, emission},
		{"One-sided back", NewOneSidedLight(emission), false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: tt.frontFace, Material: tt.light}

			if got := tt.light.Emit(ray, hit); got != tt.expected {
				t.Errorf("Expected emission %v, got %v", tt.expected, got)
			}
			if _, scattered := tt.light.Scatter(ray, hit, sampler); scattered {
				t.Error("Lights should not scatter")
			}
		})
	}
}
