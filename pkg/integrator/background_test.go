package integrator

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestGradientBackground(t *testing.T) {
	sky := Sky()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -3, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(2, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Value(core.NewRay(core.Vec3{}, tt.direction))
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSolidBackground(t *testing.T) {
	if got := Dark().Value(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}

	color := core.NewVec3(0.1, 0.2, 0.3)
	bg := NewSolidBackground(color)
	for _, d := range []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(0, -1, 0), core.NewVec3(0.3, 0.3, -0.9)} {
		if got := bg.Value(core.NewRay(core.Vec3{}, d)); got != color {
			t.Errorf("Expected %v for direction %v, got %v", color, d, got)
		}
	}
}
