package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"Bottom-left", core.NewVec2(0.1, 0.1), black},
		{"Bottom-right", core.NewVec2(0.9, 0.1), white},
		{"Top-left", core.NewVec2(0.1, 0.9), white},
		{"Top-right", core.NewVec2(0.9, 0.9), black},
		{"Upper edge clamps", core.NewVec2(1, 1), black},
		{"Lower edge clamps", core.NewVec2(0, 0), black},
		{"Out of range clamps", core.NewVec2(-3, 7), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected debug cyan for empty texture, got %v", got)
	}
}
