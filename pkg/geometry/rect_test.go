package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRect_Hit_BasicIntersection(t *testing.T) {
	tests := []struct {
		name      string
		rect      Hittable
		origin    core.Vec3
		direction core.Vec3
		expectedT float64
		expectedP core.Vec3
		normal    core.Vec3
	}{
		{
			name:      "XY rect from +Z",
			rect:      NewXYRect(-1, 1, -1, 1, 0, nil),
			origin:    core.NewVec3(0.5, 0.25, 2),
			direction: core.NewVec3(0, 0, -1),
			expectedT: 2,
			expectedP: core.NewVec3(0.5, 0.25, 0),
			normal:    core.NewVec3(0, 0, 1),
		},
		{
			name:      "XZ rect from below",
			rect:      NewXZRect(0, 10, 0, 10, 5, nil),
			origin:    core.NewVec3(3, 0, 7),
			direction: core.NewVec3(0, 1, 0),
			expectedT: 5,
			expectedP: core.NewVec3(3, 5, 7),
			normal:    core.NewVec3(0, -1, 0),
		},
		{
			name:      "YZ rect from +X",
			rect:      NewYZRect(0, 2, 0, 2, 1, nil),
			origin:    core.NewVec3(4, 1, 1),
			direction: core.NewVec3(-2, 0, 0),
			expectedT: 1.5,
			expectedP: core.NewVec3(1, 1, 1),
			normal:    core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.rect.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 1000, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Point.Subtract(tt.expectedP).Length() > 1e-9 {
				t.Errorf("Expected point %v, got %v", tt.expectedP, hit.Point)
			}
			if hit.Normal.Subtract(tt.normal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}
}

func TestRect_Hit_OutsideBounds(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, nil)

	tests := []struct {
		name   string
		origin core.Vec3
	}{
		{"right of rect", core.NewVec3(1.5, 0, 2)},
		{"left of rect", core.NewVec3(-1.5, 0, 2)},
		{"above rect", core.NewVec3(0, 1.5, 2)},
		{"below rect", core.NewVec3(0, -1.5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			if hit, isHit := rect.Hit(ray, 0.001, 1000, nil); isHit {
				t.Errorf("Expected miss, got hit at %v", hit.Point)
			}
		})
	}
}

func TestRect_Hit_ParallelRay(t *testing.T) {
	rect := NewXZRect(0, 1, 0, 1, 0, nil)
	ray := core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1))

	if _, isHit := rect.Hit(ray, 0.001, 1000, nil); isHit {
		t.Error("Expected parallel ray to miss")
	}
}

func TestRect_Hit_UV(t *testing.T) {
	rect := NewXYRect(0, 4, 0, 2, 0, nil)
	ray := core.NewRay(core.NewVec3(1, 1.5, 1), core.NewVec3(0, 0, -1))

	hit, isHit := rect.Hit(ray, 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	expected := core.NewVec2(0.25, 0.75)
	if math.Abs(hit.UV.X-expected.X) > 1e-12 || math.Abs(hit.UV.Y-expected.Y) > 1e-12 {
		t.Errorf("Expected uv %v, got %v", expected, hit.UV)
	}
}

func TestRect_BoundingBox(t *testing.T) {
	tests := []struct {
		name string
		rect Hittable
		min  core.Vec3
		max  core.Vec3
	}{
		{"XY", NewXYRect(0, 1, 2, 3, 5, nil), core.NewVec3(0, 2, 5-BoxEpsilon), core.NewVec3(1, 3, 5+BoxEpsilon)},
		{"XZ", NewXZRect(0, 1, 2, 3, 5, nil), core.NewVec3(0, 5-BoxEpsilon, 2), core.NewVec3(1, 5+BoxEpsilon, 3)},
		{"YZ", NewYZRect(0, 1, 2, 3, 5, nil), core.NewVec3(5-BoxEpsilon, 0, 2), core.NewVec3(5+BoxEpsilon, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.rect.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Expected bounding box")
			}
			if box.Min != tt.min || box.Max != tt.max {
				t.Errorf("Expected box [%v, %v], got [%v, %v]", tt.min, tt.max, box.Min, box.Max)
			}
			size := box.Max.Subtract(box.Min)
			if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
				t.Errorf("Expected non-degenerate box, got size %v", size)
			}
		})
	}
}

func TestRect_AreaAndRandomPoint(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	rect := NewXZRect(213, 343, 227, 332, 554, nil)

	expectedArea := 130.0 * 105.0
	if rect.Area() != expectedArea {
		t.Errorf("Expected area %f, got %f", expectedArea, rect.Area())
	}

	for i := 0; i < 1000; i++ {
		p := rect.RandomPoint(sampler)
		if p.X < 213 || p.X > 343 || p.Z < 227 || p.Z > 332 || p.Y != 554 {
			t.Fatalf("Expected point on rect, got %v", p)
		}
	}
}
