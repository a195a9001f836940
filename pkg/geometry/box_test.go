package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestBox_Hit_AxisAligned(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name           string
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits front face",
			ray:            core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "Ray hits top face",
			ray:            core.NewRay(core.NewVec3(0.5, 3, 0.5), core.NewVec3(0, -1, 0)),
			shouldHit:      true,
			expectedT:      2,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "Ray hits side face",
			ray:            core.NewRay(core.NewVec3(-4, 0.2, 0.3), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      3,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:      "Ray misses box",
			ray:       core.NewRay(core.NewVec3(3, 3, -5), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:           "Ray from inside",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, 100, nil)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			// Face normals always oppose the incoming ray
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_BoundingBox(t *testing.T) {
	p0 := core.NewVec3(130, 0, 65)
	p1 := core.NewVec3(295, 165, 230)
	box := NewBox(p0, p1, nil)

	bbox, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if bbox.Min != p0 || bbox.Max != p1 {
		t.Errorf("Expected [%v, %v], got [%v, %v]", p0, p1, bbox.Min, bbox.Max)
	}
}

func TestBox_RotatedAndTranslated(t *testing.T) {
	// A unit cube at the origin rotated 90° maps onto itself shifted in X
	cube := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	rotated := NewRotateY(cube, 90)
	moved := NewTranslate(rotated, core.NewVec3(10, 0, 0))

	bbox, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	expectedMin := core.NewVec3(10-BoxEpsilon, -BoxEpsilon, -1-BoxEpsilon)
	expectedMax := core.NewVec3(11+BoxEpsilon, 1+BoxEpsilon, BoxEpsilon)
	if bbox.Min.Subtract(expectedMin).Length() > 1e-9 || bbox.Max.Subtract(expectedMax).Length() > 1e-9 {
		t.Errorf("Expected [%v, %v], got [%v, %v]", expectedMin, expectedMax, bbox.Min, bbox.Max)
	}

	ray := core.NewRay(core.NewVec3(10.5, 0.5, -5), core.NewVec3(0, 0, 1))
	hit, isHit := moved.Hit(ray, 0.001, 100, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	expectedPoint := core.NewVec3(10.5, 0.5, -1)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected point %v, got %v", expectedPoint, hit.Point)
	}
}
