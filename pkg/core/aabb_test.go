package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"Through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0.001, math.Inf(1), true},
		{"Negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0.001, math.Inf(1), true},
		{"Pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), 0.001, math.Inf(1), false},
		{"Parallel outside slab", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), 0.001, math.Inf(1), false},
		{"Parallel inside slab", NewRay(NewVec3(0, 0.5, -5), NewVec3(0, 0, 1)), 0.001, math.Inf(1), true},
		{"Interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0.001, 3, false},
		{"Diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), 0.001, math.Inf(1), true},
		{"Origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), 0.001, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitIsAxisOrderIndependent(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := NewRandomSampler(random)
	orders := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for trial := 0; trial < 500; trial++ {
		a := RandomVec3(sampler, -5, 5)
		b := RandomVec3(sampler, -5, 5)
		box := NewAABBFromPoints(a, b)
		ray := NewRay(RandomVec3(sampler, -10, 10), RandomUnitVector(sampler))

		t0, t1, hit := box.slabs(ray, 0.001, math.Inf(1), orders[0])
		for _, order := range orders[1:] {
			u0, u1, uhit := box.slabs(ray, 0.001, math.Inf(1), order)
			if uhit != hit {
				t.Fatalf("Trial %d: order %v gave hit=%v, expected %v", trial, order, uhit, hit)
			}
			if hit && (math.Abs(u0-t0) > 1e-12 || math.Abs(u1-t1) > 1e-12) {
				t.Fatalf("Trial %d: order %v gave [%f,%f], expected [%f,%f]", trial, order, u0, u1, t0, t1)
			}
		}
	}
}

func TestAABB_UnionContainsBoth(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for trial := 0; trial < 200; trial++ {
		a := NewAABBFromPoints(RandomVec3(sampler, -10, 10), RandomVec3(sampler, -10, 10))
		b := NewAABBFromPoints(RandomVec3(sampler, -10, 10), RandomVec3(sampler, -10, 10))
		union := a.Union(b)

		for _, box := range []AABB{a, b} {
			for _, corner := range box.Corners() {
				if !union.Union(NewAABB(corner, corner)).equals(union) {
					t.Fatalf("Trial %d: corner %v outside union %v", trial, corner, union)
				}
			}
		}
		if !union.IsValid() {
			t.Fatalf("Trial %d: union %v is not valid", trial, union)
		}
	}
}

func TestAABB_Merge(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0), NewVec3(3, 0, 4))

	if got := a.Merge(nil); got != a {
		t.Errorf("Expected merge into empty accumulator to return %v, got %v", a, got)
	}

	expected := NewAABB(NewVec3(0, -1, 0), NewVec3(3, 1, 4))
	if got := b.Merge(&a); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func (aabb AABB) equals(other AABB) bool {
	return aabb.Min == other.Min && aabb.Max == other.Max
}

func TestAABB_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{"ordered", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)), true},
		{"flat", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 0, 1)), true},
		{"inverted", NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1)), false},
		{"NaN bound", NewAABB(NewVec3(math.NaN(), 0, 0), NewVec3(1, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsValid(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
