package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestOnb_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(-1, 0, 0),
		NewVec3(0.95, 0.1, 0.05),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1),
	}

	for _, n := range normals {
		onb := NewOnb(n)
		w := n.Normalize()

		if onb.W.Subtract(w).Length() > 1e-9 {
			t.Errorf("Normal %v: expected W=%v, got %v", n, w, onb.W)
		}
		for _, axis := range []Vec3{onb.U, onb.V, onb.W} {
			if math.Abs(axis.Length()-1) > 1e-9 {
				t.Errorf("Normal %v: axis %v is not unit length", n, axis)
			}
		}
		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 || math.Abs(onb.U.Dot(onb.W)) > 1e-9 || math.Abs(onb.V.Dot(onb.W)) > 1e-9 {
			t.Errorf("Normal %v: basis is not orthogonal: %+v", n, onb)
		}
		if onb.U.Cross(onb.V).Subtract(onb.W).Length() > 1e-9 {
			t.Errorf("Normal %v: basis is not right-handed", n)
		}
	}
}

func TestOnb_Local(t *testing.T) {
	onb := NewOnb(NewVec3(0, 0, 1))
	if got := onb.Local(NewVec3(0, 0, 2)); got.Subtract(NewVec3(0, 0, 2)).Length() > 1e-9 {
		t.Errorf("Expected (0,0,2), got %v", got)
	}
}

func TestRandomCosineDirection(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	// E[cos θ] for a cosine-weighted hemisphere is 2/3
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := RandomCosineDirection(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("Expected direction in +Z hemisphere, got %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
		sum += d.Z
	}
	if mean := sum / n; math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestRandomToSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	radius, distance := 1.0, 4.0
	cosThetaMax := math.Sqrt(1 - radius*radius/(distance*distance))

	for i := 0; i < 1000; i++ {
		d := RandomToSphere(radius, distance*distance, sampler.Get2D())
		if d.Z < cosThetaMax-1e-9 {
			t.Fatalf("Direction %v falls outside the cone (cos %f < %f)", d, d.Z, cosThetaMax)
		}
	}
}

func TestRandomGenerators(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(9)))
	normal := NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(sampler); p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit sphere, got %v", p)
		}
		if p := RandomInUnitDisk(sampler); p.LengthSquared() >= 1 || p.Z != 0 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
		if p := RandomInHemisphere(normal, sampler); p.Dot(normal) < 0 {
			t.Fatalf("Expected point in upper hemisphere, got %v", p)
		}
		if n := RandomInt(sampler, 5); n < 0 || n >= 5 {
			t.Fatalf("Expected integer in [0,5), got %d", n)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(5)))
	values := make([]int, 256)
	for i := range values {
		values[i] = i
	}

	Shuffle(values, sampler)

	seen := make([]bool, len(values))
	for _, v := range values {
		if seen[v] {
			t.Fatalf("Value %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestNewSeededSampler(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		if x, y := a.Get1D(), b.Get1D(); x != y {
			t.Fatalf("Draw %d: expected %v, got %v", i, y, x)
		}
	}
}
