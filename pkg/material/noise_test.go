package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPerlinDeterministicAndBounded(t *testing.T) {
	a := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(42))))
	b := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(42))))
	probe := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		p := core.RandomVec3(probe, -50, 50)
		na, nb := a.Noise(p), b.Noise(p)
		if na != nb {
			t.Fatalf("Same seed gave different noise at %v: %f vs %f", p, na, nb)
		}
		// |gradient|≤√3 and |offset|≤√3 bound each corner's dot product by 3
		if math.Abs(na) > 3 || math.IsNaN(na) {
			t.Fatalf("Noise %f out of range at %v", na, p)
		}
	}
}

func TestPerlinLatticeZero(t *testing.T) {
	perlin := NewPerlin(core.NewRandomSampler(rand.New(rand.NewSource(42))))

	// Gradient noise vanishes on integer lattice points
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(3, -2, 7), core.NewVec3(-300, 12, 1)} {
		if got := perlin.Noise(p); math.Abs(got) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", p, got)
		}
	}
}

func TestNoiseTexturesInUnitRange(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	textures := map[string]ColorSource{
		"marble": NewMarble(4, sampler),
		"noise":  NewNoiseTexture(4, sampler),
	}
	probe := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	for name, texture := range textures {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				c := texture.Evaluate(core.Vec2{}, core.RandomVec3(probe, -10, 10))
				if c.X < -1 || c.X > 2 || math.IsNaN(c.X) || c.X != c.Y || c.Y != c.Z {
					t.Fatalf("Unexpected color %v", c)
				}
			}
		})
	}

	turb := NewTurbulence(1, sampler)
	for i := 0; i < 500; i++ {
		if c := turb.Evaluate(core.Vec2{}, core.RandomVec3(probe, -10, 10)); c.X < 0 {
			t.Fatalf("Turbulence should be non-negative, got %v", c)
		}
	}
}
