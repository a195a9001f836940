package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	perlinPointCount = 256
	turbulenceDepth  = 7
)

// Perlin is a gradient-noise lattice of random vectors indexed through three shuffled permutations
type Perlin struct {
	ranvec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin generates a noise lattice from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = core.RandomVec3(sampler, -1, 1)
	}
	generatePerm(p.permX[:], sampler)
	generatePerm(p.permY[:], sampler)
	generatePerm(p.permZ[:], sampler)
	return p
}

func generatePerm(perm []int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	core.Shuffle(perm, sampler)
}

// wrap maps a lattice coordinate into [0, perlinPointCount)
func wrap(i int) int {
	i %= perlinPointCount
	if i < 0 {
		i += perlinPointCount
	}
	return i
}

// Noise returns smoothly interpolated gradient noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[wrap(i+di)]^p.permY[wrap(j+dj)]^p.permZ[wrap(k+dk)]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// perlinInterp blends the eight corner gradients with Hermite-smoothed trilinear weights
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb sums depth octaves of noise, halving the weight and doubling the frequency each time
func (p *Perlin) Turb(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture is plain scaled Perlin noise remapped to [0, 1]
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with its own lattice
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns gray 0.5·(1 + noise(scale·p))
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	g := 0.5 * (1 + n.Noise.Noise(point.Multiply(n.Scale)))
	return core.NewVec3(g, g, g)
}

// Turbulence is a gray texture of multi-octave turbulence
type Turbulence struct {
	Noise *Perlin
	Scale float64
}

// NewTurbulence creates a turbulence texture with its own lattice
func NewTurbulence(scale float64, sampler core.Sampler) *Turbulence {
	return &Turbulence{Noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns gray turb(scale·p)
func (t *Turbulence) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	g := t.Noise.Turb(point.Multiply(t.Scale), turbulenceDepth)
	return core.NewVec3(g, g, g)
}

// Marble produces veins along z phase-shifted by turbulence
type Marble struct {
	Noise *Perlin
	Scale float64
}

// NewMarble creates a marble texture with its own lattice
func NewMarble(scale float64, sampler core.Sampler) *Marble {
	return &Marble{Noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns gray 0.5·(1 + sin(scale·z + 10·turb(p)))
func (m *Marble) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	g := 0.5 * (1 + math.Sin(m.Scale*point.Z+10*m.Noise.Turb(point, turbulenceDepth)))
	return core.NewVec3(g, g, g)
}
