// Package noise implements the Perlin gradient-noise generator, kept
// separate from pkg/texture so both pkg/texture and pkg/expr can depend on
// it without forming an import cycle between those two packages.
package noise

import (
	"math"
	"math/rand"
	"sync"

	"github.com/asvard/gotrace/pkg/vec"
)

const perlinPointCount = 256

// Perlin is a gradient-noise generator: 256 random unit-range gradient
// vectors plus three independently shuffled permutation tables, combined
// with trilinear interpolation and a smoothstep to remove grid artifacts.
type Perlin struct {
	randVec [perlinPointCount]vec.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

var (
	instanceOnce sync.Once
	instance     *Perlin
)

// Instance returns the process-wide Perlin singleton, lazily initialized on
// first access and never mutated thereafter.
func Instance() *Perlin {
	instanceOnce.Do(func() {
		rnd := rand.New(rand.NewSource(1))
		p := &Perlin{}
		for i := range p.randVec {
			p.randVec[i] = vec.RandomVec3Range(rnd, -1, 1)
		}
		p.permX = perlinGeneratePerm(rnd)
		p.permY = perlinGeneratePerm(rnd)
		p.permZ = perlinGeneratePerm(rnd)
		instance = p
	})
	return instance
}

func perlinGeneratePerm(rnd *rand.Rand) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	rnd.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Noise samples gradient noise at p, in roughly [-1,1].
func (pn *Perlin) Noise(p vec.Point3) float64 {
	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	u, v, w := p.X-fx, p.Y-fy, p.Z-fz

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]vec.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// Turb accumulates depth octaves of noise at doubling frequencies, giving a
// turbulent (fractal) pattern often used for marble or cloud textures.
func (pn *Perlin) Turb(p vec.Point3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}

	return math.Abs(accum)
}

func trilinearInterp(c [2][2][2]vec.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := vec.New(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
