// Package integrator implements the recursive Monte-Carlo shading loop and
// per-pixel sample accumulation.
package integrator

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// shadowAcneEpsilon is the lower bound of the hit-test interval: it rejects
// self-intersections at t values arbitrarily close to zero.
const shadowAcneEpsilon = 0.001

// RayColor recursively evaluates the radiance along r through scene, up to
// depth bounces.
func RayColor(r vec.Ray, depth int, scene core.Scene, rnd *rand.Rand) vec.Color {
	if depth <= 0 {
		return vec.Color{}
	}

	rec, ok := scene.World.Hit(r, vec.NewInterval(shadowAcneEpsilon, math.Inf(1)), rnd)
	if !ok {
		return scene.Background.Sample(r.Direction.Unit())
	}

	emitted := rec.Material.Emitted(r, rec)
	scatter, scattered := rec.Material.Scatter(r, rec, rnd)
	if !scattered {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MulVec(RayColor(scatter.Scattered, depth-1, scene, rnd)))
}

// PixelColor averages samples evaluations of RayColor for pixel (i, j),
// drawing a fresh camera ray per sample.
func PixelColor(scene core.Scene, i, j, samples, maxDepth int, rnd *rand.Rand) vec.Color {
	var sum vec.Color
	for s := 0; s < samples; s++ {
		r := scene.Camera.GetRay(i, j, rnd)
		sum = sum.Add(RayColor(r, maxDepth, scene, rnd))
	}
	return sum.Div(float64(samples))
}

// linearToGamma applies the γ=2 encode (square root) used by EncodeByte.
func linearToGamma(c float64) float64 {
	if c > 0 {
		return math.Sqrt(c)
	}
	return 0
}

// EncodeByte converts a linear color to gamma-2-encoded 8-bit-per-channel
// RGB, clamping each channel to [0, 0.999] before scaling.
func EncodeByte(c vec.Color) (r, g, b uint8) {
	const intensityMax = 0.999
	gr := linearToGamma(c.X)
	gg := linearToGamma(c.Y)
	gb := linearToGamma(c.Z)

	clamp := func(x float64) uint8 {
		if x < 0 {
			x = 0
		}
		if x > intensityMax {
			x = intensityMax
		}
		return uint8(x * 256)
	}
	return clamp(gr), clamp(gg), clamp(gb)
}
