package texture

import (
	"math"

	"github.com/asvard/gotrace/pkg/noise"
	"github.com/asvard/gotrace/pkg/vec"
)

// Noise is a procedural texture built directly from the Perlin singleton's
// turbulence, producing a marbled gray pattern. Richer procedural colors
// are expressed through pkg/expr, which calls noise.Instance() directly;
// this type covers the common case without needing an expression.
type Noise struct {
	Scale float64
	Depth int
}

// NewNoise creates a turbulence-based procedural texture.
func NewNoise(scale float64, depth int) *Noise {
	if depth <= 0 {
		depth = 7
	}
	return &Noise{Scale: scale, Depth: depth}
}

// Value implements core.Texture: a marble-like banding of sine distorted by
// turbulence.
func (n *Noise) Value(uv vec.Vec2, p vec.Point3) vec.Color {
	return vec.New(0.5, 0.5, 0.5).Mul(1 + math.Sin(n.Scale*p.Z+10*noise.Instance().Turb(p, n.Depth)))
}
