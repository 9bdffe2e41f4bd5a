// Package background implements the core.Background variants:
// solid, vertical gradient, equirectangular image and procedural.
package background

import (
	"math"

	"github.com/asvard/gotrace/pkg/vec"
)

// Solid returns a single uniform color for every miss ray.
type Solid struct {
	Color vec.Color
}

// NewSolid creates a solid-color background.
func NewSolid(c vec.Color) *Solid {
	return &Solid{Color: c}
}

// Sample implements core.Background.
func (s *Solid) Sample(unitDir vec.Vec3) vec.Color {
	return s.Color
}

// Gradient lerps between a bottom and top color by the ray's vertical
// component, giving the classic RTIOW sky.
type Gradient struct {
	Bottom, Top vec.Color
}

// NewGradient creates a vertical-gradient background.
func NewGradient(bottom, top vec.Color) *Gradient {
	return &Gradient{Bottom: bottom, Top: top}
}

// Sample implements core.Background.
func (g *Gradient) Sample(unitDir vec.Vec3) vec.Color {
	a := 0.5 * (unitDir.Y + 1.0)
	return g.Bottom.Lerp(g.Top, a)
}

// sphereUV maps a unit direction to (u,v) using the same equirectangular
// mapping as sphere surfaces.
func sphereUV(unitDir vec.Vec3) vec.Vec2 {
	theta := math.Acos(-unitDir.Y)
	phi := math.Atan2(-unitDir.Z, unitDir.X) + math.Pi
	return vec.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
