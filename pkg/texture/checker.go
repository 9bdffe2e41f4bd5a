package texture

import (
	"math"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Checker alternates between two subtextures based on the parity of the
// floor of the scaled point's coordinates, producing a 3D checkerboard.
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewChecker creates a checker texture with the given cell scale.
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Value implements core.Texture.
func (c *Checker) Value(uv vec.Vec2, p vec.Point3) vec.Color {
	xInt := int(math.Floor(c.InvScale * p.X))
	yInt := int(math.Floor(c.InvScale * p.Y))
	zInt := int(math.Floor(c.InvScale * p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Value(uv, p)
	}
	return c.Odd.Value(uv, p)
}
