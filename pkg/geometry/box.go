package geometry

import (
	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// NewBox builds an axis-aligned box from two opposite corners as a Group of
// six outward-facing Quads.
func NewBox(a, b vec.Point3, mat core.Material) *Group {
	min := vec.New(minF(a.X, b.X), minF(a.Y, b.Y), minF(a.Z, b.Z))
	max := vec.New(maxF(a.X, b.X), maxF(a.Y, b.Y), maxF(a.Z, b.Z))

	dx := vec.New(max.X-min.X, 0, 0)
	dy := vec.New(0, max.Y-min.Y, 0)
	dz := vec.New(0, 0, max.Z-min.Z)

	sides := []core.Object{
		NewQuad(vec.New(min.X, min.Y, max.Z), dx, dy, mat),   // front
		NewQuad(vec.New(max.X, min.Y, max.Z), dz.Neg(), dy, mat), // right
		NewQuad(vec.New(max.X, min.Y, min.Z), dx.Neg(), dy, mat), // back
		NewQuad(vec.New(min.X, min.Y, min.Z), dz, dy, mat),   // left
		NewQuad(vec.New(min.X, max.Y, max.Z), dx, dz.Neg(), mat), // top
		NewQuad(vec.New(min.X, min.Y, min.Z), dx, dz, mat),   // bottom
	}

	return NewGroup(sides)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
