// Package core holds the axis-aligned bounding box, hit/scatter records and
// the small capability interfaces (Object, Material, Texture, Background)
// that the rest of the renderer is built from.
package core

import (
	"github.com/asvard/gotrace/pkg/vec"
)

// minAABBSize is the smallest allowed extent on any axis; thinner boxes are
// padded to avoid degenerate (zero-thickness) slabs, e.g. for axis-aligned
// quads.
const minAABBSize = 1e-4

// AABB is an axis-aligned bounding box stored as three intervals.
type AABB struct {
	X, Y, Z vec.Interval
}

// NewAABB builds an AABB from two opposite corners, deriving min/max per
// axis and padding any degenerate axis to minAABBSize.
func NewAABB(a, b vec.Point3) AABB {
	box := AABB{
		X: vec.NewInterval(minF(a.X, b.X), maxF(a.X, b.X)),
		Y: vec.NewInterval(minF(a.Y, b.Y), maxF(a.Y, b.Y)),
		Z: vec.NewInterval(minF(a.Z, b.Z), maxF(a.Z, b.Z)),
	}
	return box.padToMinimums()
}

// NewAABBFromIntervals builds an AABB directly from three intervals.
func NewAABBFromIntervals(x, y, z vec.Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// UnionAABB returns the smallest AABB containing both boxes.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: vec.NewIntervalFromUnion(a.X, b.X),
		Y: vec.NewIntervalFromUnion(a.Y, b.Y),
		Z: vec.NewIntervalFromUnion(a.Z, b.Z),
	}
}

func (box AABB) padToMinimums() AABB {
	if box.X.Size() < minAABBSize {
		box.X = box.X.Pad(minAABBSize)
	}
	if box.Y.Size() < minAABBSize {
		box.Y = box.Y.Pad(minAABBSize)
	}
	if box.Z.Size() < minAABBSize {
		box.Z = box.Z.Pad(minAABBSize)
	}
	return box
}

// Axis returns the interval for the given axis (0=X, 1=Y, 2=Z).
func (box AABB) Axis(n int) vec.Interval {
	switch n {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// Offset translates the box by the given vector.
func (box AABB) Offset(v vec.Vec3) AABB {
	return AABB{
		X: vec.NewInterval(box.X.Min+v.X, box.X.Max+v.X),
		Y: vec.NewInterval(box.Y.Min+v.Y, box.Y.Max+v.Y),
		Z: vec.NewInterval(box.Z.Min+v.Z, box.Z.Max+v.Z),
	}
}

// LongestAxis returns the index (0/1/2) of the box's longest axis.
func (box AABB) LongestAxis() int {
	x, y, z := box.X.Size(), box.Y.Size(), box.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Hit runs the slab test against the ray, tightening the supplied interval.
// Returns false as soon as any axis empties the interval.
func (box AABB) Hit(r vec.Ray, rayT vec.Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := box.Axis(axis)
		origin := r.Origin.Axis(axis)
		dir := r.Direction.Axis(axis)

		invD := 1.0 / dir
		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
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
