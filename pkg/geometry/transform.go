package geometry

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Translate offsets a wrapped object by a fixed vector.
type Translate struct {
	Object core.Object
	Offset vec.Vec3
	bbox   core.AABB
}

// NewTranslate wraps obj, displacing it by offset.
func NewTranslate(obj core.Object, offset vec.Vec3) *Translate {
	return &Translate{
		Object: obj,
		Offset: offset,
		bbox:   obj.BoundingBox().Offset(offset),
	}
}

// Hit implements core.Object by pulling the ray back into object space,
// delegating, and shifting the hit point forward again.
func (t *Translate) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	offsetRay := vec.NewRayAt(r.Origin.Sub(t.Offset), r.Direction, r.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, rnd)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.P = rec.P.Add(t.Offset)
	return rec, true
}

// BoundingBox implements core.Object.
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates a wrapped object about the world Y axis by a fixed angle
// by a fixed angle.
type RotateY struct {
	Object   core.Object
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps obj, rotating it by angleDegrees about the Y axis.
func NewRotateY(obj core.Object, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)
	box := obj.BoundingBox()

	min := vec.New(math.Inf(1), math.Inf(1), math.Inf(1))
	max := vec.New(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(box.X, i)
				y := lerpCorner(box.Y, j)
				z := lerpCorner(box.Z, k)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				corner := vec.New(newX, y, newZ)
				min = vec.New(minF(min.X, corner.X), minF(min.Y, corner.Y), minF(min.Z, corner.Z))
				max = vec.New(maxF(max.X, corner.X), maxF(max.Y, corner.Y), maxF(max.Z, corner.Z))
			}
		}
	}

	return &RotateY{
		Object:   obj,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABB(min, max),
	}
}

func lerpCorner(i vec.Interval, which int) float64 {
	if which == 0 {
		return i.Min
	}
	return i.Max
}

// Hit implements core.Object by rotating the ray into object space by -θ,
// delegating, then rotating the hit point and normal back by +θ.
func (rot *RotateY) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	origin := vec.New(
		rot.cosTheta*r.Origin.X-rot.sinTheta*r.Origin.Z,
		r.Origin.Y,
		rot.sinTheta*r.Origin.X+rot.cosTheta*r.Origin.Z,
	)
	direction := vec.New(
		rot.cosTheta*r.Direction.X-rot.sinTheta*r.Direction.Z,
		r.Direction.Y,
		rot.sinTheta*r.Direction.X+rot.cosTheta*r.Direction.Z,
	)
	rotatedRay := vec.NewRayAt(origin, direction, r.Time)

	rec, ok := rot.Object.Hit(rotatedRay, rayT, rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.P = vec.New(
		rot.cosTheta*rec.P.X+rot.sinTheta*rec.P.Z,
		rec.P.Y,
		-rot.sinTheta*rec.P.X+rot.cosTheta*rec.P.Z,
	)
	rec.Normal = vec.New(
		rot.cosTheta*rec.Normal.X+rot.sinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-rot.sinTheta*rec.Normal.X+rot.cosTheta*rec.Normal.Z,
	)
	return rec, true
}

// BoundingBox implements core.Object.
func (rot *RotateY) BoundingBox() core.AABB {
	return rot.bbox
}
