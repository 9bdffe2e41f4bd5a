package geometry

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Quad is a planar parallelogram defined by a corner Q and two edge vectors
// U, V.
type Quad struct {
	Q, U, V  vec.Point3
	Material core.Material

	normal vec.Vec3
	d      float64
	w      vec.Vec3
	bbox   core.AABB
}

// NewQuad creates a quad from a corner and two edge vectors.
func NewQuad(q, u, v vec.Point3, mat core.Material) *Quad {
	n := u.Cross(v)
	unitNormal := n.Unit()

	quad := &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Material: mat,
		normal:   unitNormal,
		d:        unitNormal.Dot(q),
		w:        n.Div(n.Dot(n)),
	}

	bboxDiag1 := core.NewAABB(q, q.Add(u).Add(v))
	bboxDiag2 := core.NewAABB(q.Add(u), q.Add(v))
	quad.bbox = core.UnionAABB(bboxDiag1, bboxDiag2)
	return quad
}

// Hit implements core.Object via planar ray intersection and barycentric
// decoding.
func (q *Quad) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Contains(t) {
		return core.HitRecord{}, false
	}

	p := r.At(t)
	hitVec := p.Sub(q.Q)
	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))

	unit := vec.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{T: t, P: p, Material: q.Material, UV: vec.NewVec2(alpha, beta)}
	rec.SetFaceNormal(r, q.normal)
	return rec, true
}

// BoundingBox implements core.Object.
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
