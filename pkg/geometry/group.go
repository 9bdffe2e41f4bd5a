package geometry

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Group holds an ordered list of objects and their union AABB, used both as
// a plain linear aggregate and as the flat leaf list fed to BVH.
type Group struct {
	Objects []core.Object
	bbox    core.AABB
}

// NewGroup builds a Group from a slice of objects, computing the union
// bounding box once up front.
func NewGroup(objects []core.Object) *Group {
	g := &Group{Objects: objects}
	for i, obj := range objects {
		if i == 0 {
			g.bbox = obj.BoundingBox()
		} else {
			g.bbox = core.UnionAABB(g.bbox, obj.BoundingBox())
		}
	}
	return g
}

// Add appends an object to the group, extending its bounding box.
func (g *Group) Add(obj core.Object) {
	if len(g.Objects) == 0 {
		g.bbox = obj.BoundingBox()
	} else {
		g.bbox = core.UnionAABB(g.bbox, obj.BoundingBox())
	}
	g.Objects = append(g.Objects, obj)
}

// Hit implements core.Object: progressively tightens tmax to the closest
// hit found so far, returning the overall closest hit.
func (g *Group) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, obj := range g.Objects {
		if rec, ok := obj.Hit(r, vec.NewInterval(rayT.Min, closestSoFar), rnd); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox implements core.Object.
func (g *Group) BoundingBox() core.AABB {
	return g.bbox
}
