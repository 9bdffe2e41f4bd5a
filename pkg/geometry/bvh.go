package geometry

import (
	"math/rand"
	"sort"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// BVH is a binary tree built from a flat slice of objects: pick the longest
// axis of the slice's union box, sort by axis-min, split at the midpoint
// index.
type BVH struct {
	bbox  core.AABB
	left  core.Object
	right core.Object
	leaf  core.Object // non-nil when this node IS a single leaf object
}

// NewBVH constructs a BVH over the given objects. An empty slice yields a
// BVH whose Hit always misses.
func NewBVH(objects []core.Object) *BVH {
	items := make([]core.Object, len(objects))
	copy(items, objects)
	return buildBVH(items)
}

func buildBVH(objects []core.Object) *BVH {
	switch len(objects) {
	case 0:
		return &BVH{bbox: core.AABB{}}
	case 1:
		return &BVH{bbox: objects[0].BoundingBox(), leaf: objects[0]}
	}

	box := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		box = core.UnionAABB(box, obj.BoundingBox())
	}
	axis := box.LongestAxis()

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})

	if len(objects) == 2 {
		return &BVH{
			bbox:  box,
			left:  objects[0],
			right: objects[1],
		}
	}

	mid := len(objects) / 2
	return &BVH{
		bbox:  box,
		left:  buildBVH(objects[:mid]),
		right: buildBVH(objects[mid:]),
	}
}

// Hit implements core.Object: misses immediately if the node's box misses,
// otherwise probes the left subtree, tightens tmax to any hit found, then
// probes the right subtree and returns whichever is closer.
func (b *BVH) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	if !b.bbox.Hit(r, rayT) {
		return core.HitRecord{}, false
	}

	if b.leaf != nil {
		return b.leaf.Hit(r, rayT, rnd)
	}

	leftRec, hitLeft := b.left.Hit(r, rayT, rnd)

	rightInterval := rayT
	if hitLeft {
		rightInterval = vec.NewInterval(rayT.Min, leftRec.T)
	}
	rightRec, hitRight := b.right.Hit(r, rightInterval, rnd)

	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

// BoundingBox implements core.Object.
func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}
