package geometry

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/material"
	"github.com/asvard/gotrace/pkg/vec"
)

// ConstantMedium wraps a closed boundary object and models its interior as
// a participating volume with an isotropic phase function: a Poisson
// process of the given density.
type ConstantMedium struct {
	Boundary  core.Object
	Density   float64
	PhaseFunc core.Material
}

// NewConstantMedium creates a constant-density volume inside boundary,
// scattering with an isotropic material sampling tex.
func NewConstantMedium(boundary core.Object, density float64, tex core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:  boundary,
		Density:   density,
		PhaseFunc: material.NewIsotropic(tex),
	}
}

// Hit implements core.Object: finds the ray's two boundary crossings, draws
// an exponentially-distributed free path, and reports a hit only if that
// path terminates within the boundary. rnd is the caller's
// thread-local generator; a volume has no other source of randomness and
// must never hold one of its own, since the same immutable scene is
// traversed by many worker goroutines concurrently.
func (m *ConstantMedium) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, vec.Universe, rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := m.Boundary.Hit(r, vec.NewInterval(rec1.T+1e-4, math.Inf(1)), rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength

	u := rnd.Float64()
	for u <= 0 {
		u = rnd.Float64()
	}
	hitDistance := -(1 / m.Density) * math.Log(u)

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	return core.HitRecord{
		T:         t,
		P:         r.At(t),
		Normal:    vec.New(1, 0, 0), // arbitrary: the isotropic phase function is symmetric
		FrontFace: true,
		Material:  m.PhaseFunc,
	}, true
}

// BoundingBox implements core.Object.
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
