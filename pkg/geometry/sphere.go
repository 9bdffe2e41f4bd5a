// Package geometry implements the core.Object primitives and aggregates of
// Sphere, Quad, Box, ConstantMedium, Translate, RotateY, Group
// and BVH.
package geometry

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Sphere is defined by a center-ray (origin + t*velocity) so stationary and
// linearly moving spheres share the same hit code; stationary spheres carry
// zero velocity.
type Sphere struct {
	Origin   vec.Point3
	Velocity vec.Vec3
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a stationary sphere.
func NewSphere(center vec.Point3, radius float64, mat core.Material) *Sphere {
	return NewMovingSphere(center, center, radius, mat)
}

// NewMovingSphere creates a sphere whose center travels linearly from
// center1 (at shutter time 0) to center2 (at shutter time 1).
func NewMovingSphere(center1, center2 vec.Point3, radius float64, mat core.Material) *Sphere {
	s := &Sphere{
		Origin:   center1,
		Velocity: center2.Sub(center1),
		Radius:   radius,
		Material: mat,
	}
	rvec := vec.New(radius, radius, radius)
	box1 := core.NewAABB(center1.Sub(rvec), center1.Add(rvec))
	box2 := core.NewAABB(center2.Sub(rvec), center2.Add(rvec))
	s.bbox = core.UnionAABB(box1, box2)
	return s
}

// Center returns the sphere's center at shutter time t.
func (s *Sphere) Center(t float64) vec.Point3 {
	return s.Origin.Add(s.Velocity.Mul(t))
}

// Hit implements core.Object using the half-b quadratic form.
func (s *Sphere) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	center := s.Center(r.Time)
	oc := center.Sub(r.Origin)
	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	rec := core.HitRecord{T: root, P: r.At(root), Material: s.Material}
	outwardNormal := rec.P.Sub(center).Div(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.UV = sphereUV(outwardNormal)
	return rec, true
}

// sphereUV maps a unit direction-from-center to surface (u,v) via the
// sphere map.
func sphereUV(n vec.Vec3) vec.Vec2 {
	theta := math.Acos(-n.Y)
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return vec.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox implements core.Object.
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
