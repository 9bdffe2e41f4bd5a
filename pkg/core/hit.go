package core

import "github.com/asvard/gotrace/pkg/vec"

// HitRecord carries intersection data from a geometry hit test to the
// integrator: the ray parameter, world-space point, oriented unit normal,
// surface UV, and the material that owns the shading rule at that point.
type HitRecord struct {
	T         float64
	P         vec.Point3
	Normal    vec.Vec3
	FrontFace bool
	UV        vec.Vec2
	Material  Material
}

// SetFaceNormal orients Normal to always point against the incident ray,
// recording whether the hit was on the front face.
func (h *HitRecord) SetFaceNormal(r vec.Ray, outwardNormal vec.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// ScatterRecord is the outcome of a material scatter: how much light the
// outgoing ray carries (Attenuation) and where it continues to.
type ScatterRecord struct {
	Attenuation vec.Color
	Scattered   vec.Ray
}
