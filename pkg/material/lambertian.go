// Package material implements the shading rules: Lambertian, Metal,
// Dielectric, DiffuseLight and Isotropic, each a core.Material.
package material

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Lambertian is a perfectly diffuse material: it scatters uniformly around
// the surface normal and never emits.
type Lambertian struct {
	Tex core.Texture
}

// NewLambertian creates a Lambertian material backed by the given texture.
func NewLambertian(tex core.Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

// Scatter implements core.Material.
func (l *Lambertian) Scatter(rIn vec.Ray, h core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	dir := h.Normal.Add(vec.RandomUnitVector(rnd))

	// The sum can cancel out when the random unit vector is nearly
	// opposite the normal; fall back to the normal itself.
	if dir.NearZero() {
		dir = h.Normal
	}

	scattered := vec.NewRayAt(h.P, dir, rIn.Time)
	attenuation := l.Tex.Value(h.UV, h.P)
	return core.ScatterRecord{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted implements core.Material; Lambertian surfaces never emit.
func (l *Lambertian) Emitted(rIn vec.Ray, h core.HitRecord) vec.Color {
	return vec.Color{}
}
