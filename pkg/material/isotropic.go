package material

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in all directions, used by geometry.ConstantMedium.
type Isotropic struct {
	Tex core.Texture
}

// NewIsotropic creates an isotropic-scattering material backed by the given
// texture.
func NewIsotropic(tex core.Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

// Scatter implements core.Material.
func (iso *Isotropic) Scatter(rIn vec.Ray, h core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	scattered := vec.NewRayAt(h.P, vec.RandomUnitVector(rnd), rIn.Time)
	attenuation := iso.Tex.Value(h.UV, h.P)
	return core.ScatterRecord{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted implements core.Material; the phase function never emits.
func (iso *Isotropic) Emitted(rIn vec.Ray, h core.HitRecord) vec.Color {
	return vec.Color{}
}
