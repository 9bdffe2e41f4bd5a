package material

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Metal is a specular reflector whose reflected direction is perturbed by a
// fuzz factor; fuzz 0 is a perfect mirror.
type Metal struct {
	Tex  core.Texture
	Fuzz float64
}

// NewMetal creates a Metal material, clamping fuzz to [0,1].
func NewMetal(tex core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Tex: tex, Fuzz: fuzz}
}

// Scatter implements core.Material.
func (m *Metal) Scatter(rIn vec.Ray, h core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	reflected := rIn.Direction.Unit().Reflect(h.Normal)
	reflected = reflected.Unit().Add(vec.RandomUnitVector(rnd).Mul(m.Fuzz))

	scattered := vec.NewRayAt(h.P, reflected, rIn.Time)
	attenuation := m.Tex.Value(h.UV, h.P)
	scatters := scattered.Direction.Dot(h.Normal) > 0
	return core.ScatterRecord{Attenuation: attenuation, Scattered: scattered}, scatters
}

// Emitted implements core.Material; metal never emits.
func (m *Metal) Emitted(rIn vec.Ray, h core.HitRecord) vec.Color {
	return vec.Color{}
}
