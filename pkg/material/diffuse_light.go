package material

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// DiffuseLight emits its texture's color uniformly and never scatters.
type DiffuseLight struct {
	Tex core.Texture
}

// NewDiffuseLight creates an emissive material backed by the given texture.
func NewDiffuseLight(tex core.Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

// Scatter implements core.Material; light-emitting surfaces do not scatter.
func (d *DiffuseLight) Scatter(rIn vec.Ray, h core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// Emitted implements core.Material.
func (d *DiffuseLight) Emitted(rIn vec.Ray, h core.HitRecord) vec.Color {
	return d.Tex.Value(h.UV, h.P)
}
