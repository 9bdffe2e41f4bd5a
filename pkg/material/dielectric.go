package material

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts according to Schlick's approximation of the Fresnel equations.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements core.Material. The outgoing ray carries rIn's shutter
// time, matching Lambertian and Metal, so motion blur stays consistent
// through a dielectric bounce.
func (d *Dielectric) Scatter(rIn vec.Ray, h core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := vec.New(1, 1, 1)

	ri := d.RefractionIndex
	if h.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDir := rIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Neg().Dot(h.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction vec.Vec3
	if cannotRefract || schlickReflectance(cosTheta, ri) > rnd.Float64() {
		direction = unitDir.Reflect(h.Normal)
	} else {
		direction = unitDir.Refract(h.Normal, ri)
	}

	scattered := vec.NewRayAt(h.P, direction, rIn.Time)
	return core.ScatterRecord{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted implements core.Material; dielectrics never emit.
func (d *Dielectric) Emitted(rIn vec.Ray, h core.HitRecord) vec.Color {
	return vec.Color{}
}

// schlickReflectance approximates the angle-dependent Fresnel reflectance.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
