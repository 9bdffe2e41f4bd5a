package vec

import "math/rand"

// RandomVec3 returns a vector with each component uniform in [0,1).
func RandomVec3(rnd *rand.Rand) Vec3 {
	return Vec3{X: rnd.Float64(), Y: rnd.Float64(), Z: rnd.Float64()}
}

// RandomVec3Range returns a vector with each component uniform in [min,max).
func RandomVec3Range(rnd *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*rnd.Float64(),
		Y: min + span*rnd.Float64(),
		Z: min + span*rnd.Float64(),
	}
}

// RandomInUnitSphere returns a vector uniformly distributed inside the unit
// sphere, by rejection sampling a uniform cube.
func RandomInUnitSphere(rnd *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(rnd, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed unit vector, by
// normalizing a rejection-sampled point inside the unit sphere.
func RandomUnitVector(rnd *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(rnd, -1, 1)
		lensq := p.LengthSquared()
		if lensq > 1e-160 && lensq <= 1 {
			return p.Unit()
		}
	}
}

// RandomOnHemisphere returns a uniformly distributed unit vector in the
// hemisphere around the given outward normal.
func RandomOnHemisphere(rnd *rand.Rand, normal Vec3) Vec3 {
	v := RandomUnitVector(rnd)
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Neg()
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit
// disk in the XY plane (Z=0), by rejection sampling.
func RandomInUnitDisk(rnd *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rnd.Float64() - 1, Y: 2*rnd.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
