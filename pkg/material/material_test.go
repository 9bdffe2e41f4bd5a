package material

import (
	"math/rand"
	"testing"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/texture"
	"github.com/asvard/gotrace/pkg/vec"
)

func solid(c vec.Color) core.Texture { return texture.NewSolidColor(c) }

func TestLambertianScatterAboveSurface(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	l := NewLambertian(solid(vec.New(0.5, 0.5, 0.5)))
	h := core.HitRecord{P: vec.New(0, 0, 0), Normal: vec.New(0, 1, 0), FrontFace: true}

	for i := 0; i < 50; i++ {
		sr, ok := l.Scatter(vec.NewRay(vec.New(0, 1, 0), vec.New(0, -1, 0)), h, rnd)
		if !ok {
			t.Fatalf("lambertian should always scatter")
		}
		if sr.Scattered.Direction.Dot(h.Normal) < -1e-9 {
			// direction may be near-zero-fallback (the normal itself), never below surface
			t.Errorf("scattered direction should not point below the surface: %v", sr.Scattered.Direction)
		}
	}
}

func TestLambertianNearZeroFallsBackToNormal(t *testing.T) {
	l := NewLambertian(solid(vec.New(1, 1, 1)))
	h := core.HitRecord{P: vec.Point3{}, Normal: vec.New(0, 1, 0)}

	// Can't easily force RandomUnitVector to cancel the normal deterministically,
	// but NearZero's fallback path is exercised by construction: verify scatter
	// never panics and always returns ok for a wide sample of seeds.
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		if _, ok := l.Scatter(vec.NewRay(vec.Vec3{}, vec.New(0, -1, 0)), h, rnd); !ok {
			t.Fatalf("lambertian scatter should never report no-scatter")
		}
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	m := NewMetal(solid(vec.New(1, 1, 1)), 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("fuzz should clamp to 1.0, got %v", m.Fuzz)
	}
	m2 := NewMetal(solid(vec.New(1, 1, 1)), -1.0)
	if m2.Fuzz != 0.0 {
		t.Errorf("fuzz should clamp to 0.0, got %v", m2.Fuzz)
	}
}

func TestMetalNoScatterBelowSurface(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	m := NewMetal(solid(vec.New(1, 1, 1)), 0.0)
	h := core.HitRecord{P: vec.Vec3{}, Normal: vec.New(0, 1, 0)}
	// Ray coming straight down reflects straight up: always scatters with fuzz 0.
	sr, ok := m.Scatter(vec.NewRay(vec.Vec3{}, vec.New(0, -1, 0)), h, rnd)
	if !ok {
		t.Fatal("expected scatter for perfect mirror reflecting upward")
	}
	if sr.Scattered.Direction.Dot(h.Normal) <= 0 {
		t.Errorf("expected reflected direction above surface, got %v", sr.Scattered.Direction)
	}
	// Ray travelling up into the surface reflects straight down: no scatter.
	if _, ok := m.Scatter(vec.NewRay(vec.Vec3{}, vec.New(0, 1, 0)), h, rnd); ok {
		t.Error("expected no scatter when the reflected direction points below the surface")
	}
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	d := NewDielectric(1.5)
	h := core.HitRecord{P: vec.Vec3{}, Normal: vec.New(0, 1, 0), FrontFace: true}
	sr, ok := d.Scatter(vec.NewRay(vec.Vec3{}, vec.New(0, -1, 0)), h, rnd)
	if !ok {
		t.Fatal("dielectric should always scatter")
	}
	if sr.Attenuation != vec.New(1, 1, 1) {
		t.Errorf("expected white attenuation")
	}
}

func TestDielectricCarriesIncomingTime(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	d := NewDielectric(1.5)
	h := core.HitRecord{P: vec.Vec3{}, Normal: vec.New(0, 1, 0), FrontFace: true}
	rIn := vec.NewRayAt(vec.Vec3{}, vec.New(0, -1, 0), 0.37)
	sr, _ := d.Scatter(rIn, h, rnd)
	if sr.Scattered.Time != 0.37 {
		t.Errorf("expected scattered ray to carry incoming time 0.37, got %v", sr.Scattered.Time)
	}
}

func TestDiffuseLightEmitsTextureNoScatter(t *testing.T) {
	color := vec.New(4, 4, 4)
	light := NewDiffuseLight(solid(color))
	h := core.HitRecord{P: vec.Vec3{}, UV: vec.NewVec2(0.5, 0.5)}
	if _, ok := light.Scatter(vec.Ray{}, h, rand.New(rand.NewSource(1))); ok {
		t.Error("diffuse light should never scatter")
	}
	if light.Emitted(vec.Ray{}, h) != color {
		t.Errorf("expected emitted color %v", color)
	}
}

func TestIsotropicScattersUnitDirection(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	iso := NewIsotropic(solid(vec.New(1, 1, 1)))
	h := core.HitRecord{P: vec.Vec3{}}
	sr, ok := iso.Scatter(vec.NewRay(vec.Vec3{}, vec.New(1, 0, 0)), h, rnd)
	if !ok {
		t.Fatal("isotropic should always scatter")
	}
	length := sr.Scattered.Direction.Length()
	if length < 0.999 || length > 1.001 {
		t.Errorf("expected unit-length scatter direction, got length %v", length)
	}
}
