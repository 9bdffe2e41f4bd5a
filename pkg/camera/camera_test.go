package camera

import (
	"math/rand"
	"testing"

	"github.com/asvard/gotrace/pkg/vec"
)

func testConfig() Config {
	return Config{
		ImageWidth:      100,
		ImageHeight:     100,
		VFov:            40,
		LookFrom:        vec.New(0, 0, 3),
		LookAt:          vec.New(0, 0, 0),
		Vup:             vec.New(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       3,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

func TestGetRayOriginatesAtLookFromWithoutDefocus(t *testing.T) {
	c := New(testConfig())
	rnd := rand.New(rand.NewSource(1))

	r := c.GetRay(50, 50, rnd)
	if r.Origin != c.origin {
		t.Errorf("expected ray origin to be lookFrom without defocus, got %v", r.Origin)
	}
	if r.Time < 0 || r.Time >= 1 {
		t.Errorf("shutter time out of [0,1): %v", r.Time)
	}
}

// TestJitterUsesIndependentOffsets verifies u and v jitter are drawn from
// the RNG independently, not the same draw reused for both axes.
func TestJitterUsesIndependentOffsets(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	var offsets []vec.Vec2
	for i := 0; i < 50; i++ {
		offsets = append(offsets, sampleSquare(rnd))
	}
	sameCount := 0
	for _, o := range offsets {
		if o.X == o.Y {
			sameCount++
		}
	}
	if sameCount == len(offsets) {
		t.Fatalf("offset.X and offset.Y are always equal; jitter bug not fixed")
	}
	for _, o := range offsets {
		if o.X < -0.5 || o.X > 0.5 || o.Y < -0.5 || o.Y > 0.5 {
			t.Errorf("jitter offset out of [-0.5,0.5]^2: %v", o)
		}
	}
}

func TestDefocusDiskSamplesWithinRadius(t *testing.T) {
	cfg := testConfig()
	cfg.DefocusAngle = 10
	c := New(cfg)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		r := c.GetRay(50, 50, rnd)
		d := r.Origin.Sub(c.origin)
		radius := c.defocusDiskU.Length()
		if d.Length() > radius+1e-9 {
			t.Fatalf("defocus sample beyond disk radius: %v > %v", d.Length(), radius)
		}
	}
}
