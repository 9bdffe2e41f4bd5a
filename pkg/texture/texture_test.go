package texture

import (
	"testing"

	"github.com/asvard/gotrace/pkg/vec"
)

func TestSolidColorAlwaysSame(t *testing.T) {
	c := vec.New(0.2, 0.4, 0.6)
	s := NewSolidColor(c)
	if s.Value(vec.NewVec2(0, 0), vec.New(100, -5, 3)) != c {
		t.Errorf("solid color texture returned wrong color")
	}
}

func TestCheckerAlternates(t *testing.T) {
	even := NewSolidColor(vec.New(1, 1, 1))
	odd := NewSolidColor(vec.New(0, 0, 0))
	c := NewChecker(1.0, even, odd)

	if got := c.Value(vec.Vec2{}, vec.New(0.1, 0, 0)); got != even.Color {
		t.Errorf("expected even cell at origin, got %v", got)
	}
	if got := c.Value(vec.Vec2{}, vec.New(1.1, 0, 0)); got != odd.Color {
		t.Errorf("expected odd cell one unit over, got %v", got)
	}
}

func TestImageClampsAndFlipsV(t *testing.T) {
	pixels := []vec.Color{
		vec.New(1, 0, 0), vec.New(0, 1, 0), // row 0 (top)
		vec.New(0, 0, 1), vec.New(1, 1, 1), // row 1 (bottom)
	}
	img := NewImage(2, 2, pixels)

	// v=0 means bottom of image -> row index 1 after flip.
	if got := img.Value(vec.NewVec2(0, 0), vec.Vec3{}); got != pixels[2] {
		t.Errorf("v=0 should read bottom row, got %v want %v", got, pixels[2])
	}
	// v near 1 means top of image -> row index 0.
	if got := img.Value(vec.NewVec2(0, 0.999), vec.Vec3{}); got != pixels[0] {
		t.Errorf("v near 1 should read top row, got %v want %v", got, pixels[0])
	}
	// out-of-range uv clamps instead of panicking.
	if got := img.Value(vec.NewVec2(-5, 5), vec.Vec3{}); got != pixels[0] {
		t.Errorf("out-of-range uv should clamp, got %v", got)
	}
}

func TestImageEmptyReturnsDebugColor(t *testing.T) {
	img := NewImage(0, 0, nil)
	got := img.Value(vec.Vec2{}, vec.Vec3{})
	if got != vec.New(0, 1, 1) {
		t.Errorf("expected debug cyan for empty image, got %v", got)
	}
}

func TestNoiseTextureProducesFiniteMarblePattern(t *testing.T) {
	n := NewNoise(4, 7)
	c := n.Value(vec.Vec2{}, vec.New(1, 2, 3))
	if c.X < 0 || c.X > 1 {
		t.Errorf("marble texture channel out of [0,1]: %v", c.X)
	}
}
