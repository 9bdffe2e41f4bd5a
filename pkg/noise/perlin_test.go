package noise

import (
	"math"
	"testing"

	"github.com/asvard/gotrace/pkg/vec"
)

func TestInstanceIsSingleton(t *testing.T) {
	if Instance() != Instance() {
		t.Error("Instance() should return the same generator every call")
	}
}

func TestNoiseIsBounded(t *testing.T) {
	p := Instance()
	for x := -3.0; x <= 3.0; x += 0.37 {
		n := p.Noise(vec.New(x, x*0.5, -x))
		if math.Abs(n) > 1.2 {
			t.Errorf("Noise(%v) = %v, expected roughly within [-1,1]", x, n)
		}
	}
}

func TestTurbNonNegative(t *testing.T) {
	p := Instance()
	for x := -2.0; x <= 2.0; x += 0.33 {
		tb := p.Turb(vec.New(x, 1, -x), 7)
		if tb < 0 {
			t.Errorf("Turb(%v) = %v, want non-negative", x, tb)
		}
	}
}
