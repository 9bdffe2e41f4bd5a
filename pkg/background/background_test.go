package background

import (
	"testing"

	"github.com/asvard/gotrace/pkg/expr"
	"github.com/asvard/gotrace/pkg/texture"
	"github.com/asvard/gotrace/pkg/vec"
)

func TestSolidAlwaysSame(t *testing.T) {
	c := vec.New(0.1, 0.2, 0.3)
	s := NewSolid(c)
	if s.Sample(vec.New(1, 0, 0)) != c {
		t.Error("solid background should ignore direction")
	}
}

func TestGradientEndpoints(t *testing.T) {
	bottom, top := vec.New(1, 0, 0), vec.New(0, 0, 1)
	g := NewGradient(bottom, top)

	if got := g.Sample(vec.New(0, -1, 0)); got != bottom {
		t.Errorf("straight down should be bottom color, got %v", got)
	}
	if got := g.Sample(vec.New(0, 1, 0)); got != top {
		t.Errorf("straight up should be top color, got %v", got)
	}
}

func TestGradientFormula(t *testing.T) {
	bottom, top := vec.New(0, 0, 0), vec.New(1, 1, 1)
	g := NewGradient(bottom, top)
	dir := vec.New(0, 0.5, 0).Unit()
	a := 0.5 * (dir.Y + 1.0)
	want := bottom.Lerp(top, a)
	if got := g.Sample(dir); got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestProceduralEvaluatesDirection(t *testing.T) {
	ce, err := expr.CompileColor("x", "y", "z")
	if err != nil {
		t.Fatal(err)
	}
	p := NewProcedural(ce)
	dir := vec.New(0.3, 0.4, 0.866)
	got := p.Sample(dir)
	if got.X != dir.X || got.Y != dir.Y || got.Z != dir.Z {
		t.Errorf("got %v want %v", got, dir)
	}
}

func TestImageEquirectSphereUV(t *testing.T) {
	pixels := make([]vec.Color, 4)
	pixels[0] = vec.New(1, 0, 0)
	img := NewImage(texture.NewImage(2, 2, pixels))
	// Just verify it doesn't panic and returns a pixel from the buffer.
	got := img.Sample(vec.New(1, 0, 0))
	found := false
	for _, p := range pixels {
		if got == p {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pixel from the buffer, got %v", got)
	}
}
