package dispatch

import (
	"math/rand"
	"testing"

	"github.com/asvard/gotrace/pkg/background"
	"github.com/asvard/gotrace/pkg/camera"
	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/vec"
)

type missWorld struct{}

func (missWorld) Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}
func (missWorld) BoundingBox() core.AABB { return core.AABB{} }

func testScene(w, h int) core.Scene {
	cam := camera.New(camera.Config{
		ImageWidth: w, ImageHeight: h, VFov: 40,
		LookFrom: vec.New(0, 0, 3), LookAt: vec.New(0, 0, 0), Vup: vec.New(0, 1, 0),
		FocusDist: 3, SamplesPerPixel: 2, MaxDepth: 5,
	})
	return core.Scene{
		Camera:     cam,
		World:      missWorld{},
		Background: background.NewSolid(vec.New(0.1, 0.2, 0.3)),
	}
}

func TestRenderReassemblesAllRowsInOrder(t *testing.T) {
	const w, h = 16, 20
	scene := testScene(w, h)

	image := Render(scene, w, h, 2, 5, Options{Workers: 4})

	if len(image) != h {
		t.Fatalf("expected %d rows, got %d", h, len(image))
	}
	for i, row := range image {
		if len(row) != w {
			t.Fatalf("row %d has %d pixels, want %d", i, len(row), w)
		}
	}
}

type countingLogger struct{ calls int }

func (c *countingLogger) Printf(format string, args ...interface{}) { c.calls++ }

func TestRenderReportsProgress(t *testing.T) {
	const w, h = 8, 10
	scene := testScene(w, h)
	logger := &countingLogger{}

	Render(scene, w, h, 1, 3, Options{Workers: 2, Logger: logger})

	if logger.calls != h {
		t.Errorf("expected %d progress calls (one per row), got %d", h, logger.calls)
	}
}

func TestRenderSingleWorkerIsDeterministicShape(t *testing.T) {
	const w, h = 4, 4
	scene := testScene(w, h)
	image := Render(scene, w, h, 1, 2, Options{Workers: 1})
	if len(image) != h || len(image[0]) != w {
		t.Fatalf("unexpected image shape: %dx%d", len(image), len(image[0]))
	}
}
