package ppm

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/asvard/gotrace/pkg/dispatch"
)

func TestWriteHeaderAndPixelCount(t *testing.T) {
	image := [][]dispatch.RGB{
		{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}},
		{{R: 0, G: 0, B: 255}, {R: 255, G: 255, B: 255}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, image); err != nil {
		t.Fatalf("Write: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if lines[0] != "P3" {
		t.Errorf("expected header magic P3, got %q", lines[0])
	}
	if lines[1] != "2 2" {
		t.Errorf("expected dimensions '2 2', got %q", lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("expected maxval 255, got %q", lines[2])
	}
	if len(lines) != 3+4 {
		t.Fatalf("expected 3 header lines + 4 pixel lines, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[3], "255 0 0") {
		t.Errorf("first pixel line = %q, want prefix '255 0 0'", lines[3])
	}
}

func TestWriteEmptyImageErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err == nil {
		t.Fatalf("expected error writing an empty image")
	}
}
