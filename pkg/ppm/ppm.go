// Package ppm writes the rendered image as a plain ASCII portable-pixmap
// (P3) stream: header, then one "r g b" line per pixel, row-major
// top-to-bottom.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/asvard/gotrace/pkg/dispatch"
)

// Write encodes image (one []dispatch.RGB per row, each row width pixels
// wide) as P3 to w.
func Write(w io.Writer, image [][]dispatch.RGB) error {
	if len(image) == 0 {
		return fmt.Errorf("ppm: empty image")
	}
	height := len(image)
	width := len(image[0])

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	for _, row := range image {
		for _, px := range row {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", px.R, px.G, px.B); err != nil {
				return fmt.Errorf("ppm: write pixel: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}
