// Package imageio decodes texture and environment-map image files into the
// in-memory pixel buffers pkg/texture.Image and pkg/background.Image
// consume. It is an external collaborator to the rendering core: the core
// never touches the filesystem or an image codec directly.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/asvard/gotrace/pkg/texture"
	"github.com/asvard/gotrace/pkg/vec"
)

func init() {
	// png/jpeg register themselves via their own package init; bmp/tiff are
	// pulled in for blank-identifier side-effect registration above so any
	// of the four formats can be named by a scene document without the
	// caller needing to know which codec handles it.
	_ = png.Decode
	_ = jpeg.Decode
}

// srgbToLinear undoes the approximate gamma-2.2 encoding of standard 8-bit
// image formats so the decoded colors are usable as linear radiance.
func srgbToLinear(c float64) float64 {
	return math.Pow(c, 2.2)
}

// Load decodes the image file at path (PNG, JPEG, BMP or TIFF, detected by
// content) into a *texture.Image of linear-space colors.
func Load(path string) (*texture.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]vec.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = vec.New(
				srgbToLinear(float64(r)/0xffff),
				srgbToLinear(float64(g)/0xffff),
				srgbToLinear(float64(b)/0xffff),
			)
		}
	}

	_ = format // available for diagnostics; decoding is format-agnostic past this point
	return texture.NewImage(width, height, pixels), nil
}
