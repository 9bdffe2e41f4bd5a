package background

import (
	"github.com/asvard/gotrace/pkg/texture"
	"github.com/asvard/gotrace/pkg/vec"
)

// Image is an equirectangular environment map sampled by mapping the ray's
// unit direction to (u,v) the same way sphere surfaces do.
type Image struct {
	tex *texture.Image
}

// NewImage wraps an already-decoded raster (as produced by pkg/imageio) as
// an equirectangular background.
func NewImage(tex *texture.Image) *Image {
	return &Image{tex: tex}
}

// Sample implements core.Background.
func (img *Image) Sample(unitDir vec.Vec3) vec.Color {
	return img.tex.Value(sphereUV(unitDir), unitDir)
}
