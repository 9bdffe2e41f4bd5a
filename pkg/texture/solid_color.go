// Package texture implements the core.Texture set: solid color,
// checker, image lookup and Perlin-noise-backed procedural textures.
package texture

import "github.com/asvard/gotrace/pkg/vec"

// SolidColor is a texture returning a single uniform color everywhere.
type SolidColor struct {
	Color vec.Color
}

// NewSolidColor creates a solid color texture.
func NewSolidColor(c vec.Color) *SolidColor {
	return &SolidColor{Color: c}
}

// Value implements core.Texture.
func (s *SolidColor) Value(uv vec.Vec2, p vec.Point3) vec.Color {
	return s.Color
}
