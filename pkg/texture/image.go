package texture

import "github.com/asvard/gotrace/pkg/vec"

// Image is a texture backed by a decoded raster of linear colors, addressed
// by nearest-neighbor lookup on (u,v). Decoding the source file is handled
// entirely by pkg/imageio; this type only stores already-decoded pixels.
type Image struct {
	Width, Height int
	Pixels        []vec.Color // row-major, top-to-bottom
}

// NewImage wraps a decoded pixel buffer as a texture.
func NewImage(width, height int, pixels []vec.Color) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Value implements core.Texture: clamps (u,v) to [0,1], flips v (image rows
// run top-to-bottom while v runs bottom-to-top), and looks up the nearest
// pixel.
func (img *Image) Value(uv vec.Vec2, p vec.Point3) vec.Color {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) == 0 {
		// Debugging aid for a missing texture: solid cyan, matching the
		// convention of flagging an obviously-wrong color rather than
		// silently returning black.
		return vec.New(0, 1, 1)
	}

	u := vec.NewInterval(0, 1).Clamp(uv.X)
	v := 1.0 - vec.NewInterval(0, 1).Clamp(uv.Y)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	return img.Pixels[j*img.Width+i]
}
