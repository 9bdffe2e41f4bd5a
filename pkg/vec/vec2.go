package vec

// Vec2 represents a 2D vector, used for surface (u,v) coordinates.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two Vec2 values.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns the Vec2 scaled by a scalar.
func (v Vec2) Mul(t float64) Vec2 {
	return Vec2{v.X * t, v.Y * t}
}
