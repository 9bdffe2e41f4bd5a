package texture

import (
	"github.com/asvard/gotrace/pkg/expr"
	"github.com/asvard/gotrace/pkg/vec"
)

// Procedural evaluates a color expression over the surface UV and world
// point, delegating color computation to the expression evaluator.
type Procedural struct {
	Color *expr.ColorExpr
}

// NewProcedural creates a procedural texture from a compiled expression.
func NewProcedural(c *expr.ColorExpr) *Procedural {
	return &Procedural{Color: c}
}

// Value implements core.Texture.
func (p *Procedural) Value(uv vec.Vec2, pt vec.Point3) vec.Color {
	return p.Color.Eval(expr.VarsFromPoint(pt, uv))
}
