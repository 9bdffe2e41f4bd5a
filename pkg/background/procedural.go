package background

import (
	"github.com/asvard/gotrace/pkg/expr"
	"github.com/asvard/gotrace/pkg/vec"
)

// Procedural evaluates a color expression over the ray's unit direction,
// the background analogue of texture.Procedural.
type Procedural struct {
	Color *expr.ColorExpr
}

// NewProcedural creates a procedural background from a compiled expression.
func NewProcedural(c *expr.ColorExpr) *Procedural {
	return &Procedural{Color: c}
}

// Sample implements core.Background.
func (p *Procedural) Sample(unitDir vec.Vec3) vec.Color {
	return p.Color.Eval(expr.VarsFromPoint(unitDir, sphereUV(unitDir)))
}
