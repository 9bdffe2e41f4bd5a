// Package expr implements the small symbolic-expression evaluator used for
// procedural colors and backgrounds. It is the one component of the domain
// stack built entirely on the standard library: no expression-evaluation
// library appears anywhere in the retrieved example pack (see DESIGN.md).
package expr

import (
	"fmt"

	"github.com/asvard/gotrace/pkg/noise"
	"github.com/asvard/gotrace/pkg/vec"
)

// Vars is the variable binding available to an expression: point
// coordinates / direction components (x,y,z) and surface UV (u,v).
type Vars struct {
	X, Y, Z float64
	U, V    float64
}

// VarsFromPoint builds Vars from a point/direction and a surface UV.
func VarsFromPoint(p vec.Vec3, uv vec.Vec2) Vars {
	return Vars{X: p.X, Y: p.Y, Z: p.Z, U: uv.X, V: uv.Y}
}

// Expr is a compiled scalar expression tree.
type Expr interface {
	Eval(v Vars) float64
}

// Compile parses a textual expression into an evaluable Expr.
func Compile(src string) (Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("expr: unexpected token %q after expression", p.peek().text)
	}
	return e, nil
}

// MustCompile is like Compile but panics on error; intended for compiling
// built-in/constant expressions at init time, never user input.
func MustCompile(src string) Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// ColorExpr evaluates three scalar expressions as the R, G, B channels of a
// color.
type ColorExpr struct {
	R, G, B Expr
}

// CompileColor compiles three per-channel expressions into a ColorExpr.
func CompileColor(r, g, b string) (*ColorExpr, error) {
	re, err := Compile(r)
	if err != nil {
		return nil, err
	}
	ge, err := Compile(g)
	if err != nil {
		return nil, err
	}
	be, err := Compile(b)
	if err != nil {
		return nil, err
	}
	return &ColorExpr{R: re, G: ge, B: be}, nil
}

// Eval evaluates the color expression at the given point/UV.
func (c *ColorExpr) Eval(v Vars) vec.Color {
	return vec.New(c.R.Eval(v), c.G.Eval(v), c.B.Eval(v))
}

// noiseAt and turbAt adapt noise.Instance() to the evaluator's (x,y,z)
// variable binding, used by the noise()/turb() builtin functions.
func noiseAt(v Vars) float64 {
	return noise.Instance().Noise(vec.New(v.X, v.Y, v.Z))
}

func turbAt(v Vars, depth int) float64 {
	return noise.Instance().Turb(vec.New(v.X, v.Y, v.Z), depth)
}
