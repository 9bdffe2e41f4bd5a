package expr

import "math"

type numberNode float64

func (n numberNode) Eval(v Vars) float64 { return float64(n) }

type varNode string

func (n varNode) Eval(v Vars) float64 {
	switch string(n) {
	case "x":
		return v.X
	case "y":
		return v.Y
	case "z":
		return v.Z
	case "u":
		return v.U
	case "v":
		return v.V
	default:
		return 0
	}
}

type unaryNode struct {
	op string
	x  Expr
}

func (n unaryNode) Eval(v Vars) float64 {
	if n.op == "-" {
		return -n.x.Eval(v)
	}
	return n.x.Eval(v)
}

type binaryNode struct {
	op   string
	l, r Expr
}

func (n binaryNode) Eval(v Vars) float64 {
	l, r := n.l.Eval(v), n.r.Eval(v)
	switch n.op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	case "^":
		return math.Pow(l, r)
	default:
		return 0
	}
}

// callNode is a builtin function call. noise/turb ignore their first
// argument and sample Perlin noise at the current point (x,y,z); turb reads
// an optional second argument as its octave depth (default 7).
type callNode struct {
	name string
	args []Expr
}

func (n callNode) Eval(v Vars) float64 {
	a := func(i int) float64 {
		if i < len(n.args) {
			return n.args[i].Eval(v)
		}
		return 0
	}
	switch n.name {
	case "sin":
		return math.Sin(a(0))
	case "cos":
		return math.Cos(a(0))
	case "abs":
		return math.Abs(a(0))
	case "floor":
		return math.Floor(a(0))
	case "sqrt":
		return math.Sqrt(a(0))
	case "min":
		return math.Min(a(0), a(1))
	case "max":
		return math.Max(a(0), a(1))
	case "noise":
		return noiseAt(v)
	case "turb":
		depth := 7
		if len(n.args) > 1 {
			depth = int(a(1))
		}
		return turbAt(v, depth)
	default:
		return 0
	}
}
