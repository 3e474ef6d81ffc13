package eval

import (
	"github.com/signadot/prop-format/go-prop/debug"
	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/ir"
)

// Bindings maps variable names to the expressions substituted for
// them. Bound expressions may be constants, variables, or whole
// subtrees.
type Bindings map[string]*ir.Node

// Substitute replaces every bound variable in e and rebuilds the
// composites through the canonicalizing constructors. Unbound
// variables pass through unchanged. No simplification beyond
// construction-time canonicalization happens; see Evaluate.
func Substitute(e *ir.Node, bindings Bindings) *ir.Node {
	switch e.Type {
	case ir.VarType:
		if b, ok := bindings[e.Name]; ok {
			return b
		}
		return e
	case ir.NotType:
		return ir.Not(Substitute(e.Values[0], bindings))
	case ir.AndType, ir.OrType:
		subs := make([]*ir.Node, len(e.Values))
		for i, v := range e.Values {
			subs[i] = Substitute(v, bindings)
		}
		if e.Type == ir.AndType {
			return ir.And(subs...)
		}
		return ir.Or(subs...)
	}
	return e
}

// Evaluate substitutes bindings into e and simplifies the result. The
// result is the residual expression: a constant when the bindings
// decide e, otherwise a formula over the remaining variables.
func Evaluate(e *ir.Node, bindings Bindings) *ir.Node {
	res := Simplify(Substitute(e, bindings))
	if debug.Eval() {
		debug.Logf("evaluate %s with %d bindings -> %s\n",
			encode.MustString(e), len(bindings), encode.MustString(res))
	}
	return res
}
