package eval

import (
	"github.com/signadot/prop-format/go-prop/debug"
	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/ir"
)

// Simplify returns e in canonical reduced form. The rewrite is one
// bottom-up pass: children are simplified before their parent, so each
// rule only needs to look one level down. The rules are double
// negation elimination, negated constants, the annihilator collapse
// (0 for &, 1 for |), one-level flattening of same-operator children,
// and removal of identity constants (1 for &, 0 for |), with the
// result canonicalized by the ir constructors.
//
// Simplify is idempotent, and after it no And/Or node holds fewer than
// two children, a same-operator child, or its identity constant.
func Simplify(e *ir.Node) *ir.Node {
	res := simplify(e)
	if debug.Simplify() {
		debug.Logf("simplify %s -> %s\n", encode.MustString(e), encode.MustString(res))
	}
	return res
}

func simplify(e *ir.Node) *ir.Node {
	switch e.Type {
	case ir.NotType:
		sub := simplify(e.Values[0])
		switch sub.Type {
		case ir.NotType:
			// sub is simplified, so its child is too
			return sub.Values[0]
		case ir.BoolType:
			return ir.FromBool(!sub.Bool)
		}
		return ir.Not(sub)
	case ir.AndType, ir.OrType:
		return simplifyNary(e)
	}
	return e
}

func simplifyNary(e *ir.Node) *ir.Node {
	// identity is also the annihilator's negation: 1/& and 0/|
	identity := e.Type == ir.AndType
	flat := make([]*ir.Node, 0, len(e.Values))
	for _, v := range e.Values {
		sub := simplify(v)
		switch {
		case sub.Type == ir.BoolType && sub.Bool != identity:
			// annihilator collapses the whole node
			return sub
		case sub.Type == ir.BoolType:
			// identity element, dropped
		case sub.Type == e.Type:
			// same operator one level down merges into this level;
			// sub is already simplified and flat, so this cascades
			flat = append(flat, sub.Values...)
		default:
			flat = append(flat, sub)
		}
	}
	if e.Type == ir.AndType {
		return ir.And(flat...)
	}
	return ir.Or(flat...)
}
