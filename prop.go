// Package prop is the one-import surface for working with
// propositional expressions: parse text, render it back, simplify to
// canonical form, substitute and evaluate variables, and collect free
// variables. The subpackages carry the full APIs; everything here is a
// thin delegation.
package prop

import (
	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/ir"
	"github.com/signadot/prop-format/go-prop/parse"
)

// Parse parses text in the prop grammar into an expression.
func Parse(text string) (*ir.Node, error) {
	return parse.ParseString(text)
}

// Format renders e in the prop grammar. Parsing the result yields an
// expression structurally equal to e.
func Format(e *ir.Node) string {
	return encode.MustString(e)
}

// Simplify returns e in canonical reduced form.
func Simplify(e *ir.Node) *ir.Node {
	return eval.Simplify(e)
}

// Substitute replaces bound variables in e.
func Substitute(e *ir.Node, bindings eval.Bindings) *ir.Node {
	return eval.Substitute(e, bindings)
}

// Evaluate substitutes bindings and simplifies the result.
func Evaluate(e *ir.Node, bindings eval.Bindings) *ir.Node {
	return eval.Evaluate(e, bindings)
}

// Variables returns the set of free variable names in e.
func Variables(e *ir.Node) map[string]bool {
	return eval.Variables(e)
}
