// Package eval transforms expression IR nodes: simplification to
// canonical reduced form, substitution of variables, evaluation, and
// free-variable collection.
//
// # Usage
//
//	e, _ := parse.ParseString("a&b&c")
//	eval.Simplify(e)
//	eval.Evaluate(e, eval.Bindings{"a": ir.True()}) // (b&c)
//	eval.Names(e)                                   // [a b c]
//
// All operations are pure: they return new trees and never modify
// their input. Two expressions are equivalent under the rewrite rules
// exactly when their simplified forms are ir.Equal; note the rules are
// algebraic identities only, not a satisfiability or normal-form
// procedure.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/go-prop/ir - IR representation
//   - github.com/signadot/prop-format/go-prop/parse - Parse text to IR
package eval
