// Package ir provides the intermediate representation (IR) for
// propositional expressions.
//
// # Overview
//
// All expressions (whether parsed from text, created programmatically,
// or decoded from JSON) are represented as ir.Node trees. A Node is a
// tagged variant over five types:
//
//   - BoolType: the constants 0 and 1
//   - VarType: a named variable
//   - NotType: negation of one child
//   - AndType: conjunction over a set of children
//   - OrType: disjunction over a set of children
//
// # Set Semantics
//
// And and Or children are sets, not sequences: duplicates collapse and
// order carries no meaning. The representation is a slice kept sorted
// by Compare with duplicates removed, which makes structural equality
// (Equal) and hashing (Hash) order-insensitive while keeping encoding
// deterministic.
//
// # Canonical Construction
//
// Use the constructor functions to create nodes:
//
//	v := ir.Var("a")
//	e := ir.And(v, ir.Not(ir.Var("b")))
//
// And and Or canonicalize: an empty argument list yields the identity
// constant (true for And, false for Or) and a single distinct argument
// is returned unwrapped. Composite nodes built through the
// constructors therefore never hold zero or one children.
//
// # Immutability
//
// Nodes are immutable once built. Transformations (see the eval
// package) always allocate new trees; because nothing mutates, shared
// subtrees between trees are safe. Nodes are not thread-safe to
// construct concurrently but are safe for concurrent reads.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/go-prop/parse - Parses text into IR nodes
//   - github.com/signadot/prop-format/go-prop/encode - Encodes IR nodes to text
//   - github.com/signadot/prop-format/go-prop/eval - Simplification and evaluation
package ir
