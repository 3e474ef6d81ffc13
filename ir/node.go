package ir

import (
	"slices"
)

// A Node is one propositional expression. The Type field selects the
// variant and which payload fields are meaningful:
//
//   - BoolType: Bool
//   - VarType: Name
//   - NotType: Values (exactly one child)
//   - AndType, OrType: Values (two or more children, sorted by Compare,
//     duplicate-free)
//
// Nodes are immutable once built; all transformations produce new
// trees. Subtrees may be shared between trees for that reason.
type Node struct {
	Type   Type
	Bool   bool
	Name   string
	Values []*Node
}

func True() *Node {
	return &Node{Type: BoolType, Bool: true}
}

func False() *Node {
	return &Node{Type: BoolType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// Var returns a variable node. Names are opaque identifiers; the
// tokenizer restricts them to runs of letters but Var itself does not.
func Var(name string) *Node {
	return &Node{Type: VarType, Name: name}
}

// Not wraps e in a negation. There is no identity to fold at
// construction time: double negation removal is a simplification
// rule, not a construction rule.
func Not(e *Node) *Node {
	return &Node{Type: NotType, Values: []*Node{e}}
}

// And returns the conjunction of exprs with set semantics: duplicates
// collapse, no children yields the constant true, a single child is
// returned unwrapped.
func And(exprs ...*Node) *Node {
	return compose(AndType, exprs)
}

// Or is symmetric with And; no children yields the constant false.
func Or(exprs ...*Node) *Node {
	return compose(OrType, exprs)
}

func compose(t Type, exprs []*Node) *Node {
	set := dedupe(exprs)
	switch len(set) {
	case 0:
		return FromBool(t == AndType)
	case 1:
		return set[0]
	}
	return &Node{Type: t, Values: set}
}

// dedupe sorts exprs into the canonical child order and drops
// structural duplicates. The input slice is not modified.
func dedupe(exprs []*Node) []*Node {
	set := slices.Clone(exprs)
	slices.SortFunc(set, Compare)
	return slices.CompactFunc(set, Equal)
}

// Children returns the child expressions of composite nodes, nil for
// leaves. The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.Values
}
