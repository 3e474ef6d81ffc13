package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes in a total order.
// The result will be 0 if a==b structurally, -1 if a < b, and +1 if
// a > b. And/Or children compare as their sorted child sequences, so
// order of construction does not influence the result.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case VarType:
		return strings.Compare(a.Name, b.Name)
	case NotType:
		return Compare(a.Values[0], b.Values[0])
	case AndType, OrType:
		return compareValues(a, b)
	}
	return 0
}

// Equal reports structural equality, treating And/Or children as sets.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Var < Not < And < Or
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case VarType:
		return 1
	case NotType:
		return 2
	case AndType:
		return 3
	case OrType:
		return 4
	}
	return 100
}

func compareValues(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
