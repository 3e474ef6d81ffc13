package ir

import (
	"slices"
	"testing"
)

func TestCompareTotalOrder(t *testing.T) {
	// Listed in strictly increasing order.
	nodes := []*Node{
		False(),
		True(),
		Var("a"),
		Var("b"),
		Not(Var("a")),
		And(Var("a"), Var("b")),
		And(Var("a"), Var("c")),
		And(Var("a"), Var("b"), Var("c")),
		Or(Var("a"), Var("b")),
	}
	for i, a := range nodes {
		for j, b := range nodes {
			got := Compare(a, b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Error("Compare(nil, nil) != 0")
	}
	if Compare(nil, True()) != -1 || Compare(True(), nil) != 1 {
		t.Error("nil must sort before any node")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	x := And(Var("a"), Or(Var("b"), Not(Var("c"))))
	y := And(Or(Not(Var("c")), Var("b")), Var("a"))
	if !Equal(x, y) {
		t.Fatalf("expected %v == %v", x, y)
	}
	if x.Hash() != y.Hash() {
		t.Errorf("equal nodes must hash equal: %d vs %d", x.Hash(), y.Hash())
	}
}

func TestSortFuncUsable(t *testing.T) {
	in := []*Node{Or(Var("a"), Var("b")), Var("a"), True()}
	slices.SortFunc(in, Compare)
	if in[0].Type != BoolType || in[1].Type != VarType || in[2].Type != OrType {
		t.Errorf("unexpected sort order: %v", in)
	}
}
