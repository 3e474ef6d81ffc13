package ir

import (
	"testing"
)

func TestAndCanonicalize(t *testing.T) {
	a, b := Var("a"), Var("b")
	cases := []struct {
		name string
		in   []*Node
		want *Node
	}{
		{"empty", nil, True()},
		{"singleton", []*Node{a}, a},
		{"dupes-collapse", []*Node{a, Var("a")}, a},
		{"two", []*Node{a, b}, &Node{Type: AndType, Values: []*Node{a, b}}},
		{"consts-kept", []*Node{a, False()}, &Node{Type: AndType, Values: []*Node{False(), a}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := And(c.in...)
			if !Equal(got, c.want) {
				t.Errorf("And(%v): got %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestOrCanonicalize(t *testing.T) {
	a := Var("a")
	if got := Or(); !Equal(got, False()) {
		t.Errorf("Or(): got %v, want false", got)
	}
	if got := Or(a); got != a {
		t.Errorf("Or(a): got %v, want a unwrapped", got)
	}
	if got := Or(a, Var("a")); got != a && !Equal(got, a) {
		t.Errorf("Or(a, a): got %v, want a", got)
	}
	if got := Or(True(), False()); got.Type != OrType || len(got.Values) != 2 {
		t.Errorf("Or(1, 0): got %v, want a two-element or", got)
	}
}

func TestComposeOrderInsensitive(t *testing.T) {
	a, b, c := Var("a"), Var("b"), Var("c")
	x := And(a, b, c)
	y := And(c, b, a)
	if !Equal(x, y) {
		t.Errorf("And child order should not matter: %v vs %v", x, y)
	}
}

func TestNotNeverFolds(t *testing.T) {
	a := Var("a")
	n := Not(Not(a))
	if n.Type != NotType || n.Values[0].Type != NotType {
		t.Errorf("Not must not remove double negation at construction: %v", n)
	}
}
