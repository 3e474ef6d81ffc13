package ir

import (
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	e := Or(And(Var("a"), Not(Var("b"))), False(), Var("c"))
	d, err := ToJSON(e)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(e, back) {
		t.Errorf("round trip changed node: %s -> %v", d, back)
	}
}

func TestFromJSONRejectsBadNot(t *testing.T) {
	if _, err := FromJSON([]byte(`{"type":"Not"}`)); err == nil {
		t.Error("expected error for not node without child")
	}
}
