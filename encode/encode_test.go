package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/prop-format/go-prop/format"
	"github.com/signadot/prop-format/go-prop/ir"
)

func TestEncode(t *testing.T) {
	a, b, c := ir.Var("a"), ir.Var("b"), ir.Var("c")
	cases := []struct {
		node *ir.Node
		want string
	}{
		{ir.True(), "1"},
		{ir.False(), "0"},
		{a, "a"},
		{ir.Not(a), "~a"},
		{ir.Not(ir.Not(a)), "~~a"},
		{ir.And(a, b), "(a&b)"},
		{ir.Or(a, b, c), "(a|b|c)"},
		{ir.Not(ir.And(a, b)), "~(a&b)"},
		{ir.And(ir.Or(a, b), c), "(c&(a|b))"},
		// canonical child order: constants sort before variables
		{ir.And(a, ir.True()), "(1&a)"},
	}
	for _, cs := range cases {
		t.Run(cs.want, func(t *testing.T) {
			if got := MustString(cs.node); got != cs.want {
				t.Errorf("got %q, want %q", got, cs.want)
			}
		})
	}
}

func TestEncodeSpaced(t *testing.T) {
	buf := &bytes.Buffer{}
	n := ir.And(ir.Var("a"), ir.Var("b"))
	if err := Encode(n, buf, EncodeSpaced(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(a & b)\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	n := ir.Not(ir.Var("a"))
	if err := Encode(n, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	back, err := ir.FromJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Errorf("json round trip changed node: %s", buf.String())
	}
}

func TestEncodeBadType(t *testing.T) {
	buf := &bytes.Buffer{}
	bad := &ir.Node{Type: ir.Type(42)}
	err := Encode(bad, buf)
	if !errors.Is(err, ir.ErrType) {
		t.Errorf("got %v, want ir.ErrType", err)
	}
	if err := Encode(nil, buf); !errors.Is(err, ir.ErrType) {
		t.Errorf("nil node: got %v, want ir.ErrType", err)
	}
}

func TestEncodeColorsRoundTrip(t *testing.T) {
	// Colored output is for terminals, not for re-parsing; just check
	// the plain segments survive in order.
	buf := &bytes.Buffer{}
	n := ir.And(ir.Var("a"), ir.Not(ir.Var("b")))
	if err := Encode(n, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	for _, part := range []string{"a", "~", "b", "(", ")", "&"} {
		if !bytes.Contains(buf.Bytes(), []byte(part)) {
			t.Errorf("colored output missing %q: %q", part, buf.String())
		}
	}
}
