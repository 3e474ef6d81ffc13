package parse

import (
	"testing"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Atoms
		`0`,
		`1`,
		`a`,
		`ab`,
		`(a)`,

		// Negation
		`~a`,
		`~~a`,
		`~(a&b)`,

		// Groups
		`a&b`,
		`a&b&c`,
		`a|b|c`,
		`a&(b|c)`,
		`(a&b)|(c&d)`,
		`(a|(a&b)|~d)`,
		`a&1&0`,

		// Whitespace
		" a \t&\n b ",

		// Invalid inputs the parser must reject cleanly
		`(a&b|c)`,
		`(a~b)`,
		`(a&b)c`,
		`!`,
		`((((`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		n, err := Parse([]byte(in))
		if err != nil {
			// Errors are fine; partial trees are not.
			if n != nil {
				t.Fatalf("Parse(%q) returned both node and error", in)
			}
			return
		}
		out := encode.MustString(n)
		n2, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("re-parse of %q (from %q) failed: %v", out, in, err)
		}
		if !ir.Equal(n, n2) {
			t.Fatalf("round trip of %q changed tree: %q", in, out)
		}
	})
}
