package token

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []TokenType
	}{
		{"", nil},
		{"   \t\n", nil},
		{"0", []TokenType{TFalse}},
		{"1", []TokenType{TTrue}},
		{"a", []TokenType{TVar}},
		{"ab", []TokenType{TVar}},
		{"a b", []TokenType{TVar, TVar}},
		{"~a", []TokenType{TNot, TVar}},
		{"(a&b)", []TokenType{TLParen, TVar, TAnd, TVar, TRParen}},
		{"a|bc|d", []TokenType{TVar, TOr, TVar, TOr, TVar}},
		{" ( a\t& b )\n", []TokenType{TLParen, TVar, TAnd, TVar, TRParen}},
		{"a0b", []TokenType{TVar, TFalse, TVar}},
		{"αβ&x", []TokenType{TVar, TAnd, TVar}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			toks, err := Tokenize([]byte(c.in))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", c.in, err)
			}
			if len(toks) != len(c.want) {
				t.Fatalf("Tokenize(%q): got %d tokens, want %d", c.in, len(toks), len(c.want))
			}
			for i := range toks {
				if toks[i].Type != c.want[i] {
					t.Errorf("Tokenize(%q)[%d]: got %s, want %s", c.in, i, toks[i].Type, c.want[i])
				}
			}
		})
	}
}

func TestTokenizeMaximalMunch(t *testing.T) {
	toks, err := Tokenize([]byte("abc def"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].String() != "abc" || toks[1].String() != "def" {
		t.Errorf("got %v", toks)
	}
}

func TestTokenizeErrSymbol(t *testing.T) {
	for _, in := range []string{"!", "a!b", "a_b", "x+y", "a2"} {
		_, err := Tokenize([]byte(in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrSymbol) {
			t.Errorf("Tokenize(%q): error %v does not wrap ErrSymbol", in, err)
		}
		tkErr := &TokenizeErr{}
		if !errors.As(err, &tkErr) {
			t.Errorf("Tokenize(%q): error %T is not a TokenizeErr", in, err)
		}
	}
}

func TestTokenizeLazy(t *testing.T) {
	// The bad byte comes after two good tokens; Next must hand those
	// out before reporting the error.
	tk := NewTokenizer([]byte("a&!"))
	for i := 0; i < 2; i++ {
		tok, err := tk.Next()
		if err != nil || tok == nil {
			t.Fatalf("token %d: tok=%v err=%v", i, tok, err)
		}
	}
	if _, err := tk.Next(); err == nil {
		t.Error("expected lexical error at third token")
	}
}

func TestPosLineCol(t *testing.T) {
	tk := NewTokenizer([]byte("a\n b"))
	var last *Token
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
		last = tok
	}
	line, col := last.Pos.LineCol()
	if line != 1 || col != 1 {
		t.Errorf("pos of b: line=%d col=%d, want 1, 1", line, col)
	}
}
