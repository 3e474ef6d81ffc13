package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenizer is a lazy, single left-to-right pass over a document. It
// never backtracks and knows nothing about nesting; balancing is the
// parser's job.
type Tokenizer struct {
	posDoc *PosDoc
	pos    int
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{posDoc: &PosDoc{d: d}}
}

// PosDoc returns the position document shared by emitted tokens.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// End returns the position just past the end of input.
func (t *Tokenizer) End() *Pos {
	return t.posDoc.end()
}

var punct = map[byte]TokenType{
	'(': TLParen,
	')': TRParen,
	'&': TAnd,
	'|': TOr,
	'~': TNot,
	'1': TTrue,
	'0': TFalse,
}

// Next returns the next token, or nil at end of input. Whitespace
// (space, tab, newline) separates tokens and is otherwise discarded; a
// variable name is the maximal run of letters starting at the current
// position.
func (t *Tokenizer) Next() (*Token, error) {
	d := t.posDoc.d
ws:
	for t.pos < len(d) {
		switch d[t.pos] {
		case ' ', '\t':
			t.pos++
		case '\n':
			t.posDoc.nl(t.pos)
			t.pos++
		default:
			break ws
		}
	}
	if t.pos >= len(d) {
		return nil, nil
	}
	start := t.pos
	if tt, ok := punct[d[start]]; ok {
		t.pos++
		return &Token{Type: tt, Pos: t.posDoc.Pos(start), Bytes: d[start:t.pos]}, nil
	}
	r, size := utf8.DecodeRune(d[start:])
	if r == utf8.RuneError && size == 1 {
		return nil, NewTokenizeErr(fmt.Errorf("%w: invalid utf-8 byte 0x%02x", ErrSymbol, d[start]), t.posDoc.Pos(start))
	}
	if !unicode.IsLetter(r) {
		return nil, NewTokenizeErr(fmt.Errorf("%w: %q", ErrSymbol, string(r)), t.posDoc.Pos(start))
	}
	for t.pos < len(d) {
		r, size = utf8.DecodeRune(d[t.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		t.pos += size
	}
	return &Token{Type: TVar, Pos: t.posDoc.Pos(start), Bytes: d[start:t.pos]}, nil
}

// Tokenize is the eager form of Next.
func Tokenize(d []byte) ([]Token, error) {
	tk := NewTokenizer(d)
	var toks []Token
	for {
		tok, err := tk.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return toks, nil
		}
		toks = append(toks, *tok)
	}
}
