package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TAnd
	TOr
	TNot
	TTrue
	TFalse
	TVar
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen: "TLParen",
		TRParen: "TRParen",
		TAnd:    "TAnd",
		TOr:     "TOr",
		TNot:    "TNot",
		TTrue:   "TTrue",
		TFalse:  "TFalse",
		TVar:    "TVar",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// ErrSymbol reports a character that is not a letter, whitespace, or
// one of the grammar's punctuation bytes.
var ErrSymbol = errors.New("invalid symbol")

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (t *TokenizeErr) Error() string {
	return fmt.Sprintf("%s %s", t.Err.Error(), t.Pos.String())
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}
