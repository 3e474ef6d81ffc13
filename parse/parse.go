// Package parse provides prop parsing support.
package parse

import (
	"fmt"

	"github.com/signadot/prop-format/go-prop/ir"
	"github.com/signadot/prop-format/go-prop/token"
)

// Parse consumes d into exactly one expression. The whole input must
// be consumed: trailing tokens after a complete expression are an
// error. The top level is an implicit group, so `a&b` is legal without
// surrounding parentheses; nested groups require explicit parentheses
// to introduce a new operator scope.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{tk: token.NewTokenizer(d), opts: pOpts}
	if err := p.scan(); err != nil {
		return nil, p.wrap(err)
	}
	res, err := p.group(nil)
	if err != nil {
		return nil, p.wrap(err)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	tk   *token.Tokenizer
	tok  *token.Token // single lookahead, nil at end of input
	opts *parseOpts
}

func (p *parser) scan() error {
	t, err := p.tk.Next()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	p.tok = t
	return nil
}

func (p *parser) wrap(err error) error {
	if p.opts.filename != "" {
		return fmt.Errorf("%s: %w", p.opts.filename, err)
	}
	return err
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)
}

// expr parses one expression from the current lookahead: an atom, a
// negation, or a parenthesized group. Negation is right-recursive and
// binds to exactly the next expression.
func (p *parser) expr() (*ir.Node, error) {
	t := p.tok
	if t == nil {
		return nil, p.errf("expected expression, found end of input %s", p.tk.End())
	}
	switch t.Type {
	case token.TTrue:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return p.track(ir.True(), t.Pos), nil
	case token.TFalse:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return p.track(ir.False(), t.Pos), nil
	case token.TVar:
		name := t.String()
		if err := p.scan(); err != nil {
			return nil, err
		}
		return p.track(ir.Var(name), t.Pos), nil
	case token.TNot:
		if err := p.scan(); err != nil {
			return nil, err
		}
		sub, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.track(ir.Not(sub), t.Pos), nil
	case token.TLParen:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return p.group(t.Pos)
	default:
		return nil, p.errf("unexpected token %q %s", t.String(), t.Pos)
	}
}

// group parses a sequence `e1 OP e2 OP ...` with a uniform operator.
// When open is non-nil the group was introduced by a parenthesis at
// open and is terminated by the matching `)`; when open is nil this is
// the implicit top-level group terminated by end of input.
func (p *parser) group(open *token.Pos) (*ir.Node, error) {
	var (
		exprs []*ir.Node
		op    *token.Token
	)
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		t := p.tok
		if t == nil {
			if open == nil {
				break
			}
			return nil, p.errf("expected closing parenthesis for group opened %s, found end of input", open)
		}
		if open != nil && t.Type == token.TRParen {
			if err := p.scan(); err != nil {
				return nil, err
			}
			break
		}
		switch t.Type {
		case token.TAnd, token.TOr:
			if op != nil && op.Type != t.Type {
				return nil, p.errf("operator disagreement: %q %s, group uses %q", t.String(), t.Pos, op.String())
			}
			op = t
			if err := p.scan(); err != nil {
				return nil, err
			}
		case token.TRParen:
			return nil, p.errf("unbalanced %q %s", t.String(), t.Pos)
		default:
			if open == nil {
				return nil, p.errf("expected end of input, got %q %s", t.String(), t.Pos)
			}
			return nil, p.errf("expected operator or closing parenthesis, got %q %s", t.String(), t.Pos)
		}
	}
	switch {
	case op == nil:
		// one expression, no operator: parenthesization alone
		return exprs[0], nil
	case op.Type == token.TAnd:
		return p.track(ir.And(exprs...), op.Pos), nil
	default:
		return p.track(ir.Or(exprs...), op.Pos), nil
	}
}

func (p *parser) track(n *ir.Node, pos *token.Pos) *ir.Node {
	if p.opts.positions == nil {
		return n
	}
	// canonicalizing constructors can hand back an existing child
	// (singleton unwrap, dedupe); keep the child's own position then
	if _, ok := p.opts.positions[n]; !ok {
		p.opts.positions[n] = pos
	}
	return n
}
