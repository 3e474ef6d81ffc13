package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/prop-format/go-prop/format"
	"github.com/signadot/prop-format/go-prop/ir"
)

type EncState struct {
	format format.Format
	spaced bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w followed by a newline. The default output
// is the textual grammar; parsing it yields a tree structurally equal
// to node. Children of And/Or render in their canonical order, so
// output is deterministic. A node outside the five recognized variants
// yields an error wrapping ir.ErrType.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ir.ErrType)
	}
	if es.format.IsJSON() {
		d, err := json.Marshal(node)
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.BoolType:
		v := "0"
		if node.Bool {
			v = "1"
		}
		return writeString(w, es.color(ir.BoolType, ValueColor, v))
	case ir.VarType:
		return writeString(w, es.color(ir.VarType, ValueColor, node.Name))
	case ir.NotType:
		// no parentheses forced: ~ binds to exactly the next atom or
		// group on re-parse
		if err := writeString(w, es.color(ir.NotType, OpColor, "~")); err != nil {
			return err
		}
		return encode(node.Values[0], w, es)
	case ir.AndType, ir.OrType:
		op := "&"
		if node.Type == ir.OrType {
			op = "|"
		}
		if es.spaced {
			op = " " + op + " "
		}
		if err := writeString(w, es.color(node.Type, SepColor, "(")); err != nil {
			return err
		}
		for i, sub := range node.Values {
			if i > 0 {
				if err := writeString(w, es.color(node.Type, OpColor, op)); err != nil {
					return err
				}
			}
			if err := encode(sub, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.color(node.Type, SepColor, ")"))
	default:
		return fmt.Errorf("%w: %d", ir.ErrType, int(node.Type))
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
