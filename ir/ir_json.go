package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type   Type    `json:"type"`
	Values []*Node `json:"values,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   n.Type,
		Values: n.Values,
	}
	switch n.Type {
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: n.Bool})
	case VarType:
		type C struct {
			irBase
			Name string `json:"name"`
		}
		return json.Marshal(C{irBase: *base, Name: n.Name})
	case NotType, AndType, OrType:
		return json.Marshal(base)
	default:
		return nil, fmt.Errorf("%w: %d", ErrType, int(n.Type))
	}
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := struct {
		irBase
		Bool bool   `json:"bool"`
		Name string `json:"name"`
	}{}
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	switch tmp.Type {
	case BoolType:
		*n = Node{Type: BoolType, Bool: tmp.Bool}
	case VarType:
		if tmp.Name == "" {
			return fmt.Errorf("var node with empty name")
		}
		*n = Node{Type: VarType, Name: tmp.Name}
	case NotType:
		if len(tmp.Values) != 1 {
			return fmt.Errorf("not node with %d children", len(tmp.Values))
		}
		*n = *Not(tmp.Values[0])
	case AndType:
		*n = *And(tmp.Values...)
	case OrType:
		*n = *Or(tmp.Values...)
	default:
		return fmt.Errorf("%w: %d", ErrType, int(tmp.Type))
	}
	return nil
}

func ToJSON(n *Node) ([]byte, error) {
	return json.Marshal(n)
}

func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	return n, nil
}
