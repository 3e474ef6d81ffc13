package eval

import (
	"fmt"

	"github.com/signadot/prop-format/go-prop/ir"
	"github.com/signadot/prop-format/go-prop/parse"

	"github.com/goccy/go-yaml"
)

// ParseBindings decodes a YAML (or JSON) document mapping variable
// names to values:
//
//	a: true
//	b: 0
//	c: x&y
//
// Booleans and 0/1 bind constants; strings are parsed as prop
// expressions.
func ParseBindings(d []byte) (Bindings, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(d, &raw); err != nil {
		return nil, err
	}
	res := make(Bindings, len(raw))
	for name, v := range raw {
		n, err := BindingNode(v)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
		res[name] = n
	}
	return res, nil
}

// BindingNode converts one decoded binding value to an expression.
func BindingNode(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case bool:
		return ir.FromBool(v), nil
	case string:
		return parse.ParseString(v)
	case int:
		return bitNode(int64(v))
	case int64:
		return bitNode(v)
	case uint64:
		return bitNode(int64(v))
	default:
		return nil, fmt.Errorf("cannot bind %T value %v", v, v)
	}
}

func bitNode(v int64) (*ir.Node, error) {
	switch v {
	case 0:
		return ir.False(), nil
	case 1:
		return ir.True(), nil
	}
	return nil, fmt.Errorf("numeric binding must be 0 or 1, got %d", v)
}
