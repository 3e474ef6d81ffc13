package ir

import "fmt"

type Type int

const (
	BoolType Type = iota
	VarType
	NotType
	AndType
	OrType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BoolType: "Bool",
		VarType:  "Var",
		NotType:  "Not",
		AndType:  "And",
		OrType:   "Or",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Bool": BoolType,
		"Var":  VarType,
		"Not":  NotType,
		"And":  AndType,
		"Or":   OrType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		BoolType,
		VarType,
		NotType,
		AndType,
		OrType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case NotType, AndType, OrType:
		return false
	}
	return true
}
