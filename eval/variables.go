package eval

import (
	"maps"
	"slices"

	"github.com/signadot/prop-format/go-prop/ir"
)

// Variables returns the set of distinct variable names reachable in
// e. Constants yield the empty set. No simplification is performed, so
// variables that simplification would remove are still reported.
func Variables(e *ir.Node) map[string]bool {
	vars := map[string]bool{}
	collect(e, vars)
	return vars
}

func collect(e *ir.Node, vars map[string]bool) {
	switch e.Type {
	case ir.VarType:
		vars[e.Name] = true
	case ir.NotType, ir.AndType, ir.OrType:
		for _, v := range e.Values {
			collect(v, vars)
		}
	}
}

// Names returns the variable names of e in sorted order.
func Names(e *ir.Node) []string {
	return slices.Sorted(maps.Keys(Variables(e)))
}
