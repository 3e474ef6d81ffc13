// Package debug provides env-gated debug logging for the prop
// packages. Set P_DEBUG_PARSE, P_DEBUG_SIMPLIFY, or P_DEBUG_EVAL to a
// truthy value to enable the corresponding traces on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Simplify bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("P_DEBUG_PARSE")
	d.Simplify = boolEnv("P_DEBUG_SIMPLIFY")
	d.Eval = boolEnv("P_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Simplify() bool {
	return d.Simplify
}
func Eval() bool {
	return d.Eval
}
