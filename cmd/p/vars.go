package main

import (
	"fmt"
	"io"

	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/ir"

	"github.com/scott-cotton/cli"
)

func pVars(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachExpr(cfg.MainConfig, cc, args, func(w io.Writer, e *ir.Node) error {
		for _, name := range eval.Names(e) {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	})
}
