package main

import (
	"io"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/ir"

	"github.com/scott-cotton/cli"
)

func pSimplify(cfg *SimplifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Simplify.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachExpr(cfg.MainConfig, cc, args, func(w io.Writer, e *ir.Node) error {
		return encode.Encode(eval.Simplify(e), w, cfg.encOpts(w)...)
	})
}
