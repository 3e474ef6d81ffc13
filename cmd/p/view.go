package main

import (
	"io"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/ir"

	"github.com/scott-cotton/cli"
)

func pFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachExpr(cfg.MainConfig, cc, args, func(w io.Writer, e *ir.Node) error {
		return encode.Encode(e, w, cfg.encOpts(w)...)
	})
}
