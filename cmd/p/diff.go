package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/prop-format/go-prop/encode"
	"github.com/signadot/prop-format/go-prop/eval"
	"github.com/signadot/prop-format/go-prop/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func pDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := diffArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := diffArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		_, err = fmt.Fprintf(cc.Out, "equivalent: %s\n", encode.MustString(a))
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(a), encode.MustString(b), false)
	if cfg.Color {
		_, err = fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		default:
			mark = " "
		}
		if _, err := fmt.Fprintf(cc.Out, "%s%s\n", mark, d.Text); err != nil {
			return err
		}
	}
	return nil
}

// diffArg reads, parses, and simplifies one operand so the diff
// compares canonical forms.
func diffArg(cfg *MainConfig, file string) (*ir.Node, error) {
	var e *ir.Node
	err := fileExpr(cfg, os.Stdout, file, func(_ io.Writer, got *ir.Node) error {
		e = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eval.Simplify(e), nil
}
