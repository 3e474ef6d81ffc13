package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/prop-format/go-prop/ir"
	"github.com/signadot/prop-format/go-prop/parse"

	"github.com/scott-cotton/cli"
)

func pMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.P, cfg.J) > 1 {
		return fmt.Errorf("%w: must specify at most one of -p[rop] -j[son]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// parseDoc decodes one input document in the configured input format.
func parseDoc(cfg *MainConfig, d []byte, name string) (*ir.Node, error) {
	if cfg.inFormat().IsJSON() {
		return ir.FromJSON(d)
	}
	var opts []parse.ParseOption
	if name != "" && name != "-" {
		opts = append(opts, parse.WithFilename(name))
	}
	return parse.Parse(d, opts...)
}

// eachExpr applies fn to the expression from each file argument, or
// from cc.In when no files are given. "-" names stdin.
func eachExpr(cfg *MainConfig, cc *cli.Context, args []string, fn func(w io.Writer, e *ir.Node) error) error {
	if len(args) == 0 {
		return readerExpr(cfg, cc.Out, os.Stdin, "-", fn)
	}
	for _, file := range args {
		if err := fileExpr(cfg, cc.Out, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func fileExpr(cfg *MainConfig, w io.Writer, file string, fn func(w io.Writer, e *ir.Node) error) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	return readerExpr(cfg, w, f, file, fn)
}

func readerExpr(cfg *MainConfig, w io.Writer, r io.Reader, name string, fn func(w io.Writer, e *ir.Node) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	e, err := parseDoc(cfg, in, name)
	if err != nil {
		return err
	}
	return fn(w, e)
}
